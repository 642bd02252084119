package handler

import (
	"net/http"

	"github.com/folio/backend/internal/reqcache"
)

// RequestCache attaches a fresh per-request memo cache to the context.
// The cache dies with the request; repeated reads of the same document within
// one request hit the database once.
func RequestCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(reqcache.NewContext(r.Context())))
	})
}
