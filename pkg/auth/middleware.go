package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

type contextKey string

const adminIDKey contextKey = "admin_id"

// AdminIDFromContext returns the authenticated admin id set by RequireAdmin.
// The (id, false) form is the unauthorized result; no redirect happens here —
// what to do about an unauthenticated caller is the handler's decision.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminIDKey).(string)
	return v, ok
}

// WithAdminID sets the admin id on the context. Exported for handler tests.
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// RequireAdmin rejects requests without a valid admin session with a 401 JSON
// body and otherwise stores the admin id in the request context.
func RequireAdmin(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID, ok := SessionAdminID(r, store)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			ctx := WithAdminID(r.Context(), adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
