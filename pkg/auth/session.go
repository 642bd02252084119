package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "folio_session"

// adminIDValue is the session key holding the authenticated admin's id.
const adminIDValue = "admin_id"

// NewStore creates the cookie-backed session store used for the admin console.
// The secret should be at least 32 bytes; shorter secrets are zero-padded.
func NewStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secretBytes(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

const minSecretLen = 32

func secretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// SignIn stores the admin id in the session cookie.
func SignIn(w http.ResponseWriter, r *http.Request, store sessions.Store, adminID string) error {
	session, _ := store.Get(r, sessionName)
	session.Values[adminIDValue] = adminID
	return session.Save(r, w)
}

// SignOut clears the session cookie.
func SignOut(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, _ := store.Get(r, sessionName)
	delete(session.Values, adminIDValue)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// SessionAdminID returns the admin id stored in the request's session cookie.
func SessionAdminID(r *http.Request, store sessions.Store) (string, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return "", false
	}
	id, ok := session.Values[adminIDValue].(string)
	return id, ok && id != ""
}
