package identity

import (
	"context"
	"net/http"
	"strings"
)

// context key avoids collisions with string-typed keys in other packages.
type ctxKey struct{ name string }

var ctxKeySession = ctxKey{name: "session"}

// Middleware resolves the bearer token into a Session and stores it in the
// request context. Missing, malformed or unverifiable tokens fail open:
// the request proceeds as an anonymous guest.
func Middleware(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
				if sess := svc.SessionFromToken(r.Context(), token); sess != nil {
					r = r.WithContext(WithSession(r.Context(), sess))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKeySession, sess)
}

// SessionFrom returns the session attached to the request, nil for guests.
func SessionFrom(r *http.Request) *Session {
	v := r.Context().Value(ctxKeySession)
	if v == nil {
		return nil
	}
	sess, ok := v.(*Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireAdmin rejects requests whose session is absent or not flagged as
// admin. An account whose profile is missing is treated as a plain
// customer and rejected here, not crashed on.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFrom(r)
		if sess == nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if !sess.IsAdmin {
			http.Error(w, "admin privileges required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
