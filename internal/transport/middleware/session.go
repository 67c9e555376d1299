package middleware

import (
	"net/http"

	"github.com/arlearn/admin-backend/internal/domain"
	"github.com/arlearn/admin-backend/pkg/ctxutil"
)

// SessionHeader carries the client's session record, as the JSON produced
// by a successful login.
const SessionHeader = "X-Session"

// Session returns middleware that parses the session marker and stores it
// in the request context. The record is taken at face value: any
// well-formed JSON object passes, matching the client-side marker model
// where possession of the record is the whole proof. A missing or
// malformed header leaves the request anonymous; Require is what turns
// anonymous into 401.
func Session() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(SessionHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}
			rec, err := domain.ParseSessionRecord([]byte(raw))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithSession(r.Context(), rec)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require returns middleware that rejects anonymous requests with 401.
// Mount it on everything behind the login gate.
func Require() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.SessionFromCtx(r.Context()); !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
