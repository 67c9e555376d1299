package ctxutil

import (
	"context"

	"github.com/arlearn/admin-backend/internal/domain"
)

type ctxKey string

const (
	sessionKey   ctxKey = "session"
	requestIDKey ctxKey = "request_id"
)

// WithSession stores the caller's session record in the context.
func WithSession(ctx context.Context, rec domain.SessionRecord) context.Context {
	return context.WithValue(ctx, sessionKey, rec)
}

// SessionFromCtx extracts the session record from the context.
// Returns a zero record and false if the value is missing or of the wrong type.
func SessionFromCtx(ctx context.Context) (domain.SessionRecord, bool) {
	rec, ok := ctx.Value(sessionKey).(domain.SessionRecord)
	if !ok {
		return domain.SessionRecord{}, false
	}
	return rec, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
