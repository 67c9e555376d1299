package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arlearn/admin-backend/internal/domain"
)

// AuthContext is the outcome of a gate check. Anonymous means the caller
// must route to the login entry point and render nothing protected, not
// even briefly.
type AuthContext struct {
	Authenticated bool
	ID            int64
	Name          string
}

// Anonymous is the zero AuthContext.
var Anonymous = AuthContext{}

// Gate decides whether the dashboard may render, and runs the login and
// logout transitions against the session store.
type Gate struct {
	store SessionStore
	auth  Authenticator
	log   *slog.Logger
}

// NewGate creates a Gate.
func NewGate(log *slog.Logger, store SessionStore, auth Authenticator) *Gate {
	return &Gate{
		store: store,
		auth:  auth,
		log:   log.With("component", "gate"),
	}
}

// Check reads the session store. Possession of a record is the whole
// proof: no signature or expiry is verified.
func (g *Gate) Check() AuthContext {
	rec, ok := g.store.Load()
	if !ok {
		return Anonymous
	}
	return AuthContext{Authenticated: true, ID: rec.ID, Name: rec.Name}
}

// Login exchanges credentials for a session record and stores it. Empty
// fields fail locally with ErrValidation before any network call. Bad
// credentials surface as ErrUnauthorized; any other failure is wrapped as
// a generic retry-able error with the underlying detail kept out of the
// message shown to the user.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.NewValidationError("credentials", "username and password are required")
	}

	rec, err := g.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return domain.ErrUnauthorized
		}
		g.log.ErrorContext(ctx, "login transport failure", slog.String("error", err.Error()))
		return fmt.Errorf("login failed, please try again: %w", domain.ErrUnavailable)
	}

	g.store.Save(rec)
	return nil
}

// Logout clears the stored record. It requires explicit confirmation;
// declining leaves the session in place. There is nothing to invalidate
// server-side. Returns true if the session was cleared.
func (g *Gate) Logout(confirm func() bool) bool {
	if confirm != nil && !confirm() {
		return false
	}
	g.store.Clear()
	return true
}
