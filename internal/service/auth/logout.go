package auth

import (
	"context"
	"log/slog"

	"github.com/arlearn/admin-backend/internal/domain"
)

// Logout records the end of a session. The session marker lives on the
// client, so there is no server-side state to revoke; discarding the marker
// is the logout. This exists so the event still lands in the log.
func (s *Service) Logout(ctx context.Context, rec domain.SessionRecord) {
	s.log.InfoContext(ctx, "logout",
		slog.Int64("account_id", rec.ID),
		slog.String("name", rec.Name),
	)
}
