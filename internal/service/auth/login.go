package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arlearn/admin-backend/internal/domain"
)

// Login checks the submitted credentials against the login table and, on a
// match, mints the session record the client carries on later requests.
// Credentials that don't match exactly one account yield ErrUnauthorized;
// the caller never learns whether the name or the password was wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (domain.SessionRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.SessionRecord{}, err
	}

	name := strings.TrimSpace(input.Name)

	account, err := s.accounts.GetByCredentials(ctx, name, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "login rejected", slog.String("name", name))
			return domain.SessionRecord{}, domain.ErrUnauthorized
		}
		return domain.SessionRecord{}, fmt.Errorf("get account by credentials: %w", err)
	}

	rec := domain.SessionRecord{
		ID:        account.ID,
		Name:      account.Name,
		LoginTime: s.now(),
	}

	s.log.InfoContext(ctx, "login accepted",
		slog.Int64("account_id", account.ID),
		slog.String("name", account.Name),
	)

	return rec, nil
}
