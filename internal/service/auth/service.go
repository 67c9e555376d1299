package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/arlearn/admin-backend/internal/domain"
)

type accountRepo interface {
	GetByCredentials(ctx context.Context, name, password string) (*domain.Account, error)
}

// Service provides credential checks for the admin console.
type Service struct {
	accounts accountRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, accounts accountRepo) *Service {
	return &Service{
		accounts: accounts,
		log:      log.With("service", "auth"),
		now:      time.Now,
	}
}
