package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arlearn/admin-backend/internal/domain"
)

// ListModels returns every AR model description, oldest first.
func (s *Service) ListModels(ctx context.Context) ([]*domain.ARModel, error) {
	models, err := s.models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return models, nil
}

// CreateModel validates the input and inserts a new model description.
func (s *Service) CreateModel(ctx context.Context, input ModelInput) (*domain.ARModel, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	model, err := s.models.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create model: %w", err)
	}

	s.log.InfoContext(ctx, "model created",
		slog.Int64("id", model.ID),
		slog.String("name", model.Name),
	)

	return model, nil
}

// UpdateModel replaces every editable field of the identified model.
// Whoever saves last wins; there is no conflict detection.
func (s *Service) UpdateModel(ctx context.Context, id int64, input ModelInput) (*domain.ARModel, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	model, err := s.models.Update(ctx, id, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("update model: %w", err)
	}

	s.log.InfoContext(ctx, "model updated", slog.Int64("id", id))

	return model, nil
}

// DeleteModel removes the identified model description.
func (s *Service) DeleteModel(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	if err := s.models.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete model: %w", err)
	}

	s.log.InfoContext(ctx, "model deleted", slog.Int64("id", id))

	return nil
}
