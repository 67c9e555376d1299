package catalog

import (
	"context"
	"log/slog"

	"github.com/arlearn/admin-backend/internal/domain"
)

type modelRepo interface {
	List(ctx context.Context) ([]*domain.ARModel, error)
	GetByID(ctx context.Context, id int64) (*domain.ARModel, error)
	Create(ctx context.Context, model *domain.ARModel) (*domain.ARModel, error)
	Update(ctx context.Context, id int64, model *domain.ARModel) (*domain.ARModel, error)
	Delete(ctx context.Context, id int64) error
}

type quizRepo interface {
	List(ctx context.Context) ([]*domain.QuizQuestion, error)
	GetByID(ctx context.Context, id int64) (*domain.QuizQuestion, error)
	Create(ctx context.Context, question *domain.QuizQuestion) (*domain.QuizQuestion, error)
	Update(ctx context.Context, id int64, question *domain.QuizQuestion) (*domain.QuizQuestion, error)
	Delete(ctx context.Context, id int64) error
}

// Service manages the two admin catalogs: AR model descriptions and quiz
// questions.
type Service struct {
	models    modelRepo
	questions quizRepo
	log       *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(log *slog.Logger, models modelRepo, questions quizRepo) *Service {
	return &Service{
		models:    models,
		questions: questions,
		log:       log.With("service", "catalog"),
	}
}
