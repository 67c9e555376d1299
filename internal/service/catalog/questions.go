package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arlearn/admin-backend/internal/domain"
)

// ListQuestions returns every quiz question, oldest first.
func (s *Service) ListQuestions(ctx context.Context) ([]*domain.QuizQuestion, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// CreateQuestion validates the input and inserts a new quiz question.
func (s *Service) CreateQuestion(ctx context.Context, input QuizInput) (*domain.QuizQuestion, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.questions.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	s.log.InfoContext(ctx, "question created",
		slog.Int64("id", question.ID),
		slog.String("answer", string(question.Answer)),
	)

	return question, nil
}

// UpdateQuestion replaces every editable field of the identified question.
func (s *Service) UpdateQuestion(ctx context.Context, id int64, input QuizInput) (*domain.QuizQuestion, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.questions.Update(ctx, id, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}

	s.log.InfoContext(ctx, "question updated", slog.Int64("id", id))

	return question, nil
}

// DeleteQuestion removes the identified quiz question.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.log.InfoContext(ctx, "question deleted", slog.Int64("id", id))

	return nil
}
