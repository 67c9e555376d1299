package dashboard

import (
	"context"

	"github.com/arlearn/admin-backend/internal/domain"
)

// ModelFields is the kind-scoped payload for AR model rows.
type ModelFields struct {
	Name        string
	Description string
}

// QuizFields is the kind-scoped payload for quiz rows.
type QuizFields struct {
	Question string
	OptionA  string
	OptionB  string
	OptionC  string
	OptionD  string
	Answer   string
}

// Collaborator is the controller's data access boundary. Operations are
// kind-scoped, so a model payload cannot land in the quiz table by
// construction.
type Collaborator interface {
	ListModels(ctx context.Context) ([]*domain.ARModel, error)
	CreateModel(ctx context.Context, fields ModelFields) (*domain.ARModel, error)
	UpdateModel(ctx context.Context, id int64, fields ModelFields) (*domain.ARModel, error)
	DeleteModel(ctx context.Context, id int64) error

	ListQuestions(ctx context.Context) ([]*domain.QuizQuestion, error)
	CreateQuestion(ctx context.Context, fields QuizFields) (*domain.QuizQuestion, error)
	UpdateQuestion(ctx context.Context, id int64, fields QuizFields) (*domain.QuizQuestion, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

// Authenticator performs the credential exchange for the gate.
type Authenticator interface {
	Login(ctx context.Context, name, password string) (domain.SessionRecord, error)
}
