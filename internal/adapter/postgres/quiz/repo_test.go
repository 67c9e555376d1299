package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arlearn/admin-backend/internal/adapter/postgres/quiz"
	"github.com/arlearn/admin-backend/internal/adapter/postgres/testhelper"
	"github.com/arlearn/admin-backend/internal/domain"
)

func newRepo(t *testing.T) *quiz.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return quiz.New(pool)
}

func sampleQuestion() *domain.QuizQuestion {
	return &domain.QuizQuestion{
		Question: "What color is the sky?",
		OptionA:  "Blue",
		OptionB:  "Green",
		OptionC:  "Red",
		OptionD:  "Yellow",
		Answer:   domain.AnswerA,
	}
}

func TestRepo_Create_RoundTrip(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleQuestion())
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected server-assigned id, got 0")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}

	if got.Question != "What color is the sky?" {
		t.Errorf("Question mismatch: got %q", got.Question)
	}
	if got.OptionA != "Blue" || got.OptionB != "Green" || got.OptionC != "Red" || got.OptionD != "Yellow" {
		t.Errorf("options mismatch: got %+v", got)
	}
	if got.Answer != domain.AnswerA {
		t.Errorf("Answer mismatch: got %q, want %q", got.Answer, domain.AnswerA)
	}
}

func TestRepo_Create_InvalidAnswerRejected(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	q := sampleQuestion()
	q.Answer = "E"

	// The CHECK constraint on the answer column backstops service-level
	// validation.
	_, err := repo.Create(ctx, q)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation from check constraint, got %v", err)
	}
}

func TestRepo_Update_ChangesAnswer(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleQuestion())
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	next := sampleQuestion()
	next.Answer = domain.AnswerC

	updated, err := repo.Update(ctx, created.ID, next)
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("id changed on update: got %d, want %d", updated.ID, created.ID)
	}
	if updated.Answer != domain.AnswerC {
		t.Errorf("Answer mismatch after update: got %q, want %q", updated.Answer, domain.AnswerC)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Answer != domain.AnswerC {
		t.Errorf("persisted Answer mismatch: got %q, want %q", got.Answer, domain.AnswerC)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Update(ctx, 999999999, sampleQuestion())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleQuestion())
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	_, err = repo.GetByID(ctx, created.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRepo_List_ContainsCreated(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleQuestion())
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	questions, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	found := false
	for _, q := range questions {
		if q.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("created row id=%d not visible in List", created.ID)
	}
}
