// Package quiz implements the quiz question repository using PostgreSQL.
package quiz

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/arlearn/admin-backend/internal/adapter/postgres"
	"github.com/arlearn/admin-backend/internal/domain"
)

const table = "quiz"

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "question", "option_a", "option_b", "option_c", "option_d", "answer"}

	returning = "RETURNING id, question, option_a, option_b, option_c, option_d, answer"
)

// Repo provides quiz question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all questions ordered by id.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.QuizQuestion, error) {
	query, args, err := psql.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

// GetByID returns a question by primary key.
// Returns domain.ErrNotFound if no such row exists.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.QuizQuestion, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q, err := scanQuestion(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	return q, nil
}

// Create inserts a new question and returns the persisted row with its
// server-assigned id. The answer CHECK constraint maps to domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, q *domain.QuizQuestion) (*domain.QuizQuestion, error) {
	query, args, err := psql.Insert(table).
		Columns("question", "option_a", "option_b", "option_c", "option_d", "answer").
		Values(q.Question, q.OptionA, q.OptionB, q.OptionC, q.OptionD, string(q.Answer)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanQuestion(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", 0)
	}

	return created, nil
}

// Update replaces the non-key fields of the row with the given id and returns
// the row as the server now holds it. The id itself is immutable.
// Returns domain.ErrNotFound if no such row exists.
func (r *Repo) Update(ctx context.Context, id int64, q *domain.QuizQuestion) (*domain.QuizQuestion, error) {
	query, args, err := psql.Update(table).
		Set("question", q.Question).
		Set("option_a", q.OptionA).
		Set("option_b", q.OptionB).
		Set("option_c", q.OptionC).
		Set("option_d", q.OptionD).
		Set("answer", string(q.Answer)).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanQuestion(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	return updated, nil
}

// Delete removes the row with the given id.
// Returns domain.ErrNotFound if no such row exists.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "question", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("question %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Count returns the number of rows in the table.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanQuestion scans a single question row from pgx.Row. The answer column is
// CHAR(1), so trailing padding never occurs, but the value is normalized
// anyway to keep comparisons exact.
func scanQuestion(row pgx.Row) (*domain.QuizQuestion, error) {
	var (
		q      domain.QuizQuestion
		answer string
	)
	if err := row.Scan(&q.ID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &answer); err != nil {
		return nil, err
	}
	q.Answer = domain.NormalizeAnswerKey(answer)
	return &q, nil
}

// scanQuestions scans multiple question rows from pgx.Rows.
func scanQuestions(rows pgx.Rows) ([]*domain.QuizQuestion, error) {
	var questions []*domain.QuizQuestion
	for rows.Next() {
		var (
			q      domain.QuizQuestion
			answer string
		)
		if err := rows.Scan(&q.ID, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &answer); err != nil {
			return nil, err
		}
		q.Answer = domain.NormalizeAnswerKey(answer)
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if questions == nil {
		questions = []*domain.QuizQuestion{}
	}

	return questions, nil
}
