// Package armodel implements the AR model repository over the legacy
// infoar table.
package armodel

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/arlearn/admin-backend/internal/adapter/postgres"
	"github.com/arlearn/admin-backend/internal/domain"
)

const table = "infoar"

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "name", "description"}
)

// Repo provides AR model persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new AR model repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all models ordered by id.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.ARModel, error) {
	query, args, err := psql.Select(columns...).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()

	models, err := scanModels(rows)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	return models, nil
}

// GetByID returns a model by primary key.
// Returns domain.ErrNotFound if no such row exists.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ARModel, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanModel(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "model", id)
	}

	return m, nil
}

// Create inserts a new model and returns the persisted row with its
// server-assigned id.
func (r *Repo) Create(ctx context.Context, m *domain.ARModel) (*domain.ARModel, error) {
	query, args, err := psql.Insert(table).
		Columns("name", "description").
		Values(m.Name, m.Description).
		Suffix("RETURNING id, name, description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanModel(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "model", 0)
	}

	return created, nil
}

// Update replaces the non-key fields of the row with the given id and returns
// the row as the server now holds it. The id itself is immutable.
// Returns domain.ErrNotFound if no such row exists.
func (r *Repo) Update(ctx context.Context, id int64, m *domain.ARModel) (*domain.ARModel, error) {
	query, args, err := psql.Update(table).
		Set("name", m.Name).
		Set("description", m.Description).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanModel(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "model", id)
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
		return postgres.MapError(err, "model", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("model %d: %w", id, domain.ErrNotFound)
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
		return 0, fmt.Errorf("count models: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanModel scans a single model row from pgx.Row.
func scanModel(row pgx.Row) (*domain.ARModel, error) {
	var m domain.ARModel
	if err := row.Scan(&m.ID, &m.Name, &m.Description); err != nil {
		return nil, err
	}
	return &m, nil
}

// scanModels scans multiple model rows from pgx.Rows.
func scanModels(rows pgx.Rows) ([]*domain.ARModel, error) {
	var models []*domain.ARModel
	for rows.Next() {
		var m domain.ARModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, err
		}
		models = append(models, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if models == nil {
		models = []*domain.ARModel{}
	}

	return models, nil
}
