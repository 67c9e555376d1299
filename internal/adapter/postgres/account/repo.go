// Package account implements the administrator account repository over the
// legacy login table.
package account

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/arlearn/admin-backend/internal/adapter/postgres"
	"github.com/arlearn/admin-backend/internal/domain"
)

const table = "login"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByCredentials returns the account matching name AND password by literal
// equality (the login table stores plaintext passwords; see domain.Account).
// Zero matches and multiple matches both return domain.ErrNotFound: an
// ambiguous credential row is indistinguishable from a wrong one to the caller.
func (r *Repo) GetByCredentials(ctx context.Context, name, password string) (*domain.Account, error) {
	query, args, err := psql.Select("id", "name", "password").
		From(table).
		Where(sq.Eq{"name": name, "password": password}).
		Limit(2).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build credentials query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Password); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}

	if len(accounts) != 1 {
		return nil, fmt.Errorf("account %q: %w", name, domain.ErrNotFound)
	}

	a := accounts[0]
	return &a, nil
}

// GetByName returns the account with the given name.
// Returns domain.ErrNotFound if no such account exists.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	query, args, err := psql.Select("id", "name", "password").
		From(table).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var a domain.Account
	if err := querier.QueryRow(ctx, query, args...).Scan(&a.ID, &a.Name, &a.Password); err != nil {
		return nil, postgres.MapError(err, "account", 0)
	}

	return &a, nil
}

// Create inserts a new account and returns the persisted row.
// Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	query, args, err := psql.Insert(table).
		Columns("name", "password").
		Values(a.Name, a.Password).
		Suffix("RETURNING id, name, password").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Account
	if err := querier.QueryRow(ctx, query, args...).Scan(&created.ID, &created.Name, &created.Password); err != nil {
		return nil, postgres.MapError(err, "account", 0)
	}

	return &created, nil
}
