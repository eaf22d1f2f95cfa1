// Package actiontoken implements the ActionToken repository using PostgreSQL.
//
// Redemption relies on the caller running inside a transaction and reading
// the token with GetByURLForUpdate: the row lock serializes concurrent
// redemptions of the same token, which is what upholds the at-most-one-use
// invariant. The repository itself adds no other locking.
package actiontoken

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/classline/backend/internal/adapter/postgres"
	"github.com/classline/backend/internal/domain"
)

// Repo provides action token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new action token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Filter narrows List results. Nil fields are not applied.
type Filter struct {
	Action *domain.Action
	Target *int64
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tokenColumns = `url, action, target, expires_at, use_limit, use_count, created_at`

const createSQL = `
INSERT INTO action_tokens (url, action, target, expires_at, use_limit, use_count, created_at)
VALUES ($1, $2, $3, $4, $5, 0, now())
RETURNING ` + tokenColumns

const getByURLSQL = `
SELECT ` + tokenColumns + `
FROM action_tokens
WHERE url = $1`

const getByURLForUpdateSQL = getByURLSQL + `
FOR UPDATE`

const findActiveSQL = `
SELECT ` + tokenColumns + `
FROM action_tokens
WHERE action = $1 AND target = $2 AND (expires_at IS NULL OR expires_at > $3)
  AND (use_limit IS NULL OR use_count < use_limit)
ORDER BY created_at
LIMIT 1`

const incrementUseSQL = `
UPDATE action_tokens
SET use_count = use_count + 1
WHERE url = $1
RETURNING ` + tokenColumns

const deleteSQL = `
DELETE FROM action_tokens
WHERE url = $1`

const deleteExhaustedSQL = `
DELETE FROM action_tokens
WHERE (use_limit IS NOT NULL AND use_count >= use_limit)
   OR (expires_at IS NOT NULL AND expires_at < $1)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByURL returns a token by its primary key.
// Returns domain.ErrNotFound if the token does not exist.
func (r *Repo) GetByURL(ctx context.Context, url string) (*domain.ActionToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	token, err := scanToken(querier.QueryRow(ctx, getByURLSQL, url))
	if err != nil {
		return nil, postgres.MapError(err, "action_token", url)
	}

	return token, nil
}

// GetByURLForUpdate returns a token by primary key with a row lock.
// Must be called inside a transaction; the lock is held until commit or
// rollback and serializes concurrent redemptions of the same token.
func (r *Repo) GetByURLForUpdate(ctx context.Context, url string) (*domain.ActionToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	token, err := scanToken(querier.QueryRow(ctx, getByURLForUpdateSQL, url))
	if err != nil {
		return nil, postgres.MapError(err, "action_token", url)
	}

	return token, nil
}

// FindActive returns the oldest still-redeemable token for the given action
// and target, or domain.ErrNotFound if none exists. Used for idempotent
// join-link issuance.
func (r *Repo) FindActive(ctx context.Context, action domain.Action, target int64, now time.Time) (*domain.ActionToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	token, err := scanToken(querier.QueryRow(ctx, findActiveSQL, string(action), target, now))
	if err != nil {
		return nil, postgres.MapError(err, "action_token", fmt.Sprintf("%s/%d", action, target))
	}

	return token, nil
}

// List returns tokens matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter Filter) ([]*domain.ActionToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(tokenColumns).
		From("action_tokens").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Action != nil {
		builder = builder.Where(sq.Eq{"action": string(*filter.Action)})
	}
	if filter.Target != nil {
		builder = builder.Where(sq.Eq{"target": *filter.Target})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "action_token", "list")
	}
	defer rows.Close()

	return scanTokens(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new action token and returns the persisted row.
// Returns domain.ErrAlreadyExists on a URL collision.
func (r *Repo) Create(ctx context.Context, token *domain.ActionToken) (*domain.ActionToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		token.URL,
		string(token.Action),
		token.Target,
		token.ExpiresAt,
		token.UseLimit,
	)

	created, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "action_token", token.URL)
	}

	return created, nil
}

// IncrementUse records one redemption and returns the updated token.
// Returns domain.ErrNotFound if the token does not exist.
func (r *Repo) IncrementUse(ctx context.Context, url string) (*domain.ActionToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	token, err := scanToken(querier.QueryRow(ctx, incrementUseSQL, url))
	if err != nil {
		return nil, postgres.MapError(err, "action_token", url)
	}

	return token, nil
}

// Delete removes a token. Idempotent: deleting a missing token is not an error.
func (r *Repo) Delete(ctx context.Context, url string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSQL, url); err != nil {
		return postgres.MapError(err, "action_token", url)
	}

	return nil
}

// DeleteExhausted removes every token whose use limit is reached or whose
// expiry is before now. Returns the count of deleted tokens.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExhausted(ctx context.Context, now time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteExhaustedSQL, now)
	if err != nil {
		return 0, postgres.MapError(err, "action_token", "exhausted")
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanToken scans a single token row from pgx.Row.
func scanToken(row pgx.Row) (*domain.ActionToken, error) {
	var (
		t      domain.ActionToken
		action string
	)

	err := row.Scan(
		&t.URL,
		&action,
		&t.Target,
		&t.ExpiresAt,
		&t.UseLimit,
		&t.UseCount,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Action = domain.Action(action)
	return &t, nil
}

// scanTokens scans multiple token rows from pgx.Rows.
func scanTokens(rows pgx.Rows) ([]*domain.ActionToken, error) {
	var tokens []*domain.ActionToken
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if tokens == nil {
		tokens = []*domain.ActionToken{}
	}

	return tokens, nil
}
