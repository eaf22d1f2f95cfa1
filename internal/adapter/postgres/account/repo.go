// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/classline/backend/internal/adapter/postgres"
	"github.com/classline/backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const accountColumns = `id, role, email, password_hash, first_name, last_name, confirmed, signature, created_at, updated_at`

const createSQL = `
INSERT INTO accounts (role, email, password_hash, first_name, last_name, confirmed, signature, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, false, '', now(), now())
RETURNING ` + accountColumns

const getByIDSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE email = $1`

const updateSignatureSQL = `
UPDATE accounts
SET signature = $2, updated_at = now()
WHERE id = $1`

const confirmSQL = `
UPDATE accounts
SET confirmed = true, updated_at = now()
WHERE id = $1`

const deleteSQL = `
DELETE FROM accounts
WHERE id = $1`

const deleteStaleUnconfirmedSQL = `
DELETE FROM accounts
WHERE NOT confirmed AND created_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an account by primary key.
// Returns domain.ErrNotFound if the account does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	account, err := scanAccount(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	return account, nil
}

// GetByEmail returns an account by its unique email.
// Returns domain.ErrNotFound if no account has this email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	account, err := scanAccount(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "account", email)
	}

	return account, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new unconfirmed account with an empty (never-valid)
// signature and returns the persisted row.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		string(account.Role),
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
	)

	created, err := scanAccount(row)
	if err != nil {
		return nil, postgres.MapError(err, "account", account.Email)
	}

	return created, nil
}

// UpdateSignature replaces the account's current session signature.
// Returns domain.ErrNotFound if the account does not exist.
func (r *Repo) UpdateSignature(ctx context.Context, id int64, signature string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateSignatureSQL, id, signature)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Confirm marks the account's email as verified.
// Returns domain.ErrNotFound if the account does not exist.
func (r *Repo) Confirm(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, confirmSQL, id)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an account. Membership rows cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteStaleUnconfirmed removes all unconfirmed accounts created before the
// cutoff. Returns the count of deleted accounts.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteStaleUnconfirmed(ctx context.Context, before time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteStaleUnconfirmedSQL, before)
	if err != nil {
		return 0, postgres.MapError(err, "account", "unconfirmed")
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanAccount scans a single account row from pgx.Row.
func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a    domain.Account
		role string
	)

	err := row.Scan(
		&a.ID,
		&role,
		&a.Email,
		&a.PasswordHash,
		&a.FirstName,
		&a.LastName,
		&a.Confirmed,
		&a.Signature,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Role = domain.Role(role)
	return &a, nil
}
