// Package conversation implements the Conversation and membership
// repositories using PostgreSQL. The message bodies live in the file-backed
// conversation log; this package only owns the relational side: the
// conversation row, conversation membership, and group membership (the
// join-group redemption target).
package conversation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/classline/backend/internal/adapter/postgres"
	"github.com/classline/backend/internal/domain"
)

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const conversationColumns = `id, name, created_at`

const createSQL = `
INSERT INTO conversations (name, created_at)
VALUES ($1, now())
RETURNING ` + conversationColumns

const getByIDSQL = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE id = $1`

const deleteSQL = `
DELETE FROM conversations
WHERE id = $1`

const addMemberSQL = `
INSERT INTO conversation_members (conversation_id, account_id, admin)
VALUES ($1, $2, $3)
ON CONFLICT (conversation_id, account_id) DO NOTHING`

const removeMemberSQL = `
DELETE FROM conversation_members
WHERE conversation_id = $1 AND account_id = $2`

const isMemberSQL = `
SELECT EXISTS (
	SELECT 1 FROM conversation_members
	WHERE conversation_id = $1 AND account_id = $2
)`

const listMembersSQL = `
SELECT conversation_id, account_id, admin
FROM conversation_members
WHERE conversation_id = $1
ORDER BY account_id`

const addGroupMemberSQL = `
INSERT INTO group_members (group_id, account_id)
VALUES ($1, $2)
ON CONFLICT (group_id, account_id) DO NOTHING`

// ---------------------------------------------------------------------------
// Conversations
// ---------------------------------------------------------------------------

// Create inserts a new conversation row and returns it.
func (r *Repo) Create(ctx context.Context, name *string) (*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	conv, err := scanConversation(querier.QueryRow(ctx, createSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "conversation", "new")
	}

	return conv, nil
}

// GetByID returns a conversation by primary key.
// Returns domain.ErrNotFound if the conversation does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	conv, err := scanConversation(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "conversation", id)
	}

	return conv, nil
}

// Delete removes the conversation row. Membership rows cascade.
// Returns domain.ErrNotFound if the conversation does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "conversation", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("conversation %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Conversation membership
// ---------------------------------------------------------------------------

// AddMember inserts a membership row. Idempotent.
func (r *Repo) AddMember(ctx context.Context, conversationID, accountID int64, admin bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, addMemberSQL, conversationID, accountID, admin); err != nil {
		return postgres.MapError(err, "conversation_member", conversationID)
	}

	return nil
}

// RemoveMember deletes a membership row. Idempotent.
func (r *Repo) RemoveMember(ctx context.Context, conversationID, accountID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, removeMemberSQL, conversationID, accountID); err != nil {
		return postgres.MapError(err, "conversation_member", conversationID)
	}

	return nil
}

// IsMember reports whether the account is currently a member of the
// conversation. This is the capability check consumed by log append.
func (r *Repo) IsMember(ctx context.Context, conversationID, accountID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var member bool
	if err := querier.QueryRow(ctx, isMemberSQL, conversationID, accountID).Scan(&member); err != nil {
		return false, postgres.MapError(err, "conversation_member", conversationID)
	}

	return member, nil
}

// ListMembers returns all membership rows of a conversation.
func (r *Repo) ListMembers(ctx context.Context, conversationID int64) ([]domain.Member, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMembersSQL, conversationID)
	if err != nil {
		return nil, postgres.MapError(err, "conversation_member", conversationID)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ConversationID, &m.AccountID, &m.Admin); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if members == nil {
		members = []domain.Member{}
	}

	return members, nil
}

// ---------------------------------------------------------------------------
// Group membership
// ---------------------------------------------------------------------------

// AddGroupMember inserts a group membership row. Idempotent.
// Used by join-group token redemption.
func (r *Repo) AddGroupMember(ctx context.Context, groupID, accountID int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, addGroupMemberSQL, groupID, accountID); err != nil {
		return postgres.MapError(err, "group_member", groupID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanConversation scans a single conversation row from pgx.Row.
func scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
