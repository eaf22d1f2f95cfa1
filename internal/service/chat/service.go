// Package chat implements conversation log operations: creating and
// destroying conversations, appending and reading messages, and joining a
// conversation through an invite token.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/classline/backend/internal/chatlog"
	"github.com/classline/backend/internal/domain"
	"github.com/classline/backend/internal/service/token"
)

// conversationRepo defines the conversation repository interface needed by
// the chat service.
type conversationRepo interface {
	Create(ctx context.Context, name *string) (*domain.Conversation, error)
	GetByID(ctx context.Context, id int64) (*domain.Conversation, error)
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, conversationID, accountID int64, admin bool) error
	RemoveMember(ctx context.Context, conversationID, accountID int64) error
	IsMember(ctx context.Context, conversationID, accountID int64) (bool, error)
	ListMembers(ctx context.Context, conversationID int64) ([]domain.Member, error)
}

// tokenRegistry defines the token registry interface needed by the chat
// service.
type tokenRegistry interface {
	Issue(ctx context.Context, input token.IssueInput) (*domain.ActionToken, error)
	Redeem(ctx context.Context, url string) (*domain.ActionToken, error)
}

// txManager defines the transaction manager interface needed by the chat
// service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements chat operations on top of the relational conversation
// rows and the file-backed append-only log.
type Service struct {
	log           *slog.Logger
	conversations conversationRepo
	logs          *chatlog.Store
	registry      tokenRegistry
	tx            txManager
	inviteTTL     time.Duration
}

// NewService creates a new chat service instance.
func NewService(
	logger *slog.Logger,
	conversations conversationRepo,
	logs *chatlog.Store,
	registry tokenRegistry,
	tx txManager,
	inviteTTL time.Duration,
) *Service {
	return &Service{
		log:           logger.With("service", "chat"),
		conversations: conversations,
		logs:          logs,
		registry:      registry,
		tx:            tx,
		inviteTTL:     inviteTTL,
	}
}

// Create creates a conversation: the relational row, membership rows for the
// initial members, and an empty backing log.
func (s *Service) Create(ctx context.Context, name *string, memberIDs []int64) (*domain.Conversation, error) {
	var created *domain.Conversation

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		conv, err := s.conversations.Create(txCtx, name)
		if err != nil {
			return fmt.Errorf("create conversation: %w", err)
		}

		for _, accountID := range memberIDs {
			if err := s.conversations.AddMember(txCtx, conv.ID, accountID, false); err != nil {
				return fmt.Errorf("add member %d: %w", accountID, err)
			}
		}

		created = conv
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("chat.Create: %w", err)
	}

	if err := s.logs.Create(created.ID); err != nil {
		// The row exists but the log could not be created; roll the row back
		// so the conversation id does not dangle.
		if delErr := s.conversations.Delete(ctx, created.ID); delErr != nil {
			s.log.ErrorContext(ctx, "orphaned conversation row after log create failure",
				slog.Int64("conversation_id", created.ID),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("chat.Create: %w", err)
	}

	s.log.InfoContext(ctx, "conversation created",
		slog.Int64("conversation_id", created.ID),
		slog.Int("members", len(memberIDs)))

	return created, nil
}

// Append verifies that the sender is currently a member and appends one
// message, returning it with its assigned id.
//
// Returns domain.ErrConversationLogNotFound if no log backs this id and
// domain.ErrSenderNotMember if the sender is not a member at append time.
func (s *Service) Append(ctx context.Context, conversationID, senderID int64, text string, mediaRefs []int64) (*domain.Message, error) {
	if !s.logs.Exists(conversationID) {
		return nil, fmt.Errorf("chat.Append conversation %d: %w", conversationID, domain.ErrConversationLogNotFound)
	}

	member, err := s.conversations.IsMember(ctx, conversationID, senderID)
	if err != nil {
		return nil, fmt.Errorf("chat.Append membership check: %w", err)
	}
	if !member {
		return nil, fmt.Errorf("chat.Append sender %d in conversation %d: %w",
			senderID, conversationID, domain.ErrSenderNotMember)
	}

	msg, err := s.logs.Append(conversationID, senderID, text, mediaRefs, time.Now())
	if err != nil {
		return nil, fmt.Errorf("chat.Append: %w", err)
	}

	return msg, nil
}

// Get returns one message by its id within the conversation.
func (s *Service) Get(ctx context.Context, conversationID, messageID int64) (*domain.Message, error) {
	msg, err := s.logs.Get(conversationID, messageID)
	if err != nil {
		return nil, fmt.Errorf("chat.Get: %w", err)
	}
	return msg, nil
}

// Iter opens a lazy forward-only scan over the conversation's messages in
// append order. The caller must Close the iterator.
func (s *Service) Iter(ctx context.Context, conversationID int64) (*chatlog.Iterator, error) {
	it, err := s.logs.Iter(conversationID)
	if err != nil {
		return nil, fmt.Errorf("chat.Iter: %w", err)
	}
	return it, nil
}

// RowCount returns the number of messages in the conversation.
func (s *Service) RowCount(ctx context.Context, conversationID int64) (int, error) {
	n, err := s.logs.RowCount(conversationID)
	if err != nil {
		return 0, fmt.Errorf("chat.RowCount: %w", err)
	}
	return n, nil
}

// Destroy irreversibly deletes the conversation: its log file, its row, and
// (by cascade) all membership rows.
func (s *Service) Destroy(ctx context.Context, conversationID int64) error {
	if !s.logs.Exists(conversationID) {
		return fmt.Errorf("chat.Destroy conversation %d: %w", conversationID, domain.ErrConversationLogNotFound)
	}

	if err := s.conversations.Delete(ctx, conversationID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("chat.Destroy: %w", err)
	}

	if err := s.logs.Destroy(conversationID); err != nil {
		return fmt.Errorf("chat.Destroy: %w", err)
	}

	s.log.InfoContext(ctx, "conversation destroyed", slog.Int64("conversation_id", conversationID))

	return nil
}
