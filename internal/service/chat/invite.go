package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/classline/backend/internal/domain"
	"github.com/classline/backend/internal/service/token"
)

// Invite issues a join-chat token for the conversation, valid for the
// configured invite TTL with unlimited uses. The caller delivers the URL.
func (s *Service) Invite(ctx context.Context, conversationID int64) (*domain.ActionToken, error) {
	if _, err := s.conversations.GetByID(ctx, conversationID); err != nil {
		return nil, fmt.Errorf("chat.Invite: %w", err)
	}

	expiresAt := time.Now().Add(s.inviteTTL)
	invite, err := s.registry.Issue(ctx, token.IssueInput{
		Action:    domain.ActionJoinChat,
		Target:    conversationID,
		ExpiresAt: &expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("chat.Invite: %w", err)
	}

	return invite, nil
}

// JoinViaToken redeems a join-chat token and adds the account to the target
// conversation. Redemption errors (domain.ErrTokenNotFound,
// domain.ErrTokenExpired, domain.ErrTokenOverused) pass through.
func (s *Service) JoinViaToken(ctx context.Context, url string, accountID int64) (*domain.Conversation, error) {
	redeemed, err := s.registry.Redeem(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("chat.JoinViaToken: %w", err)
	}

	if redeemed.Action != domain.ActionJoinChat {
		return nil, fmt.Errorf("%w: token action %s cannot join a chat",
			domain.ErrValidation, redeemed.Action)
	}

	conv, err := s.conversations.GetByID(ctx, redeemed.Target)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Token outlived its conversation.
			return nil, fmt.Errorf("chat.JoinViaToken conversation %d: %w",
				redeemed.Target, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("chat.JoinViaToken: %w", err)
	}

	if err := s.conversations.AddMember(ctx, conv.ID, accountID, false); err != nil {
		return nil, fmt.Errorf("chat.JoinViaToken add member: %w", err)
	}

	s.log.InfoContext(ctx, "account joined conversation via token",
		slog.Int64("conversation_id", conv.ID),
		slog.Int64("account_id", accountID))

	return conv, nil
}
