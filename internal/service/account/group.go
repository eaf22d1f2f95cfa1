package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/classline/backend/internal/domain"
	"github.com/classline/backend/internal/service/token"
)

// InviteToGroup issues a join-group token for the group, valid for the
// configured join-link TTL with unlimited uses. Issuance is idempotent: a
// second call for the same group returns the existing un-expired token.
func (s *Service) InviteToGroup(ctx context.Context, groupID int64) (*domain.ActionToken, error) {
	expiresAt := time.Now().Add(s.cfg.JoinLinkTTL)
	invite, err := s.registry.Issue(ctx, token.IssueInput{
		Action:    domain.ActionJoinGroup,
		Target:    groupID,
		ExpiresAt: &expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("account.InviteToGroup: %w", err)
	}

	return invite, nil
}

// JoinGroup redeems a join-group token and adds the account to the target
// group. Redemption errors pass through.
func (s *Service) JoinGroup(ctx context.Context, url string, accountID int64) error {
	redeemed, err := s.registry.Redeem(ctx, url)
	if err != nil {
		return fmt.Errorf("account.JoinGroup: %w", err)
	}

	if redeemed.Action != domain.ActionJoinGroup {
		return fmt.Errorf("%w: token action %s cannot join a group",
			domain.ErrValidation, redeemed.Action)
	}

	if err := s.groups.AddGroupMember(ctx, redeemed.Target, accountID); err != nil {
		return fmt.Errorf("account.JoinGroup add member: %w", err)
	}

	s.log.InfoContext(ctx, "account joined group via token",
		slog.Int64("group_id", redeemed.Target),
		slog.Int64("account_id", accountID))

	return nil
}
