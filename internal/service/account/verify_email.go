package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/classline/backend/internal/domain"
)

// VerifyEmail redeems a verify-email token and marks the target account as
// confirmed. Redemption errors (domain.ErrTokenNotFound,
// domain.ErrTokenExpired, domain.ErrTokenOverused) pass through.
func (s *Service) VerifyEmail(ctx context.Context, url string) error {
	redeemed, err := s.registry.Redeem(ctx, url)
	if err != nil {
		return fmt.Errorf("account.VerifyEmail: %w", err)
	}

	if redeemed.Action != domain.ActionVerifyEmail {
		return fmt.Errorf("%w: token action %s cannot verify an email",
			domain.ErrValidation, redeemed.Action)
	}

	if err := s.accounts.Confirm(ctx, redeemed.Target); err != nil {
		return fmt.Errorf("account.VerifyEmail confirm account %d: %w", redeemed.Target, err)
	}

	s.log.InfoContext(ctx, "email verified", slog.Int64("account_id", redeemed.Target))

	return nil
}
