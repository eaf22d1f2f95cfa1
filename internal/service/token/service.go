// Package token implements the action token registry: issuing, redeeming and
// revoking single/limited/unlimited-use tokens bound to an action and target.
//
// The registry's contract ends at "this token is currently valid and one use
// of it has been recorded" — action-specific effects (marking an email
// verified, inserting a membership row) live in the calling workflows.
package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/classline/backend/internal/adapter/postgres/actiontoken"
	"github.com/classline/backend/internal/auth"
	"github.com/classline/backend/internal/domain"
)

// tokenRepo defines the token repository interface needed by the registry.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.ActionToken) (*domain.ActionToken, error)
	GetByURLForUpdate(ctx context.Context, url string) (*domain.ActionToken, error)
	FindActive(ctx context.Context, action domain.Action, target int64, now time.Time) (*domain.ActionToken, error)
	IncrementUse(ctx context.Context, url string) (*domain.ActionToken, error)
	Delete(ctx context.Context, url string) error
	List(ctx context.Context, filter actiontoken.Filter) ([]*domain.ActionToken, error)
}

// txManager defines the transaction manager interface needed by the registry.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the action token registry.
type Service struct {
	log    *slog.Logger
	tokens tokenRepo
	tx     txManager
}

// NewService creates a new token registry instance.
func NewService(logger *slog.Logger, tokens tokenRepo, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "token"),
		tokens: tokens,
		tx:     tx,
	}
}

// IssueInput describes a token to issue. Nil ExpiresAt means the token never
// time-expires; nil UseLimit means unlimited uses.
type IssueInput struct {
	Action    domain.Action
	Target    int64
	ExpiresAt *time.Time
	UseLimit  *int
}

// Validate checks the input fields.
func (in IssueInput) Validate() error {
	if !in.Action.IsValid() {
		return fmt.Errorf("%w: unknown action %q", domain.ErrValidation, string(in.Action))
	}
	if in.Target <= 0 {
		return fmt.Errorf("%w: target must be positive", domain.ErrValidation)
	}
	if in.UseLimit != nil && *in.UseLimit <= 0 {
		return fmt.Errorf("%w: use limit must be positive", domain.ErrValidation)
	}
	return nil
}

// Issue persists a new token with a fresh random URL and returns it.
//
// Join-group issuance is idempotent: if a still-redeemable join-group token
// already exists for the same target, it is returned unchanged instead of
// minting a duplicate.
func (s *Service) Issue(ctx context.Context, input IssueInput) (*domain.ActionToken, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Action == domain.ActionJoinGroup {
		existing, err := s.tokens.FindActive(ctx, input.Action, input.Target, time.Now())
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("token.Issue find active: %w", err)
		}
	}

	url, err := auth.NewTokenURL()
	if err != nil {
		return nil, fmt.Errorf("token.Issue: %w", err)
	}

	created, err := s.tokens.Create(ctx, &domain.ActionToken{
		URL:       url,
		Action:    input.Action,
		Target:    input.Target,
		ExpiresAt: input.ExpiresAt,
		UseLimit:  input.UseLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("token.Issue: %w", err)
	}

	s.log.InfoContext(ctx, "action token issued",
		slog.String("action", created.Action.String()),
		slog.Int64("target", created.Target))

	return created, nil
}

// Redeem consumes one use of the token identified by url and returns the
// updated token (the caller dispatches on its Action and Target).
//
// Failure taxonomy:
//   - domain.ErrTokenNotFound — no such token.
//   - domain.ErrTokenOverused — use limit already reached; the token is
//     deleted as a side effect.
//   - domain.ErrTokenExpired — expiry passed; the token is deleted as a
//     side effect.
//
// The whole check-and-increment runs in one transaction with a row lock on
// the token, so concurrent redemptions of the same token serialize and a
// single-use token can never be redeemed twice. The deletions above are
// committed even though the redemption fails.
func (s *Service) Redeem(ctx context.Context, url string) (*domain.ActionToken, error) {
	var (
		redeemed  *domain.ActionToken
		redeemErr error
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		token, err := s.tokens.GetByURLForUpdate(txCtx, url)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				redeemErr = domain.ErrTokenNotFound
				return nil
			}
			return fmt.Errorf("get token: %w", err)
		}

		// Expired/overused tokens are not retained: delete inside this
		// transaction (committed), then surface the typed error.
		if token.Exhausted() {
			if err := s.tokens.Delete(txCtx, url); err != nil {
				return fmt.Errorf("delete overused token: %w", err)
			}
			redeemErr = domain.ErrTokenOverused
			return nil
		}
		if token.Expired(time.Now()) {
			if err := s.tokens.Delete(txCtx, url); err != nil {
				return fmt.Errorf("delete expired token: %w", err)
			}
			redeemErr = domain.ErrTokenExpired
			return nil
		}

		redeemed, err = s.tokens.IncrementUse(txCtx, url)
		if err != nil {
			return fmt.Errorf("record token use: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("token.Redeem: %w", err)
	}

	if redeemErr != nil {
		s.log.InfoContext(ctx, "token redemption rejected", slog.String("reason", redeemErr.Error()))
		return nil, redeemErr
	}

	s.log.InfoContext(ctx, "action token redeemed",
		slog.String("action", redeemed.Action.String()),
		slog.Int64("target", redeemed.Target),
		slog.Int("use_count", redeemed.UseCount))

	return redeemed, nil
}

// Revoke deletes a token regardless of its state. Idempotent.
func (s *Service) Revoke(ctx context.Context, url string) error {
	if err := s.tokens.Delete(ctx, url); err != nil {
		return fmt.Errorf("token.Revoke: %w", err)
	}
	return nil
}

// RevokeFor deletes every token for the given action and target. Returns the
// count of revoked tokens.
func (s *Service) RevokeFor(ctx context.Context, action domain.Action, target int64) (int, error) {
	if !action.IsValid() {
		return 0, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, string(action))
	}

	tokens, err := s.tokens.List(ctx, actiontoken.Filter{Action: &action, Target: &target})
	if err != nil {
		return 0, fmt.Errorf("token.RevokeFor list: %w", err)
	}

	for _, t := range tokens {
		if err := s.tokens.Delete(ctx, t.URL); err != nil {
			return 0, fmt.Errorf("token.RevokeFor delete: %w", err)
		}
	}

	return len(tokens), nil
}
