package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/classline/backend/internal/domain"
	"github.com/classline/backend/internal/service/token"
)

// RegisterResult is what a successful registration produces: the created
// (unconfirmed) account and the verify-email token whose URL the caller
// mails to the user.
type RegisterResult struct {
	Account     *domain.Account
	VerifyToken *domain.ActionToken
}

// Register creates a new unconfirmed account and issues a single-use,
// one-hour verify-email token for it. The account starts with an empty
// signature, so no credential is valid until the first sign-in.
// Returns domain.ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	// Account and verify-email token are created in one transaction: an
	// unconfirmed account without its verification token is unreachable and
	// would just wait for the sweeper.
	var result RegisterResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.accounts.Create(txCtx, &domain.Account{
			Role:         input.Role,
			Email:        input.Email,
			PasswordHash: string(hash),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		expiresAt := s.verifyEmailExpiry(time.Now())
		useLimit := 1
		verify, err := s.registry.Issue(txCtx, token.IssueInput{
			Action:    domain.ActionVerifyEmail,
			Target:    created.ID,
			ExpiresAt: &expiresAt,
			UseLimit:  &useLimit,
		})
		if err != nil {
			return fmt.Errorf("issue verify-email token: %w", err)
		}

		result = RegisterResult{Account: created, VerifyToken: verify}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("account.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.Int64("account_id", result.Account.ID),
		slog.String("role", result.Account.Role.String()))

	return &result, nil
}
