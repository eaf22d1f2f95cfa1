// Package credential implements the signature store: issuing and verifying
// the "{accountId}.{signature}" session credential.
package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/classline/backend/internal/auth"
	"github.com/classline/backend/internal/domain"
)

// accountRepo defines the account repository interface needed by the
// signature store.
type accountRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	UpdateSignature(ctx context.Context, id int64, signature string) error
}

// Service issues and verifies session credentials.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
}

// NewService creates a new credential service instance.
func NewService(logger *slog.Logger, accounts accountRepo) *Service {
	return &Service{
		log:      logger.With("service", "credential"),
		accounts: accounts,
	}
}

// Issue generates a fresh random signature, persists it as the account's
// current signature, and returns the credential string. Persisting happens
// before the credential is returned, so the returned string is immediately
// verifiable — and every credential issued earlier is immediately invalid.
//
// Callers rotate at their discretion: sign-in always issues, and privileged
// operations may call Issue again after a successful Verify for
// sliding-session semantics.
func (s *Service) Issue(ctx context.Context, accountID int64) (string, error) {
	signature, err := auth.NewSignature()
	if err != nil {
		return "", fmt.Errorf("credential.Issue: %w", err)
	}

	if err := s.accounts.UpdateSignature(ctx, accountID, signature); err != nil {
		return "", fmt.Errorf("credential.Issue account %d: %w", accountID, err)
	}

	s.log.DebugContext(ctx, "credential issued", slog.Int64("account_id", accountID))

	return auth.FormatCredential(accountID, signature), nil
}

// Verify parses and checks a credential string, returning the account it
// belongs to. It never rotates the signature.
//
// Returns domain.ErrMalformedCredential if the string does not have the
// "{integer}.{hex}" shape, and domain.ErrInvalidSignature if the account
// does not exist or its stored signature differs from the presented one.
// Both mean "treat as unauthenticated".
func (s *Service) Verify(ctx context.Context, credential string) (*domain.Account, error) {
	accountID, signature, err := auth.ParseCredential(credential)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidSignature
		}
		return nil, fmt.Errorf("credential.Verify account %d: %w", accountID, err)
	}

	// An empty stored signature is the never-valid initial state.
	if account.Signature == "" || account.Signature != signature {
		return nil, domain.ErrInvalidSignature
	}

	return account, nil
}
