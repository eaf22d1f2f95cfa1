package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/classline/backend/internal/domain"
)

// Authenticate checks an email + password pair and, on success, issues a
// fresh credential (signature rotation on every sign-in). Returns the
// account and the credential string.
// Returns domain.ErrUnauthorized if the email is unknown or the password is
// wrong — the two cases are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("account.Authenticate get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}

	credential, err := s.credentials.Issue(ctx, acc.ID)
	if err != nil {
		return nil, "", fmt.Errorf("account.Authenticate issue credential: %w", err)
	}

	s.log.InfoContext(ctx, "account signed in", slog.Int64("account_id", acc.ID))

	return acc, credential, nil
}
