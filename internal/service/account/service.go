// Package account implements account workflows around the credential and
// token subsystems: registration, password sign-in, email verification and
// group joining.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/classline/backend/internal/config"
	"github.com/classline/backend/internal/domain"
	"github.com/classline/backend/internal/service/token"
)

// accountRepo defines the account repository interface needed by the account
// service.
type accountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Confirm(ctx context.Context, id int64) error
}

// groupRepo defines the group membership interface needed for join-group
// redemption.
type groupRepo interface {
	AddGroupMember(ctx context.Context, groupID, accountID int64) error
}

// tokenRegistry defines the token registry interface needed by the account
// service.
type tokenRegistry interface {
	Issue(ctx context.Context, input token.IssueInput) (*domain.ActionToken, error)
	Redeem(ctx context.Context, url string) (*domain.ActionToken, error)
}

// credentialStore defines the signature store interface needed by the
// account service.
type credentialStore interface {
	Issue(ctx context.Context, accountID int64) (string, error)
}

// txManager defines the transaction manager interface needed by the account
// service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account workflows.
type Service struct {
	log         *slog.Logger
	accounts    accountRepo
	groups      groupRepo
	registry    tokenRegistry
	credentials credentialStore
	tx          txManager
	cfg         config.AuthConfig
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	groups groupRepo,
	registry tokenRegistry,
	credentials credentialStore,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "account"),
		accounts:    accounts,
		groups:      groups,
		registry:    registry,
		credentials: credentials,
		tx:          tx,
		cfg:         cfg,
	}
}

// verifyEmailExpiry returns the expiry for a fresh verify-email token.
func (s *Service) verifyEmailExpiry(now time.Time) time.Time {
	return now.Add(s.cfg.VerifyEmailTTL)
}
