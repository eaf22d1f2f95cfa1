// Package sweeper implements the background expiry sweep: a fixed-interval
// loop that deletes exhausted or expired action tokens and unconfirmed
// accounts older than the grace window.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// tokenStore is the token deletion interface needed by the sweeper.
type tokenStore interface {
	DeleteExhausted(ctx context.Context, now time.Time) (int, error)
}

// accountStore is the account deletion interface needed by the sweeper.
type accountStore interface {
	DeleteStaleUnconfirmed(ctx context.Context, before time.Time) (int, error)
}

// Sweeper periodically deletes expired data. It holds no locks across a
// sweep: each deletion is a single independently committed statement, so a
// long sweep never blocks unrelated operations.
type Sweeper struct {
	log      *slog.Logger
	tokens   tokenStore
	accounts accountStore
	interval time.Duration
	grace    time.Duration
}

// New creates a sweeper. interval is the wall-clock period between sweeps;
// grace is how long an unconfirmed account may exist before deletion.
func New(logger *slog.Logger, tokens tokenStore, accounts accountStore, interval, grace time.Duration) *Sweeper {
	return &Sweeper{
		log:      logger.With("component", "sweeper"),
		tokens:   tokens,
		accounts: accounts,
		interval: interval,
		grace:    grace,
	}
}

// Run blocks, sweeping once per interval until ctx is cancelled. A failed
// sweep is logged and swallowed; the next tick still fires. Deletions
// already committed by a failed sweep stay deleted.
func (s *Sweeper) Run(ctx context.Context) error {
	s.log.Info("sweeper started",
		slog.Duration("interval", s.interval),
		slog.Duration("unconfirmed_grace", s.grace))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("sweeper stopped")
			return nil
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep performs one pass. Errors are logged, not returned to the loop;
// both scans always run so a token-side failure does not starve the
// account-side cleanup.
func (s *Sweeper) Sweep(ctx context.Context) {
	log := s.log.With(slog.String("run_id", uuid.NewString()))
	log.Debug("sweep started")

	now := time.Now()

	tokensDeleted, err := s.tokens.DeleteExhausted(ctx, now)
	if err != nil {
		log.Error("sweep tokens failed", slog.String("error", err.Error()))
	}

	accountsDeleted, err := s.accounts.DeleteStaleUnconfirmed(ctx, now.Add(-s.grace))
	if err != nil {
		log.Error("sweep unconfirmed accounts failed", slog.String("error", err.Error()))
	}

	log.Info("sweep finished",
		slog.Int("tokens_deleted", tokensDeleted),
		slog.Int("accounts_deleted", accountsDeleted))
}
