// Command cleanup-tokens performs a single expiry sweep: it deletes expired
// and exhausted action tokens plus unconfirmed accounts older than the grace
// window. It is intended to be invoked by an external cron job as an
// alternative to the in-process sweeper.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/classline/backend/internal/adapter/postgres"
	accountrepo "github.com/classline/backend/internal/adapter/postgres/account"
	"github.com/classline/backend/internal/adapter/postgres/actiontoken"
	"github.com/classline/backend/internal/app"
	"github.com/classline/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	tokensDeleted, err := actiontoken.New(pool).DeleteExhausted(ctx, now)
	if err != nil {
		logger.Error("delete exhausted tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	before := now.Add(-cfg.Sweeper.UnconfirmedGrace)
	accountsDeleted, err := accountrepo.New(pool).DeleteStaleUnconfirmed(ctx, before)
	if err != nil {
		logger.Error("delete stale unconfirmed accounts",
			slog.String("error", err.Error()),
			slog.Time("before", before))
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int("tokens_deleted", tokensDeleted),
		slog.Int("accounts_deleted", accountsDeleted))
}
