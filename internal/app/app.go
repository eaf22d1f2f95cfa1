// Package app wires the subsystem together: configuration, logging, the
// database pool, the conversation log store, repositories, services, and the
// background sweeper, with graceful shutdown on SIGINT/SIGTERM.
package app

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/classline/backend/internal/adapter/postgres"
	accountrepo "github.com/classline/backend/internal/adapter/postgres/account"
	"github.com/classline/backend/internal/adapter/postgres/actiontoken"
	conversationrepo "github.com/classline/backend/internal/adapter/postgres/conversation"
	"github.com/classline/backend/internal/chatlog"
	"github.com/classline/backend/internal/config"
	accountsvc "github.com/classline/backend/internal/service/account"
	chatsvc "github.com/classline/backend/internal/service/chat"
	credentialsvc "github.com/classline/backend/internal/service/credential"
	tokensvc "github.com/classline/backend/internal/service/token"
	"github.com/classline/backend/internal/sweeper"
)

// Services bundles the constructed service layer for the transport layer
// (or tests) to consume.
type Services struct {
	Accounts    *accountsvc.Service
	Credentials *credentialsvc.Service
	Tokens      *tokensvc.Service
	Chats       *chatsvc.Service
}

// BuildServices constructs repositories and services on top of an existing
// pool and conversation log store.
func BuildServices(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, logs *chatlog.Store) *Services {
	accounts := accountrepo.New(pool)
	tokens := actiontoken.New(pool)
	conversations := conversationrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	credentials := credentialsvc.NewService(logger, accounts)
	registry := tokensvc.NewService(logger, tokens, tx)
	chats := chatsvc.NewService(logger, conversations, logs, registry, tx, cfg.Auth.JoinLinkTTL)
	accountService := accountsvc.NewService(logger, accounts, conversations, registry, credentials, tx, cfg.Auth)

	return &Services{
		Accounts:    accountService,
		Credentials: credentials,
		Tokens:      registry,
		Chats:       chats,
	}
}

// ServeFunc is the surrounding platform's entry point: it receives the
// constructed service bundle and blocks until the context is cancelled.
// The transport layer (HTTP, RPC) lives on the platform side.
type ServeFunc func(ctx context.Context, services *Services) error

// Run is the application entry point. It prepares the database, the
// conversation log store and the service bundle, hands the bundle to serve
// (when non-nil), starts the sweeper, and blocks until the context is
// cancelled or a shutdown signal arrives.
func Run(ctx context.Context, serve ServeFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	logs, err := chatlog.NewStore(cfg.Chat.LogDir)
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)

	if serve != nil {
		services := BuildServices(logger, cfg, pool, logs)
		group.Go(func() error { return serve(ctx, services) })
	}

	if cfg.Sweeper.Enabled {
		sw := sweeper.New(logger, actiontoken.New(pool), accountrepo.New(pool),
			cfg.Sweeper.Interval, cfg.Sweeper.UnconfirmedGrace)
		group.Go(func() error { return sw.Run(ctx) })
	}

	logger.Info("application started")

	return group.Wait()
}
