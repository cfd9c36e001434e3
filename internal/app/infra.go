package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripnarrator/internal/adapter/docstore"
	"github.com/heartmarshall/tripnarrator/internal/adapter/docstore/mongostore"
	"github.com/heartmarshall/tripnarrator/internal/adapter/docstore/surrealstore"
	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/config"
)

// Infra holds the process-wide connections.
type Infra struct {
	Pool *pgxpool.Pool
	Docs docstore.Store
}

// OpenInfra connects to Postgres and the configured document store.
func OpenInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)))

	docs, err := OpenDocStore(ctx, cfg.DocStore)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("app: %w", err)
	}
	logger.Info("document store connected",
		slog.String("backend", cfg.DocStore.Backend),
		slog.String("database", cfg.DocStore.Database))

	return &Infra{Pool: pool, Docs: docs}, nil
}

// Close releases every connection. Errors are logged, not returned.
func (i *Infra) Close(ctx context.Context, logger *slog.Logger) {
	if err := i.Docs.Close(ctx); err != nil {
		logger.Warn("close document store", slog.String("error", err.Error()))
	}
	i.Pool.Close()
}

// OpenDocStore dials the AI call log backend named by cfg.Backend.
func OpenDocStore(ctx context.Context, cfg config.DocStoreConfig) (docstore.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	switch cfg.Backend {
	case config.DocStoreMongo:
		return mongostore.Connect(ctx, mongostore.Config{
			URI:        cfg.URL,
			Database:   cfg.Database,
			Collection: cfg.Collection,
			Username:   cfg.Username,
			Password:   cfg.Password,
			Timeout:    cfg.Timeout,
		})
	case config.DocStoreSurreal:
		return surrealstore.Connect(ctx, surrealstore.Config{
			URL:       cfg.URL,
			Namespace: cfg.Namespace,
			Database:  cfg.Database,
			Table:     cfg.Collection,
			Username:  cfg.Username,
			Password:  cfg.Password,
		})
	default:
		return nil, fmt.Errorf("unknown docstore backend %q", cfg.Backend)
	}
}
