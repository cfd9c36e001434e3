// Command seed-admin creates the bootstrap admin account from ADMIN_EMAIL,
// ADMIN_USERNAME and ADMIN_PASSWORD, or promotes an existing user with
// that email. Safe to run on every deploy.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/user"
	"github.com/heartmarshall/tripnarrator/internal/app"
	"github.com/heartmarshall/tripnarrator/internal/config"
	"github.com/heartmarshall/tripnarrator/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	gate, err := access.NewGate()
	if err != nil {
		logger.Error("load access policy", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := user.NewService(logger, userrepo.New(pool), auditrepo.New(pool),
		postgres.NewTxManager(pool), gate, cfg.Auth.PasswordHashCost)

	changed, err := svc.EnsureAdmin(ctx, user.BootstrapAdminInput{
		Email:    cfg.Admin.Email,
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	})
	if err != nil {
		logger.Error("seed admin failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed admin finished",
		slog.String("email", cfg.Admin.Email),
		slog.Bool("changed", changed))
}
