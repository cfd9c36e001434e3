// Command promote sets a user's role by email address.
//
// Usage:
//
//	promote --email=user@example.com [--role=analyst]
//
// Reads the same configuration as the server (DATABASE_DSN etc.).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/user"
	"github.com/heartmarshall/tripnarrator/internal/app"
	"github.com/heartmarshall/tripnarrator/internal/config"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of the user to change")
	role := flag.String("role", "admin", "new role: user, analyst or admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=analyst]")
		os.Exit(1)
	}
	r, err := domain.ParseRole(*role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	gate, err := access.NewGate()
	if err != nil {
		log.Fatalf("load access policy: %v", err)
	}

	svc := user.NewService(logger, userrepo.New(pool), auditrepo.New(pool),
		postgres.NewTxManager(pool), gate, cfg.Auth.PasswordHashCost)

	u, err := svc.PromoteByEmail(ctx, *email, r)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("No user found with email %q.\n", *email)
			os.Exit(1)
		}
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q now has role %s.\n", u.Email, u.Role)
}
