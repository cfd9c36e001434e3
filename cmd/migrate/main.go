// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/tripnarrator/migrations"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
		}
		fmt.Printf("%d migrations applied.\n", len(results))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		if r != nil {
			fmt.Printf("rolled back %s\n", r.Source.Path)
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %s\n", s.State, s.Source.Path)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q, want up, down or status\n", command)
		os.Exit(2)
	}
}
