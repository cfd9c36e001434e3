// Package surrealstore keeps the AI call log in a SurrealDB table.
package surrealstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/heartmarshall/tripnarrator/internal/adapter/docstore"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Config holds connection settings.
type Config struct {
	URL       string
	Namespace string
	Database  string
	Table     string
	Username  string
	Password  string
}

// Store implements docstore.Store.
type Store struct {
	db    *surrealdb.DB
	table string
}

var _ docstore.Store = (*Store)(nil)

type callRecord struct {
	ID        *models.RecordID      `json:"id,omitempty"`
	TripID    string                `json:"trip_id"`
	Kind      string                `json:"kind"`
	Prompt    string                `json:"prompt"`
	Model     string                `json:"model,omitempty"`
	Response  string                `json:"response,omitempty"`
	Error     string                `json:"error,omitempty"`
	LatencyMs int64                 `json:"latency_ms"`
	CreatedAt models.CustomDateTime `json:"created_at"`
}

// Connect opens a connection, signs in when credentials are set and
// selects the namespace and database.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("surrealstore: connect: %w", err)
	}

	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
		}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("surrealstore: sign in: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("surrealstore: use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	return New(db, cfg.Table), nil
}

// New wraps an open connection.
func New(db *surrealdb.DB, table string) *Store {
	return &Store{db: db, table: table}
}

// Append creates one record with a generated id.
func (s *Store) Append(ctx context.Context, rec domain.AICallRecord) error {
	_, err := surrealdb.Query[[]callRecord](ctx, s.db,
		`CREATE type::table($tb) CONTENT $content`,
		map[string]any{
			"tb":      s.table,
			"content": toRecord(rec),
		})
	if err != nil {
		return fmt.Errorf("surrealstore: append %s: %w", rec.Kind, err)
	}
	return nil
}

// ListByTrip returns the trip's records, oldest first.
func (s *Store) ListByTrip(ctx context.Context, tripID uuid.UUID, limit int) ([]domain.AICallRecord, error) {
	res, err := surrealdb.Query[[]callRecord](ctx, s.db,
		`SELECT * FROM type::table($tb) WHERE trip_id = $trip ORDER BY created_at ASC LIMIT $limit`,
		map[string]any{
			"tb":    s.table,
			"trip":  tripID.String(),
			"limit": docstore.NormalizeLimit(limit),
		})
	if err != nil {
		return nil, fmt.Errorf("surrealstore: select %s: %w", tripID, err)
	}

	records := make([]domain.AICallRecord, 0)
	if res == nil || len(*res) == 0 {
		return records, nil
	}

	for _, r := range (*res)[0].Result {
		rec, err := fromRecord(r)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Ping runs a trivial query.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := surrealdb.Query[bool](ctx, s.db, `RETURN true`, nil); err != nil {
		return fmt.Errorf("surrealstore: ping: %w", err)
	}
	return nil
}

// Close closes the connection.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}

func toRecord(rec domain.AICallRecord) callRecord {
	return callRecord{
		TripID:    rec.TripID.String(),
		Kind:      rec.Kind.String(),
		Prompt:    rec.Prompt,
		Model:     rec.Model,
		Response:  rec.Response,
		Error:     rec.Error,
		LatencyMs: rec.LatencyMs,
		CreatedAt: models.CustomDateTime{Time: rec.CreatedAt.UTC()},
	}
}

func fromRecord(r callRecord) (domain.AICallRecord, error) {
	tripID, err := uuid.Parse(r.TripID)
	if err != nil {
		return domain.AICallRecord{}, fmt.Errorf("surrealstore: bad trip_id %q: %w", r.TripID, err)
	}
	return domain.AICallRecord{
		TripID:    tripID,
		Kind:      domain.AICallKind(r.Kind),
		Prompt:    r.Prompt,
		Model:     r.Model,
		Response:  r.Response,
		Error:     r.Error,
		LatencyMs: r.LatencyMs,
		CreatedAt: r.CreatedAt.Time.UTC(),
	}, nil
}
