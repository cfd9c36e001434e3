// Package mongostore keeps the AI call log in a MongoDB collection.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/heartmarshall/tripnarrator/internal/adapter/docstore"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Config holds connection settings.
type Config struct {
	URI        string
	Database   string
	Collection string
	Username   string
	Password   string
	Timeout    time.Duration
}

// Store implements docstore.Store.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ docstore.Store = (*Store)(nil)

type callDocument struct {
	TripID    string    `bson:"trip_id"`
	Kind      string    `bson:"kind"`
	Prompt    string    `bson:"prompt"`
	Model     string    `bson:"model,omitempty"`
	Response  string    `bson:"response,omitempty"`
	Error     string    `bson:"error,omitempty"`
	LatencyMs int64     `bson:"latency_ms"`
	CreatedAt time.Time `bson:"created_at"`
}

// Connect dials MongoDB, pings the primary and makes sure the
// (trip_id, created_at) index exists.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	opts := options.Client().ApplyURI(cfg.URI).SetTimeout(cfg.Timeout)
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{Username: cfg.Username, Password: cfg.Password})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongostore: ping: %w", err)
	}

	s := New(client, client.Database(cfg.Database).Collection(cfg.Collection))

	_, err = s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "trip_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongostore: create index: %w", err)
	}

	return s, nil
}

// New wraps an existing collection. client may be nil, in which case
// Close is a no-op.
func New(client *mongo.Client, coll *mongo.Collection) *Store {
	return &Store{client: client, coll: coll}
}

// Append inserts one record.
func (s *Store) Append(ctx context.Context, rec domain.AICallRecord) error {
	if _, err := s.coll.InsertOne(ctx, toDocument(rec)); err != nil {
		return fmt.Errorf("mongostore: append %s: %w", rec.Kind, err)
	}
	return nil
}

// ListByTrip returns the trip's records, oldest first.
func (s *Store) ListByTrip(ctx context.Context, tripID uuid.UUID, limit int) ([]domain.AICallRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(docstore.NormalizeLimit(limit)))

	cur, err := s.coll.Find(ctx, bson.M{"trip_id": tripID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: find %s: %w", tripID, err)
	}

	var docs []callDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode %s: %w", tripID, err)
	}

	records := make([]domain.AICallRecord, 0, len(docs))
	for _, d := range docs {
		rec, err := fromDocument(d)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Ping checks the primary. Without a client it reports nothing.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func toDocument(rec domain.AICallRecord) callDocument {
	return callDocument{
		TripID:    rec.TripID.String(),
		Kind:      rec.Kind.String(),
		Prompt:    rec.Prompt,
		Model:     rec.Model,
		Response:  rec.Response,
		Error:     rec.Error,
		LatencyMs: rec.LatencyMs,
		CreatedAt: rec.CreatedAt.UTC(),
	}
}

func fromDocument(d callDocument) (domain.AICallRecord, error) {
	tripID, err := uuid.Parse(d.TripID)
	if err != nil {
		return domain.AICallRecord{}, fmt.Errorf("mongostore: bad trip_id %q: %w", d.TripID, err)
	}
	return domain.AICallRecord{
		TripID:    tripID,
		Kind:      domain.AICallKind(d.Kind),
		Prompt:    d.Prompt,
		Model:     d.Model,
		Response:  d.Response,
		Error:     d.Error,
		LatencyMs: d.LatencyMs,
		CreatedAt: d.CreatedAt.UTC(),
	}, nil
}
