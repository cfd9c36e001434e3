// Package verbalization implements persistence for generated trip narratives.
package verbalization

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides verbalized trip persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new verbalization repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, trip_id, narrative, start_address, end_address, model, processing_time_ms, generated_at`

// Create stores a narrative.
func (r *Repo) Create(ctx context.Context, v *domain.VerbalizedTrip) (*domain.VerbalizedTrip, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO verbalized_trips (`+columns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+columns,
		v.ID, v.TripID, v.Narrative, v.StartAddress, v.EndAddress, v.Model, v.ProcessingTimeMs, v.GeneratedAt,
	)

	created, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "verbalized_trip", v.ID)
	}
	return created, nil
}

// GetByID returns a narrative by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VerbalizedTrip, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	v, err := scan(q.QueryRow(ctx, `SELECT `+columns+` FROM verbalized_trips WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "verbalized_trip", id)
	}
	return v, nil
}

// Latest returns the most recent narrative for a trip.
func (r *Repo) Latest(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	v, err := scan(q.QueryRow(ctx,
		`SELECT `+columns+` FROM verbalized_trips
		 WHERE trip_id = $1
		 ORDER BY generated_at DESC, id DESC
		 LIMIT 1`,
		tripID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "verbalized_trip", tripID)
	}
	return v, nil
}

func scan(row pgx.Row) (*domain.VerbalizedTrip, error) {
	var v domain.VerbalizedTrip
	if err := row.Scan(&v.ID, &v.TripID, &v.Narrative, &v.StartAddress, &v.EndAddress,
		&v.Model, &v.ProcessingTimeMs, &v.GeneratedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
