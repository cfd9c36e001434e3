// Package location implements the reverse-geocoding cache using PostgreSQL.
// Rows are keyed by coordinates already rounded by the caller.
package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides geocode cache persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new location repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const columns = `id, lat, lon, address, city, state, country, postal_code, source, created_at`

// Get returns the cached location for the rounded coordinate.
// Returns domain.ErrNotFound on a cache miss.
func (r *Repo) Get(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		l      domain.Location
		source string
	)
	err := q.QueryRow(ctx,
		`SELECT `+columns+` FROM locations WHERE lat = $1 AND lon = $2`,
		lat, lon,
	).Scan(&l.ID, &l.Lat, &l.Lon, &l.Address, &l.City, &l.State, &l.Country, &l.PostalCode, &source, &l.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "location", [2]float64{lat, lon})
	}
	l.Source = domain.GeocodingSource(source)
	return &l, nil
}

// Upsert stores a geocoding result. A concurrent insert of the same
// coordinate keeps the first address.
func (r *Repo) Upsert(ctx context.Context, l *domain.Location) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	_, err := q.Exec(ctx,
		`INSERT INTO locations (`+columns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (lat, lon) DO NOTHING`,
		l.ID, l.Lat, l.Lon, l.Address, l.City, l.State, l.Country, l.PostalCode, string(l.Source), l.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "location", l.ID)
	}
	return nil
}
