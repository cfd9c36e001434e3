// Package region implements the Region repository using PostgreSQL.
// Zone membership lives in the region_zones join table.
package region

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides region persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new region repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const regionSelect = `SELECT r.id, r.name, r.description, r.created_by, r.created_at, r.updated_at,
	COALESCE(array_agg(rz.zone_id ORDER BY rz.zone_id) FILTER (WHERE rz.zone_id IS NOT NULL), '{}')
	FROM regions r
	LEFT JOIN region_zones rz ON rz.region_id = r.id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a region and its zone memberships. Run it inside
// TxManager.RunInTx.
func (r *Repo) Create(ctx context.Context, reg *domain.Region) (*domain.Region, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO regions (id, name, description, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reg.ID, reg.Name, reg.Description, reg.CreatedBy, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "region", reg.ID)
	}

	if err := setZones(ctx, q, reg.ID, reg.ZoneIDs); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, reg.ID)
}

// Update replaces name, description and the full zone set.
// Run it inside TxManager.RunInTx.
func (r *Repo) Update(ctx context.Context, reg *domain.Region) (*domain.Region, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE regions SET name = $2, description = $3, updated_at = now() WHERE id = $1`,
		reg.ID, reg.Name, reg.Description,
	)
	if err != nil {
		return nil, postgres.MapError(err, "region", reg.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("region %s: %w", reg.ID, domain.ErrNotFound)
	}

	if _, err := q.Exec(ctx, `DELETE FROM region_zones WHERE region_id = $1`, reg.ID); err != nil {
		return nil, postgres.MapError(err, "region_zones", reg.ID)
	}
	if err := setZones(ctx, q, reg.ID, reg.ZoneIDs); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, reg.ID)
}

// Delete removes a region and its memberships.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM regions WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "region", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("region %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func setZones(ctx context.Context, q postgres.Querier, regionID uuid.UUID, zoneIDs []uuid.UUID) error {
	if len(zoneIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx,
		`INSERT INTO region_zones (region_id, zone_id)
		 SELECT $1, z FROM unnest($2::uuid[]) AS z
		 ON CONFLICT DO NOTHING`,
		regionID, zoneIDs,
	)
	if err != nil {
		return postgres.MapError(err, "region_zones", regionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a region with its zone ids.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, regionSelect+` WHERE r.id = $1 GROUP BY r.id`, id)

	reg, err := scanRegion(row)
	if err != nil {
		return nil, postgres.MapError(err, "region", id)
	}
	return reg, nil
}

// List returns regions ordered by name.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Region, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx,
		regionSelect+` GROUP BY r.id ORDER BY r.name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, postgres.MapError(err, "region", "list")
	}
	defer rows.Close()

	regions := make([]domain.Region, 0)
	for rows.Next() {
		reg, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		regions = append(regions, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

func scanRegion(row pgx.Row) (*domain.Region, error) {
	var reg domain.Region
	if err := row.Scan(&reg.ID, &reg.Name, &reg.Description, &reg.CreatedBy, &reg.CreatedAt, &reg.UpdatedAt, &reg.ZoneIDs); err != nil {
		return nil, err
	}
	if reg.ZoneIDs == nil {
		reg.ZoneIDs = []uuid.UUID{}
	}
	return &reg, nil
}
