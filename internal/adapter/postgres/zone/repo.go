// Package zone implements the Zone repository using PostgreSQL + PostGIS.
// Boundaries travel as WKT and are stored as geography(Polygon, 4326).
package zone

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/geo"
)

// Repo provides zone persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new zone repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const zoneColumns = `id, name, description, ST_AsText(boundary::geometry), created_by, created_at, updated_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a zone. A taken name maps to domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, z *domain.Zone) (*domain.Zone, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO zones (id, name, description, boundary, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, ST_GeogFromText($4), $5, $6, $7)
		 RETURNING `+zoneColumns,
		z.ID, z.Name, z.Description, geo.RingToWKT(z.Boundary), z.CreatedBy, z.CreatedAt, z.UpdatedAt,
	)

	created, err := scanZone(row)
	if err != nil {
		return nil, postgres.MapError(err, "zone", z.ID)
	}
	return created, nil
}

// Update replaces name, description and boundary.
func (r *Repo) Update(ctx context.Context, z *domain.Zone) (*domain.Zone, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`UPDATE zones
		 SET name = $2, description = $3, boundary = ST_GeogFromText($4), updated_at = now()
		 WHERE id = $1
		 RETURNING `+zoneColumns,
		z.ID, z.Name, z.Description, geo.RingToWKT(z.Boundary),
	)

	updated, err := scanZone(row)
	if err != nil {
		return nil, postgres.MapError(err, "zone", z.ID)
	}
	return updated, nil
}

// Delete removes a zone. Region memberships go with it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "zone", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("zone %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a zone by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+zoneColumns+` FROM zones WHERE id = $1`, id)

	z, err := scanZone(row)
	if err != nil {
		return nil, postgres.MapError(err, "zone", id)
	}
	return z, nil
}

// List returns zones ordered by name. A non-empty nameLike filters by
// case-insensitive substring.
func (r *Repo) List(ctx context.Context, nameLike string, limit, offset int) ([]domain.Zone, int, error) {
	where := sq.And{}
	if nameLike != "" {
		where = append(where, sq.ILike{"name": "%" + nameLike + "%"})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := psql.Select("count(*)").From("zones").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count zones: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "zone", "count")
	}

	listSQL, listArgs, err := psql.Select(zoneColumns).From("zones").Where(where).
		OrderBy("name ASC").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list zones: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "zone", "list")
	}
	defer rows.Close()

	zones := make([]domain.Zone, 0)
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan zone: %w", err)
		}
		zones = append(zones, *z)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list zones: %w", err)
	}
	return zones, total, nil
}

// MissingIDs returns the ids from ids that have no zone row, in input order.
func (r *Repo) MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	missing := make([]uuid.UUID, 0)
	if len(ids) == 0 {
		return missing, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM zones WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, postgres.MapError(err, "zone", "exists")
	}
	defer rows.Close()

	found := make(map[uuid.UUID]struct{}, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan zone id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("check zone ids: %w", err)
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanZone(row pgx.Row) (*domain.Zone, error) {
	var (
		z        domain.Zone
		boundary string
	)
	if err := row.Scan(&z.ID, &z.Name, &z.Description, &boundary, &z.CreatedBy, &z.CreatedAt, &z.UpdatedAt); err != nil {
		return nil, err
	}

	ring, err := geo.RingFromWKT(boundary)
	if err != nil {
		return nil, fmt.Errorf("zone %s boundary: %w", z.ID, err)
	}
	z.Boundary = ring
	return &z, nil
}
