// Package trip implements the Trip repository using PostgreSQL + PostGIS.
// Endpoints and route points are stored as geography(Point, 4326).
package trip

import (
	"context"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paulmach/orb"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides trip and route point persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new trip repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tripColumns = `id, owner_id,
	ST_Y(start_point::geometry), ST_X(start_point::geometry),
	ST_Y(end_point::geometry), ST_X(end_point::geometry),
	start_time, end_time, verbalization_status, verbalization_stale,
	created_at, updated_at`

const pointColumns = `trip_id, sequence,
	ST_Y(location::geometry), ST_X(location::geometry),
	recorded_at, speed_kmh, altitude_m`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the trip and all of its route points. Run it inside
// TxManager.RunInTx so a failing point insert leaves no partial trip.
func (r *Repo) Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO trips (id, owner_id, start_point, end_point, start_time, end_time,
		                    verbalization_status, verbalization_stale, created_at, updated_at)
		 VALUES ($1, $2,
		         ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography,
		         ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography,
		         $7, $8, $9, false, $10, $11)
		 RETURNING `+tripColumns,
		t.ID, t.OwnerID, t.Start.Lon, t.Start.Lat, t.End.Lon, t.End.Lat,
		t.StartTime, t.EndTime, string(domain.VerbalizationUnverbalized), t.CreatedAt, t.UpdatedAt,
	)

	created, err := scanTrip(row)
	if err != nil {
		return nil, postgres.MapError(err, "trip", t.ID)
	}

	if err := insertPoints(ctx, q, t.ID, t.Points); err != nil {
		return nil, err
	}

	created.Points = make([]domain.RoutePoint, len(t.Points))
	copy(created.Points, t.Points)
	for i := range created.Points {
		created.Points[i].TripID = t.ID
	}
	sort.Slice(created.Points, func(i, j int) bool {
		return created.Points[i].Sequence < created.Points[j].Sequence
	})

	return created, nil
}

// insertPoints writes all points with a single unnest-based INSERT.
func insertPoints(ctx context.Context, q postgres.Querier, tripID uuid.UUID, points []domain.RoutePoint) error {
	if len(points) == 0 {
		return nil
	}

	var (
		seqs   = make([]int32, len(points))
		lons   = make([]float64, len(points))
		lats   = make([]float64, len(points))
		times  = make([]time.Time, len(points))
		speeds = make([]*float64, len(points))
		alts   = make([]*float64, len(points))
	)
	for i, p := range points {
		if p.Sequence < 1 || p.Sequence > domain.MaxRouteSequence {
			return domain.NewValidationError(fmt.Sprintf("points[%d].sequence", i), "out of range")
		}
		seqs[i] = int32(p.Sequence)
		lons[i] = p.Coordinate.Lon
		lats[i] = p.Coordinate.Lat
		times[i] = p.Timestamp
		speeds[i] = p.SpeedKmh
		alts[i] = p.AltitudeM
	}

	_, err := q.Exec(ctx,
		`INSERT INTO route_points (trip_id, sequence, location, recorded_at, speed_kmh, altitude_m)
		 SELECT $1, u.seq, ST_SetSRID(ST_MakePoint(u.lon, u.lat), 4326)::geography, u.ts, u.speed, u.alt
		 FROM unnest($2::int[], $3::float8[], $4::float8[], $5::timestamptz[], $6::float8[], $7::float8[])
		      AS u(seq, lon, lat, ts, speed, alt)`,
		tripID, seqs, lons, lats, times, speeds, alts,
	)
	if err != nil {
		return postgres.MapError(err, "route_points", tripID)
	}
	return nil
}

// UpdateTimes corrects the trip window. When markStale is true an existing
// narrative is flagged as stale instead of being discarded.
func (r *Repo) UpdateTimes(ctx context.Context, id uuid.UUID, start, end time.Time, markStale bool) (*domain.Trip, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`UPDATE trips
		 SET start_time = $2, end_time = $3,
		     verbalization_stale = verbalization_stale OR $4,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+tripColumns,
		id, start, end, markStale,
	)

	t, err := scanTrip(row)
	if err != nil {
		return nil, postgres.MapError(err, "trip", id)
	}
	return t, nil
}

// SetVerbalizationStatus moves the trip to status. Only the status columns
// are written; a fresh narrative clears the stale flag.
func (r *Repo) SetVerbalizationStatus(ctx context.Context, id uuid.UUID, status domain.VerbalizationStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE trips
		 SET verbalization_status = $2,
		     verbalization_stale = CASE WHEN $2 = 'verbalized' THEN false ELSE verbalization_stale END
		 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return postgres.MapError(err, "trip", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClaimVerbalization moves the trip to pending in one conditional UPDATE.
// It succeeds from any status that may enter pending, or from a pending
// run whose verbalization_started_at is older than staleAfter. Otherwise it
// returns domain.ErrConflict, or domain.ErrNotFound if the trip is gone.
func (r *Repo) ClaimVerbalization(ctx context.Context, id uuid.UUID, staleAfter time.Duration) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE trips
		 SET verbalization_status = 'pending',
		     verbalization_started_at = now()
		 WHERE id = $1
		   AND (verbalization_status = ANY($2::text[])
		        OR (verbalization_status = 'pending'
		            AND (verbalization_started_at IS NULL
		                 OR verbalization_started_at < now() - $3::interval)))`,
		id, domain.SourcesOf(domain.VerbalizationPending), staleAfter,
	)
	if err != nil {
		return postgres.MapError(err, "trip", id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "trip", id)
	}
	if !exists {
		return fmt.Errorf("trip %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("trip %s: verbalization already running: %w", id, domain.ErrConflict)
}

// Delete removes the trip with its narratives and route points.
// Run it inside TxManager.RunInTx.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM verbalized_trips WHERE trip_id = $1`, id); err != nil {
		return postgres.MapError(err, "verbalized_trips", id)
	}
	if _, err := q.Exec(ctx, `DELETE FROM route_points WHERE trip_id = $1`, id); err != nil {
		return postgres.MapError(err, "route_points", id)
	}

	tag, err := q.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "trip", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a trip with its route points ordered by sequence.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id)

	t, err := scanTrip(row)
	if err != nil {
		return nil, postgres.MapError(err, "trip", id)
	}

	points, err := r.ListPoints(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Points = points

	return t, nil
}

// ListPoints returns the route points of a trip ordered by sequence.
func (r *Repo) ListPoints(ctx context.Context, tripID uuid.UUID) ([]domain.RoutePoint, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+pointColumns+` FROM route_points WHERE trip_id = $1 ORDER BY sequence`,
		tripID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "route_points", tripID)
	}
	defer rows.Close()

	points := make([]domain.RoutePoint, 0)
	for rows.Next() {
		var p domain.RoutePoint
		if err := rows.Scan(&p.TripID, &p.Sequence, &p.Coordinate.Lat, &p.Coordinate.Lon,
			&p.Timestamp, &p.SpeedKmh, &p.AltitudeM); err != nil {
			return nil, fmt.Errorf("scan route point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list route points: %w", err)
	}
	return points, nil
}

// Search returns trips matching f ordered by start_time, plus the total
// number of matches ignoring Limit and Offset. Route points are not loaded.
func (r *Repo) Search(ctx context.Context, f domain.TripFilter) ([]domain.Trip, int, error) {
	where := sq.And{}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"start_time": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"start_time": *f.To})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := psql.Select("count(*)").From("trips").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count trips: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "trip", "count")
	}

	listSQL, listArgs, err := psql.Select(tripColumns).From("trips").Where(where).
		OrderBy("start_time ASC", "id ASC").
		Limit(uint64(f.Limit)).Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search trips: %w", err)
	}

	trips, err := r.queryTrips(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

// ListInBounds returns trips whose start or end point lies inside bound.
// A nil ownerID means every owner. The bound is a coarse prefilter; callers
// refine with an exact polygon test.
func (r *Repo) ListInBounds(ctx context.Context, ownerID *uuid.UUID, bound orb.Bound) ([]domain.Trip, error) {
	envelope := sq.Expr(
		`(ST_Intersects(start_point::geometry, ST_MakeEnvelope(?, ?, ?, ?, 4326))
		  OR ST_Intersects(end_point::geometry, ST_MakeEnvelope(?, ?, ?, ?, 4326)))`,
		bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat(),
		bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat(),
	)

	where := sq.And{envelope}
	if ownerID != nil {
		where = append(where, sq.Eq{"owner_id": *ownerID})
	}

	sqlStr, args, err := psql.Select(tripColumns).From("trips").Where(where).
		OrderBy("start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trips in bounds: %w", err)
	}

	return r.queryTrips(ctx, sqlStr, args...)
}

func (r *Repo) queryTrips(ctx context.Context, sqlStr string, args ...any) ([]domain.Trip, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "trip", "query")
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	return trips, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanTrip(row pgx.Row) (*domain.Trip, error) {
	var (
		t      domain.Trip
		status string
	)
	err := row.Scan(
		&t.ID, &t.OwnerID,
		&t.Start.Lat, &t.Start.Lon,
		&t.End.Lat, &t.End.Lon,
		&t.StartTime, &t.EndTime, &status, &t.VerbalizationStale,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.VerbalizationStatus = domain.VerbalizationStatus(status)
	return &t, nil
}
