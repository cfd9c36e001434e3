package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user_" + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$not-a-real-hash-" + suffix,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTrip creates a trip from Bengaluru to Chennai with two route points.
func SeedTrip(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, start time.Time) domain.Trip {
	t.Helper()
	ctx := context.Background()

	start = start.UTC().Truncate(time.Microsecond)
	now := time.Now().UTC().Truncate(time.Microsecond)
	trip := domain.Trip{
		ID:                  uuid.New(),
		OwnerID:             ownerID,
		Start:               domain.Coordinate{Lat: 12.9716, Lon: 77.5946},
		End:                 domain.Coordinate{Lat: 13.0827, Lon: 80.2707},
		StartTime:           start,
		EndTime:             start.Add(8 * time.Hour),
		VerbalizationStatus: domain.VerbalizationUnverbalized,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	trip.Points = []domain.RoutePoint{
		{TripID: trip.ID, Sequence: 1, Coordinate: domain.Coordinate{Lat: 12.95, Lon: 78.27}, Timestamp: start.Add(2 * time.Hour)},
		{TripID: trip.ID, Sequence: 2, Coordinate: domain.Coordinate{Lat: 12.92, Lon: 79.13}, Timestamp: start.Add(5 * time.Hour)},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO trips (id, owner_id, start_point, end_point, start_time, end_time, verbalization_status, created_at, updated_at)
		 VALUES ($1, $2,
		         ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography,
		         ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography,
		         $7, $8, $9, $10, $11)`,
		trip.ID, trip.OwnerID, trip.Start.Lon, trip.Start.Lat, trip.End.Lon, trip.End.Lat,
		trip.StartTime, trip.EndTime, string(trip.VerbalizationStatus), trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrip insert trip: %v", err)
	}

	for _, p := range trip.Points {
		_, err = pool.Exec(ctx,
			`INSERT INTO route_points (trip_id, sequence, location, recorded_at)
			 VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5)`,
			p.TripID, p.Sequence, p.Coordinate.Lon, p.Coordinate.Lat, p.Timestamp,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedTrip insert route point: %v", err)
		}
	}

	return trip
}

// SeedZone creates a square zone around central Bengaluru.
func SeedZone(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Zone {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	zone := domain.Zone{
		ID:        uuid.New(),
		Name:      "zone-" + uniqueSuffix(),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	const wkt = "POLYGON((77.5 12.9,77.7 12.9,77.7 13.1,77.5 13.1,77.5 12.9))"

	_, err := pool.Exec(ctx,
		`INSERT INTO zones (id, name, boundary, created_by, created_at, updated_at)
		 VALUES ($1, $2, ST_GeogFromText($3), $4, $5, $6)`,
		zone.ID, zone.Name, wkt, zone.CreatedBy, zone.CreatedAt, zone.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedZone insert zone: %v", err)
	}

	return zone
}
