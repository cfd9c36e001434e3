package trip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Create validates and stores a new trip owned by the caller. The trip and
// its route points are written in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Trip, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opCreate, id.UserID); err != nil {
		return nil, err
	}

	// Step 1: Validate input. Nothing is written on failure.
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build the aggregate
	now := time.Now().UTC()
	tripID := uuid.New()
	t := &domain.Trip{
		ID:                  tripID,
		OwnerID:             id.UserID,
		Start:               domain.Coordinate{Lat: input.StartLat, Lon: input.StartLon},
		End:                 domain.Coordinate{Lat: input.EndLat, Lon: input.EndLon},
		StartTime:           input.StartTime.UTC(),
		EndTime:             input.EndTime.UTC(),
		Points:              input.routePoints(tripID),
		VerbalizationStatus: domain.VerbalizationUnverbalized,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	// Step 3: Persist trip and points atomically
	var created *domain.Trip
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.trips.Create(txCtx, t)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("trip.Create: %w", err)
	}

	s.log.InfoContext(ctx, "trip created",
		slog.String("trip_id", created.ID.String()),
		slog.String("owner_id", created.OwnerID.String()),
		slog.Int("points", len(created.Points)),
		slog.Duration("duration", created.Duration()),
	)

	return created, nil
}
