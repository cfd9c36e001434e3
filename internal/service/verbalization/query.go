package verbalization

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// HistoryLimit caps the number of call log entries History returns.
const HistoryLimit = 100

// Latest returns the most recent narrative of a trip.
// Returns ErrNotFound if the trip was never verbalized.
func (s *Service) Latest(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error) {
	if err := s.authorizeRead(ctx, tripID); err != nil {
		return nil, err
	}

	v, err := s.verbalizations.Latest(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("verbalization.Latest: %w", err)
	}
	return v, nil
}

// History returns the upstream call log of a trip, oldest first.
func (s *Service) History(ctx context.Context, tripID uuid.UUID) ([]domain.AICallRecord, error) {
	if err := s.authorizeRead(ctx, tripID); err != nil {
		return nil, err
	}

	recs, err := s.calls.ListByTrip(ctx, tripID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("verbalization.History: %w", err)
	}
	return recs, nil
}

func (s *Service) authorizeRead(ctx context.Context, tripID uuid.UUID) error {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("verbalization: get trip: %w", err)
	}
	return s.gate.Check(id, opRead, trip.OwnerID)
}
