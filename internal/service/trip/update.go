package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/temporal"
)

// UpdateTimes corrects a trip's start and end time. The new window is
// checked against the stored route points. An existing narrative is kept
// and marked stale.
func (s *Service) UpdateTimes(ctx context.Context, tripID uuid.UUID, input UpdateTimesInput) (*domain.Trip, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	start, end := input.StartTime.UTC(), input.EndTime.UTC()
	if err := temporal.ValidateRange(start, end); err != nil {
		return nil, domain.NewValidationErrors([]domain.FieldError{domain.NewFieldError("end_time", err)})
	}

	var updated *domain.Trip
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.trips.GetByID(txCtx, tripID)
		if err != nil {
			return err
		}
		if err := s.gate.Check(id, opUpdate, current.OwnerID); err != nil {
			return err
		}

		if err := temporal.ValidateRoute(start, end, current.Points); err != nil {
			return domain.NewValidationErrors([]domain.FieldError{domain.NewFieldError("points", err)})
		}

		markStale, err := s.hasNarrative(txCtx, current)
		if err != nil {
			return err
		}

		updated, err = s.trips.UpdateTimes(txCtx, tripID, start, end, markStale)
		if err != nil {
			return err
		}

		rec := domain.NewAuditRecord(id.UserID, domain.EntityTypeTrip, tripID, domain.AuditActionUpdate, map[string]any{
			"start_time": map[string]any{"old": current.StartTime, "new": start},
			"end_time":   map[string]any{"old": current.EndTime, "new": end},
			"stale":      markStale,
		})
		return s.audit.Log(txCtx, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("trip.UpdateTimes: %w", err)
	}

	s.log.InfoContext(ctx, "trip times updated",
		slog.String("trip_id", tripID.String()),
		slog.Bool("verbalization_stale", updated.VerbalizationStale),
	)

	return updated, nil
}

func (s *Service) hasNarrative(ctx context.Context, t *domain.Trip) (bool, error) {
	if t.VerbalizationStatus == domain.VerbalizationVerbalized {
		return true, nil
	}
	_, err := s.verbalizations.Latest(ctx, t.ID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("look up narrative: %w", err)
	}
}
