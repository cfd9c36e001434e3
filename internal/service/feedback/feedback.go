package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Create appends a feedback entry to a trip. A referenced narrative must
// belong to the same trip.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Feedback, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opCreate, id.UserID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.trips.GetByID(ctx, input.TripID); err != nil {
		return nil, fmt.Errorf("feedback.Create get trip: %w", err)
	}

	if input.VerbalizedID != nil {
		v, err := s.verbalizations.GetByID(ctx, *input.VerbalizedID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NewValidationError("verbalized_id", "narrative not found")
		case err != nil:
			return nil, fmt.Errorf("feedback.Create get narrative: %w", err)
		case v.TripID != input.TripID:
			return nil, domain.NewValidationError("verbalized_id", "narrative belongs to another trip")
		}
	}

	now := time.Now().UTC()
	created, err := s.feedback.Create(ctx, &domain.Feedback{
		ID:            uuid.New(),
		TripID:        input.TripID,
		VerbalizedID:  input.VerbalizedID,
		AuthorID:      id.UserID,
		Rating:        input.Rating,
		CorrectedText: input.CorrectedText,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("feedback.Create: %w", err)
	}

	s.log.InfoContext(ctx, "feedback created",
		slog.String("feedback_id", created.ID.String()),
		slog.String("trip_id", created.TripID.String()),
		slog.Int("rating", created.Rating))

	return created, nil
}

// ListByTrip returns every feedback entry for a trip, oldest first.
func (s *Service) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opRead, uuid.Nil); err != nil {
		return nil, err
	}

	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("feedback.ListByTrip get trip: %w", err)
	}

	items, err := s.feedback.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("feedback.ListByTrip: %w", err)
	}
	return items, nil
}

// Update changes an entry's rating or texts. Analysts may update only their
// own entries.
func (s *Service) Update(ctx context.Context, feedbackID uuid.UUID, input UpdateInput) (*domain.Feedback, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.feedback.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, fmt.Errorf("feedback.Update: %w", err)
	}
	if err := s.gate.Check(id, opUpdate, current.AuthorID); err != nil {
		return nil, err
	}

	updated, err := s.feedback.Update(ctx, feedbackID, input.patch())
	if err != nil {
		return nil, fmt.Errorf("feedback.Update: %w", err)
	}

	s.log.InfoContext(ctx, "feedback updated", slog.String("feedback_id", feedbackID.String()))
	return updated, nil
}
