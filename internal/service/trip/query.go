package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Get returns a trip with its route points ordered by sequence.
// Only the owner or an admin may read it.
func (s *Service) Get(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Get: %w", err)
	}

	if err := s.gate.Check(id, opRead, t.OwnerID); err != nil {
		return nil, err
	}

	return t, nil
}

// Search returns trips whose start time falls in [From, To], ordered by
// start time. Users are restricted to their own trips; naming another
// owner is forbidden. Admins may search any owner or all owners.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Trip, int, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.TripFilter{
		OwnerID: input.OwnerID,
		From:    input.From,
		To:      input.To,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultSearchLimit
	}

	owner := id.UserID
	if input.OwnerID != nil {
		owner = *input.OwnerID
	}
	if err := s.gate.Check(id, opSearch, owner); err != nil {
		return nil, 0, err
	}
	if filter.OwnerID == nil && !id.Role.IsAdmin() {
		filter.OwnerID = &id.UserID
	}

	trips, total, err := s.trips.Search(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("trip.Search: %w", err)
	}

	return trips, total, nil
}
