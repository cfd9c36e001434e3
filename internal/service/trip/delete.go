package trip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Delete removes a trip together with its route points and narratives.
// Only the owner or an admin may delete it.
func (s *Service) Delete(ctx context.Context, tripID uuid.UUID) error {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.trips.GetByID(txCtx, tripID)
		if err != nil {
			return err
		}
		if err := s.gate.Check(id, opDelete, current.OwnerID); err != nil {
			return err
		}
		if err := s.trips.Delete(txCtx, tripID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.NewAuditRecord(id.UserID, domain.EntityTypeTrip, tripID, domain.AuditActionDelete, nil))
	})
	if err != nil {
		return fmt.Errorf("trip.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "trip deleted", slog.String("trip_id", tripID.String()))
	return nil
}
