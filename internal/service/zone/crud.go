package zone

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/geo"
)

// Create stores a new zone. The boundary is validated and closed before any
// write. A duplicate name returns ErrConflict.
func (s *Service) Create(ctx context.Context, input ZoneInput) (*domain.Zone, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opCreate, id.UserID); err != nil {
		return nil, err
	}

	ring, err := input.normalize()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var created *domain.Zone
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.zones.Create(txCtx, &domain.Zone{
			ID:          uuid.New(),
			Name:        input.Name,
			Description: input.Description,
			Boundary:    ring,
			CreatedBy:   id.UserID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.NewAuditRecord(id.UserID, domain.EntityTypeZone, created.ID, domain.AuditActionCreate,
			map[string]any{"name": created.Name, "vertices": len(ring)}))
	})
	if err != nil {
		return nil, fmt.Errorf("zone.Create: %w", err)
	}

	s.log.InfoContext(ctx, "zone created",
		slog.String("zone_id", created.ID.String()),
		slog.String("name", created.Name))

	return created, nil
}

// Update replaces a zone's name, description and boundary. Only the
// creator or an admin may update it.
func (s *Service) Update(ctx context.Context, zoneID uuid.UUID, input ZoneInput) (*domain.Zone, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	ring, err := input.normalize()
	if err != nil {
		return nil, err
	}

	var updated *domain.Zone
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.zones.GetByID(txCtx, zoneID)
		if err != nil {
			return err
		}
		if err := s.gate.Check(id, opUpdate, current.CreatedBy); err != nil {
			return err
		}

		next := *current
		next.Name = input.Name
		next.Description = input.Description
		next.Boundary = ring
		next.UpdatedAt = time.Now().UTC()

		updated, err = s.zones.Update(txCtx, &next)
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.NewAuditRecord(id.UserID, domain.EntityTypeZone, zoneID, domain.AuditActionUpdate,
			map[string]any{"name": map[string]any{"old": current.Name, "new": next.Name}, "vertices": len(ring)}))
	})
	if err != nil {
		return nil, fmt.Errorf("zone.Update: %w", err)
	}

	s.log.InfoContext(ctx, "zone updated", slog.String("zone_id", zoneID.String()))
	return updated, nil
}

// Delete removes a zone. Only the creator or an admin may delete it.
func (s *Service) Delete(ctx context.Context, zoneID uuid.UUID) error {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.zones.GetByID(txCtx, zoneID)
		if err != nil {
			return err
		}
		if err := s.gate.Check(id, opDelete, current.CreatedBy); err != nil {
			return err
		}
		if err := s.zones.Delete(txCtx, zoneID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.NewAuditRecord(id.UserID, domain.EntityTypeZone, zoneID, domain.AuditActionDelete,
			map[string]any{"name": current.Name}))
	})
	if err != nil {
		return fmt.Errorf("zone.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "zone deleted", slog.String("zone_id", zoneID.String()))
	return nil
}

// Get returns a zone. Any authenticated user may read zones.
func (s *Service) Get(ctx context.Context, zoneID uuid.UUID) (*domain.Zone, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opRead, uuid.Nil); err != nil {
		return nil, err
	}

	z, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("zone.Get: %w", err)
	}
	return z, nil
}

// List returns zones ordered by name, optionally filtered by a name substring.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Zone, int, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := s.gate.Check(id, opRead, uuid.Nil); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	zones, total, err := s.zones.List(ctx, strings.TrimSpace(input.Name), limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("zone.List: %w", err)
	}
	return zones, total, nil
}

// TripsInZone lists the caller's visible trips whose start or end point lies
// inside the zone. Admins see every owner's trips. Candidates come from a
// bounding-box query and are filtered with a planar point-in-ring test.
func (s *Service) TripsInZone(ctx context.Context, zoneID uuid.UUID) ([]domain.Trip, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opRead, uuid.Nil); err != nil {
		return nil, err
	}

	z, err := s.zones.GetByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("zone.TripsInZone: %w", err)
	}

	var owner *uuid.UUID
	if !id.Role.IsAdmin() {
		owner = &id.UserID
	}

	candidates, err := s.trips.ListInBounds(ctx, owner, z.Boundary.Bound())
	if err != nil {
		return nil, fmt.Errorf("zone.TripsInZone: %w", err)
	}

	out := make([]domain.Trip, 0, len(candidates))
	for _, t := range candidates {
		if geo.Contains(z.Boundary, t.Start) || geo.Contains(z.Boundary, t.End) {
			out = append(out, t)
		}
	}

	s.log.DebugContext(ctx, "trips in zone",
		slog.String("zone_id", zoneID.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("matched", len(out)))

	return out, nil
}
