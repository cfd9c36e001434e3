package region

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Create stores a new region. Every zone id must reference an existing zone.
func (s *Service) Create(ctx context.Context, input RegionInput) (*domain.Region, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opCreate, id.UserID); err != nil {
		return nil, err
	}
	if err := input.normalize(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var created *domain.Region
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkZones(txCtx, input.ZoneIDs); err != nil {
			return err
		}

		var err error
		created, err = s.regions.Create(txCtx, &domain.Region{
			ID:          uuid.New(),
			Name:        input.Name,
			Description: input.Description,
			ZoneIDs:     input.ZoneIDs,
			CreatedBy:   id.UserID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.NewAuditRecord(id.UserID, domain.EntityTypeRegion, created.ID, domain.AuditActionCreate,
			map[string]any{"name": created.Name, "zones": len(created.ZoneIDs)}))
	})
	if err != nil {
		return nil, fmt.Errorf("region.Create: %w", err)
	}

	s.log.InfoContext(ctx, "region created",
		slog.String("region_id", created.ID.String()),
		slog.Int("zones", len(created.ZoneIDs)))

	return created, nil
}

// Update replaces a region's fields and zone set. Only the creator or an
// admin may update it.
func (s *Service) Update(ctx context.Context, regionID uuid.UUID, input RegionInput) (*domain.Region, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.normalize(); err != nil {
		return nil, err
	}

	var updated *domain.Region
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.regions.GetByID(txCtx, regionID)
		if err != nil {
			return err
		}
		if err := s.gate.Check(id, opUpdate, current.CreatedBy); err != nil {
			return err
		}
		if err := s.checkZones(txCtx, input.ZoneIDs); err != nil {
			return err
		}

		next := *current
		next.Name = input.Name
		next.Description = input.Description
		next.ZoneIDs = input.ZoneIDs
		next.UpdatedAt = time.Now().UTC()

		updated, err = s.regions.Update(txCtx, &next)
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.NewAuditRecord(id.UserID, domain.EntityTypeRegion, regionID, domain.AuditActionUpdate,
			map[string]any{
				"name":  map[string]any{"old": current.Name, "new": next.Name},
				"zones": map[string]any{"old": len(current.ZoneIDs), "new": len(next.ZoneIDs)},
			}))
	})
	if err != nil {
		return nil, fmt.Errorf("region.Update: %w", err)
	}

	s.log.InfoContext(ctx, "region updated", slog.String("region_id", regionID.String()))
	return updated, nil
}

// Delete removes a region. Its zones are left untouched.
func (s *Service) Delete(ctx context.Context, regionID uuid.UUID) error {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.regions.GetByID(txCtx, regionID)
		if err != nil {
			return err
		}
		if err := s.gate.Check(id, opDelete, current.CreatedBy); err != nil {
			return err
		}
		if err := s.regions.Delete(txCtx, regionID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.NewAuditRecord(id.UserID, domain.EntityTypeRegion, regionID, domain.AuditActionDelete,
			map[string]any{"name": current.Name}))
	})
	if err != nil {
		return fmt.Errorf("region.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "region deleted", slog.String("region_id", regionID.String()))
	return nil
}

// Get returns a region with its zone ids.
func (s *Service) Get(ctx context.Context, regionID uuid.UUID) (*domain.Region, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opRead, uuid.Nil); err != nil {
		return nil, err
	}

	reg, err := s.regions.GetByID(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("region.Get: %w", err)
	}
	return reg, nil
}

// List returns regions ordered by name.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Region, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opRead, uuid.Nil); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	regions, err := s.regions.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("region.List: %w", err)
	}
	return regions, nil
}

// checkZones returns a ValidationError naming every zone id that does not exist.
func (s *Service) checkZones(ctx context.Context, ids []uuid.UUID) error {
	missing, err := s.zones.MissingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check zones: %w", err)
	}
	if len(missing) == 0 {
		return nil
	}

	names := make([]string, len(missing))
	for i, id := range missing {
		names[i] = id.String()
	}
	return domain.NewValidationError("zone_ids", "unknown zones: "+strings.Join(names, ", "))
}
