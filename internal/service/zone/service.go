// Package zone implements analyst-drawn polygonal zones and the report of
// trips that start or end inside one.
package zone

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// zoneRepo defines the zone repository interface needed by zone service.
type zoneRepo interface {
	Create(ctx context.Context, z *domain.Zone) (*domain.Zone, error)
	Update(ctx context.Context, z *domain.Zone) (*domain.Zone, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, nameLike string, limit, offset int) ([]domain.Zone, int, error)
}

// tripRepo is the spatial pre-filter used by TripsInZone.
type tripRepo interface {
	ListInBounds(ctx context.Context, ownerID *uuid.UUID, bound orb.Bound) ([]domain.Trip, error)
}

// auditRepo defines the audit repository interface needed by zone service.
type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by zone service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// accessGate decides whether the caller may perform an operation.
type accessGate interface {
	Check(id access.Identity, op access.Operation, ownerID uuid.UUID) error
}

// Service implements zone operations.
type Service struct {
	log   *slog.Logger
	zones zoneRepo
	trips tripRepo
	audit auditRepo
	tx    txManager
	gate  accessGate
}

// NewService creates a new zone service instance.
func NewService(
	logger *slog.Logger,
	zones zoneRepo,
	trips tripRepo,
	audit auditRepo,
	tx txManager,
	gate accessGate,
) *Service {
	return &Service{
		log:   logger.With("service", "zone"),
		zones: zones,
		trips: trips,
		audit: audit,
		tx:    tx,
		gate:  gate,
	}
}

var (
	opCreate = access.Operation{Resource: access.ResourceZone, Action: access.ActionCreate}
	opRead   = access.Operation{Resource: access.ResourceZone, Action: access.ActionRead}
	opUpdate = access.Operation{Resource: access.ResourceZone, Action: access.ActionUpdate}
	opDelete = access.Operation{Resource: access.ResourceZone, Action: access.ActionDelete}
)
