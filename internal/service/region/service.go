// Package region groups zones into named regions.
package region

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// regionRepo defines the region repository interface needed by region service.
type regionRepo interface {
	Create(ctx context.Context, reg *domain.Region) (*domain.Region, error)
	Update(ctx context.Context, reg *domain.Region) (*domain.Region, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
	List(ctx context.Context, limit, offset int) ([]domain.Region, error)
}

// zoneRepo checks that referenced zones exist.
type zoneRepo interface {
	MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type accessGate interface {
	Check(id access.Identity, op access.Operation, ownerID uuid.UUID) error
}

// Service implements region operations.
type Service struct {
	log     *slog.Logger
	regions regionRepo
	zones   zoneRepo
	audit   auditRepo
	tx      txManager
	gate    accessGate
}

// NewService creates a new region service instance.
func NewService(
	logger *slog.Logger,
	regions regionRepo,
	zones zoneRepo,
	audit auditRepo,
	tx txManager,
	gate accessGate,
) *Service {
	return &Service{
		log:     logger.With("service", "region"),
		regions: regions,
		zones:   zones,
		audit:   audit,
		tx:      tx,
		gate:    gate,
	}
}

var (
	opCreate = access.Operation{Resource: access.ResourceRegion, Action: access.ActionCreate}
	opRead   = access.Operation{Resource: access.ResourceRegion, Action: access.ActionRead}
	opUpdate = access.Operation{Resource: access.ResourceRegion, Action: access.ActionUpdate}
	opDelete = access.Operation{Resource: access.ResourceRegion, Action: access.ActionDelete}
)
