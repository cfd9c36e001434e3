// Package trip implements the trip aggregate: creation with geo and
// temporal validation, owner-scoped reads and search, time correction
// and deletion.
package trip

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// tripRepo defines the trip repository interface needed by trip service.
type tripRepo interface {
	Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	Search(ctx context.Context, f domain.TripFilter) ([]domain.Trip, int, error)
	UpdateTimes(ctx context.Context, id uuid.UUID, start, end time.Time, markStale bool) (*domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// verbalizationRepo is used to detect an existing narrative on time changes.
type verbalizationRepo interface {
	Latest(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)
}

// auditRepo defines the audit repository interface needed by trip service.
type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by trip service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// accessGate decides whether the caller may perform an operation.
type accessGate interface {
	Check(id access.Identity, op access.Operation, ownerID uuid.UUID) error
}

// Service implements trip operations.
type Service struct {
	log            *slog.Logger
	trips          tripRepo
	verbalizations verbalizationRepo
	audit          auditRepo
	tx             txManager
	gate           accessGate
}

// NewService creates a new trip service instance.
func NewService(
	logger *slog.Logger,
	trips tripRepo,
	verbalizations verbalizationRepo,
	audit auditRepo,
	tx txManager,
	gate accessGate,
) *Service {
	return &Service{
		log:            logger.With("service", "trip"),
		trips:          trips,
		verbalizations: verbalizations,
		audit:          audit,
		tx:             tx,
		gate:           gate,
	}
}

var (
	opCreate = access.Operation{Resource: access.ResourceTrip, Action: access.ActionCreate}
	opRead   = access.Operation{Resource: access.ResourceTrip, Action: access.ActionRead}
	opSearch = access.Operation{Resource: access.ResourceTrip, Action: access.ActionSearch}
	opUpdate = access.Operation{Resource: access.ResourceTrip, Action: access.ActionUpdate}
	opDelete = access.Operation{Resource: access.ResourceTrip, Action: access.ActionDelete}
)
