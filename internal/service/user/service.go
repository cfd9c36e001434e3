package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// accessGate decides whether the caller may perform an operation.
type accessGate interface {
	Check(id access.Identity, op access.Operation, ownerID uuid.UUID) error
}

// Service implements profile and user administration operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	audit    auditRepo
	tx       txManager
	gate     accessGate
	hashCost int
}

// NewService creates a new user service instance. hashCost is the bcrypt
// cost used when bootstrapping an admin account.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditRepo,
	tx txManager,
	gate accessGate,
	hashCost int,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		audit:    audit,
		tx:       tx,
		gate:     gate,
		hashCost: hashCost,
	}
}
