package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var opManageUsers = access.Operation{Resource: access.ResourceUsers, Action: access.ActionManage}

// ListUsers returns a paginated, optionally filtered list of users (admin only).
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) ([]domain.User, int, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	users, total, err := s.users.List(ctx, input.filter())
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	return users, total, nil
}

// UpdateRole changes the role of a user (admin only). An admin may not
// change their own role.
func (s *Service) UpdateRole(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (*domain.User, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opManageUsers, targetUserID); err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of user, analyst, admin")
	}
	if id.UserID == targetUserID {
		return nil, domain.NewValidationError("role", "cannot change your own role")
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		before, err := s.users.GetByID(txCtx, targetUserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		updated, err = s.users.UpdateRole(txCtx, targetUserID, role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}

		rec := domain.NewAuditRecord(id.UserID, domain.EntityTypeUser, targetUserID, domain.AuditActionUpdate,
			map[string]any{"role": map[string]any{"old": before.Role.String(), "new": role.String()}})
		return s.audit.Log(txCtx, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
		slog.String("actor_id", id.UserID.String()),
	)

	return updated, nil
}

// SetActive deactivates or reactivates a user (admin only). Deactivated
// users can no longer log in or refresh tokens.
func (s *Service) SetActive(ctx context.Context, targetUserID uuid.UUID, active bool) (*domain.User, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opManageUsers, targetUserID); err != nil {
		return nil, err
	}
	if id.UserID == targetUserID && !active {
		return nil, domain.NewValidationError("is_active", "cannot deactivate yourself")
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.users.SetActive(txCtx, targetUserID, active)
		if err != nil {
			return fmt.Errorf("set active: %w", err)
		}

		rec := domain.NewAuditRecord(id.UserID, domain.EntityTypeUser, targetUserID, domain.AuditActionUpdate,
			map[string]any{"is_active": active})
		return s.audit.Log(txCtx, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetActive: %w", err)
	}

	s.log.InfoContext(ctx, "user activation changed",
		slog.String("target_user_id", targetUserID.String()),
		slog.Bool("active", active),
		slog.String("actor_id", id.UserID.String()),
	)

	return updated, nil
}

func (s *Service) requireAdmin(ctx context.Context) error {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return err
	}
	// Target the caller's own id: users:manage is granted to admins only
	// regardless of scope.
	return s.gate.Check(id, opManageUsers, id.UserID)
}
