package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// EnsureAdmin creates the configured admin account if no user with that
// email exists, and promotes it to admin if it exists with a lower role.
// It is safe to run on every deploy. Returns true if anything changed.
func (s *Service) EnsureAdmin(ctx context.Context, input BootstrapAdminInput) (bool, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return false, err
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		if existing.Role == domain.RoleAdmin {
			s.log.InfoContext(ctx, "admin already present", slog.String("user_id", existing.ID.String()))
			return false, nil
		}
		if _, err := s.users.UpdateRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
			return false, fmt.Errorf("user.EnsureAdmin promote: %w", err)
		}
		s.log.InfoContext(ctx, "existing user promoted to admin", slog.String("user_id", existing.ID.String()))
		return true, nil
	case !errors.Is(err, domain.ErrNotFound):
		return false, fmt.Errorf("user.EnsureAdmin lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return false, fmt.Errorf("user.EnsureAdmin hash password: %w", err)
	}

	now := time.Now()
	created, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return false, fmt.Errorf("user.EnsureAdmin create: %w", err)
	}

	s.log.InfoContext(ctx, "admin created", slog.String("user_id", created.ID.String()))
	return true, nil
}

// PromoteByEmail sets the role of the user with the given email. It is an
// operator command and bypasses the request-level gate.
func (s *Service) PromoteByEmail(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of user, analyst, admin")
	}

	existing, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("user.PromoteByEmail lookup: %w", err)
	}

	updated, err := s.users.UpdateRole(ctx, existing.ID, role)
	if err != nil {
		return nil, fmt.Errorf("user.PromoteByEmail: %w", err)
	}

	s.log.InfoContext(ctx, "user role set by operator",
		slog.String("user_id", updated.ID.String()),
		slog.String("old_role", existing.Role.String()),
		slog.String("new_role", role.String()),
	)
	return updated, nil
}
