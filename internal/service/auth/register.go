package auth

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

// Register creates a new user with the "user" role and signs them in.
// Returns ErrConflict if the email or username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	// Step 1: Validate input. Nothing is written on failure.
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create the user and its first refresh token together.
	// Email and username uniqueness are enforced by DB constraints.
	var result *AuthResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		if err != nil {
			return fmt.Errorf("issue tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", result.User.ID.String()))

	return result, nil
}
