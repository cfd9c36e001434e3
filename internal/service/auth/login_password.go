package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Login authenticates a user by email or username plus password.
// Unknown users, wrong passwords and deactivated accounts all return
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Login = strings.TrimSpace(input.Login)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by email or username
	var (
		user *domain.User
		err  error
	)
	if strings.Contains(input.Login, "@") {
		user, err = s.users.GetByEmail(ctx, strings.ToLower(input.Login))
	} else {
		user, err = s.users.GetByUsername(ctx, input.Login)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Step 4: Refuse deactivated accounts
	if !user.IsActive {
		s.log.WarnContext(ctx, "login for inactive user",
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrInvalidCredentials
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return result, nil
}
