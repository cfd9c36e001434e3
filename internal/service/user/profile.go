package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var opReadProfile = access.Operation{Resource: access.ResourceProfile, Action: access.ActionRead}

// Me returns the authenticated user's profile.
// Returns ErrUnauthorized if no identity is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Check(id, opReadProfile, id.UserID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	return user, nil
}
