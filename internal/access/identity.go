package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/pkg/ctxutil"
)

// Identity is the verified (user id, role) pair attached to a request.
type Identity struct {
	UserID uuid.UUID
	Role   domain.Role
}

// IdentityFromCtx reads the identity placed in the context by the auth
// middleware. Returns domain.ErrUnauthorized if either part is missing.
func IdentityFromCtx(ctx context.Context) (Identity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Identity{}, domain.ErrUnauthorized
	}
	role := domain.Role(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsValid() {
		return Identity{}, domain.ErrUnauthorized
	}
	return Identity{UserID: userID, Role: role}, nil
}

// WithIdentity stores id in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = ctxutil.WithUserID(ctx, id.UserID)
	return ctxutil.WithUserRole(ctx, id.Role.String())
}
