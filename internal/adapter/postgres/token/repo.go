// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new token repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

// Create inserts a new refresh token and returns the persisted row.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING `+tokenColumns,
		userID, tokenHash, expiresAt,
	)

	t, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", userID)
	}
	return t, nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`SELECT `+tokenColumns+`
		 FROM refresh_tokens
		 WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`,
		tokenHash,
	)

	t, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "hash")
	}
	return t, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`,
		id,
	)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`,
		userID,
	)
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL`,
	)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}
	return int(tag.RowsAffected()), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
