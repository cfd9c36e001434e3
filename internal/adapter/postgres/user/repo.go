// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, username, email, password_hash, role, is_active, created_at, updated_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// A taken username or email maps to domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateRole changes the role of a user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`UPDATE users SET role = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, string(role),
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// SetActive enables or disables a user account.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`UPDATE users SET is_active = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, active,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdatePassword stores a new password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, "id", id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email", email)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "username", username)
}

func (r *Repo) getOne(ctx context.Context, column string, key any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, key)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

// List returns users ordered by creation time together with the total
// number of matches.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	where := sq.And{}
	if f.Role != nil {
		where = append(where, sq.Eq{"role": string(*f.Role)})
	}
	if f.IsActive != nil {
		where = append(where, sq.Eq{"is_active": *f.IsActive})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := psql.Select("count(*)").From("users").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count users: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "user", "count")
	}

	listSQL, listArgs, err := psql.Select(userColumns).From("users").Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "user", "list")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
