// Package feedback implements the Feedback repository using PostgreSQL.
package feedback

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Repo provides feedback persistence.
type Repo struct {
	db postgres.DB
}

// New creates a new feedback repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const feedbackColumns = `id, trip_id, verbalized_id, author_id, rating, corrected_text, notes, created_at, updated_at`

// Create inserts a feedback entry.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx,
		`INSERT INTO feedbacks (`+feedbackColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+feedbackColumns,
		f.ID, f.TripID, f.VerbalizedID, f.AuthorID, f.Rating, f.CorrectedText, f.Notes, f.CreatedAt, f.UpdatedAt,
	)

	created, err := scanFeedback(row)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", f.ID)
	}
	return created, nil
}

// Update applies the non-nil fields of p.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.FeedbackPatch) (*domain.Feedback, error) {
	b := psql.Update("feedbacks").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + feedbackColumns)
	if p.Rating != nil {
		b = b.Set("rating", *p.Rating)
	}
	if p.CorrectedText != nil {
		b = b.Set("corrected_text", *p.CorrectedText)
	}
	if p.Notes != nil {
		b = b.Set("notes", *p.Notes)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update feedback: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	updated, err := scanFeedback(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "feedback", id)
	}
	return updated, nil
}

// GetByID returns a feedback entry.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	f, err := scanFeedback(q.QueryRow(ctx, `SELECT `+feedbackColumns+` FROM feedbacks WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "feedback", id)
	}
	return f, nil
}

// ListByTrip returns all feedback for a trip, oldest first.
func (r *Repo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+feedbackColumns+` FROM feedbacks WHERE trip_id = $1 ORDER BY created_at, id`,
		tripID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", tripID)
	}
	defer rows.Close()

	items := make([]domain.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return items, nil
}

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	var (
		f      domain.Feedback
		rating int16
	)
	if err := row.Scan(&f.ID, &f.TripID, &f.VerbalizedID, &f.AuthorID, &rating,
		&f.CorrectedText, &f.Notes, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.Rating = int(rating)
	return &f, nil
}
