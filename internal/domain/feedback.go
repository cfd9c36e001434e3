package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for feedback.
const (
	MinFeedbackRating = 0
	MaxFeedbackRating = 5
)

// Feedback is an analyst's review of a trip or one of its narratives.
// Entries are append-only: a new entry never invalidates older ones.
type Feedback struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	VerbalizedID  *uuid.UUID
	AuthorID      uuid.UUID
	Rating        int
	CorrectedText *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FeedbackPatch carries the optional fields of a feedback update.
// Nil means unchanged.
type FeedbackPatch struct {
	Rating        *int
	CorrectedText *string
	Notes         *string
}
