package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Zone is a named polygonal area drawn by an analyst.
// Boundary is always a closed ring.
type Zone struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Boundary    orb.Ring
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Region groups several zones under one name.
type Region struct {
	ID          uuid.UUID
	Name        string
	Description *string
	ZoneIDs     []uuid.UUID
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
