package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerbalizedTrip is a generated narrative for a trip.
type VerbalizedTrip struct {
	ID               uuid.UUID
	TripID           uuid.UUID
	Narrative        string
	StartAddress     string
	EndAddress       string
	Model            string
	ProcessingTimeMs int64
	GeneratedAt      time.Time
}

// Location is a cached reverse-geocoding result.
type Location struct {
	ID         uuid.UUID
	Lat        float64
	Lon        float64
	Address    string
	City       *string
	State      *string
	Country    *string
	PostalCode *string
	Source     GeocodingSource
	CreatedAt  time.Time
}

// AICallRecord is one entry of the append-only external call log
// kept in the document store.
type AICallRecord struct {
	TripID    uuid.UUID
	Kind      AICallKind
	Prompt    string
	Model     string
	Response  string
	Error     string
	LatencyMs int64
	CreatedAt time.Time
}

// Completion is generated text and the model that produced it.
type Completion struct {
	Text  string
	Model string
}
