// Package docstore holds what the AI call log backends share.
package docstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// DefaultListLimit caps ListByTrip when the caller passes a non-positive limit.
const DefaultListLimit = 100

// Store is the append-only AI call log.
type Store interface {
	Append(ctx context.Context, rec domain.AICallRecord) error
	ListByTrip(ctx context.Context, tripID uuid.UUID, limit int) ([]domain.AICallRecord, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// NormalizeLimit applies DefaultListLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}
