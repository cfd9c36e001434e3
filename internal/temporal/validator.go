// Package temporal checks time ordering for trips and their route points.
package temporal

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// ValidateRange fails with *domain.InvalidTimeRangeError unless end is
// strictly after start.
func ValidateRange(start, end time.Time) error {
	if !end.After(start) {
		return &domain.InvalidTimeRangeError{Start: start, End: end}
	}
	return nil
}

// ValidateRoute checks route points against the trip window. Points are
// considered in sequence-number order; the input slice is not modified.
// Sequences must be unique and within [1, domain.MaxRouteSequence],
// timestamps non-decreasing and within [start, end]. The reported Index is
// the position in points, not in the sorted order.
func ValidateRoute(start, end time.Time, points []domain.RoutePoint) error {
	if len(points) == 0 {
		return nil
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(points[a].Sequence, points[b].Sequence)
	})

	for k, idx := range order {
		p := points[idx]
		if p.Sequence < 1 || p.Sequence > domain.MaxRouteSequence {
			return &domain.UnorderedRouteError{
				Index:  idx,
				Reason: fmt.Sprintf("sequence %d must be between 1 and %d", p.Sequence, domain.MaxRouteSequence),
			}
		}
		if k == 0 {
			if p.Timestamp.Before(start) || p.Timestamp.After(end) {
				return outsideWindow(idx, p)
			}
			continue
		}
		prev := points[order[k-1]]
		if p.Sequence == prev.Sequence {
			return &domain.UnorderedRouteError{Index: idx, Reason: fmt.Sprintf("duplicate sequence %d", p.Sequence)}
		}
		if p.Timestamp.Before(start) || p.Timestamp.After(end) {
			return outsideWindow(idx, p)
		}
		if p.Timestamp.Before(prev.Timestamp) {
			return &domain.UnorderedRouteError{
				Index:  idx,
				Reason: fmt.Sprintf("timestamp %s is earlier than sequence %d", p.Timestamp.Format(time.RFC3339), prev.Sequence),
			}
		}
	}
	return nil
}

func outsideWindow(idx int, p domain.RoutePoint) error {
	return &domain.UnorderedRouteError{
		Index:  idx,
		Reason: fmt.Sprintf("timestamp %s outside trip window", p.Timestamp.Format(time.RFC3339)),
	}
}

// SortBySequence returns a copy of points ordered by sequence number.
func SortBySequence(points []domain.RoutePoint) []domain.RoutePoint {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b domain.RoutePoint) int {
		return cmp.Compare(a.Sequence, b.Sequence)
	})
	return sorted
}
