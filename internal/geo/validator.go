// Package geo holds the coordinate and polygon checks applied to trips and
// zones before anything is written. All functions are pure.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// Valid coordinate bounds in decimal degrees.
const (
	MinLat = -90.0
	MaxLat = 90.0
	MinLon = -180.0
	MaxLon = 180.0
)

// MinRingVertices is the smallest number of distinct vertices a boundary needs.
const MinRingVertices = 3

// ValidateCoordinate fails with *domain.OutOfRangeError unless lat is in
// [-90, 90] and lon is in [-180, 180]. NaN is always out of range.
func ValidateCoordinate(field string, lat, lon float64) error {
	if math.IsNaN(lat) || lat < MinLat || lat > MaxLat {
		return &domain.OutOfRangeError{Field: field + ".lat", Value: lat, Min: MinLat, Max: MaxLat}
	}
	if math.IsNaN(lon) || lon < MinLon || lon > MaxLon {
		return &domain.OutOfRangeError{Field: field + ".lon", Value: lon, Min: MinLon, Max: MaxLon}
	}
	return nil
}

// NormalizeRing validates a candidate boundary given as [lon, lat] pairs and
// returns it as a closed ring. An open ring is closed by appending its first
// point, so an open ring and its closed form normalize to the same value.
func NormalizeRing(points [][2]float64) (orb.Ring, error) {
	ring := make(orb.Ring, 0, len(points)+1)
	for i, p := range points {
		if err := ValidateCoordinate(fmt.Sprintf("boundary[%d]", i), p[1], p[0]); err != nil {
			return nil, err
		}
		ring = append(ring, orb.Point{p[0], p[1]})
	}

	if n := distinctVertices(ring); n < MinRingVertices {
		return nil, &domain.InvalidPolygonError{
			Reason: fmt.Sprintf("need at least %d distinct vertices, got %d", MinRingVertices, n),
		}
	}

	if !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring, nil
}

// RingPairs converts a ring back into [lon, lat] pairs.
func RingPairs(ring orb.Ring) [][2]float64 {
	out := make([][2]float64, len(ring))
	for i, p := range ring {
		out[i] = [2]float64{p[0], p[1]}
	}
	return out
}

func distinctVertices(ring orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}
