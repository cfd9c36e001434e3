package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Point converts the coordinate to an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// CoordinateFromPoint converts an orb point back into a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lon: p.Lon()}
}

// Trip is a recorded journey owned by a single user.
type Trip struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Start     Coordinate
	End       Coordinate
	StartTime time.Time
	EndTime   time.Time
	Points    []RoutePoint

	// VerbalizationStale is set when trip times change after a narrative exists.
	VerbalizationStatus VerbalizationStatus
	VerbalizationStale  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the elapsed time between start and end.
func (t *Trip) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime)
}

// DistanceMeters returns the great-circle length of the path
// start -> route points -> end.
func (t *Trip) DistanceMeters() float64 {
	path := make([]orb.Point, 0, len(t.Points)+2)
	path = append(path, t.Start.Point())
	for _, p := range t.Points {
		path = append(path, p.Coordinate.Point())
	}
	path = append(path, t.End.Point())

	var total float64
	for i := 1; i < len(path); i++ {
		total += geo.DistanceHaversine(path[i-1], path[i])
	}
	return total
}

// MaxRouteSequence is the largest sequence number the route_points column holds.
const MaxRouteSequence = math.MaxInt32

// RoutePoint is a single timestamped GPS sample belonging to a trip.
type RoutePoint struct {
	TripID     uuid.UUID
	Sequence   int
	Coordinate Coordinate
	Timestamp  time.Time
	SpeedKmh   *float64
	AltitudeM  *float64
}

// TripFilter narrows a trip search. A nil OwnerID means all owners.
type TripFilter struct {
	OwnerID *uuid.UUID
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}
