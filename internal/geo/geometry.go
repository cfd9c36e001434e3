package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// RingToWKT renders a closed ring as a single-ring WKT POLYGON,
// the form PostGIS accepts in ST_GeogFromText.
func RingToWKT(ring orb.Ring) string {
	return wkt.MarshalString(orb.Polygon{ring})
}

// RingFromWKT parses the outer ring of a WKT POLYGON.
func RingFromWKT(s string) (orb.Ring, error) {
	poly, err := wkt.UnmarshalPolygon(s)
	if err != nil {
		return nil, fmt.Errorf("parse polygon wkt: %w", err)
	}
	if len(poly) == 0 {
		return nil, fmt.Errorf("parse polygon wkt: empty polygon")
	}
	return poly[0], nil
}

// Contains reports whether c lies inside ring. Points on the edge count as inside.
func Contains(ring orb.Ring, c domain.Coordinate) bool {
	return planar.RingContains(ring, c.Point())
}

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b domain.Coordinate) float64 {
	return geo.DistanceHaversine(a.Point(), b.Point())
}

// Round rounds both axes of c to the given number of decimals.
func Round(c domain.Coordinate, decimals int) domain.Coordinate {
	f := math.Pow(10, float64(decimals))
	return domain.Coordinate{
		Lat: math.Round(c.Lat*f) / f,
		Lon: math.Round(c.Lon*f) / f,
	}
}
