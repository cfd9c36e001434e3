package trip

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/geo"
	"github.com/heartmarshall/tripnarrator/internal/temporal"
)

// Search pagination bounds.
const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 1000
	MaxRoutePoints     = 10000
)

// PointInput is one route sample in a create request.
type PointInput struct {
	Sequence  int
	Lat       float64
	Lon       float64
	Timestamp time.Time
	SpeedKmh  *float64
	AltitudeM *float64
}

// CreateInput holds parameters for trip creation.
type CreateInput struct {
	StartLat  float64
	StartLon  float64
	EndLat    float64
	EndLon    float64
	StartTime time.Time
	EndTime   time.Time
	Points    []PointInput
}

// Validate runs every geo and temporal check and reports all violations
// in one ValidationError. Each field error keeps its typed cause.
func (i CreateInput) Validate() error {
	var (
		errs        []domain.FieldError
		seqOverflow bool
	)

	if err := geo.ValidateCoordinate("start", i.StartLat, i.StartLon); err != nil {
		errs = append(errs, domain.NewFieldError("start", err))
	}
	if err := geo.ValidateCoordinate("end", i.EndLat, i.EndLon); err != nil {
		errs = append(errs, domain.NewFieldError("end", err))
	}

	rangeErr := temporal.ValidateRange(i.StartTime, i.EndTime)
	if rangeErr != nil {
		errs = append(errs, domain.NewFieldError("end_time", rangeErr))
	}

	if len(i.Points) > MaxRoutePoints {
		errs = append(errs, domain.FieldError{Field: "points", Message: fmt.Sprintf("at most %d points allowed", MaxRoutePoints)})
	}
	for idx, p := range i.Points {
		field := fmt.Sprintf("points[%d]", idx)
		if err := geo.ValidateCoordinate(field, p.Lat, p.Lon); err != nil {
			errs = append(errs, domain.NewFieldError(field, err))
		}
		if p.SpeedKmh != nil && *p.SpeedKmh < 0 {
			errs = append(errs, domain.FieldError{Field: field + ".speed_kmh", Message: "must be non-negative"})
		}
		if p.Sequence > domain.MaxRouteSequence {
			errs = append(errs, domain.FieldError{
				Field:   field + ".sequence",
				Message: fmt.Sprintf("must be at most %d", domain.MaxRouteSequence),
			})
			seqOverflow = true
		}
	}

	// Route ordering is only meaningful against a valid window.
	if rangeErr == nil && !seqOverflow {
		if err := temporal.ValidateRoute(i.StartTime, i.EndTime, i.toRoutePoints(uuid.Nil)); err != nil {
			errs = append(errs, domain.NewFieldError("points", err))
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// routePoints returns the input points ordered by sequence.
func (i CreateInput) routePoints(tripID uuid.UUID) []domain.RoutePoint {
	if len(i.Points) == 0 {
		return nil
	}
	return temporal.SortBySequence(i.toRoutePoints(tripID))
}

// toRoutePoints keeps the caller's order so error indexes match the request.
func (i CreateInput) toRoutePoints(tripID uuid.UUID) []domain.RoutePoint {
	if len(i.Points) == 0 {
		return nil
	}
	out := make([]domain.RoutePoint, len(i.Points))
	for idx, p := range i.Points {
		out[idx] = domain.RoutePoint{
			TripID:     tripID,
			Sequence:   p.Sequence,
			Coordinate: domain.Coordinate{Lat: p.Lat, Lon: p.Lon},
			Timestamp:  p.Timestamp.UTC(),
			SpeedKmh:   p.SpeedKmh,
			AltitudeM:  p.AltitudeM,
		}
	}
	return out
}

// SearchInput holds parameters for trip search. A nil OwnerID means the
// caller's own trips for users and all trips for admins.
type SearchInput struct {
	OwnerID *uuid.UUID
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// Validate validates the search input.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	} else if i.Limit > MaxSearchLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be at most %d", MaxSearchLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTimesInput corrects the time window of an existing trip.
type UpdateTimesInput struct {
	StartTime time.Time
	EndTime   time.Time
}
