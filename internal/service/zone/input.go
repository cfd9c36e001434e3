package zone

import (
	"strings"
	"unicode/utf8"

	"github.com/paulmach/orb"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/geo"
)

// Field limits and list paging.
const (
	MaxNameLen        = 255
	MaxDescriptionLen = 2000
	DefaultListLimit  = 50
	MaxListLimit      = 200
)

// ZoneInput holds the writable fields of a zone. Boundary is a list of
// [lon, lat] pairs; the ring may be open or closed.
type ZoneInput struct {
	Name        string
	Description *string
	Boundary    [][2]float64
}

// normalize validates the input and returns the closed boundary ring.
func (i *ZoneInput) normalize() (orb.Ring, error) {
	i.Name = strings.TrimSpace(i.Name)

	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	ring, err := geo.NormalizeRing(i.Boundary)
	if err != nil {
		errs = append(errs, domain.NewFieldError("boundary", err))
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return ring, nil
}

// ListInput holds parameters for listing zones.
type ListInput struct {
	Name   string
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
