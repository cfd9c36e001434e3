package region

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

const (
	MaxNameLen        = 255
	MaxDescriptionLen = 2000
	MaxZones          = 500
	DefaultListLimit  = 50
	MaxListLimit      = 200
)

// RegionInput holds the writable fields of a region.
type RegionInput struct {
	Name        string
	Description *string
	ZoneIDs     []uuid.UUID
}

// normalize trims the name, drops duplicate zone ids and validates the result.
func (i *RegionInput) normalize() error {
	i.Name = strings.TrimSpace(i.Name)
	i.ZoneIDs = dedupe(i.ZoneIDs)

	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.ZoneIDs) > MaxZones {
		errs = append(errs, domain.FieldError{Field: "zone_ids", Message: "too many zones"})
	}
	for _, id := range i.ZoneIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "zone_ids", Message: "must not contain a nil id"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ListInput holds parameters for listing regions.
type ListInput struct {
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
