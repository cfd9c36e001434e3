package domain

import "fmt"

// Role is the access level of a user. Roles are ordered:
// a higher role may do everything a lower role may.
type Role string

const (
	RoleUser    Role = "user"
	RoleAnalyst Role = "analyst"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAnalyst, RoleAdmin:
		return true
	}
	return false
}

// Rank returns the position of the role in the hierarchy, or 0 if unknown.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleAnalyst:
		return 2
	case RoleAdmin:
		return 3
	}
	return 0
}

// AtLeast reports whether r is the same as or above min.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r.Rank() >= min.Rank()
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// ParseRole converts a raw string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// VerbalizationStatus tracks narrative generation for a trip.
type VerbalizationStatus string

const (
	VerbalizationUnverbalized VerbalizationStatus = "unverbalized"
	VerbalizationPending      VerbalizationStatus = "pending"
	VerbalizationVerbalized   VerbalizationStatus = "verbalized"
	VerbalizationFailed       VerbalizationStatus = "failed"
)

func (s VerbalizationStatus) String() string { return string(s) }

func (s VerbalizationStatus) IsValid() bool {
	switch s {
	case VerbalizationUnverbalized, VerbalizationPending, VerbalizationVerbalized, VerbalizationFailed:
		return true
	}
	return false
}

// VerbalizationStatuses lists every status in lifecycle order.
var VerbalizationStatuses = []VerbalizationStatus{
	VerbalizationUnverbalized, VerbalizationPending, VerbalizationVerbalized, VerbalizationFailed,
}

// SourcesOf returns the statuses from which next can be entered.
func SourcesOf(next VerbalizationStatus) []string {
	var out []string
	for _, s := range VerbalizationStatuses {
		if s.CanTransition(next) {
			out = append(out, s.String())
		}
	}
	return out
}

// CanTransition reports whether moving from s to next is allowed.
// Every fresh request enters pending; pending resolves to verbalized or failed.
func (s VerbalizationStatus) CanTransition(next VerbalizationStatus) bool {
	switch next {
	case VerbalizationPending:
		return s == VerbalizationUnverbalized || s == VerbalizationVerbalized || s == VerbalizationFailed
	case VerbalizationVerbalized, VerbalizationFailed:
		return s == VerbalizationPending
	}
	return false
}

// GeocodingSource records where a cached address came from.
type GeocodingSource string

const (
	GeocodingSourceGraphHopper GeocodingSource = "graphhopper"
	GeocodingSourceCache       GeocodingSource = "cache"
)

func (s GeocodingSource) String() string { return string(s) }

// AICallKind classifies a document in the AI call log.
type AICallKind string

const (
	AICallGeocode   AICallKind = "geocode"
	AICallNarrative AICallKind = "narrative"
)

func (k AICallKind) String() string { return string(k) }
