package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrUpstream           = errors.New("upstream service error")
)

// Sentinels for the geo and temporal validators. Each typed error below
// matches its own sentinel and ErrValidation.
var (
	ErrOutOfRange       = errors.New("coordinate out of range")
	ErrInvalidPolygon   = errors.New("invalid polygon")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrUnorderedRoute   = errors.New("unordered route")
)

// FieldError describes a validation error for a specific field.
// Cause keeps the typed validator error when there is one.
type FieldError struct {
	Field   string
	Message string
	Cause   error
}

// NewFieldError builds a FieldError from a validator error.
func NewFieldError(field string, err error) FieldError {
	return FieldError{Field: field, Message: err.Error(), Cause: err}
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

// Unwrap exposes ErrValidation and every typed cause, so errors.As can reach
// an OutOfRangeError buried in an aggregated trip validation.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors)+1)
	errs = append(errs, ErrValidation)
	for _, fe := range e.Errors {
		if fe.Cause != nil {
			errs = append(errs, fe.Cause)
		}
	}
	return errs
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// OutOfRangeError reports a latitude or longitude outside its valid range.
type OutOfRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %v is outside [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() []error { return []error{ErrOutOfRange, ErrValidation} }

// InvalidPolygonError reports a boundary ring that cannot form a polygon.
type InvalidPolygonError struct {
	Reason string
}

func (e *InvalidPolygonError) Error() string {
	return "invalid polygon: " + e.Reason
}

func (e *InvalidPolygonError) Unwrap() []error { return []error{ErrInvalidPolygon, ErrValidation} }

// InvalidTimeRangeError reports an end time that is not after the start time.
type InvalidTimeRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidTimeRangeError) Error() string {
	return fmt.Sprintf("end time %s must be after start time %s",
		e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}

func (e *InvalidTimeRangeError) Unwrap() []error { return []error{ErrInvalidTimeRange, ErrValidation} }

// UnorderedRouteError reports a route point that breaks sequence or time order.
// Index is the position of the offending point in the caller's input.
type UnorderedRouteError struct {
	Index  int
	Reason string
}

func (e *UnorderedRouteError) Error() string {
	return fmt.Sprintf("route point %d: %s", e.Index, e.Reason)
}

func (e *UnorderedRouteError) Unwrap() []error { return []error{ErrUnorderedRoute, ErrValidation} }

// UpstreamServiceError wraps a failure of an external collaborator
// (reverse geocoder, text generator). Callers may retry.
type UpstreamServiceError struct {
	Service string
	Err     error
}

func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Service, e.Err)
}

func (e *UpstreamServiceError) Unwrap() []error { return []error{ErrUpstream, e.Err} }

// NewUpstreamError wraps err as an UpstreamServiceError for service.
func NewUpstreamError(service string, err error) *UpstreamServiceError {
	return &UpstreamServiceError{Service: service, Err: err}
}
