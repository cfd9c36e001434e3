package rest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator. Field names are reported by
// their JSON tag so errors match the request body.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateStruct checks the validate tags of a request DTO and converts
// failures into a domain.ValidationError.
func validateStruct(v any) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", err.Error())
	}

	fields := make([]domain.FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = domain.FieldError{Field: fieldPath(fe), Message: translate(fe)}
	}
	return domain.NewValidationErrors(fields)
}

// fieldPath drops the root struct name from the namespace:
// "createTripRequest.points[2].lat" becomes "points[2].lat".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

var messageTemplates = map[string]string{
	"required":  "required",
	"email":     "must be a valid email address",
	"uuid":      "must be a UUID",
	"latitude":  "must be a valid latitude (-90 to 90)",
	"longitude": "must be a valid longitude (-180 to 180)",
}

var paramTemplates = map[string]string{
	"oneof": "must be one of: %s",
	"gte":   "must be greater than or equal to %s",
	"lte":   "must be less than or equal to %s",
	"gt":    "must be greater than %s",
	"lt":    "must be less than %s",
}

func translate(fe validator.FieldError) string {
	if msg, ok := messageTemplates[fe.Tag()]; ok {
		return msg
	}
	if tmpl, ok := paramTemplates[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Param())
	}

	unit := ""
	switch fe.Kind() {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = " items"
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
