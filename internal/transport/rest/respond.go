package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// maxBodyBytes bounds request bodies. A trip with the maximum number of
// route points fits comfortably.
const maxBodyBytes = 8 << 20

// Error codes of the JSON error envelope.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeUnauthorized       = "UNAUTHORIZED"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeForbidden          = "FORBIDDEN"
	codeNotFound           = "NOT_FOUND"
	codeConflict           = "CONFLICT"
	codeUpstream           = "UPSTREAM_ERROR"
	codeInternal           = "INTERNAL_ERROR"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Fields  []fieldDetail `json:"fields,omitempty"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// respondError maps a service error onto the HTTP error envelope.
// Unknown errors are logged and reported as 500 without details.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		ue *domain.UpstreamServiceError
	)
	switch {
	case errors.As(err, &ve):
		fields := make([]fieldDetail, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = fieldDetail{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Code:    codeValidation,
			Message: ve.Error(),
			Fields:  fields,
		}})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.As(err, &ue):
		log.WarnContext(r.Context(), "upstream failure",
			slog.String("service", ue.Service),
			slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, codeUpstream, ue.Service+" is unavailable, try again later")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, codeInvalidCredentials, "invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "conflicts with the current state of the resource")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// decode reads a JSON body into dst and validates it. Unknown fields are
// rejected.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return validateStruct(dst)
}

// pathID parses the named chi URL parameter as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryTime reads an optional RFC 3339 query parameter.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an RFC 3339 timestamp")
	}
	return &t, nil
}

// queryUUID reads an optional UUID query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}

// queryBool reads an optional boolean query parameter.
func queryBool(r *http.Request, name string) (*bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a boolean")
	}
	return &b, nil
}

// listResponse wraps a page of items with the total count.
type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
