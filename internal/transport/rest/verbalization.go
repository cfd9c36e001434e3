package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
)

type verbalizationService interface {
	Verbalize(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)
	Latest(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)
	History(ctx context.Context, tripID uuid.UUID) ([]domain.AICallRecord, error)
}

// VerbalizationHandler serves narrative generation endpoints.
type VerbalizationHandler struct {
	svc verbalizationService
	log *slog.Logger
}

// NewVerbalizationHandler creates a VerbalizationHandler.
func NewVerbalizationHandler(svc verbalizationService, logger *slog.Logger) *VerbalizationHandler {
	return &VerbalizationHandler{svc: svc, log: logger.With("handler", "verbalization")}
}

type verbalizedTripResponse struct {
	ID               string    `json:"id"`
	TripID           string    `json:"trip_id"`
	Narrative        string    `json:"narrative"`
	StartAddress     string    `json:"start_address"`
	EndAddress       string    `json:"end_address"`
	Model            string    `json:"model"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	GeneratedAt      time.Time `json:"generated_at"`
}

type aiCallResponse struct {
	Kind      string    `json:"kind"`
	Prompt    string    `json:"prompt"`
	Model     string    `json:"model,omitempty"`
	Response  string    `json:"response,omitempty"`
	Error     string    `json:"error,omitempty"`
	LatencyMs int64     `json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// Verbalize handles POST /trips/{id}/verbalize. The call blocks until
// the narrative is generated or the run fails.
func (h *VerbalizationHandler) Verbalize(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	v, err := h.svc.Verbalize(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVerbalizedTripResponse(v))
}

// Latest handles GET /trips/{id}/verbalization.
func (h *VerbalizationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	v, err := h.svc.Latest(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVerbalizedTripResponse(v))
}

// History handles GET /trips/{id}/verbalization/calls.
func (h *VerbalizationHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	calls, err := h.svc.History(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]aiCallResponse, len(calls))
	for i, c := range calls {
		items[i] = aiCallResponse{
			Kind:      string(c.Kind),
			Prompt:    c.Prompt,
			Model:     c.Model,
			Response:  c.Response,
			Error:     c.Error,
			LatencyMs: c.LatencyMs,
			CreatedAt: c.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, listResponse[aiCallResponse]{Items: items, Total: len(items), Limit: len(items)})
}

func toVerbalizedTripResponse(v *domain.VerbalizedTrip) verbalizedTripResponse {
	return verbalizedTripResponse{
		ID:               v.ID.String(),
		TripID:           v.TripID.String(),
		Narrative:        v.Narrative,
		StartAddress:     v.StartAddress,
		EndAddress:       v.EndAddress,
		Model:            v.Model,
		ProcessingTimeMs: v.ProcessingTimeMs,
		GeneratedAt:      v.GeneratedAt,
	}
}
