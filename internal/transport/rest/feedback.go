package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/feedback"
)

type feedbackService interface {
	Create(ctx context.Context, input feedback.CreateInput) (*domain.Feedback, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Feedback, error)
	Update(ctx context.Context, feedbackID uuid.UUID, input feedback.UpdateInput) (*domain.Feedback, error)
}

// FeedbackHandler serves analyst feedback endpoints.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type createFeedbackRequest struct {
	VerbalizedID  *uuid.UUID `json:"verbalized_id,omitempty"`
	Rating        *int       `json:"rating" validate:"required,gte=0,lte=5"`
	CorrectedText *string    `json:"corrected_text,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

type updateFeedbackRequest struct {
	Rating        *int    `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	CorrectedText *string `json:"corrected_text,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type feedbackResponse struct {
	ID            string    `json:"id"`
	TripID        string    `json:"trip_id"`
	VerbalizedID  *string   `json:"verbalized_id,omitempty"`
	AuthorID      string    `json:"author_id"`
	Rating        int       `json:"rating"`
	CorrectedText *string   `json:"corrected_text,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Create handles POST /trips/{id}/feedback.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req createFeedbackRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	fb, err := h.svc.Create(r.Context(), feedback.CreateInput{
		TripID:        tripID,
		VerbalizedID:  req.VerbalizedID,
		Rating:        *req.Rating,
		CorrectedText: req.CorrectedText,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFeedbackResponse(fb))
}

// List handles GET /trips/{id}/feedback.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	items, err := h.svc.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]feedbackResponse, len(items))
	for i := range items {
		out[i] = toFeedbackResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, listResponse[feedbackResponse]{Items: out, Total: len(out), Limit: len(out)})
}

// Update handles PATCH /feedback/{id}.
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateFeedbackRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	fb, err := h.svc.Update(r.Context(), id, feedback.UpdateInput{
		Rating:        req.Rating,
		CorrectedText: req.CorrectedText,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(fb))
}

func toFeedbackResponse(fb *domain.Feedback) feedbackResponse {
	resp := feedbackResponse{
		ID:            fb.ID.String(),
		TripID:        fb.TripID.String(),
		AuthorID:      fb.AuthorID.String(),
		Rating:        fb.Rating,
		CorrectedText: fb.CorrectedText,
		Notes:         fb.Notes,
		CreatedAt:     fb.CreatedAt,
		UpdatedAt:     fb.UpdatedAt,
	}
	if fb.VerbalizedID != nil {
		s := fb.VerbalizedID.String()
		resp.VerbalizedID = &s
	}
	return resp
}
