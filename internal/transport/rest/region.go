package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/region"
)

type regionService interface {
	Create(ctx context.Context, input region.RegionInput) (*domain.Region, error)
	Update(ctx context.Context, regionID uuid.UUID, input region.RegionInput) (*domain.Region, error)
	Delete(ctx context.Context, regionID uuid.UUID) error
	Get(ctx context.Context, regionID uuid.UUID) (*domain.Region, error)
	List(ctx context.Context, input region.ListInput) ([]domain.Region, error)
}

// RegionHandler serves region endpoints.
type RegionHandler struct {
	svc regionService
	log *slog.Logger
}

// NewRegionHandler creates a RegionHandler.
func NewRegionHandler(svc regionService, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{svc: svc, log: logger.With("handler", "region")}
}

type regionRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description *string     `json:"description,omitempty"`
	ZoneIDs     []uuid.UUID `json:"zone_ids"`
}

type regionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ZoneIDs     []string  `json:"zone_ids"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Create handles POST /regions.
func (h *RegionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req regionRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	reg, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRegionResponse(reg))
}

// Update handles PUT /regions/{id}. The zone list is replaced.
func (h *RegionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req regionRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	reg, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegionResponse(reg))
}

// Delete handles DELETE /regions/{id}.
func (h *RegionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /regions/{id}.
func (h *RegionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	reg, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegionResponse(reg))
}

// List handles GET /regions?limit=&offset=.
func (h *RegionHandler) List(w http.ResponseWriter, r *http.Request) {
	var in region.ListInput
	var err error
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if in.Offset, err = queryInt(r, "offset"); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	regions, err := h.svc.List(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]regionResponse, len(regions))
	for i := range regions {
		items[i] = toRegionResponse(&regions[i])
	}
	limit := in.Limit
	if limit == 0 {
		limit = region.DefaultListLimit
	}
	writeJSON(w, http.StatusOK, listResponse[regionResponse]{Items: items, Total: len(items), Limit: limit, Offset: in.Offset})
}

func (req regionRequest) input() region.RegionInput {
	return region.RegionInput{
		Name:        req.Name,
		Description: req.Description,
		ZoneIDs:     req.ZoneIDs,
	}
}

func toRegionResponse(reg *domain.Region) regionResponse {
	ids := make([]string, len(reg.ZoneIDs))
	for i, id := range reg.ZoneIDs {
		ids[i] = id.String()
	}
	return regionResponse{
		ID:          reg.ID.String(),
		Name:        reg.Name,
		Description: reg.Description,
		ZoneIDs:     ids,
		CreatedBy:   reg.CreatedBy.String(),
		CreatedAt:   reg.CreatedAt,
		UpdatedAt:   reg.UpdatedAt,
	}
}
