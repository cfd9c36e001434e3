package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/geo"
	"github.com/heartmarshall/tripnarrator/internal/service/zone"
)

type zoneService interface {
	Create(ctx context.Context, input zone.ZoneInput) (*domain.Zone, error)
	Update(ctx context.Context, zoneID uuid.UUID, input zone.ZoneInput) (*domain.Zone, error)
	Delete(ctx context.Context, zoneID uuid.UUID) error
	Get(ctx context.Context, zoneID uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, input zone.ListInput) ([]domain.Zone, int, error)
	TripsInZone(ctx context.Context, zoneID uuid.UUID) ([]domain.Trip, error)
}

// ZoneHandler serves zone endpoints.
type ZoneHandler struct {
	svc zoneService
	log *slog.Logger
}

// NewZoneHandler creates a ZoneHandler.
func NewZoneHandler(svc zoneService, logger *slog.Logger) *ZoneHandler {
	return &ZoneHandler{svc: svc, log: logger.With("handler", "zone")}
}

// zoneRequest carries the boundary as [lon, lat] pairs, GeoJSON order.
type zoneRequest struct {
	Name        string       `json:"name" validate:"required"`
	Description *string      `json:"description,omitempty"`
	Boundary    [][2]float64 `json:"boundary" validate:"required"`
}

type zoneResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Boundary    [][2]float64 `json:"boundary"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Create handles POST /zones.
func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req zoneRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	z, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toZoneResponse(z))
}

// Update handles PUT /zones/{id}.
func (h *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req zoneRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	z, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toZoneResponse(z))
}

// Delete handles DELETE /zones/{id}.
func (h *ZoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Get handles GET /zones/{id}.
func (h *ZoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	z, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toZoneResponse(z))
}

// List handles GET /zones?name=&limit=&offset=.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	in := zone.ListInput{Name: r.URL.Query().Get("name")}
	var err error
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if in.Offset, err = queryInt(r, "offset"); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	zones, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]zoneResponse, len(zones))
	for i := range zones {
		items[i] = toZoneResponse(&zones[i])
	}
	limit := in.Limit
	if limit == 0 {
		limit = zone.DefaultListLimit
	}
	writeJSON(w, http.StatusOK, listResponse[zoneResponse]{Items: items, Total: total, Limit: limit, Offset: in.Offset})
}

// Trips handles GET /zones/{id}/trips: the caller's trips that start
// or end inside the zone.
func (h *ZoneHandler) Trips(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	trips, err := h.svc.TripsInZone(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	items := toTripResponses(trips)
	writeJSON(w, http.StatusOK, listResponse[tripResponse]{Items: items, Total: len(items), Limit: len(items)})
}

func (req zoneRequest) input() zone.ZoneInput {
	return zone.ZoneInput{
		Name:        req.Name,
		Description: req.Description,
		Boundary:    req.Boundary,
	}
}

func toZoneResponse(z *domain.Zone) zoneResponse {
	return zoneResponse{
		ID:          z.ID.String(),
		Name:        z.Name,
		Description: z.Description,
		Boundary:    geo.RingPairs(z.Boundary),
		CreatedBy:   z.CreatedBy.String(),
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}
