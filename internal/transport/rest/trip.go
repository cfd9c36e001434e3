package rest

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/trip"
)

type tripService interface {
	Create(ctx context.Context, input trip.CreateInput) (*domain.Trip, error)
	Get(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error)
	Search(ctx context.Context, input trip.SearchInput) ([]domain.Trip, int, error)
	UpdateTimes(ctx context.Context, tripID uuid.UUID, input trip.UpdateTimesInput) (*domain.Trip, error)
	Delete(ctx context.Context, tripID uuid.UUID) error
}

// TripHandler serves trip endpoints.
type TripHandler struct {
	svc tripService
	log *slog.Logger
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(svc tripService, logger *slog.Logger) *TripHandler {
	return &TripHandler{svc: svc, log: logger.With("handler", "trip")}
}

type coordinateDTO struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lon *float64 `json:"lon" validate:"required"`
}

type routePointDTO struct {
	Sequence  int       `json:"sequence" validate:"gte=1,lte=2147483647"`
	Lat       *float64  `json:"lat" validate:"required"`
	Lon       *float64  `json:"lon" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	SpeedKmh  *float64  `json:"speed_kmh,omitempty"`
	AltitudeM *float64  `json:"altitude_m,omitempty"`
}

type createTripRequest struct {
	Start     *coordinateDTO  `json:"start" validate:"required"`
	End       *coordinateDTO  `json:"end" validate:"required"`
	StartTime time.Time       `json:"start_time" validate:"required"`
	EndTime   time.Time       `json:"end_time" validate:"required"`
	Points    []routePointDTO `json:"points" validate:"dive"`
}

type updateTimesRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

type coordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type routePointResponse struct {
	Sequence  int       `json:"sequence"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timestamp time.Time `json:"timestamp"`
	SpeedKmh  *float64  `json:"speed_kmh,omitempty"`
	AltitudeM *float64  `json:"altitude_m,omitempty"`
}

type tripResponse struct {
	ID                  string               `json:"id"`
	OwnerID             string               `json:"owner_id"`
	Start               coordinateResponse   `json:"start"`
	End                 coordinateResponse   `json:"end"`
	StartTime           time.Time            `json:"start_time"`
	EndTime             time.Time            `json:"end_time"`
	Duration            string               `json:"duration"`
	DurationMinutes     int64                `json:"duration_minutes"`
	DistanceM           float64              `json:"distance_m"`
	VerbalizationStatus string               `json:"verbalization_status"`
	VerbalizationStale  bool                 `json:"verbalization_stale"`
	Points              []routePointResponse `json:"points,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// Create handles POST /trips.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripResponse(t, true))
}

// Get handles GET /trips/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(t, true))
}

// Search handles GET /trips?owner_id=&from=&to=&limit=&offset=.
// Route points are omitted from list items.
func (h *TripHandler) Search(w http.ResponseWriter, r *http.Request) {
	in, err := parseTripSearch(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	trips, total, err := h.svc.Search(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	limit := in.Limit
	if limit == 0 {
		limit = trip.DefaultSearchLimit
	}
	writeJSON(w, http.StatusOK, listResponse[tripResponse]{
		Items:  toTripResponses(trips),
		Total:  total,
		Limit:  limit,
		Offset: in.Offset,
	})
}

// UpdateTimes handles PUT /trips/{id}/times.
func (h *TripHandler) UpdateTimes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateTimesRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.UpdateTimes(r.Context(), id, trip.UpdateTimesInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(t, false))
}

// Delete handles DELETE /trips/{id}.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (req createTripRequest) input() trip.CreateInput {
	in := trip.CreateInput{
		StartLat:  *req.Start.Lat,
		StartLon:  *req.Start.Lon,
		EndLat:    *req.End.Lat,
		EndLon:    *req.End.Lon,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if len(req.Points) > 0 {
		in.Points = make([]trip.PointInput, len(req.Points))
		for i, p := range req.Points {
			in.Points[i] = trip.PointInput{
				Sequence:  p.Sequence,
				Lat:       *p.Lat,
				Lon:       *p.Lon,
				Timestamp: p.Timestamp,
				SpeedKmh:  p.SpeedKmh,
				AltitudeM: p.AltitudeM,
			}
		}
	}
	return in
}

func parseTripSearch(r *http.Request) (trip.SearchInput, error) {
	var in trip.SearchInput
	var err error

	if in.OwnerID, err = queryUUID(r, "owner_id"); err != nil {
		return in, err
	}
	if in.From, err = queryTime(r, "from"); err != nil {
		return in, err
	}
	if in.To, err = queryTime(r, "to"); err != nil {
		return in, err
	}
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		return in, err
	}
	if in.Offset, err = queryInt(r, "offset"); err != nil {
		return in, err
	}
	return in, nil
}

// formatDuration is time.Duration.String without a trailing zero-seconds
// part: 8h0m0s becomes 8h0m; 1h2m3s and 45s are unchanged.
func formatDuration(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		return strings.TrimSuffix(s, "0s")
	}
	return s
}

func toTripResponse(t *domain.Trip, withPoints bool) tripResponse {
	d := t.Duration()
	resp := tripResponse{
		ID:                  t.ID.String(),
		OwnerID:             t.OwnerID.String(),
		Start:               coordinateResponse{Lat: t.Start.Lat, Lon: t.Start.Lon},
		End:                 coordinateResponse{Lat: t.End.Lat, Lon: t.End.Lon},
		StartTime:           t.StartTime,
		EndTime:             t.EndTime,
		Duration:            formatDuration(d),
		DurationMinutes:     int64(d / time.Minute),
		DistanceM:           math.Round(t.DistanceMeters()*10) / 10,
		VerbalizationStatus: t.VerbalizationStatus.String(),
		VerbalizationStale:  t.VerbalizationStale,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
	if withPoints && len(t.Points) > 0 {
		resp.Points = make([]routePointResponse, len(t.Points))
		for i, p := range t.Points {
			resp.Points[i] = routePointResponse{
				Sequence:  p.Sequence,
				Lat:       p.Coordinate.Lat,
				Lon:       p.Coordinate.Lon,
				Timestamp: p.Timestamp,
				SpeedKmh:  p.SpeedKmh,
				AltitudeM: p.AltitudeM,
			}
		}
	}
	return resp
}

func toTripResponses(trips []domain.Trip) []tripResponse {
	out := make([]tripResponse, len(trips))
	for i := range trips {
		out[i] = toTripResponse(&trips[i], false)
	}
	return out
}
