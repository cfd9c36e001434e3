package verbalization

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/geo"
	"github.com/heartmarshall/tripnarrator/internal/metrics"
)

// statusWriteTimeout bounds the failed-status write, which runs even when
// the request context is already done.
const statusWriteTimeout = 5 * time.Second

// Verbalize generates and stores a narrative for a trip.
//
// The trip is claimed (moved to pending), both endpoints are resolved to
// addresses (cache first), and the generator writes the story. On success the
// narrative is stored and the trip becomes verbalized. On an upstream
// failure the trip becomes failed, nothing else is stored and the
// *domain.UpstreamServiceError is returned. There are no retries. A run
// still pending after Config.StaleRunAfter is presumed dead and can be
// claimed again; a younger one yields ErrConflict.
func (s *Service) Verbalize(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error) {
	id, err := access.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("verbalization.Verbalize get trip: %w", err)
	}
	if err := s.gate.Check(id, opVerbalize, trip.OwnerID); err != nil {
		return nil, err
	}

	// Conditional update: at most one live run per trip.
	if err := s.trips.ClaimVerbalization(ctx, tripID, s.cfg.StaleRunAfter); err != nil {
		return nil, fmt.Errorf("verbalization.Verbalize claim: %w", err)
	}

	began := time.Now()
	result, err := s.generate(ctx, trip)
	if err != nil {
		s.markFailed(ctx, tripID, err)
		return nil, fmt.Errorf("verbalization.Verbalize: %w", err)
	}
	result.ProcessingTimeMs = time.Since(began).Milliseconds()

	var saved *domain.VerbalizedTrip
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.verbalizations.Create(txCtx, result)
		if err != nil {
			return err
		}
		return s.trips.SetVerbalizationStatus(txCtx, tripID, domain.VerbalizationVerbalized)
	})
	if err != nil {
		s.markFailed(ctx, tripID, err)
		return nil, fmt.Errorf("verbalization.Verbalize save: %w", err)
	}

	metrics.Verbalizations.WithLabelValues(domain.VerbalizationVerbalized.String()).Inc()
	s.log.InfoContext(ctx, "trip verbalized",
		slog.String("trip_id", tripID.String()),
		slog.String("model", saved.Model),
		slog.Int64("processing_ms", saved.ProcessingTimeMs))

	return saved, nil
}

// generate resolves both endpoints and asks the narrator for the story.
func (s *Service) generate(ctx context.Context, trip *domain.Trip) (*domain.VerbalizedTrip, error) {
	startAddr, err := s.resolve(ctx, trip.ID, trip.Start)
	if err != nil {
		return nil, fmt.Errorf("resolve start: %w", err)
	}
	endAddr, err := s.resolve(ctx, trip.ID, trip.End)
	if err != nil {
		return nil, fmt.Errorf("resolve end: %w", err)
	}

	prompt := buildPrompt(trip, startAddr, endAddr)

	began := time.Now()
	out, err := s.narrator.Generate(ctx, systemPrompt, prompt)
	rec := domain.AICallRecord{
		TripID:    trip.ID,
		Kind:      domain.AICallNarrative,
		Prompt:    prompt,
		Model:     s.narrator.Model(),
		LatencyMs: time.Since(began).Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	if err != nil {
		rec.Error = err.Error()
		s.appendCall(ctx, rec)
		return nil, err
	}
	if out.Model != "" {
		rec.Model = out.Model
	}
	rec.Response = out.Text
	s.appendCall(ctx, rec)

	return &domain.VerbalizedTrip{
		ID:           uuid.New(),
		TripID:       trip.ID,
		Narrative:    out.Text,
		StartAddress: startAddr,
		EndAddress:   endAddr,
		Model:        rec.Model,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// resolve returns the address of c, consulting the location cache before
// the geocoder. Cache read and write failures are logged and treated as a miss.
func (s *Service) resolve(ctx context.Context, tripID uuid.UUID, c domain.Coordinate) (string, error) {
	key := geo.Round(c, s.cfg.CachePrecision)

	cached, err := s.locations.Get(ctx, key.Lat, key.Lon)
	switch {
	case err == nil:
		metrics.GeocodeCacheLookups.WithLabelValues("hit").Inc()
		return cached.Address, nil
	case errors.Is(err, domain.ErrNotFound):
		metrics.GeocodeCacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.GeocodeCacheLookups.WithLabelValues("error").Inc()
		s.log.WarnContext(ctx, "location cache read failed",
			slog.Float64("lat", key.Lat),
			slog.Float64("lon", key.Lon),
			slog.String("error", err.Error()))
	}

	began := time.Now()
	loc, err := s.geocoder.Reverse(ctx, key.Lat, key.Lon)
	rec := domain.AICallRecord{
		TripID:    tripID,
		Kind:      domain.AICallGeocode,
		Prompt:    fmt.Sprintf("%g,%g", key.Lat, key.Lon),
		LatencyMs: time.Since(began).Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	if err != nil {
		rec.Error = err.Error()
		s.appendCall(ctx, rec)
		return "", err
	}
	rec.Response = loc.Address
	s.appendCall(ctx, rec)

	loc.Lat, loc.Lon = key.Lat, key.Lon
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}
	if err := s.locations.Upsert(ctx, loc); err != nil {
		s.log.WarnContext(ctx, "location cache write failed", slog.String("error", err.Error()))
	}

	return loc.Address, nil
}

// appendCall writes rec to the call log. Failures never fail the request.
func (s *Service) appendCall(ctx context.Context, rec domain.AICallRecord) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.CallLogTimeout)
	defer cancel()

	if err := s.calls.Append(ctx, rec); err != nil {
		metrics.DocStoreErrors.Inc()
		s.log.WarnContext(ctx, "call log append failed",
			slog.String("trip_id", rec.TripID.String()),
			slog.String("kind", rec.Kind.String()),
			slog.String("error", err.Error()))
	}
}

// markFailed moves the trip to failed. It runs detached from ctx so a
// timed-out request still records the outcome.
func (s *Service) markFailed(ctx context.Context, tripID uuid.UUID, cause error) {
	metrics.Verbalizations.WithLabelValues(domain.VerbalizationFailed.String()).Inc()

	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusWriteTimeout)
	defer cancel()

	if err := s.trips.SetVerbalizationStatus(wctx, tripID, domain.VerbalizationFailed); err != nil {
		s.log.ErrorContext(ctx, "mark verbalization failed",
			slog.String("trip_id", tripID.String()),
			slog.String("error", err.Error()))
	}
	s.log.WarnContext(ctx, "verbalization failed",
		slog.String("trip_id", tripID.String()),
		slog.String("error", cause.Error()))
}
