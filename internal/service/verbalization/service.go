// Package verbalization turns a stored trip into a written narrative:
// endpoints are reverse geocoded, then a text generator writes the story.
package verbalization

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

type tripRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	// ClaimVerbalization atomically moves the trip to pending. It fails
	// with ErrConflict while another run started less than staleAfter ago.
	ClaimVerbalization(ctx context.Context, id uuid.UUID, staleAfter time.Duration) error
	SetVerbalizationStatus(ctx context.Context, id uuid.UUID, status domain.VerbalizationStatus) error
}

type verbalizationRepo interface {
	Create(ctx context.Context, v *domain.VerbalizedTrip) (*domain.VerbalizedTrip, error)
	Latest(ctx context.Context, tripID uuid.UUID) (*domain.VerbalizedTrip, error)
}

// locationCache stores addresses keyed by rounded coordinates.
type locationCache interface {
	Get(ctx context.Context, lat, lon float64) (*domain.Location, error)
	Upsert(ctx context.Context, l *domain.Location) error
}

// geocoder resolves a coordinate to an address.
type geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*domain.Location, error)
}

// narrator writes text for a system and user prompt.
type narrator interface {
	Generate(ctx context.Context, system, prompt string) (domain.Completion, error)
	Model() string
}

// callLog is the append-only record of upstream calls.
type callLog interface {
	Append(ctx context.Context, rec domain.AICallRecord) error
	ListByTrip(ctx context.Context, tripID uuid.UUID, limit int) ([]domain.AICallRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type accessGate interface {
	Check(id access.Identity, op access.Operation, ownerID uuid.UUID) error
}

// Config holds verbalization settings.
type Config struct {
	// CachePrecision is the number of decimals used for the address cache key.
	CachePrecision int
	// CallLogTimeout bounds a single call log write.
	CallLogTimeout time.Duration
	// StaleRunAfter is the age at which a pending run may be claimed again.
	StaleRunAfter time.Duration
}

// DefaultStaleRunAfter applies when Config.StaleRunAfter is not set.
const DefaultStaleRunAfter = 10 * time.Minute

// Service implements trip verbalization.
type Service struct {
	log            *slog.Logger
	trips          tripRepo
	verbalizations verbalizationRepo
	locations      locationCache
	geocoder       geocoder
	narrator       narrator
	calls          callLog
	tx             txManager
	gate           accessGate
	cfg            Config
}

// NewService creates a new verbalization service instance.
func NewService(
	logger *slog.Logger,
	trips tripRepo,
	verbalizations verbalizationRepo,
	locations locationCache,
	geocoder geocoder,
	narrator narrator,
	calls callLog,
	tx txManager,
	gate accessGate,
	cfg Config,
) *Service {
	if cfg.CallLogTimeout <= 0 {
		cfg.CallLogTimeout = 5 * time.Second
	}
	if cfg.StaleRunAfter <= 0 {
		cfg.StaleRunAfter = DefaultStaleRunAfter
	}
	return &Service{
		log:            logger.With("service", "verbalization"),
		trips:          trips,
		verbalizations: verbalizations,
		locations:      locations,
		geocoder:       geocoder,
		narrator:       narrator,
		calls:          calls,
		tx:             tx,
		gate:           gate,
		cfg:            cfg,
	}
}

var (
	opVerbalize = access.Operation{Resource: access.ResourceTrip, Action: access.ActionVerbalize}
	opRead      = access.Operation{Resource: access.ResourceTrip, Action: access.ActionRead}
)
