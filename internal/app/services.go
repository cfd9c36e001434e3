package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/tripnarrator/internal/access"
	"github.com/heartmarshall/tripnarrator/internal/adapter/docstore"
	"github.com/heartmarshall/tripnarrator/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/audit"
	feedbackrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/feedback"
	locationrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/location"
	regionrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/region"
	tokenrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/token"
	triprepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/trip"
	userrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/user"
	verbalizationrepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/verbalization"
	zonerepo "github.com/heartmarshall/tripnarrator/internal/adapter/postgres/zone"
	"github.com/heartmarshall/tripnarrator/internal/adapter/provider/breaker"
	"github.com/heartmarshall/tripnarrator/internal/adapter/provider/graphhopper"
	"github.com/heartmarshall/tripnarrator/internal/adapter/provider/llm"
	"github.com/heartmarshall/tripnarrator/internal/auth"
	"github.com/heartmarshall/tripnarrator/internal/config"
	"github.com/heartmarshall/tripnarrator/internal/domain"
	authsvc "github.com/heartmarshall/tripnarrator/internal/service/auth"
	"github.com/heartmarshall/tripnarrator/internal/service/feedback"
	"github.com/heartmarshall/tripnarrator/internal/service/region"
	"github.com/heartmarshall/tripnarrator/internal/service/trip"
	"github.com/heartmarshall/tripnarrator/internal/service/user"
	"github.com/heartmarshall/tripnarrator/internal/service/verbalization"
	"github.com/heartmarshall/tripnarrator/internal/service/zone"
)

// Services is the application layer, one service per aggregate.
type Services struct {
	Auth          *authsvc.Service
	User          *user.Service
	Trip          *trip.Service
	Zone          *zone.Service
	Region        *region.Service
	Feedback      *feedback.Service
	Verbalization *verbalization.Service
}

// NewServices wires repositories, upstream clients and the access gate
// into the services.
func NewServices(cfg *config.Config, logger *slog.Logger, db postgres.DB, docs docstore.Store) (*Services, error) {
	gate, err := access.NewGate()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	tx := postgres.NewTxManager(db)

	users := userrepo.New(db)
	tokens := tokenrepo.New(db)
	audits := auditrepo.New(db)
	trips := triprepo.New(db)
	zones := zonerepo.New(db)
	regions := regionrepo.New(db)
	feedbacks := feedbackrepo.New(db)
	verbalizations := verbalizationrepo.New(db)
	locations := locationrepo.New(db)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	geocoder := graphhopper.New(graphhopper.Config{
		BaseURL: cfg.Geocoding.BaseURL,
		APIKey:  cfg.Geocoding.APIKey,
		Timeout: cfg.Geocoding.Timeout,
	}, breaker.New[*domain.Location](graphhopper.ServiceName, breakerSettings(cfg.Breaker, cfg.Geocoding.Timeout), logger), logger)

	narrator := llm.New(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}, breaker.New[llm.Completion](llm.ServiceName, breakerSettings(cfg.Breaker, cfg.LLM.Timeout), logger), logger)

	return &Services{
		Auth:     authsvc.NewService(logger, users, tokens, tx, jwtManager, cfg.Auth),
		User:     user.NewService(logger, users, audits, tx, gate, cfg.Auth.PasswordHashCost),
		Trip:     trip.NewService(logger, trips, verbalizations, audits, tx, gate),
		Zone:     zone.NewService(logger, zones, trips, audits, tx, gate),
		Region:   region.NewService(logger, regions, zones, audits, tx, gate),
		Feedback: feedback.NewService(logger, feedbacks, trips, verbalizations, gate),
		Verbalization: verbalization.NewService(logger, trips, verbalizations, locations, geocoder, narrator, docs, tx, gate,
			verbalization.Config{
				CachePrecision: cfg.Geocoding.CachePrecision,
				CallLogTimeout: cfg.DocStore.Timeout,
				StaleRunAfter:  cfg.LLM.StaleRunAfter,
			}),
	}, nil
}

func breakerSettings(cfg config.BreakerConfig, callTimeout time.Duration) breaker.Settings {
	return breaker.Settings{
		MaxRequests:      cfg.MaxRequests,
		Interval:         cfg.Interval,
		OpenTimeout:      cfg.OpenTimeout,
		FailureThreshold: cfg.FailureThreshold,
		CallTimeout:      callTimeout,
	}
}
