package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/tripnarrator/internal/config"
	"github.com/heartmarshall/tripnarrator/internal/transport/middleware"
	"github.com/heartmarshall/tripnarrator/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to Postgres and the document store, builds the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("docstore", cfg.DocStore.Backend),
	)

	infra, err := OpenInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		infra.Close(closeCtx, logger)
	}()

	svcs, err := NewServices(cfg, logger, infra.Pool, infra.Docs)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()

	handler := NewHTTPHandler(cfg, logger, svcs, infra, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("http server listening", slog.String("addr", srv.Addr))
	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHTTPHandler builds the router with the global middleware stack.
// Auth runs before Logger so request logs carry the caller identity.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, svcs *Services, infra *Infra, limiter *middleware.RateLimiter) http.Handler {
	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Metrics,
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		mws = append(mws, limiter.Limit())
	}
	mws = append(mws,
		middleware.Auth(svcs.Auth),
		middleware.Logger(logger),
	)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(infra.Pool, Version,
			rest.WithComponent("docstore", infra.Docs, false)),
		Auth:          rest.NewAuthHandler(svcs.Auth, logger),
		User:          rest.NewUserHandler(svcs.User, logger),
		Trip:          rest.NewTripHandler(svcs.Trip, logger),
		Zone:          rest.NewZoneHandler(svcs.Zone, logger),
		Region:        rest.NewRegionHandler(svcs.Region, logger),
		Feedback:      rest.NewFeedbackHandler(svcs.Feedback, logger),
		Verbalization: rest.NewVerbalizationHandler(svcs.Verbalization, logger),
	}

	return rest.NewRouter(handlers, rest.RouterConfig{
		Middleware: mws,
		Metrics:    promhttp.Handler(),
	})
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		<-errCh
		logger.Info("server stopped")
		return nil
	}
}
