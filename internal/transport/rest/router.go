package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/transport/middleware"
)

// Handlers bundles every REST handler mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	User          *UserHandler
	Trip          *TripHandler
	Zone          *ZoneHandler
	Region        *RegionHandler
	Feedback      *FeedbackHandler
	Verbalization *VerbalizationHandler
}

// RouterConfig holds the global middleware stack, applied in order, and
// the optional /metrics handler.
type RouterConfig struct {
	Middleware []middleware.Middleware
	Metrics    http.Handler
}

// NewRouter builds the chi router. Everything under /api/v1 except
// register, login and refresh requires authentication; /api/v1/admin
// additionally requires the admin role. Per-resource authorization is
// enforced by the services.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(cfg.Middleware...))

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/refresh", h.Auth.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/me", h.User.Me)

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", h.Trip.Create)
				r.Get("/", h.Trip.Search)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Trip.Get)
					r.Delete("/", h.Trip.Delete)
					r.Put("/times", h.Trip.UpdateTimes)

					r.Post("/verbalize", h.Verbalization.Verbalize)
					r.Get("/verbalization", h.Verbalization.Latest)
					r.Get("/verbalization/calls", h.Verbalization.History)

					r.Post("/feedback", h.Feedback.Create)
					r.Get("/feedback", h.Feedback.List)
				})
			})

			r.Patch("/feedback/{id}", h.Feedback.Update)

			r.Route("/zones", func(r chi.Router) {
				r.Post("/", h.Zone.Create)
				r.Get("/", h.Zone.List)
				r.Get("/{id}", h.Zone.Get)
				r.Put("/{id}", h.Zone.Update)
				r.Delete("/{id}", h.Zone.Delete)
				r.Get("/{id}/trips", h.Zone.Trips)
			})

			r.Route("/regions", func(r chi.Router) {
				r.Post("/", h.Region.Create)
				r.Get("/", h.Region.List)
				r.Get("/{id}", h.Region.Get)
				r.Put("/{id}", h.Region.Update)
				r.Delete("/{id}", h.Region.Delete)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin))
				r.Get("/users", h.User.List)
				r.Put("/users/{id}/role", h.User.UpdateRole)
				r.Put("/users/{id}/active", h.User.SetActive)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
