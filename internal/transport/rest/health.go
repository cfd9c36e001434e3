package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const healthTimeout = 3 * time.Second

// pinger is anything with a liveness check: the Postgres pool, the
// document store.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name     string
	p        pinger
	critical bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db         pinger
	version    string
	components []component
}

// HealthOption adds optional components to the health report.
type HealthOption func(*HealthHandler)

// WithComponent reports an extra dependency under name. A failing
// non-critical component degrades the report without failing it.
func WithComponent(name string, p pinger, critical bool) HealthOption {
	return func(h *HealthHandler) {
		h.components = append(h.components, component{name: name, p: p, critical: critical})
	}
}

// NewHealthHandler creates a HealthHandler. The database is always a
// critical component.
func NewHealthHandler(db pinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	h.components = append(h.components, component{name: "database", p: db, critical: true})
	for _, opt := range opts {
		opt(h)
	}
	sort.SliceStable(h.components, func(i, j int) bool { return h.components[i].critical && !h.components[j].critical })
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports liveness. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready reports readiness. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings every component with latency
// measurement and includes version. Overall status is "down" when a
// critical component fails and "degraded" when only optional ones do.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.components))
	overallStatus := "ok"

	for _, c := range h.components {
		start := time.Now()
		err := c.p.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[c.name] = CompStatus{Status: "down"}
			switch {
			case c.critical:
				overallStatus = "down"
			case overallStatus == "ok":
				overallStatus = "degraded"
			}
			continue
		}
		components[c.name] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
