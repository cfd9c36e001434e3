// Package graphhopper resolves coordinates to addresses with the GraphHopper
// reverse geocoding API.
package graphhopper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/tripnarrator/internal/adapter/provider/breaker"
	"github.com/heartmarshall/tripnarrator/internal/domain"
)

// ServiceName labels errors, metrics and the breaker.
const ServiceName = "geocoder"

const maxErrorBody = 4 << 10

// Config holds client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client performs reverse geocoding lookups.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cb         *breaker.Breaker[*domain.Location]
	log        *slog.Logger
}

// New creates a Client. Each lookup runs inside cb, which owns the call timeout.
func New(cfg Config, cb *breaker.Breaker[*domain.Location], logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         cb,
		log:        logger.With("adapter", "graphhopper"),
	}
}

// Reverse returns the address closest to the coordinate. A response
// without hits yields the coordinate itself as the address.
// Errors are *domain.UpstreamServiceError.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	return c.cb.Do(ctx, func(ctx context.Context) (*domain.Location, error) {
		return c.reverse(ctx, lat, lon)
	})
}

func (c *Client) reverse(ctx context.Context, lat, lon float64) (*domain.Location, error) {
	q := url.Values{}
	q.Set("point", formatPoint(lat, lon))
	q.Set("reverse", "true")
	q.Set("limit", "1")
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("graphhopper: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "graphhopper request", slog.Float64("lat", lat), slog.Float64("lon", lon))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphhopper: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("graphhopper: unexpected status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("graphhopper: unexpected status %d", resp.StatusCode)
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("graphhopper: decode json: %w", err)
	}

	loc := mapResponse(lat, lon, out)

	c.log.DebugContext(ctx, "graphhopper response",
		slog.Int("hits", len(out.Hits)),
		slog.String("address", loc.Address),
	)

	return loc, nil
}

// mapResponse builds a Location from the first hit.
func mapResponse(lat, lon float64, resp apiResponse) *domain.Location {
	loc := &domain.Location{
		Lat:       lat,
		Lon:       lon,
		Source:    domain.GeocodingSourceGraphHopper,
		CreatedAt: time.Now().UTC(),
	}

	if len(resp.Hits) == 0 {
		loc.Address = formatPoint(lat, lon)
		return loc
	}

	hit := resp.Hits[0]
	street := hit.Street
	if street != "" && hit.HouseNumber != "" {
		street = street + " " + hit.HouseNumber
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{hit.Name, street, hit.City, hit.State, hit.Country} {
		if p != "" && !contains(parts, p) {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		loc.Address = formatPoint(lat, lon)
	} else {
		loc.Address = strings.Join(parts, ", ")
	}

	loc.City = optional(hit.City)
	loc.State = optional(hit.State)
	loc.Country = optional(hit.Country)
	loc.PostalCode = optional(hit.Postcode)
	return loc
}

func formatPoint(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
