package middleware

import (
	"strings"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/tripnarrator/internal/config"
)

// CORS returns go-chi/cors middleware configured from cfg. The comma
// separated config lists are split and trimmed.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   splitList(cfg.AllowedOrigins),
		AllowedMethods:   splitList(cfg.AllowedMethods),
		AllowedHeaders:   splitList(cfg.AllowedHeaders),
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
