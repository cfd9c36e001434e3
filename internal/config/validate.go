package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.DocStore.validate(); err != nil {
		return fmt.Errorf("docstore: %w", err)
	}

	if c.Geocoding.Timeout <= 0 {
		return fmt.Errorf("geocoding.timeout must be > 0")
	}
	if c.Geocoding.CachePrecision < 0 || c.Geocoding.CachePrecision > 8 {
		return fmt.Errorf("geocoding.cache_precision must be in [0, 8] (got %d)", c.Geocoding.CachePrecision)
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}
	if c.LLM.StaleRunAfter <= c.LLM.Timeout {
		return fmt.Errorf("llm.stale_run_after must exceed llm.timeout (got %s <= %s)", c.LLM.StaleRunAfter, c.LLM.Timeout)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSec <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: requests_per_sec and burst must be > 0")
	}

	if c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("breaker.failure_threshold must be > 0")
	}

	return nil
}

func (d *DocStoreConfig) validate() error {
	switch d.Backend {
	case DocStoreMongo, DocStoreSurreal:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", d.Backend, DocStoreMongo, DocStoreSurreal)
	}
	if d.URL == "" {
		return fmt.Errorf("url is required")
	}
	if d.Database == "" {
		return fmt.Errorf("database is required")
	}
	return nil
}
