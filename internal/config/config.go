package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	DocStore  DocStoreConfig  `yaml:"docstore"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Geocoding GeocodingConfig `yaml:"geocoding"`
	LLM       LLMConfig       `yaml:"llm"`
	Breaker   BreakerConfig   `yaml:"breaker"`
	Admin     AdminConfig     `yaml:"admin"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000,http://localhost:8000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Document store backends.
const (
	DocStoreMongo   = "mongo"
	DocStoreSurreal = "surreal"
)

// DocStoreConfig selects and configures the store for the AI call log.
// Namespace is only used by the surreal backend.
type DocStoreConfig struct {
	Backend    string        `yaml:"backend"    env:"DOCSTORE_BACKEND"    env-default:"mongo"`
	URL        string        `yaml:"url"        env:"DOCSTORE_URL"        env-default:"mongodb://localhost:27017"`
	Database   string        `yaml:"database"   env:"DOCSTORE_DATABASE"   env-default:"trip_verbalization"`
	Collection string        `yaml:"collection" env:"DOCSTORE_COLLECTION" env-default:"ai_calls"`
	Namespace  string        `yaml:"namespace"  env:"DOCSTORE_NAMESPACE"  env-default:"tripnarrator"`
	Username   string        `yaml:"username"   env:"DOCSTORE_USERNAME"`
	Password   string        `yaml:"password"   env:"DOCSTORE_PASSWORD"`
	Timeout    time.Duration `yaml:"timeout"    env:"DOCSTORE_TIMEOUT"    env-default:"5s"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"tripnarrator"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"30m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request rate settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerSec  float64       `yaml:"requests_per_sec" env:"RATE_LIMIT_RPS"              env-default:"10"`
	Burst           int           `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// GeocodingConfig holds reverse geocoding settings.
// CachePrecision is the number of decimals coordinates are rounded to
// when looking up cached addresses.
type GeocodingConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"GEOCODING_BASE_URL"        env-default:"https://graphhopper.com/api/1/geocode"`
	APIKey         string        `yaml:"api_key"         env:"GEOCODING_API_KEY"`
	Timeout        time.Duration `yaml:"timeout"         env:"GEOCODING_TIMEOUT"         env-default:"10s"`
	CachePrecision int           `yaml:"cache_precision" env:"GEOCODING_CACHE_PRECISION" env-default:"4"`
}

// LLMConfig holds narrative generation settings.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-3-5-haiku-latest"`
	MaxTokens   int64         `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"300"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.7"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"30s"`
	// StaleRunAfter is how long a pending verbalization blocks new runs.
	// After that the run is presumed dead and may be claimed again.
	StaleRunAfter time.Duration `yaml:"stale_run_after" env:"LLM_STALE_RUN_AFTER" env-default:"10m"`
}

// BreakerConfig tunes the circuit breakers around outbound calls.
type BreakerConfig struct {
	MaxRequests      uint32        `yaml:"max_requests"      env:"BREAKER_MAX_REQUESTS"      env-default:"3"`
	Interval         time.Duration `yaml:"interval"          env:"BREAKER_INTERVAL"          env-default:"1m"`
	OpenTimeout      time.Duration `yaml:"open_timeout"      env:"BREAKER_OPEN_TIMEOUT"      env-default:"30s"`
	FailureThreshold uint32        `yaml:"failure_threshold" env:"BREAKER_FAILURE_THRESHOLD" env-default:"5"`
}

// AdminConfig holds the bootstrap admin account used by cmd/seed-admin.
type AdminConfig struct {
	Email    string `yaml:"email"    env:"ADMIN_EMAIL"    env-default:"admin@example.com"`
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}
