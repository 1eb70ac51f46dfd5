package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Server   Server
	Postgres Postgres
	Redis    Redis
	// TaxonomyPath locates the folder taxonomy catalog file.
	TaxonomyPath string
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	// AuthDisabled skips bearer-token checks; local development only.
	AuthDisabled bool
}

// Postgres captures document/override/audit store configuration. An empty URL
// selects the in-memory stores.
type Postgres struct {
	URL string
}

// Redis captures the override-store cache backend. An empty URL means Redis
// is not configured and overrides live in the primary store only.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds the configuration from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("CAREDOCS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("CAREDOCS_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	taxonomyPath := os.Getenv("CAREDOCS_TAXONOMY_PATH")
	if taxonomyPath == "" {
		taxonomyPath = "config/taxonomy.yaml"
	}

	return Config{
		Server: Server{
			Addr:          addr,
			JWTSigningKey: jwtSigningKey,
			AuthDisabled:  os.Getenv("CAREDOCS_AUTH_DISABLED") == "true",
		},
		Postgres: Postgres{
			URL: os.Getenv("CAREDOCS_POSTGRES_URL"),
		},
		Redis: Redis{
			URL:          os.Getenv("CAREDOCS_REDIS_URL"),
			PoolSize:     envInt("CAREDOCS_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("CAREDOCS_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("CAREDOCS_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("CAREDOCS_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("CAREDOCS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		TaxonomyPath: taxonomyPath,
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
