// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds every setting the binaries read at start
type Config struct {
	Store     string
	DBConnStr string
	GRPCAddr  string
	HTTPAddr  string
	Timezone  string

	AppPassword string
	JWTSecret   string
	SessionTTL  time.Duration

	S3Bucket string
	S3Region string
	S3Prefix string

	LogLevel  string
	LogFormat string

	SeedDemo bool
}

// Load reads an optional .env file and then the environment.
// Values already present in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Store:       getenv("STORE", StorePostgres),
		DBConnStr:   dbConnStr(),
		GRPCAddr:    getenv("GRPC_ADDR", ":8080"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8081"),
		Timezone:    getenv("TIMEZONE", "America/Los_Angeles"),
		AppPassword: os.Getenv("APP_PASSWORD"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Prefix:    getenv("S3_PREFIX", "backups/"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
	}

	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL: must be positive")
	}
	cfg.SessionTTL = ttl

	if v := os.Getenv("SEED_DEMO"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DEMO: %w", err)
		}
		cfg.SeedDemo = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combinations the environment readers cannot
func (c *Config) Validate() error {
	switch c.Store {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("invalid STORE %q: must be %s or %s", c.Store, StorePostgres, StoreMemory)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or console", c.LogFormat)
	}
	if c.AppPassword != "" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when APP_PASSWORD is set")
	}
	return nil
}

// AuthEnabled reports whether requests must carry a session token
func (c *Config) AuthEnabled() bool {
	return c.AppPassword != ""
}

// BackupEnabled reports whether snapshots can be uploaded to S3
func (c *Config) BackupEnabled() bool {
	return c.S3Bucket != ""
}

// dbConnStr returns DB_CONN_STR, or builds it from the individual DB_* variables
func dbConnStr() string {
	if v := os.Getenv("DB_CONN_STR"); v != "" {
		return v
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "lifedash"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
