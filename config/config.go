package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "3333"
	defaultSessionMaxAge = 8 * time.Hour
)

type Config struct {
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBSSLMode   string

	Port     string
	GinMode  string
	LogLevel string
	// LogFormat is "json" or "text".
	LogFormat string

	// SessionMaxAge is the lifetime of the sessionId cookie set at registration.
	SessionMaxAge time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),
		Port:        getenv("PORT", defaultPort),
		GinMode:     os.Getenv("GIN_MODE"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
	}

	cfg.SessionMaxAge = defaultSessionMaxAge
	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_MAX_AGE %q: %w", v, err)
		}
		cfg.SessionMaxAge = d
	}

	if cfg.DatabaseURL == "" && cfg.DBName == "" {
		return nil, errors.New("either DATABASE_URL or DB_NAME must be set")
	}
	return cfg, nil
}

// DSN returns DatabaseURL when set, otherwise a key/value DSN built from the DB_* fields.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
