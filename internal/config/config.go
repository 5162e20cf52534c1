// Package config reads runtime settings from the environment, after
// loading a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the API server settings.
type Config struct {
	Addr        string
	ServiceName string

	// RateLimit is the sustained requests per second allowed per client IP.
	RateLimit float64
	RateBurst int

	// RedisAddr selects the shared cache; empty keeps results in memory.
	RedisAddr string
	CacheTTL  time.Duration

	Telemetry bool
}

// Load reads .env and then the process environment. Variables already set
// in the environment win over .env entries.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults for
// unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:        ":8080",
		ServiceName: "go-calculators",
		RateLimit:   10,
		RateBurst:   20,
		CacheTTL:    10 * time.Minute,
		Telemetry:   true,
	}

	if v := getenv("CALC_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	cfg.RedisAddr = getenv("CALC_REDIS_ADDR")

	if v := getenv("CALC_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("CALC_RATE_LIMIT: invalid value %q", v)
		}
		cfg.RateLimit = f
	}
	if v := getenv("CALC_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("CALC_RATE_BURST: invalid value %q", v)
		}
		cfg.RateBurst = n
	}
	if v := getenv("CALC_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = d
	}
	if v := getenv("CALC_TELEMETRY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_TELEMETRY: %w", err)
		}
		cfg.Telemetry = b
	}

	return cfg, nil
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}
