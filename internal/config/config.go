package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr            = ":8080"
	defaultMaxBodyBytes    = 1 << 20
	defaultRateLimitRPS    = 20
	defaultRateLimitBurst  = 40
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds runtime settings for the API process.
type Config struct {
	Addr            string
	Debug           bool
	LogPretty       bool
	AllowedOrigins  []string
	EnableHSTS      bool
	MaxBodyBytes    int64
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// LoadEnvFiles reads .env and .env.local into the process environment.
// Variables already set by the runtime are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment, falling back to defaults for
// anything unset.
func Load() (Config, error) {
	cfg := Config{
		Addr:            getEnv("APP_ADDR", defaultAddr),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		MaxBodyBytes:    defaultMaxBodyBytes,
		RateLimitRPS:    defaultRateLimitRPS,
		RateLimitBurst:  defaultRateLimitBurst,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	var err error
	if cfg.Debug, err = getBool("DEBUG", false); err != nil {
		return Config{}, err
	}
	if cfg.LogPretty, err = getBool("LOG_PRETTY", false); err != nil {
		return Config{}, err
	}
	if cfg.EnableHSTS, err = getBool("ENABLE_HSTS", false); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_BODY_BYTES %q", v)
		}
		cfg.MaxBodyBytes = n
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		cfg.RateLimitRPS = n
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_BURST %q", v)
		}
		cfg.RateLimitBurst = n
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// RateLimitEnabled reports whether the rate limit middleware should be installed.
func (c Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
