package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	defaultPort         = "8080"
	defaultSpellAPIBase = "https://www.dnd5eapi.co"
	defaultTargetClass  = "Wizard"
	defaultSampleSize   = 50
	defaultMaxSpells    = 10
	defaultHTTPTimeout  = 15 * time.Second
)

// Config holds the runtime settings read from the environment
type Config struct {
	Env             string
	Port            string
	BaseURL         string // Absolute base of this server (e.g., "http://localhost:8080")
	SpellAPIBaseURL string
	TargetClass     string
	SampleSize      int
	MaxSpells       int
	HTTPTimeout     time.Duration
	ChromePath      string // Empty means autodetect
	LogLevel        zapcore.Level
}

// IsProduction reports whether ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address
// Listens on 0.0.0.0 to accept connections from all interfaces (required for Docker)
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// Load reads the configuration from environment variables, applying defaults
func Load() (*Config, error) {
	cfg := &Config{
		Env:             strings.TrimSpace(os.Getenv("ENV")),
		SpellAPIBaseURL: strings.TrimRight(envOr("SPELL_API_BASE_URL", defaultSpellAPIBase), "/"),
		TargetClass:     envOr("TARGET_CLASS", defaultTargetClass),
		ChromePath:      strings.TrimSpace(os.Getenv("CHROME_PATH")),
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	// Remove leading colon if present (some platforms set PORT as ":8080")
	cfg.Port = strings.TrimPrefix(envOr("PORT", defaultPort), ":")
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("config: invalid PORT %q: %w", cfg.Port, err)
	}
	cfg.BaseURL = strings.TrimRight(envOr("BASE_URL", "http://localhost:"+cfg.Port), "/")

	var err error
	if cfg.SampleSize, err = positiveInt("SAMPLE_SIZE", defaultSampleSize); err != nil {
		return nil, err
	}
	if cfg.MaxSpells, err = positiveInt("MAX_SPELLS", defaultMaxSpells); err != nil {
		return nil, err
	}

	cfg.HTTPTimeout = defaultHTTPTimeout
	if raw := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid HTTP_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("config: HTTP_TIMEOUT must be positive, got %s", d)
		}
		cfg.HTTPTimeout = d
	}

	cfg.LogLevel = zapcore.InfoLevel
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid LOG_LEVEL %q: %w", raw, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: %s must be greater than 0, got %d", key, n)
	}
	return n, nil
}
