// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/tracing"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Provider modes.
const (
	ProviderModeAmadeus = "amadeus"
	ProviderModeFixture = "fixture"
)

// Session store kinds.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Provider ProviderConfig
	Amadeus  AmadeusConfig
	Session  SessionConfig
	Tracing  tracing.Config
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds timeout settings for use case calls.
type TimeoutConfig struct {
	Search   time.Duration `env:"TIMEOUT_SEARCH" envDefault:"15s"`
	Provider time.Duration `env:"TIMEOUT_PROVIDER" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// ProviderConfig selects where offers come from.
type ProviderConfig struct {
	Mode         string `env:"PROVIDER_MODE" envDefault:"fixture"`
	OffersPath   string `env:"FIXTURE_OFFERS_PATH" envDefault:"docs/response-mock/flight_offers.json"`
	AirportsPath string `env:"FIXTURE_AIRPORTS_PATH" envDefault:"docs/response-mock/airports.json"`
}

// AmadeusConfig holds the Amadeus API settings.
type AmadeusConfig struct {
	BaseURL         string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	ClientID        string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret    string        `env:"AMADEUS_CLIENT_SECRET"`
	DefaultCurrency string        `env:"AMADEUS_DEFAULT_CURRENCY"`
	RateLimit       float64       `env:"AMADEUS_RATE_LIMIT" envDefault:"10"`
	Burst           int           `env:"AMADEUS_RATE_BURST" envDefault:"1"`
	RequestTimeout  time.Duration `env:"AMADEUS_REQUEST_TIMEOUT" envDefault:"8s"`
	RetryAttempts   int           `env:"AMADEUS_RETRY_ATTEMPTS" envDefault:"3"`
}

// SessionConfig holds the search session store settings.
type SessionConfig struct {
	Store         string        `env:"SESSION_STORE" envDefault:"memory"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Search <= 0 {
		return fmt.Errorf("TIMEOUT_SEARCH must be positive")
	}
	if cfg.Timeouts.Provider <= 0 {
		return fmt.Errorf("TIMEOUT_PROVIDER must be positive")
	}

	// The provider call runs inside the search deadline
	if cfg.Timeouts.Provider >= cfg.Timeouts.Search {
		return fmt.Errorf("TIMEOUT_PROVIDER (%s) should be less than TIMEOUT_SEARCH (%s)",
			cfg.Timeouts.Provider, cfg.Timeouts.Search)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if err := validateProvider(cfg); err != nil {
		return err
	}
	return validateSession(cfg.Session)
}

func validateProvider(cfg *Config) error {
	switch cfg.Provider.Mode {
	case ProviderModeFixture:
		if cfg.Provider.OffersPath == "" || cfg.Provider.AirportsPath == "" {
			return fmt.Errorf("FIXTURE_OFFERS_PATH and FIXTURE_AIRPORTS_PATH are required in fixture mode")
		}
		return nil
	case ProviderModeAmadeus:
	default:
		return fmt.Errorf("PROVIDER_MODE must be one of: amadeus, fixture; got %q", cfg.Provider.Mode)
	}

	a := cfg.Amadeus
	if a.ClientID == "" || a.ClientSecret == "" {
		return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required in amadeus mode")
	}
	if a.BaseURL == "" {
		return fmt.Errorf("AMADEUS_BASE_URL is required in amadeus mode")
	}
	if a.RateLimit < 0 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT must not be negative")
	}
	if a.Burst < 1 {
		return fmt.Errorf("AMADEUS_RATE_BURST must be at least 1")
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("AMADEUS_REQUEST_TIMEOUT must be positive")
	}
	if a.RetryAttempts < 1 {
		return fmt.Errorf("AMADEUS_RETRY_ATTEMPTS must be at least 1")
	}
	return nil
}

func validateSession(s SessionConfig) error {
	if s.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	switch s.Store {
	case SessionStoreMemory:
		return nil
	case SessionStoreRedis:
		if s.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when SESSION_STORE is redis")
		}
		return nil
	default:
		return fmt.Errorf("SESSION_STORE must be one of: memory, redis; got %q", s.Store)
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
