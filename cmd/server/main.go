// Package main is the entry point for the flight offer assistant service.
//
//	@title						Flight Offer Assistant API
//	@version					1.0.0
//	@description				Reconciles loosely typed flight search parameters, searches Amadeus and returns normalized offer summaries, details, confirmed prices and mock bookings.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-assistant/flight-offer-assistant/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-assistant/flight-offer-assistant/docs"

	// Application layers
	flighthttp "github.com/flight-assistant/flight-offer-assistant/internal/adapter/http"
	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/http/middleware"
	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/provider/amadeus"
	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/provider/fixture"
	"github.com/flight-assistant/flight-offer-assistant/internal/adapter/session"
	"github.com/flight-assistant/flight-offer-assistant/internal/config"
	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/logger"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/metrics"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/retry"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/timeutil"
	"github.com/flight-assistant/flight-offer-assistant/internal/infrastructure/tracing"
	"github.com/flight-assistant/flight-offer-assistant/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

// offerProvider is what the use cases need from a provider adapter.
type offerProvider interface {
	domain.FlightOfferProvider
	domain.AirportLocator
}

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Provider.Mode).
		Str("session_store", cfg.Session.Store).
		Msg("Configuration loaded")

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	m := metrics.NewNop()
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.NewRegistry())
	}

	sessions, closeSessions, err := setupSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize session store")
	}

	provider := setupProvider(cfg, log, m)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger, m)

	// Setup routes
	setupRoutes(e, cfg, provider, sessions, log, m)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)

	if err := closeSessions(); err != nil {
		log.Error().Err(err).Msg("Error closing session store")
	}
	if err := tracing.Shutdown(shutdownTracing, shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Error flushing traces")
	}
}

// setupLogger builds the service logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.EnableCaller = cfg.Logging.Caller

	log := logger.New(logCfg)
	logger.SetGlobal(log)
	return log
}

// setupProvider selects the live Amadeus client or the fixture adapter.
func setupProvider(cfg *config.Config, log *logger.Logger, m *metrics.Metrics) offerProvider {
	if cfg.Provider.Mode == config.ProviderModeFixture {
		log.Warn().
			Str("offers", cfg.Provider.OffersPath).
			Str("airports", cfg.Provider.AirportsPath).
			Msg("Serving offers from fixture files")
		return fixture.NewAdapter(cfg.Provider.OffersPath, cfg.Provider.AirportsPath)
	}

	return amadeus.NewClient(amadeus.Config{
		BaseURL:         cfg.Amadeus.BaseURL,
		ClientID:        cfg.Amadeus.ClientID,
		ClientSecret:    cfg.Amadeus.ClientSecret,
		DefaultCurrency: cfg.Amadeus.DefaultCurrency,
		RateLimit:       cfg.Amadeus.RateLimit,
		Burst:           cfg.Amadeus.Burst,
		RequestTimeout:  cfg.Amadeus.RequestTimeout,
		Retry:           retry.ProviderConfig.WithMaxAttempts(cfg.Amadeus.RetryAttempts),
	},
		amadeus.WithLogger(log),
		amadeus.WithMetrics(m),
	)
}

// setupSessionStore opens the configured session store and returns its closer.
func setupSessionStore(ctx context.Context, cfg *config.Config) (domain.SearchSessionStore, func() error, error) {
	if cfg.Session.Store == config.SessionStoreRedis {
		store, err := session.NewRedisStore(ctx, session.RedisConfig{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
			TTL:      cfg.Session.TTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	store := session.NewMemoryStore(cfg.Session.TTL, timeutil.NewRealClock())
	return store, func() error { return nil }, nil
}

// setupRoutes wires the use cases into the HTTP handler and registers routes.
func setupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	provider offerProvider,
	sessions domain.SearchSessionStore,
	log *logger.Logger,
	m *metrics.Metrics,
) {
	// Initialize use cases with config
	ucConfig := &usecase.Config{
		SearchTimeout:   cfg.Timeouts.Search,
		ProviderTimeout: cfg.Timeouts.Provider,
	}
	opts := []usecase.Option{usecase.WithLogger(log), usecase.WithMetrics(m)}

	searchUseCase := usecase.NewFlightSearchUseCase(provider, sessions, ucConfig, opts...)
	offerUseCase := usecase.NewOfferUseCase(provider, sessions, ucConfig, opts...)
	bookingUseCase := usecase.NewBookingUseCase(sessions, opts...)
	airportUseCase := usecase.NewAirportUseCase(provider, provider.Name(), ucConfig, opts...)

	// Initialize handler
	flightHandler := flighthttp.NewFlightHandler(searchUseCase, offerUseCase, bookingUseCase, airportUseCase, log)

	flighthttp.RegisterRoutes(e, flightHandler)

	if cfg.Metrics.Enabled {
		flighthttp.RegisterMetrics(e, m.Handler())
	}

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
