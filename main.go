package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	appLogger "github.com/baldotina/go-trip-quotes/app/logger"
	"github.com/baldotina/go-trip-quotes/app/observability/metrics"
	"github.com/baldotina/go-trip-quotes/app/tracer"
	"github.com/baldotina/go-trip-quotes/config"
	"github.com/baldotina/go-trip-quotes/internal/api/city"
	"github.com/baldotina/go-trip-quotes/internal/api/export"
	"github.com/baldotina/go-trip-quotes/internal/api/itinerary"
	"github.com/baldotina/go-trip-quotes/internal/api/quote"
	"github.com/baldotina/go-trip-quotes/internal/catalog"
	api "github.com/baldotina/go-trip-quotes/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port)
	metrics.InitAppMetrics()

	// --- Catalog ---
	// Loaded once, shared read-only by every engine call.
	cat, err := catalog.Load()
	if err != nil {
		logger.Error("Failed to load catalog", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Catalog loaded", slog.Int("cities", len(cat.Cities())))

	// --- Dependency Injection ---
	cityService := city.NewServiceImpl(cat, logger)
	cityHandler := city.NewCityHandler(cityService, logger)
	quoteService := quote.NewServiceImpl(cat, logger)
	quoteHandler := quote.NewQuoteHandler(quoteService, logger)
	itineraryService := itinerary.NewServiceImpl(cat, logger)
	itineraryHandler := itinerary.NewItineraryHandler(itineraryService, logger)
	exportService := export.NewServiceImpl(cat, logger)
	exportHandler := export.NewExportHandler(exportService, quoteService, logger)

	// --- Router Setup ---
	routerConfig := &api.Config{
		CityHandler:      cityHandler,
		QuoteHandler:     quoteHandler,
		ItineraryHandler: itineraryHandler,
		ExportHandler:    exportHandler,
	}
	mainRouter := api.SetupRouter(routerConfig)

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	// --- Graceful Shutdown ---
	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
