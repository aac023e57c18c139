package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/medrecord/internal/config"
	"github.com/ehr/medrecord/internal/domain/record"
	"github.com/ehr/medrecord/internal/domain/search"
	"github.com/ehr/medrecord/internal/platform/auth"
	"github.com/ehr/medrecord/internal/platform/metrics"
	"github.com/ehr/medrecord/internal/platform/middleware"
	"github.com/ehr/medrecord/internal/platform/upstream"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medrecord-server",
		Short: "Patient medical record aggregation API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(searchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the medical record API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// summaryCmd prints one patient's narrative summary and exits. Useful for
// smoke-testing the aggregation without standing up the HTTP server.
func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <patient-id>",
		Short: "Print the medical summary for one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := setup()
			if err != nil {
				return err
			}
			svc := record.NewService(newSource(cfg, logger), logger)
			fmt.Println(svc.GetPatientSummary(cmd.Context(), args[0]))
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	var name, identifier string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for patients by name or identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := setup()
			if err != nil {
				return err
			}
			svc := search.NewService(newSource(cfg, logger), logger)
			fmt.Println(svc.SearchPatients(cmd.Context(), name, identifier))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "patient name to search for")
	cmd.Flags().StringVar(&identifier, "identifier", "", "patient identifier to search for")
	return cmd
}

func setup() (zerolog.Logger, *config.Config, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		return logger, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return logger, nil, err
	}
	return logger, cfg, nil
}

// newSource builds the configured data source. Mock mode keeps a live client
// as delegate so categories without fixtures still resolve.
func newSource(cfg *config.Config, logger zerolog.Logger) upstream.Source {
	live := upstream.NewClient(cfg.FHIRServerURL, cfg.FHIRAPIKey, cfg.FHIRTimeout(), logger)
	if cfg.UseMockData {
		return upstream.NewMock(live, cfg.SearchFallbackDefaults, logger)
	}
	return live
}

// buildServer wires the echo instance: middleware chain, API routes, and the
// health and metrics endpoints.
func buildServer(cfg *config.Config, logger zerolog.Logger, src upstream.Source) *echo.Echo {
	recordSvc := record.NewService(src, logger)
	searchSvc := search.NewService(src, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.Sanitize(logger))
	e.Use(metrics.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	e.Use(middleware.RequestTimeout(2 * cfg.FHIRTimeout()))

	if cfg.AuthSecret != "" {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{Secret: cfg.AuthSecret}))
	} else {
		logger.Warn().Msg("AUTH_SECRET not set, API is unauthenticated")
		e.Use(auth.DevAuthMiddleware())
	}
	e.Use(middleware.Audit(logger))

	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))
	apiV1.Use(middleware.ResponseCache(middleware.DefaultCacheConfig()))

	record.NewHandler(recordSvc).RegisterRoutes(apiV1)
	search.NewHandler(searchSvc).RegisterRoutes(apiV1)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status": "ok",
			"mode":   sourceMode(cfg),
		})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return e
}

func runServer() error {
	logger, cfg, err := setup()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	src := newSource(cfg, logger)
	e := buildServer(cfg, logger, src)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().
			Str("addr", addr).
			Str("mode", sourceMode(cfg)).
			Str("fhir_server", cfg.FHIRServerURL).
			Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func sourceMode(cfg *config.Config) string {
	if cfg.UseMockData {
		return "mock"
	}
	return "live"
}
