package main

//
//  @title           stockapi API
//  @version         1.0
//  @description     Daily price history, batch snapshots and company profiles backed by Yahoo Finance.
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:5000
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stock
//  @tag.description Snapshot, profile and history lookups
//
//  @tag.name        health
//  @tag.description Root message, liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/stockapi/config"
	_ "github.com/guttosm/stockapi/docs" // swagger docs
	"github.com/guttosm/stockapi/internal/app"
	"github.com/guttosm/stockapi/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - addr (string): host:port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, addr string) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., the provider session).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runSnapshot fetches one snapshot and prints it to stdout.
func runSnapshot(ctx context.Context, cfg config.Config) error {
	svc, cleanup, err := app.NewStockService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	timeout := cfg.Server.RequestTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return app.WriteSnapshot(ctx, svc, os.Stdout)
}

// main is the entry point of the stockapi application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API.
//   - snapshot: Prints the batch snapshot JSON to stdout and exits.
//
// Flags:
//   - --mode: Execution mode ("api" or "snapshot"). Default: "api".
//   - --host: Interface for API mode. Defaults to value from config (SERVER_HOST).
//   - --port: Port for API mode. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or snapshot")
	host := flag.String("host", config.AppConfig.Server.Host, "Interface for API mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "snapshot":
		logger.L().Info().Int("symbols", len(config.AppConfig.Snapshot.Symbols)).Msg("running snapshot")
		if err := runSnapshot(ctx, config.AppConfig); err != nil {
			logger.L().Fatal().Err(err).Msg("snapshot failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, config.ServerConfig{Host: *host, Port: *port}.Addr())
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
