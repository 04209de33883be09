/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the payroll service. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env, environment, flags)
  2. Build the zap logger
  3. Initialize SQLite store (runs migrations)
  4. Create payroll service and API handler
  5. Optionally load a demo scenario
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 4000, env SERVER_PORT)
  -db      SQLite database path (default: payroll.db, env DATABASE_PATH)
           Use ":memory:" for in-memory database
  -seed    Demo scenario to load on start (env PAYROLL_SEED_SCENARIO)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (SERVER_SHUTDOWN_TIMEOUT)
  3. Close database connection
  4. Exit

EXAMPLES:
  ./server -db=":memory:" -seed=mwf-birthday
  ENVIRONMENT=production DATABASE_PATH=/var/lib/payroll/payroll.db ./server

SEE ALSO:
  - config/config.go: All settings
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/sqlite"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// Initialize store
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer store.Close()

	service := payroll.NewService(store, payroll.NewNumberGenerator(), logger, payroll.Options{
		MaxNumberAttempts:        cfg.Payroll.MaxNumberAttempts,
		RegenerateNumberOnUpdate: cfg.Payroll.RegenerateNumberOnUpdate,
	})
	handler := api.NewHandler(service, store, logger)

	if cfg.Payroll.SeedScenario != "" {
		if err := handler.LoadScenarioByID(context.Background(), cfg.Payroll.SeedScenario); err != nil {
			logger.Warn("failed to load seed scenario",
				zap.String("scenario", cfg.Payroll.SeedScenario), zap.Error(err))
		}
	}

	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewRouter(handler, api.RouterOptions{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			StaticDir:      cfg.Server.StaticDir,
			RateLimit:      cfg.Server.RateLimit,
			RateBurst:      cfg.Server.RateBurst,
		}),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("payroll API listening",
			zap.Int("port", cfg.Server.Port),
			zap.String("database", cfg.Database.Path),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}
