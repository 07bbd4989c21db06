/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the holiday engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse configuration
  2. Configure structured logging
  3. Open the definition store (optional)
  4. Create API handler with dependencies
  5. Start server with graceful shutdown

CONFIGURATION:
  Environment variables (prefix HOLIDAY_) or flags, via ardanlabs/conf:
    --web-port / HOLIDAY_WEB_PORT          HTTP port (default: 8080)
    --store-db / HOLIDAY_STORE_DB          Definition database path
                                           (empty: presets only)
    --log-level / HOLIDAY_LOG_LEVEL        debug|info|warn|error
    --log-format / HOLIDAY_LOG_FORMAT      text|json

  Provider lookup additionally honors HOLIDAY_CONFIG_PROVIDERS, read by
  the configuration assembler at manager build time.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the definition store
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Definition store
*/
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"

	"github.com/warp/holiday-engine/api"
	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/holiday"
	"github.com/warp/holiday-engine/logger"
	"github.com/warp/holiday-engine/store/sqlite"

	// Holiday implementations register themselves on import.
	_ "github.com/warp/holiday-engine/civil"
	_ "github.com/warp/holiday-engine/ruleset"
)

var build = "develop"

func main() {
	if err := run(); err != nil {
		slog.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, real environment variables win.
	_ = godotenv.Load()

	var cfg struct {
		conf.Version
		Web struct {
			Port            int           `conf:"default:8080"`
			ReadTimeout     time.Duration `conf:"default:15s"`
			WriteTimeout    time.Duration `conf:"default:15s"`
			IdleTimeout     time.Duration `conf:"default:60s"`
			ShutdownTimeout time.Duration `conf:"default:30s"`
		}
		Store struct {
			DB string `conf:""`
		}
		Log struct {
			Level  string `conf:"default:info"`
			Format string `conf:"default:text"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Holiday calendar engine"

	const prefix = "HOLIDAY"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Println(version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)
	log.Info("starting holiday engine",
		slog.String("version", build),
		slog.Int("port", cfg.Web.Port),
		slog.Any("implementations", holiday.Implementations()),
	)

	// The definition store is optional; without it the ruleset
	// implementation serves from its embedded presets.
	var store *sqlite.Store
	registry := holiday.NewRegistry()
	if cfg.Store.DB != "" {
		var err error
		store, err = sqlite.New(cfg.Store.DB)
		if err != nil {
			return fmt.Errorf("opening definition store: %w", err)
		}
		defer store.Close()
		registry.SetBaseOverrides(config.Map{config.KeyRulesetDB: cfg.Store.DB})
		log.Info("definition store ready", slog.String("path", cfg.Store.DB))
	}

	handler := api.NewHandler(registry, store)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Web.Port),
		Handler:      router,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
