/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the tool rental pricing server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load config (YAML file, .env, environment)
  3. Initialize logger
  4. Open SQLite tool catalog, seed it when empty
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  YAML config path (default: config.yaml, optional)
  -port    HTTP server port, overrides config
  -db      SQLite database path, overrides config
           Use ":memory:" for an in-memory catalog

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

ENVIRONMENT:
  SERVER_HOST, SERVER_PORT, DB_PATH, LOG_LEVEL, LOG_FORMAT,
  CORS_ALLOWED_ORIGINS, CATALOG_SEED_FILE. A .env file in the working
  directory is loaded first.

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration loading
  - store/sqlite/sqlite.go: Catalog implementation
*/
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/tool-rental/api"
	"github.com/warp/tool-rental/catalog"
	"github.com/warp/tool-rental/config"
	"github.com/warp/tool-rental/logger"
	"github.com/warp/tool-rental/rental"
	"github.com/warp/tool-rental/store/sqlite"
)

func main() {
	// Flags
	configPath := flag.String("config", "config.yaml", "YAML config path")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	log := logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	// Initialize store
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to initialize database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	seed, err := seedTools(cfg.Catalog.SeedFile)
	if err != nil {
		log.Error("Failed to read catalog seed", "file", cfg.Catalog.SeedFile, "error", err)
		os.Exit(1)
	}
	seeded, err := store.SeedIfEmpty(context.Background(), seed)
	if err != nil {
		log.Error("Failed to seed catalog", "error", err)
		os.Exit(1)
	}
	if seeded {
		log.Info("Seeded tool catalog", "tools", len(seed))
	}

	svc := rental.NewService(store, log)
	router := api.NewRouter(api.NewHandler(svc, log), cfg.CORS.AllowedOrigins)

	// Create server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server stopped")
}

func seedTools(path string) ([]rental.Tool, error) {
	if path == "" {
		return catalog.DefaultTools(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.ParseTools(data)
}
