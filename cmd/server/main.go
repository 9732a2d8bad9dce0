/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the nurse pay differential engine server.
  Handles configuration, catalog seeding, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load environment configuration, then apply command-line flags
  2. Initialize SQLite store
  3. Seed the default differential catalog into an empty store
  4. Load the catalog into the handler cache
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS (override environment):
  -port    HTTP server port (PAYENGINE_PORT, default 8080)
  -db      SQLite database path (PAYENGINE_DB, default payengine.db)
           Use ":memory:" for in-memory database

ENVIRONMENT:
  PAYENGINE_ALLOWED_ORIGINS      CORS origins, comma separated
  PAYENGINE_DEFAULT_SHIFT_HOURS  Shift length when a request omits it (12)
  PAYENGINE_SEED_CATALOG         Seed catalog.json into an empty DB (true)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment variables
  - factory/catalog.json: Default catalog
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiftwise/pay-engine/api"
	"github.com/shiftwise/pay-engine/config"
	"github.com/shiftwise/pay-engine/factory"
	"github.com/shiftwise/pay-engine/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Flags
	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	handler := api.NewHandler(store, cfg.DefaultShiftHours)

	if cfg.SeedCatalog {
		seeded, err := handler.SeedCatalog(context.Background(), factory.DefaultCatalogJSON)
		if err != nil {
			log.Fatalf("Failed to seed differential catalog: %v", err)
		}
		if seeded {
			log.Printf("Seeded default differential catalog")
		}
	}

	if err := handler.LoadCatalog(context.Background()); err != nil {
		log.Printf("Warning: Failed to load differential catalog: %v", err)
	}
	log.Printf("Loaded %d differential types", handler.Catalog().Len())

	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
