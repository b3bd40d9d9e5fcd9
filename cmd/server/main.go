package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/garnizeh/treeline/api"
	dbfs "github.com/garnizeh/treeline/db"
	"github.com/garnizeh/treeline/internal/config"
	"github.com/garnizeh/treeline/internal/db"
	"github.com/garnizeh/treeline/internal/repository/memory"
	"github.com/garnizeh/treeline/internal/repository/sqlite"
	"github.com/garnizeh/treeline/internal/seed"
	"github.com/garnizeh/treeline/pkg/repository"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// a missing .env file is fine; env vars may come from anywhere
	_ = godotenv.Load()

	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)

	log.Printf("Starting treeline server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	var store repository.Store
	var database *db.DB
	switch cfg.Storage {
	case config.StorageSQLite:
		database, err = db.New(ctx, cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
			log.Fatalf("Failed to migrate DB: %v", err)
		}
		store = sqlite.New(database, logger)
	default:
		store = memory.NewStore()
	}

	if cfg.Seed {
		if err := seed.Load(ctx, store); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	handler := api.SetupRoutes(version, buildTime, store)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if database != nil {
		if err := database.Close(); err != nil {
			log.Printf("Error closing DB: %v", err)
		}
	}

	log.Println("Server exited")
}
