package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/garnizeh/treeline/db"
	"github.com/garnizeh/treeline/internal/config"
	"github.com/garnizeh/treeline/internal/db"
	"github.com/garnizeh/treeline/internal/repository/sqlite"
	"github.com/garnizeh/treeline/internal/seed"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	if err := seed.Load(ctx, sqlite.New(database, nil)); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database initialized successfully.")
}
