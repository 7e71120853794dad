// Command indexer loads a JSON catalog export into the Postgres catalog
// store, assigning ids to records that lack one.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/healthforge/healthforge/internal/catalog"
	"github.com/healthforge/healthforge/internal/config"
	"github.com/healthforge/healthforge/internal/database"
	"github.com/healthforge/healthforge/internal/logging"
	"github.com/healthforge/healthforge/internal/models"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Indexer error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	var (
		file    = flag.String("file", "catalog.json", "path to the catalog JSON export")
		migrate = flag.Bool("migrate", true, "run pending migrations before indexing")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("reading catalog export: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parsing catalog export: %w", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()

	if *migrate {
		migrator, err := database.NewMigrator(cfg.Database.DSN(), "migrations")
		if err != nil {
			return fmt.Errorf("creating migrator: %w", err)
		}
		if err := migrator.Up(); err != nil {
			_ = migrator.Close()
			return fmt.Errorf("running migrations: %w", err)
		}
		_ = migrator.Close()
	}

	store := catalog.NewStore(catalog.NewPoolAdapter(db.Pool))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	indexed := 0
	skipped := 0
	for _, item := range items {
		if item.Name == "" || !models.IsValidCategory(string(item.Category)) {
			skipped++
			logging.Warn("Skipping malformed catalog record", map[string]interface{}{
				"name":     item.Name,
				"category": string(item.Category),
			})
			continue
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if err := store.Upsert(ctx, item); err != nil {
			return fmt.Errorf("upserting %q: %w", item.Name, err)
		}
		indexed++
	}

	total, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting catalog items: %w", err)
	}

	logging.Info("Catalog indexed", map[string]interface{}{
		"indexed": indexed,
		"skipped": skipped,
		"total":   total,
	})
	return nil
}
