package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/d2go/internal/config"
	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/db"
	"github.com/udisondev/d2go/internal/perk"
)

var errStaticSource = errors.New("data source is static, configure postgres or sqlite")

// runMigrate applies the schema to the configured store.
func runMigrate(ctx context.Context, cfg config.Calculator) error {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("migrating postgres: %w", err)
		}
	case config.SourceSQLite:
		store, err := db.OpenSQLite(ctx, cfg.Data.SQLitePath)
		if err != nil {
			return fmt.Errorf("migrating sqlite: %w", err)
		}
		if err := store.Close(); err != nil {
			return fmt.Errorf("closing sqlite store: %w", err)
		}
	default:
		return errStaticSource
	}
	slog.Info("migrations applied", "source", cfg.Data.Source)
	return nil
}

// runSeed copies the compiled-in formulas and the enhanced-perk map file
// into the configured store, replacing what it held.
func runSeed(ctx context.Context, cfg config.Calculator) error {
	records := data.Static().Records()
	enhanced := perk.EnhancedMap{}
	if cfg.Data.EnhancedMapPath != "" {
		m, err := data.LoadEnhancedMap(cfg.Data.EnhancedMapPath)
		if err != nil {
			return fmt.Errorf("loading enhanced map: %w", err)
		}
		enhanced = m
	}

	switch cfg.Data.Source {
	case config.SourcePostgres:
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("migrating postgres: %w", err)
		}
		pg, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pg.Close()

		if err := db.NewFormulaRepository(pg.Pool()).Save(ctx, records); err != nil {
			return err
		}
		if err := db.NewEnhancedRepository(pg.Pool()).Save(ctx, enhanced); err != nil {
			return err
		}

	case config.SourceSQLite:
		store, err := db.OpenSQLite(ctx, cfg.Data.SQLitePath)
		if err != nil {
			return fmt.Errorf("opening sqlite store: %w", err)
		}
		defer store.Close()

		if err := store.SaveRecords(ctx, records); err != nil {
			return err
		}
		if err := store.SaveEnhanced(ctx, enhanced); err != nil {
			return err
		}

	default:
		return errStaticSource
	}

	slog.Info("store seeded",
		"source", cfg.Data.Source,
		"weapons", len(records),
		"enhanced_perks", len(enhanced))
	return nil
}
