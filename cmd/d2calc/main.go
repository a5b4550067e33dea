// d2calc evaluates weapon loadouts: derived stats, damage over a full
// reserve and time to kill across the resilience ladder.
//
// Usage:
//
//	d2calc analyze [-o table|json] request.yaml [request.json ...]
//	d2calc perks <id> [id ...]
//	d2calc repl
//	d2calc migrate
//	d2calc seed
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/udisondev/d2go/internal/config"
	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/db"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/session"
)

const ConfigPath = "config/d2calc.yaml"

var errUsage = errors.New("usage: d2calc <analyze|perks|repl|migrate|seed> [args]")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfgPath := ConfigPath
	if p := os.Getenv("D2GO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadCalculator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	if len(args) == 0 {
		return errUsage
	}

	slog.Debug("d2calc starting", "command", args[0], "config", cfgPath, "source", cfg.Data.Source)

	switch args[0] {
	case "analyze":
		return runAnalyze(ctx, cfg, args[1:], os.Stdout)
	case "perks":
		return runPerks(ctx, cfg, args[1:], os.Stdout)
	case "repl":
		return runREPL(ctx, cfg)
	case "migrate":
		return runMigrate(ctx, cfg)
	case "seed":
		return runSeed(ctx, cfg)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// setupLogging installs the default logger. Output goes to a rotated file
// when one is configured, stderr otherwise.
func setupLogging(cfg config.Calculator) func() {
	var out io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.Log.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		}
		out = lj
		closeFn = func() { _ = lj.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	return closeFn
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newBuilder loads the formula database and the enhanced-perk map from the
// configured source.
func newBuilder(ctx context.Context, cfg config.Calculator) (*session.Builder, error) {
	database, enhanced, err := loadData(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Data.EnhancedMapPath != "" {
		fromFile, err := data.LoadEnhancedMap(cfg.Data.EnhancedMapPath)
		if err != nil {
			return nil, fmt.Errorf("loading enhanced map: %w", err)
		}
		for k, v := range fromFile {
			enhanced[k] = v
		}
	}

	slog.Debug("formula database ready",
		"paths", len(database.Pointers),
		"enhanced_perks", len(enhanced))
	return session.NewBuilder(database, perk.NewRegistry(enhanced), cfg.Cache.TTL, cfg.Cache.MaxKeys), nil
}

func loadData(ctx context.Context, cfg config.Calculator) (*data.Database, perk.EnhancedMap, error) {
	switch cfg.Data.Source {
	case config.SourceSQLite:
		store, err := db.OpenSQLite(ctx, cfg.Data.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		defer store.Close()

		database, err := store.Load(ctx)
		if err != nil {
			return nil, nil, storeHint(err)
		}
		enhanced, err := store.LoadEnhanced(ctx)
		if err != nil {
			return nil, nil, err
		}
		return database, enhanced, nil

	case config.SourcePostgres:
		pg, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		defer pg.Close()

		database, err := db.NewPostgresSource(pg).Load(ctx)
		if err != nil {
			return nil, nil, storeHint(err)
		}
		enhanced, err := db.NewEnhancedRepository(pg.Pool()).Load(ctx)
		if err != nil {
			return nil, nil, err
		}
		return database, enhanced, nil

	default:
		database, err := data.StaticSource{}.Load(ctx)
		if err != nil {
			return nil, nil, err
		}
		return database, perk.EnhancedMap{}, nil
	}
}

func storeHint(err error) error {
	if errors.Is(err, db.ErrEmptyStore) {
		return fmt.Errorf("loading formulas (run `d2calc migrate` and `d2calc seed` first): %w", err)
	}
	return fmt.Errorf("loading formulas: %w", err)
}
