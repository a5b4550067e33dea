package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/perk"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLiteStore is a single-file formula store.
type SQLiteStore struct {
	db *sqlx.DB
}

// OpenSQLite opens (creating if needed) the store at path and applies
// migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	if err := migrate(ctx, db.DB, "sqlite3"); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load implements data.Source.
func (s *SQLiteStore) Load(ctx context.Context) (*data.Database, error) {
	records, err := s.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading formulas from sqlite: %w", err)
	}
	db, err := buildDatabase(records)
	if err != nil {
		return nil, fmt.Errorf("loading formulas from sqlite: %w", err)
	}
	slog.Info("loaded formulas", "source", "sqlite", "paths", len(records))
	return db, nil
}

// LoadRecords returns every stored record sorted by path.
func (s *SQLiteStore) LoadRecords(ctx context.Context) ([]data.Record, error) {
	var rows []formulaRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM weapon_formulas ORDER BY weapon_type, intrinsic`); err != nil {
		return nil, fmt.Errorf("querying weapon formulas: %w", err)
	}

	records := make([]data.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.decode()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveRecords replaces every stored record.
func (s *SQLiteStore) SaveRecords(ctx context.Context, records []data.Record) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM weapon_formulas`); err != nil {
		return fmt.Errorf("deleting existing formulas: %w", err)
	}
	for _, rec := range records {
		row, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO weapon_formulas (weapon_type, intrinsic, range_json, handling_json,
			     reload_json, scalar_json, firing_json, ammo_json)
			 VALUES (:weapon_type, :intrinsic, :range_json, :handling_json,
			     :reload_json, :scalar_json, :firing_json, :ammo_json)`,
			row,
		); err != nil {
			return fmt.Errorf("inserting formula %s: %w", rec.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing formulas save: %w", err)
	}
	return nil
}

type enhancedRow struct {
	Enhanced int64 `db:"enhanced_id"`
	Base     int64 `db:"base_id"`
}

// LoadEnhanced returns the stored enhanced-perk map.
func (s *SQLiteStore) LoadEnhanced(ctx context.Context) (perk.EnhancedMap, error) {
	var rows []enhancedRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT enhanced_id, base_id FROM enhanced_perks`); err != nil {
		return nil, fmt.Errorf("querying enhanced perks: %w", err)
	}
	m := make(perk.EnhancedMap, len(rows))
	for _, r := range rows {
		m[uint32(r.Enhanced)] = uint32(r.Base)
	}
	return m, nil
}

// SaveEnhanced replaces the stored enhanced-perk map.
func (s *SQLiteStore) SaveEnhanced(ctx context.Context, m perk.EnhancedMap) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM enhanced_perks`); err != nil {
		return fmt.Errorf("deleting enhanced perks: %w", err)
	}
	for enhanced, base := range m {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO enhanced_perks (enhanced_id, base_id) VALUES (?, ?)`,
			int64(enhanced), int64(base),
		); err != nil {
			return fmt.Errorf("inserting enhanced perk %d: %w", enhanced, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing enhanced perks save: %w", err)
	}
	return nil
}
