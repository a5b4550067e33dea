package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/d2go/internal/data"
)

// FormulaRepository управляет таблицами формул оружия в PostgreSQL.
type FormulaRepository struct {
	db *pgxpool.Pool
}

// NewFormulaRepository создаёт новый FormulaRepository.
func NewFormulaRepository(db *pgxpool.Pool) *FormulaRepository {
	return &FormulaRepository{db: db}
}

// LoadAll загружает все записи формул, отсортированные по пути.
func (r *FormulaRepository) LoadAll(ctx context.Context) ([]data.Record, error) {
	query := `
		SELECT weapon_type, intrinsic, range_json, handling_json, reload_json,
		       scalar_json, firing_json, ammo_json
		FROM weapon_formulas
		ORDER BY weapon_type, intrinsic
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying weapon formulas: %w", err)
	}
	defer rows.Close()

	records := make([]data.Record, 0, 32)
	for rows.Next() {
		var row formulaRow
		if err := rows.Scan(&row.WeaponType, &row.Intrinsic, &row.Range, &row.Handling,
			&row.Reload, &row.Scalar, &row.Firing, &row.Ammo); err != nil {
			return nil, fmt.Errorf("scanning formula row: %w", err)
		}
		rec, err := row.decode()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating formula rows: %w", err)
	}

	return records, nil
}

// Save сохраняет все формулы (полная перезапись) в одной транзакции.
func (r *FormulaRepository) Save(ctx context.Context, records []data.Record) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "table", "weapon_formulas", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM weapon_formulas`); err != nil {
		return fmt.Errorf("deleting existing formulas: %w", err)
	}

	for _, rec := range records {
		row, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO weapon_formulas (weapon_type, intrinsic, range_json, handling_json,
			     reload_json, scalar_json, firing_json, ammo_json)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			row.WeaponType, row.Intrinsic, row.Range, row.Handling,
			row.Reload, row.Scalar, row.Firing, row.Ammo,
		); err != nil {
			return fmt.Errorf("inserting formula %s: %w", rec.Path, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing formulas save: %w", err)
	}

	return nil
}
