package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/d2go/internal/perk"
)

// EnhancedRepository хранит соответствие enhanced-перков базовым.
type EnhancedRepository struct {
	db *pgxpool.Pool
}

// NewEnhancedRepository создаёт новый EnhancedRepository.
func NewEnhancedRepository(db *pgxpool.Pool) *EnhancedRepository {
	return &EnhancedRepository{db: db}
}

// Load загружает всю таблицу.
func (r *EnhancedRepository) Load(ctx context.Context) (perk.EnhancedMap, error) {
	rows, err := r.db.Query(ctx, `SELECT enhanced_id, base_id FROM enhanced_perks`)
	if err != nil {
		return nil, fmt.Errorf("querying enhanced perks: %w", err)
	}
	defer rows.Close()

	m := make(perk.EnhancedMap, 64)
	for rows.Next() {
		var enhanced, base int64
		if err := rows.Scan(&enhanced, &base); err != nil {
			return nil, fmt.Errorf("scanning enhanced perk row: %w", err)
		}
		m[uint32(enhanced)] = uint32(base)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating enhanced perk rows: %w", err)
	}

	return m, nil
}

// Save перезаписывает таблицу целиком.
func (r *EnhancedRepository) Save(ctx context.Context, m perk.EnhancedMap) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "table", "enhanced_perks", "error", err)
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM enhanced_perks`); err != nil {
		return fmt.Errorf("deleting enhanced perks: %w", err)
	}
	for enhanced, base := range m {
		if _, err := tx.Exec(ctx,
			`INSERT INTO enhanced_perks (enhanced_id, base_id) VALUES ($1, $2)`,
			int64(enhanced), int64(base),
		); err != nil {
			return fmt.Errorf("inserting enhanced perk %d: %w", enhanced, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing enhanced perks save: %w", err)
	}
	return nil
}
