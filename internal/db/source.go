package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/d2go/internal/data"
)

// PostgresSource loads the formula database from PostgreSQL.
type PostgresSource struct {
	formulas *FormulaRepository
}

// NewPostgresSource creates a data source over an open DB.
func NewPostgresSource(d *DB) *PostgresSource {
	return &PostgresSource{formulas: NewFormulaRepository(d.Pool())}
}

func (s *PostgresSource) Load(ctx context.Context) (*data.Database, error) {
	records, err := s.formulas.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading formulas from postgres: %w", err)
	}
	db, err := buildDatabase(records)
	if err != nil {
		return nil, fmt.Errorf("loading formulas from postgres: %w", err)
	}
	slog.Info("loaded formulas", "source", "postgres", "paths", len(records))
	return db, nil
}
