package db

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/model"
)

// formulaRow is one weapon_formulas row. Formula parts are stored as JSON
// so both SQL dialects share a schema.
type formulaRow struct {
	WeaponType int64  `db:"weapon_type"`
	Intrinsic  int64  `db:"intrinsic"`
	Range      string `db:"range_json"`
	Handling   string `db:"handling_json"`
	Reload     string `db:"reload_json"`
	Scalar     string `db:"scalar_json"`
	Firing     string `db:"firing_json"`
	Ammo       string `db:"ammo_json"`
}

func encodeRecord(r data.Record) (formulaRow, error) {
	row := formulaRow{
		WeaponType: int64(r.Path.WeaponType),
		Intrinsic:  int64(r.Path.Intrinsic),
	}
	parts := []struct {
		dst *string
		v   any
	}{
		{&row.Range, r.Range},
		{&row.Handling, r.Handling},
		{&row.Reload, r.Reload},
		{&row.Scalar, r.Scalar},
		{&row.Firing, r.Firing},
		{&row.Ammo, r.Ammo},
	}
	for _, p := range parts {
		b, err := json.Marshal(p.v)
		if err != nil {
			return formulaRow{}, fmt.Errorf("encoding %s: %w", r.Path, err)
		}
		*p.dst = string(b)
	}
	return row, nil
}

func (row formulaRow) decode() (data.Record, error) {
	r := data.Record{Path: data.Path{
		WeaponType: model.WeaponType(row.WeaponType),
		Intrinsic:  uint32(row.Intrinsic),
	}}
	parts := []struct {
		src string
		v   any
	}{
		{row.Range, &r.Range},
		{row.Handling, &r.Handling},
		{row.Reload, &r.Reload},
		{row.Scalar, &r.Scalar},
		{row.Firing, &r.Firing},
		{row.Ammo, &r.Ammo},
	}
	for _, p := range parts {
		if err := json.Unmarshal([]byte(p.src), p.v); err != nil {
			return data.Record{}, fmt.Errorf("decoding %s: %w", r.Path, err)
		}
	}
	return r, nil
}

// buildDatabase turns loaded records into a validated database.
func buildDatabase(records []data.Record) (*data.Database, error) {
	if len(records) == 0 {
		return nil, ErrEmptyStore
	}
	db, err := data.FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("building database: %w", err)
	}
	return db, nil
}
