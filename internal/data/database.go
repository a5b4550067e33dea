package data

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
)

// ErrUnknownWeapon is returned when no formula pointers exist for a
// (weapon type, intrinsic) combination.
var ErrUnknownWeapon = errors.New("unknown weapon")

// Path keys the pointer table.
type Path struct {
	WeaponType model.WeaponType `json:"weaponType" yaml:"weapon_type"`
	Intrinsic  uint32           `json:"intrinsic" yaml:"intrinsic"`
}

func (p Path) String() string {
	return fmt.Sprintf("%s/%d", p.WeaponType, p.Intrinsic)
}

// Pointers are indices into the parallel formula tables of a Database.
type Pointers struct {
	Range    int `json:"r" yaml:"range"`
	Handling int `json:"h" yaml:"handling"`
	Reload   int `json:"rl" yaml:"reload"`
	Scalar   int `json:"s" yaml:"scalar"`
	Firing   int `json:"f" yaml:"firing"`
	Ammo     int `json:"a" yaml:"ammo"`
}

// Database is the static formula set. It is never mutated after loading.
type Database struct {
	Range    []formula.Range    `json:"range"`
	Handling []formula.Handling `json:"handling"`
	Reload   []formula.Reload   `json:"reload"`
	Scalars  []model.DamageMods `json:"scalars"`
	Firing   []model.FiringData `json:"firing"`
	Ammo     []formula.Ammo     `json:"ammo"`
	Pointers map[Path]Pointers  `json:"-"`
}

// Formulas is the resolved formula set for one weapon.
type Formulas struct {
	Range      formula.Range
	Handling   formula.Handling
	Reload     formula.Reload
	DamageMods model.DamageMods
	Firing     model.FiringData
	Ammo       formula.Ammo
}

// Source produces a Database; implemented by the built-in tables and the
// SQL stores.
type Source interface {
	Load(ctx context.Context) (*Database, error)
}

// StaticSource serves the compiled-in tables.
type StaticSource struct{}

func (StaticSource) Load(context.Context) (*Database, error) {
	return Static(), nil
}

// Static returns the compiled-in database. Callers must not modify it.
func Static() *Database {
	return &staticDatabase
}

// Lookup returns the pointers for a weapon type and intrinsic frame.
func (db *Database) Lookup(wt model.WeaponType, intrinsic uint32) (Pointers, error) {
	p, ok := db.Pointers[Path{WeaponType: wt, Intrinsic: intrinsic}]
	if !ok {
		return Pointers{}, fmt.Errorf("looking up weapon type %d (%s) intrinsic %d: %w", uint32(wt), wt, intrinsic, ErrUnknownWeapon)
	}
	return p, nil
}

// Formulas resolves pointers to formula values. Pointers must come from
// Lookup on a validated database.
func (db *Database) Formulas(p Pointers) Formulas {
	return Formulas{
		Range:      db.Range[p.Range],
		Handling:   db.Handling[p.Handling],
		Reload:     db.Reload[p.Reload],
		DamageMods: db.Scalars[p.Scalar],
		Firing:     db.Firing[p.Firing],
		Ammo:       db.Ammo[p.Ammo],
	}
}

// Paths lists every known weapon path sorted by type then intrinsic.
func (db *Database) Paths() []Path {
	out := make([]Path, 0, len(db.Pointers))
	for p := range db.Pointers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeaponType != out[j].WeaponType {
			return out[i].WeaponType < out[j].WeaponType
		}
		return out[i].Intrinsic < out[j].Intrinsic
	})
	return out
}

// Validate checks that every pointer indexes an existing formula, so a
// weapon built from a validated database can always be simulated.
func (db *Database) Validate() error {
	var errs []error
	check := func(path Path, table string, idx, n int) {
		if idx < 0 || idx >= n {
			errs = append(errs, fmt.Errorf("%s: %s index %d out of range [0,%d)", path, table, idx, n))
		}
	}
	for _, path := range db.Paths() {
		p := db.Pointers[path]
		check(path, "range", p.Range, len(db.Range))
		check(path, "handling", p.Handling, len(db.Handling))
		check(path, "reload", p.Reload, len(db.Reload))
		check(path, "scalar", p.Scalar, len(db.Scalars))
		check(path, "firing", p.Firing, len(db.Firing))
		check(path, "ammo", p.Ammo, len(db.Ammo))
	}
	for i, f := range db.Firing {
		if f.BurstDelay <= 0 {
			errs = append(errs, fmt.Errorf("firing %d: burst delay must be positive", i))
		}
	}
	for i, a := range db.Ammo {
		if a.RoundTo < 0 {
			errs = append(errs, fmt.Errorf("ammo %d: negative round_to", i))
		}
	}
	return errors.Join(errs...)
}

// Record is one flattened weapon row, the shape used by the SQL stores
// and the generator input.
type Record struct {
	Path     Path             `json:"path"`
	Range    formula.Range    `json:"range"`
	Handling formula.Handling `json:"handling"`
	Reload   formula.Reload   `json:"reload"`
	Scalar   model.DamageMods `json:"scalar"`
	Firing   model.FiringData `json:"firing"`
	Ammo     formula.Ammo     `json:"ammo"`
}

// Records flattens the database into one record per path.
func (db *Database) Records() []Record {
	paths := db.Paths()
	out := make([]Record, 0, len(paths))
	for _, path := range paths {
		f := db.Formulas(db.Pointers[path])
		out = append(out, Record{
			Path:     path,
			Range:    f.Range,
			Handling: f.Handling,
			Reload:   f.Reload,
			Scalar:   f.DamageMods,
			Firing:   f.Firing,
			Ammo:     f.Ammo,
		})
	}
	return out
}

// FromRecords rebuilds a database, sharing table rows between records
// with identical formulas.
func FromRecords(records []Record) (*Database, error) {
	db := &Database{Pointers: make(map[Path]Pointers, len(records))}
	for _, r := range records {
		if _, dup := db.Pointers[r.Path]; dup {
			return nil, fmt.Errorf("duplicate weapon path %s", r.Path)
		}
		db.Pointers[r.Path] = Pointers{
			Range:    indexOf(&db.Range, r.Range, rangeEqual),
			Handling: indexOf(&db.Handling, r.Handling, func(a, b formula.Handling) bool { return a == b }),
			Reload:   indexOf(&db.Reload, r.Reload, func(a, b formula.Reload) bool { return a == b }),
			Scalar:   indexOf(&db.Scalars, r.Scalar, func(a, b model.DamageMods) bool { return a == b }),
			Firing:   indexOf(&db.Firing, r.Firing, func(a, b model.FiringData) bool { return a == b }),
			Ammo:     indexOf(&db.Ammo, r.Ammo, ammoEqual),
		}
	}
	if err := db.Validate(); err != nil {
		return nil, fmt.Errorf("validating database: %w", err)
	}
	return db, nil
}

func indexOf[T any](table *[]T, v T, eq func(a, b T) bool) int {
	for i, existing := range *table {
		if eq(existing, v) {
			return i
		}
	}
	*table = append(*table, v)
	return len(*table) - 1
}

func rangeEqual(a, b formula.Range) bool { return a == b }

func ammoEqual(a, b formula.Ammo) bool {
	if a.Mag != b.Mag || a.RoundTo != b.RoundTo || a.ReserveID != b.ReserveID || len(a.Reserves) != len(b.Reserves) {
		return false
	}
	for k, q := range a.Reserves {
		if other, ok := b.Reserves[k]; !ok || other != q {
			return false
		}
	}
	return true
}
