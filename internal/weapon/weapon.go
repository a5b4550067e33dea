// Package weapon holds the per-request weapon entity and the stat
// calculations derived from its formulas and equipped perks.
package weapon

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
)

// Spec identifies the weapon to construct.
type Spec struct {
	Hash       uint32           `json:"hash" yaml:"hash"`
	WeaponType model.WeaponType `json:"weaponType" yaml:"weapon_type"`
	Intrinsic  uint32           `json:"intrinsic" yaml:"intrinsic"`
	AmmoType   model.AmmoType   `json:"ammoType" yaml:"ammo_type"`
	DamageType model.DamageType `json:"damageType" yaml:"damage_type"`
}

// Weapon is built once per analysis and mutated only through its methods.
type Weapon struct {
	Hash       uint32
	Intrinsic  uint32
	Type       model.WeaponType
	AmmoType   model.AmmoType
	DamageType model.DamageType

	Pointers data.Pointers
	Formulas data.Formulas

	perks map[uint32]model.Perk
	stats map[model.StatHash]model.Stat
	reg   *perk.Registry
}

// New looks the weapon's formulas up in db. The intrinsic and the
// always-on built-in perk are equipped from the start.
func New(db *data.Database, reg *perk.Registry, spec Spec) (*Weapon, error) {
	ptrs, err := db.Lookup(spec.WeaponType, spec.Intrinsic)
	if err != nil {
		return nil, fmt.Errorf("constructing weapon %d: %w", spec.Hash, err)
	}

	w := &Weapon{
		Hash:       spec.Hash,
		Type:       spec.WeaponType,
		AmmoType:   spec.AmmoType,
		DamageType: spec.DamageType,
		Pointers:   ptrs,
		Formulas:   db.Formulas(ptrs),
		perks:      make(map[uint32]model.Perk, 8),
		stats:      make(map[model.StatHash]model.Stat, 16),
		reg:        reg,
	}

	intrinsic := reg.NewPerk(spec.Intrinsic, 0)
	w.Intrinsic = intrinsic.ID
	w.perks[intrinsic.ID] = intrinsic
	w.perks[perk.BuiltIn] = reg.NewPerk(perk.BuiltIn, 0)

	slog.Debug("weapon constructed",
		"hash", spec.Hash,
		"type", spec.WeaponType,
		"intrinsic", spec.Intrinsic,
		"pointers", ptrs)
	return w, nil
}

// Registry returns the registry the weapon resolves perks through.
func (w *Weapon) Registry() *perk.Registry {
	return w.reg
}

// Clone returns an independent deep copy.
func (w *Weapon) Clone() *Weapon {
	c := *w
	c.perks = make(map[uint32]model.Perk, len(w.perks))
	for id, p := range w.perks {
		c.perks[id] = p.Clone()
	}
	c.stats = maps.Clone(w.stats)
	return &c
}

// AddPerk equips a perk, replacing any perk with the same base id.
func (w *Weapon) AddPerk(p model.Perk) {
	w.perks[p.ID] = p.Clone()
	w.refreshPerkStats()
}

// EquipPerk resolves rawID through the registry and equips it.
func (w *Weapon) EquipPerk(rawID, value uint32) model.Perk {
	p := w.reg.NewPerk(rawID, value)
	w.AddPerk(p)
	return p
}

// RemovePerk unequips a perk by raw or base id.
func (w *Weapon) RemovePerk(id uint32) bool {
	base, _ := w.reg.Resolve(id)
	if _, ok := w.perks[base]; !ok {
		return false
	}
	delete(w.perks, base)
	w.refreshPerkStats()
	return true
}

// SetPerkValue changes the toggle/stack value of an equipped perk.
// The value is clamped to the perk's option.
func (w *Weapon) SetPerkValue(id, value uint32) bool {
	base, _ := w.reg.Resolve(id)
	p, ok := w.perks[base]
	if !ok {
		return false
	}
	opt := w.reg.Option(base)
	if opt.Kind == perk.OptionStatic {
		p.Value = value
	} else {
		p.Value = opt.Clamp(value)
	}
	w.perks[base] = p
	return true
}

// Perk returns an equipped perk.
func (w *Weapon) Perk(id uint32) (model.Perk, bool) {
	base, _ := w.reg.Resolve(id)
	p, ok := w.perks[base]
	return p, ok
}

// Perks returns equipped perks ordered by id.
func (w *Weapon) Perks() []model.Perk {
	ids := slices.Sorted(maps.Keys(w.perks))
	out := make([]model.Perk, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.perks[id])
	}
	return out
}

// SetStat sets the base and part components of a stat.
func (w *Weapon) SetStat(h model.StatHash, base, part int) {
	s := w.stats[h]
	s.Base, s.Part = base, part
	w.stats[h] = s
}

// SetStats replaces all base stats; perk components are recomputed.
func (w *Weapon) SetStats(stats map[model.StatHash]int) {
	w.stats = make(map[model.StatHash]model.Stat, len(stats))
	for h, v := range stats {
		w.stats[h] = model.Stat{Base: v}
	}
	w.refreshPerkStats()
}

// Stat returns a stat, zero when unset.
func (w *Weapon) Stat(h model.StatHash) model.Stat {
	return w.stats[h]
}

// Stats returns a copy of the stat map.
func (w *Weapon) Stats() map[model.StatHash]model.Stat {
	return maps.Clone(w.stats)
}

// refreshPerkStats recomputes the Perk component of every stat from the
// unconditional stat buffs of equipped perks.
func (w *Weapon) refreshPerkStats() {
	for h, s := range w.stats {
		s.Perk = 0
		w.stats[h] = s
	}
	for _, p := range w.perks {
		for h, v := range p.StatBuffs {
			s := w.stats[h]
			s.Perk += v
			w.stats[h] = s
		}
	}
}

// Aggregator binds the equipped perks for modifier resolution.
func (w *Weapon) Aggregator() *perk.Aggregator {
	return perk.NewAggregator(w.reg, w.Perks())
}
