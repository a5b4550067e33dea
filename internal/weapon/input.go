package weapon

import (
	"maps"

	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
)

// State is the mutable part of a calculation snapshot that simulators
// advance shot by shot.
type State struct {
	CurrMag           float64
	ReservesLeft      float64
	ShotsFiredThisMag float64
	TotalShotsFired   float64
	TotalShotsHit     float64
	TimeThisMag       float64
	TimeTotal         float64
	NumReloads        float64
	Enemy             model.EnemyType
	Overshield        bool
}

// Input builds a calculation snapshot for st. cache is the run's scratch
// map and may be nil for one-off calculations.
func (w *Weapon) Input(st State, cache map[string]float64) *perk.CalculationInput {
	baseMag := float64(w.Formulas.Ammo.MagSize(w.Stat(model.StatMagazine).PerkVal(), 1, 0))
	return &perk.CalculationInput{
		Firing:     w.Formulas.Firing,
		Stats:      maps.Clone(w.stats),
		WeaponType: w.Type,
		AmmoType:   w.AmmoType,
		DamageType: w.DamageType,
		Intrinsic:  w.Intrinsic,

		BaseDamage:   w.Formulas.Firing.Damage,
		BaseCritMult: w.Formulas.Firing.CritMult,
		BaseMag:      baseMag,
		CurrMag:      st.CurrMag,
		ReservesLeft: st.ReservesLeft,

		ShotsFiredThisMag: st.ShotsFiredThisMag,
		TotalShotsFired:   st.TotalShotsFired,
		TotalShotsHit:     st.TotalShotsHit,
		TimeThisMag:       st.TimeThisMag,
		TimeTotal:         st.TimeTotal,
		NumReloads:        st.NumReloads,

		Handling: w.Formulas.Handling.Times(w.Stat(model.StatHandling).PerkVal(), 1, 1, 1),

		EnemyType:     st.Enemy,
		HasOvershield: st.Overshield,
		CachedData:    cache,
	}
}

// StaticInput is the snapshot before the first shot with a full magazine,
// used for stat readouts.
func (w *Weapon) StaticInput() *perk.CalculationInput {
	in := w.Input(State{}, nil)
	in.CurrMag = in.BaseMag
	in.EnemyType = model.EnemyEnclave
	return in
}

// SparseInput is a PvE snapshot after shots fired over timeTotal seconds.
func (w *Weapon) SparseInput(shotsFired, timeTotal float64) *perk.CalculationInput {
	in := w.Input(State{TotalShotsFired: shotsFired, TotalShotsHit: shotsFired, TimeTotal: timeTotal}, nil)
	in.CurrMag = in.BaseMag
	in.ShotsFiredThisMag = shotsFired
	in.TimeThisMag = timeTotal
	return in
}

// PvPInput is a snapshot against a player.
func (w *Weapon) PvPInput(shotsFired, shotsHit, timeTotal float64, overshield bool, cache map[string]float64) *perk.CalculationInput {
	in := w.Input(State{
		TotalShotsFired:   shotsFired,
		ShotsFiredThisMag: shotsFired,
		TotalShotsHit:     shotsHit,
		TimeTotal:         timeTotal,
		TimeThisMag:       timeTotal,
		Enemy:             model.EnemyPlayer,
		Overshield:        overshield,
	}, cache)
	in.CurrMag = in.BaseMag - shotsFired
	if in.CurrMag < 1 {
		in.CurrMag = 1
	}
	return in
}
