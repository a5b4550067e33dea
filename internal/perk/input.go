package perk

import (
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
)

// CalculationInput is the per-shot snapshot every effect reads.
// CachedData is the only mutable part: scratch space owned by one
// simulation run and shared by every perk during that run.
type CalculationInput struct {
	Firing     model.FiringData
	Stats      map[model.StatHash]model.Stat
	WeaponType model.WeaponType
	AmmoType   model.AmmoType
	DamageType model.DamageType
	Intrinsic  uint32

	BaseDamage   float64
	BaseCritMult float64
	BaseMag      float64
	CurrMag      float64
	ReservesLeft float64

	ShotsFiredThisMag float64
	TotalShotsFired   float64
	TotalShotsHit     float64
	TimeThisMag       float64
	TimeTotal         float64
	NumReloads        float64

	Handling      formula.HandlingTimes
	EnemyType     model.EnemyType
	HasOvershield bool

	CachedData map[string]float64
}

// StatVal returns the effective value of a stat, zero when absent.
func (c *CalculationInput) StatVal(h model.StatHash) int {
	if s, ok := c.Stats[h]; ok {
		return s.PerkVal()
	}
	return 0
}

// Input bundles what an effect sees for one perk.
type Input struct {
	Calc     *CalculationInput
	Value    uint32
	Enhanced bool
	PvP      bool
}

func (in Input) cache() map[string]float64 {
	if in.Calc.CachedData == nil {
		in.Calc.CachedData = make(map[string]float64)
	}
	return in.Calc.CachedData
}
