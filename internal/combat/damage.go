// Package combat runs the shot-by-shot DPS and TTK simulations over a
// weapon and its equipped perks.
package combat

import (
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/weapon"
)

// Sample is one (time, damage) point of a damage series.
type Sample struct {
	Time   float64 `json:"time"`
	Damage float64 `json:"damage"`
}

// shot is the per-hit damage of one trigger pull after modifiers.
type shot struct {
	impact    float64
	explosive float64
	crit      float64
	delayed   float64

	cadence    weapon.Cadence
	chargeTime float64
	oneAmmo    bool

	dmg perk.DamageModifier
}

// resolveShot evaluates damage, explosive split and cadence modifiers at in.
func resolveShot(w *weapon.Weapon, agg *perk.Aggregator, in *perk.CalculationInput, pvp bool) shot {
	f := w.Formulas.Firing
	dm := agg.Damage(in, pvp)
	ex := agg.Explosive(in, pvp)
	impact, explosive := weapon.SplitDamage(f.Damage, ex)

	s := shot{
		impact:    impact * dm.ImpactScale,
		explosive: explosive * dm.ExplosiveScale,
		crit:      f.CritMult * dm.CritScale,
		delayed:   ex.Delayed,
		cadence:   w.Cadence(agg.Firing(in, pvp)),
		oneAmmo:   f.OneAmmo && f.BurstSize > 1,
		dmg:       dm,
	}
	if f.Charge {
		s.chargeTime = f.ChargeTime
	}
	return s
}

// hit returns the damage of a single hit.
func (s shot) hit(critical bool) float64 {
	if critical {
		return s.impact*s.crit + s.explosive
	}
	return s.impact + s.explosive
}

// delayAfter is the wait after the hit at burst position pos.
func (s shot) delayAfter(pos int) float64 {
	if pos+1 < s.cadence.BurstSize {
		return s.cadence.InnerBurstDelay
	}
	return s.cadence.BurstDelay
}

// noCritAdvantage reports weapons whose pellets never gain from precision
// hits in the kill simulations.
func noCritAdvantage(w *weapon.Weapon) bool {
	return w.Type == model.WeaponShotgun && w.Formulas.Firing.BurstSize == 12
}
