package weapon

import (
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
)

// FiringResponse is the perk-adjusted firing profile.
type FiringResponse struct {
	PvPImpactDamage    float64 `json:"pvpImpactDamage"`
	PvPExplosionDamage float64 `json:"pvpExplosionDamage"`
	PvPCritMult        float64 `json:"pvpCritMult"`

	PvEImpactDamage    float64 `json:"pveImpactDamage"`
	PvEExplosionDamage float64 `json:"pveExplosionDamage"`
	PvECritMult        float64 `json:"pveCritMult"`

	BurstDelay      float64 `json:"burstDelay"`
	InnerBurstDelay float64 `json:"innerBurstDelay"`
	BurstSize       int     `json:"burstSize"`
	RPM             float64 `json:"rpm"`
	OneAmmo         bool    `json:"oneAmmo"`
	Charge          bool    `json:"charge"`
	ChargeTime      float64 `json:"chargeTime"`
}

// SplitDamage divides base damage into impact and explosive parts.
func SplitDamage(base float64, ex perk.ExplosivePercent) (impact, explosive float64) {
	if ex.Percent <= 0 {
		return base, 0
	}
	if ex.RetainBaseTotal {
		return base * (1 - ex.Percent), base * ex.Percent
	}
	return base, base * ex.Percent
}

// Cadence is the perk-adjusted firing timing.
type Cadence struct {
	BurstDelay      float64
	InnerBurstDelay float64
	BurstSize       int
}

// Cadence applies a firing modifier to the base firing data. The add is
// applied before the scale; burst size never drops below one.
func (w *Weapon) Cadence(mod perk.FiringModifier) Cadence {
	f := w.Formulas.Firing
	c := Cadence{
		BurstDelay:      (f.BurstDelay + mod.BurstDelayAdd) * mod.BurstDelayScale,
		InnerBurstDelay: f.InnerBurstDelay * mod.InnerBurstScale,
		BurstSize:       max(f.BurstSize+mod.BurstSizeAdd, 1),
	}
	if c.BurstDelay < 0 {
		c.BurstDelay = 0
	}
	return c
}

// RPM returns rounds per minute for the cadence; one-ammo bursts count as
// a single round.
func (c Cadence) RPM(oneAmmo bool, chargeTime float64) float64 {
	cycle := c.BurstDelay + c.InnerBurstDelay*float64(c.BurstSize-1) + chargeTime
	if cycle <= 0 {
		return 0
	}
	rounds := float64(c.BurstSize)
	if oneAmmo {
		rounds = 1
	}
	return 60 * rounds / cycle
}

// FiringData evaluates the firing profile at in. PvE damage includes the
// PvE and target archetype multipliers, times extraPvE (activity scaling,
// 1 for none).
func (w *Weapon) FiringData(in *perk.CalculationInput, extraPvE float64) FiringResponse {
	agg := w.Aggregator()
	f := w.Formulas.Firing
	c := w.Cadence(agg.Firing(in, false))

	pvpDmg := agg.Damage(in, true)
	pvpImpact, pvpExpl := SplitDamage(f.Damage, agg.Explosive(in, true))

	pveDmg := agg.Damage(in, false)
	pveImpact, pveExpl := SplitDamage(f.Damage, agg.Explosive(in, false))
	pveMult := w.Formulas.DamageMods.PvEMult() * w.Formulas.DamageMods.For(in.EnemyType) * extraPvE

	chargeTime := 0.0
	if f.Charge {
		chargeTime = f.ChargeTime
	}

	return FiringResponse{
		PvPImpactDamage:    pvpImpact * pvpDmg.ImpactScale,
		PvPExplosionDamage: pvpExpl * pvpDmg.ExplosiveScale,
		PvPCritMult:        f.CritMult * pvpDmg.CritScale,

		PvEImpactDamage:    pveImpact * pveDmg.ImpactScale * pveMult,
		PvEExplosionDamage: pveExpl * pveDmg.ExplosiveScale * pveMult,
		PvECritMult:        f.CritMult * pveDmg.CritScale,

		BurstDelay:      c.BurstDelay,
		InnerBurstDelay: c.InnerBurstDelay,
		BurstSize:       c.BurstSize,
		RPM:             c.RPM(f.OneAmmo, chargeTime),
		OneAmmo:         f.OneAmmo,
		Charge:          f.Charge,
		ChargeTime:      chargeTime,
	}
}

// ReversePvECalc recovers the unscaled damage from a PvE damage number.
func ReversePvECalc(damage, combatantMult, pveMult float64) float64 {
	if combatantMult == 0 || pveMult == 0 {
		return damage
	}
	return damage / (combatantMult * pveMult)
}

// CombatantMult is the archetype multiplier for an enemy, 1 against players.
func (w *Weapon) CombatantMult(e model.EnemyType) float64 {
	return w.Formulas.DamageMods.For(e)
}
