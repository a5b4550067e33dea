package perk

import (
	"sort"

	"github.com/udisondev/d2go/internal/model"
)

// Aggregator folds every equipped perk's effect for one category into a
// single response, or collects list categories without folding.
// It holds no state between calls; all memory lives in CalculationInput.CachedData.
type Aggregator struct {
	reg   *Registry
	perks []model.Perk
}

// NewAggregator binds a perk set to a registry. Perks are visited in id
// order so CachedData writes happen in a stable sequence.
func NewAggregator(reg *Registry, perks []model.Perk) *Aggregator {
	sorted := make([]model.Perk, len(perks))
	copy(sorted, perks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &Aggregator{reg: reg, perks: sorted}
}

// Perks returns the bound perks in evaluation order.
func (a *Aggregator) Perks() []model.Perk {
	return a.perks
}

func (a *Aggregator) each(calc *CalculationInput, pvp bool, fn func(e *Entry, in Input)) {
	for _, p := range a.perks {
		e := a.reg.Entry(p.ID)
		if e == nil {
			continue
		}
		fn(e, Input{Calc: calc, Value: p.Value, Enhanced: p.Enhanced, PvP: pvp})
	}
}

// Damage multiplies damage scales. Within a buff group only the strongest
// member applies.
func (a *Aggregator) Damage(calc *CalculationInput, pvp bool) DamageModifier {
	out := NeutralDamage()
	best := map[BuffGroup]DamageModifier{}
	a.each(calc, pvp, func(e *Entry, in Input) {
		r := e.Damage.resolve(in, NeutralDamage())
		if e.Group != GroupNone {
			if cur, ok := best[e.Group]; !ok || strength(r) > strength(cur) {
				best[e.Group] = r
			}
			return
		}
		out = mulDamage(out, r)
	})
	for _, g := range []BuffGroup{GroupEmpowering, GroupSurge, GroupDebuff} {
		if r, ok := best[g]; ok {
			out = mulDamage(out, r)
		}
	}
	return out
}

func strength(d DamageModifier) float64 {
	return d.ImpactScale * d.CritScale * d.ExplosiveScale
}

func mulDamage(a, b DamageModifier) DamageModifier {
	return DamageModifier{
		ImpactScale:    a.ImpactScale * b.ImpactScale,
		ExplosiveScale: a.ExplosiveScale * b.ExplosiveScale,
		CritScale:      a.CritScale * b.CritScale,
	}
}

// Firing sums delay and burst-size adds and multiplies scales.
func (a *Aggregator) Firing(calc *CalculationInput, pvp bool) FiringModifier {
	out := NeutralFiring()
	a.each(calc, pvp, func(e *Entry, in Input) {
		r := e.Firing.resolve(in, NeutralFiring())
		out.BurstDelayScale *= r.BurstDelayScale
		out.BurstDelayAdd += r.BurstDelayAdd
		out.InnerBurstScale *= r.InnerBurstScale
		out.BurstSizeAdd += r.BurstSizeAdd
	})
	return out
}

func (a *Aggregator) Handling(calc *CalculationInput, pvp bool) HandlingModifier {
	out := NeutralHandling()
	a.each(calc, pvp, func(e *Entry, in Input) {
		r := e.Handling.resolve(in, NeutralHandling())
		out.StatAdd += r.StatAdd
		out.DrawScale *= r.DrawScale
		out.StowScale *= r.StowScale
		out.ADSScale *= r.ADSScale
	})
	return out
}

func (a *Aggregator) Range(calc *CalculationInput, pvp bool) RangeModifier {
	out := NeutralRange()
	a.each(calc, pvp, func(e *Entry, in Input) {
		r := e.Range.resolve(in, NeutralRange())
		out.StatAdd += r.StatAdd
		out.AllScale *= r.AllScale
		out.HipScale *= r.HipScale
		out.ZoomScale *= r.ZoomScale
	})
	return out
}

func (a *Aggregator) Reload(calc *CalculationInput, pvp bool) ReloadModifier {
	out := NeutralReload()
	a.each(calc, pvp, func(e *Entry, in Input) {
		r := e.Reload.resolve(in, NeutralReload())
		out.StatAdd += r.StatAdd
		out.TimeScale *= r.TimeScale
	})
	return out
}

func (a *Aggregator) Magazine(calc *CalculationInput, pvp bool) MagazineModifier {
	out := NeutralMagazine()
	a.each(calc, pvp, func(e *Entry, in Input) {
		r := e.Magazine.resolve(in, NeutralMagazine())
		out.StatAdd += r.StatAdd
		out.Scale *= r.Scale
		out.Add += r.Add
	})
	return out
}

func (a *Aggregator) Reserve(calc *CalculationInput, pvp bool) ReserveModifier {
	out := NeutralReserve()
	a.each(calc, pvp, func(e *Entry, in Input) {
		r := e.Reserve.resolve(in, NeutralReserve())
		out.StatAdd += r.StatAdd
		out.Scale *= r.Scale
		out.Add += r.Add
	})
	return out
}

func (a *Aggregator) Flinch(calc *CalculationInput, pvp bool) FlinchModifier {
	out := NeutralFlinch()
	a.each(calc, pvp, func(e *Entry, in Input) {
		out.Scale *= e.Flinch.resolve(in, NeutralFlinch()).Scale
	})
	return out
}

// StatBuffs sums dynamic stat bumps per stat.
func (a *Aggregator) StatBuffs(calc *CalculationInput, pvp bool) StatBuffs {
	out := StatBuffs{}
	a.each(calc, pvp, func(e *Entry, in Input) {
		for h, v := range e.StatBuffs.resolve(in, nil) {
			out[h] += v
		}
	})
	return out
}

// Explosive returns the largest explosive split among equipped perks.
func (a *Aggregator) Explosive(calc *CalculationInput, pvp bool) ExplosivePercent {
	var out ExplosivePercent
	a.each(calc, pvp, func(e *Entry, in Input) {
		if r := e.Explosive.resolve(in, ExplosivePercent{}); r.Percent > out.Percent {
			out = r
		}
	})
	return out
}

// Refunds collects every refund that can trigger. Each applies on its own
// schedule; they are never merged.
func (a *Aggregator) Refunds(calc *CalculationInput, pvp bool) []Refund {
	var out []Refund
	a.each(calc, pvp, func(e *Entry, in Input) {
		if r := e.Refund.resolve(in, Refund{}); r.Valid() {
			out = append(out, r)
		}
	})
	return out
}

// ExtraDamage collects bonus damage entries.
func (a *Aggregator) ExtraDamage(calc *CalculationInput, pvp bool) []ExtraDamage {
	var out []ExtraDamage
	a.each(calc, pvp, func(e *Entry, in Input) {
		if r := e.Extra.resolve(in, ExtraDamage{}); r.Valid() {
			out = append(out, r)
		}
	})
	return out
}

// ReloadOverrides collects valid overrides, highest priority first.
func (a *Aggregator) ReloadOverrides(calc *CalculationInput, pvp bool) []ReloadOverride {
	var out []ReloadOverride
	a.each(calc, pvp, func(e *Entry, in Input) {
		if r := e.ReloadOverride.resolve(in, ReloadOverride{}); r.Valid {
			out = append(out, r)
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}
