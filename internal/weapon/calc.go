package weapon

import (
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
)

// RangeFalloff evaluates range with perk modifiers at in.
func (w *Weapon) RangeFalloff(in *perk.CalculationInput, pvp bool) formula.RangeFalloff {
	mod := w.Aggregator().Range(in, pvp)
	stat := model.ClampStat(w.Stat(model.StatRange).PerkVal() + mod.StatAdd)
	zoom := float64(w.Stat(model.StatZoom).PerkVal()) * mod.ZoomScale
	return w.Formulas.Range.Falloff(stat, zoom, mod.AllScale, mod.HipScale)
}

// HandlingTimes evaluates ready/stow/ADS times with perk modifiers at in.
func (w *Weapon) HandlingTimes(in *perk.CalculationInput, pvp bool) formula.HandlingTimes {
	mod := w.Aggregator().Handling(in, pvp)
	stat := model.ClampStat(w.Stat(model.StatHandling).PerkVal() + mod.StatAdd)
	return w.Formulas.Handling.Times(stat, mod.DrawScale, mod.StowScale, mod.ADSScale)
}

// ReloadTimes evaluates reload duration with perk modifiers at in.
func (w *Weapon) ReloadTimes(in *perk.CalculationInput, pvp bool) formula.ReloadTimes {
	mod := w.Aggregator().Reload(in, pvp)
	stat := model.ClampStat(w.Stat(model.StatReload).PerkVal() + mod.StatAdd)
	return w.Formulas.Reload.Times(stat, mod.TimeScale)
}

// AmmoSizes evaluates magazine and reserve capacity with perk modifiers at in.
func (w *Weapon) AmmoSizes(in *perk.CalculationInput, pvp bool) formula.AmmoSizes {
	agg := w.Aggregator()
	mag := agg.Magazine(in, pvp)
	res := agg.Reserve(in, pvp)

	magStat := model.ClampStat(w.Stat(model.StatMagazine).PerkVal() + mag.StatAdd)
	invStat := model.ClampStat(w.Stat(model.StatInventorySize).PerkVal() + res.StatAdd)
	return formula.AmmoSizes{
		Mag:      w.Formulas.Ammo.MagSize(magStat, mag.Scale, mag.Add),
		Reserves: w.Formulas.Ammo.ReserveSize(magStat, invStat, res.Scale, res.Add),
	}
}

// FlinchResist returns the fraction of flinch taken at a resilience tier
// (0-10). Lower is better.
func (w *Weapon) FlinchResist(resilience int, in *perk.CalculationInput, pvp bool) float64 {
	scale := w.Aggregator().Flinch(in, pvp).Scale
	r := float64(min(max(resilience, 0), 10))
	return 1 - scale*(1-0.01*r)
}

// Scalars summarizes the modifier scales at in.
type Scalars struct {
	RangeAll     float64 `json:"rangeAllScale"`
	RangeHip     float64 `json:"rangeHipScale"`
	RangeZoom    float64 `json:"rangeZoomScale"`
	Draw         float64 `json:"drawScale"`
	Stow         float64 `json:"stowScale"`
	ADS          float64 `json:"adsScale"`
	Reload       float64 `json:"reloadScale"`
	Magazine     float64 `json:"magazineScale"`
	Reserve      float64 `json:"reserveScale"`
	Impact       float64 `json:"impactScale"`
	Explosive    float64 `json:"explosiveScale"`
	Crit         float64 `json:"critScale"`
	BurstDelay   float64 `json:"burstDelayScale"`
	FlinchFactor float64 `json:"flinchScale"`
}

func (w *Weapon) Scalars(in *perk.CalculationInput, pvp bool) Scalars {
	agg := w.Aggregator()
	rng := agg.Range(in, pvp)
	hnd := agg.Handling(in, pvp)
	dmg := agg.Damage(in, pvp)
	return Scalars{
		RangeAll:     rng.AllScale,
		RangeHip:     rng.HipScale,
		RangeZoom:    rng.ZoomScale,
		Draw:         hnd.DrawScale,
		Stow:         hnd.StowScale,
		ADS:          hnd.ADSScale,
		Reload:       agg.Reload(in, pvp).TimeScale,
		Magazine:     agg.Magazine(in, pvp).Scale,
		Reserve:      agg.Reserve(in, pvp).Scale,
		Impact:       dmg.ImpactScale,
		Explosive:    dmg.ExplosiveScale,
		Crit:         dmg.CritScale,
		BurstDelay:   agg.Firing(in, pvp).BurstDelayScale,
		FlinchFactor: agg.Flinch(in, pvp).Scale,
	}
}

// StatView returns every stat with its Perk component including the
// dynamic stat buffs that apply at in.
func (w *Weapon) StatView(in *perk.CalculationInput, pvp bool) map[model.StatHash]model.Stat {
	out := w.Stats()
	for h, v := range w.Aggregator().StatBuffs(in, pvp) {
		s := out[h]
		s.Perk += v
		out[h] = s
	}
	return out
}
