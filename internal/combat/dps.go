package combat

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/weapon"
)

// DpsResponse is the outcome of one reserve-to-empty engagement.
type DpsResponse struct {
	DpsPerMag   []float64 `json:"dpsPerMag"`
	TimeDamage  []Sample  `json:"timeDamageData"`
	TotalDamage float64   `json:"totalDamage"`
	TotalTime   float64   `json:"totalTime"`
	TotalShots  int       `json:"totalShots"`
	ShotsHit    int       `json:"shotsHit"`
	Reloads     int       `json:"reloads"`
}

// Scale multiplies every damage figure by mult.
func (r *DpsResponse) Scale(mult float64) {
	for i := range r.TimeDamage {
		r.TimeDamage[i].Damage *= mult
	}
	for i := range r.DpsPerMag {
		r.DpsPerMag[i] *= mult
	}
	r.TotalDamage *= mult
}

// ShotCap bounds the number of rounds a DPS run may fire.
func ShotCap(ammo model.AmmoType, baseMag int) int {
	if ammo == model.AmmoPrimary {
		return max(baseMag*5, 15)
	}
	return baseMag*8 + 20
}

// DPS fires the weapon against enemy until reserves run dry or the shot
// cap is reached. Every hit is assumed to be a precision hit.
func DPS(w *weapon.Weapon, enemy model.EnemyType) DpsResponse {
	static := w.StaticInput()
	static.EnemyType = enemy
	mods := w.Formulas.DamageMods

	r := &dpsRun{
		w:     w,
		agg:   w.Aggregator(),
		cache: make(map[string]float64),
		st:    weapon.State{Enemy: enemy},
		mult:  mods.PvEMult() * mods.For(enemy),
	}
	r.reserve = w.AmmoSizes(static, false).Reserves
	limit := ShotCap(w.AmmoType, int(static.BaseMag))

	r.load(r.magSize())
	for {
		for r.mag > 0 && r.out.TotalShots < limit {
			r.fire()
		}
		r.out.DpsPerMag = append(r.out.DpsPerMag, r.dps())
		if r.out.TotalShots >= limit {
			slog.Debug("dps shot cap reached", "weapon", w.Hash, "shots", limit)
			break
		}
		if r.reserve <= 0 {
			break
		}
		r.reload()
	}

	slices.SortStableFunc(r.out.TimeDamage, func(a, b Sample) int {
		return cmp.Compare(a.Time, b.Time)
	})
	r.out.TotalTime = r.st.TimeTotal
	return r.out
}

type dpsRun struct {
	w     *weapon.Weapon
	agg   *perk.Aggregator
	cache map[string]float64
	st    weapon.State
	mult  float64

	mag         int
	reserve     int
	hitsThisMag int

	out DpsResponse
}

func (r *dpsRun) input() *perk.CalculationInput {
	r.st.CurrMag = float64(r.mag)
	r.st.ReservesLeft = float64(r.reserve)
	return r.w.Input(r.st, r.cache)
}

func (r *dpsRun) magSize() int {
	in := r.input()
	in.CurrMag = in.BaseMag
	return r.w.AmmoSizes(in, false).Mag
}

// load moves up to n rounds from reserve into the magazine.
func (r *dpsRun) load(n int) {
	n = min(n, r.reserve)
	r.reserve -= n
	r.mag += n
}

func (r *dpsRun) emit(t, dmg float64) {
	r.out.TimeDamage = append(r.out.TimeDamage, Sample{Time: t, Damage: dmg})
	r.out.TotalDamage += dmg
}

func (r *dpsRun) advance(dt float64) {
	r.st.TimeTotal += dt
	r.st.TimeThisMag += dt
}

func (r *dpsRun) dps() float64 {
	if r.st.TimeTotal <= 0 {
		return 0
	}
	return r.out.TotalDamage / r.st.TimeTotal
}

func (r *dpsRun) fire() {
	in := r.input()
	s := resolveShot(r.w, r.agg, in, false)

	hits := 1
	pos := int(r.st.ShotsFiredThisMag) % s.cadence.BurstSize
	if s.oneAmmo {
		hits = s.cadence.BurstSize
		pos = 0
	}

	var elapsed float64
	if s.chargeTime > 0 && pos == 0 {
		elapsed += s.chargeTime
	}
	t := r.st.TimeTotal + elapsed

	for i := range hits {
		ht := t + float64(i)*s.cadence.InnerBurstDelay
		switch {
		case s.explosive > 0 && s.delayed > 0:
			r.emit(ht, s.impact*s.crit*r.mult)
			r.emit(ht+s.delayed, s.explosive*r.mult)
		default:
			r.emit(ht, s.hit(true)*r.mult)
		}
	}

	for _, e := range r.agg.ExtraDamage(in, false) {
		r.extra(e, s, t)
		if e.IncrementTotalTime {
			elapsed += e.Duration
		}
	}

	if s.oneAmmo {
		elapsed += s.cadence.InnerBurstDelay*float64(hits-1) + s.cadence.BurstDelay
	} else {
		elapsed += s.delayAfter(pos)
	}

	prevHits := r.hitsThisMag
	r.mag--
	r.hitsThisMag += hits
	r.st.ShotsFiredThisMag++
	r.st.TotalShotsFired++
	r.st.TotalShotsHit += float64(hits)
	r.out.TotalShots++
	r.out.ShotsHit += hits
	r.advance(elapsed)

	r.refund(prevHits)
}

// extra emits the samples of one bonus damage entry triggered at t.
func (r *dpsRun) extra(e perk.ExtraDamage, s shot, t float64) {
	d := e.Damage
	if e.WeaponScale {
		d *= s.dmg.ImpactScale
	}
	if e.CritScale {
		d *= s.crit
	}
	if e.CombatantScale {
		d *= r.mult
	}
	n := float64(e.Hits)
	switch {
	case e.AtOnce:
		r.emit(t, d*n)
	case e.DoT:
		for i := 1; i <= e.Hits; i++ {
			r.emit(t+e.Duration*float64(i)/n, d)
		}
	default:
		for i := range e.Hits {
			r.emit(t+e.Duration*float64(i)/n, d)
		}
	}
}

// refund applies every refund whose hit requirement was crossed since
// prevHits.
func (r *dpsRun) refund(prevHits int) {
	for _, rf := range r.agg.Refunds(r.input(), false) {
		times := r.hitsThisMag/rf.Requirement - prevHits/rf.Requirement
		if times <= 0 {
			continue
		}
		r.mag += rf.RefundMag * times
		r.reserve += rf.RefundReserves * times
	}
	if r.reserve < 0 {
		r.mag += r.reserve
		r.reserve = 0
	}
	if r.mag < 0 {
		r.mag = 0
	}
}

func (r *dpsRun) reload() {
	in := r.input()
	if ovs := r.agg.ReloadOverrides(in, false); len(ovs) > 0 {
		o := ovs[0]
		slog.Debug("reload override applied",
			"priority", o.Priority,
			"time", o.ReloadTime,
			"ammo", o.AmmoToReload)
		r.advance(o.ReloadTime)
		if o.IncrementsReloadCount {
			r.countReload()
		}
		n := o.AmmoToReload
		if n <= 0 {
			n = r.magSize()
		}
		if o.UsesAmmo {
			r.load(n)
		} else {
			r.mag += n
		}
	} else {
		r.advance(r.w.ReloadTimes(in, false).ReloadTime)
		r.countReload()
		r.load(r.magSize())
	}
	r.st.ShotsFiredThisMag = 0
	r.st.TimeThisMag = 0
	r.hitsThisMag = 0
}

func (r *dpsRun) countReload() {
	r.st.NumReloads++
	r.out.Reloads++
}
