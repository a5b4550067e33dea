package combat

import (
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/weapon"
)

// ResilienceHealth is player health at resilience tiers 0 through 10.
var ResilienceHealth = [11]float64{
	185.01, 186.01, 187.01, 188.01, 189.01, 190.01, 192.01, 194.01, 196.01, 198.01, 200.01,
}

const (
	// TTKShotCap bounds both kill loops.
	TTKShotCap = 50
	// RangeAnyDistance is reported when falloff can never prevent the kill.
	RangeAnyDistance = 999.0
)

// OptimalKill is the fastest kill assuming every hit but possibly the
// last is a precision hit.
type OptimalKill struct {
	Headshots       int     `json:"headshots"`
	Bodyshots       int     `json:"bodyshots"`
	TimeTaken       float64 `json:"timeTaken"`
	FinalHeadshot   bool    `json:"finalHeadshot"`
	AchievableRange float64 `json:"achievableRange"`
}

// BodyKill is the kill using body hits only.
type BodyKill struct {
	Bodyshots int     `json:"bodyshots"`
	TimeTaken float64 `json:"timeTaken"`
}

// ResilienceSummary pairs both kill paths for one resilience tier.
type ResilienceSummary struct {
	Resilience int         `json:"resilienceValue"`
	Health     float64     `json:"health"`
	Optimal    OptimalKill `json:"optimalTtk"`
	Body       BodyKill    `json:"bodyTtk"`
}

// TTK simulates a kill on a player at every resilience tier. overshield
// is added to the health pool.
func TTK(w *weapon.Weapon, overshield float64) []ResilienceSummary {
	agg := w.Aggregator()
	out := make([]ResilienceSummary, 0, len(ResilienceHealth))
	for tier, hp := range ResilienceHealth {
		health := hp + overshield
		out = append(out, ResilienceSummary{
			Resilience: tier,
			Health:     health,
			Optimal:    optimalKill(w, agg, health, overshield),
			Body:       bodyKill(w, agg, health, overshield),
		})
	}
	return out
}

// killRun walks hits in time order; step reports whether the hit kills.
type killRun struct {
	w          *weapon.Weapon
	agg        *perk.Aggregator
	overshield float64
	cache      map[string]float64

	damage  float64
	time    float64
	hits    int
	fired   int
	burstAt int

	// damage accumulated per part, used for falloff achievability
	impact    float64
	explosive float64
}

func newKillRun(w *weapon.Weapon, agg *perk.Aggregator, overshield float64) *killRun {
	return &killRun{w: w, agg: agg, overshield: overshield, cache: make(map[string]float64)}
}

func (k *killRun) input() *perk.CalculationInput {
	return k.w.PvPInput(float64(k.fired), float64(k.hits), k.time, k.overshield-k.damage > 0, k.cache)
}

// next resolves the upcoming hit and moves the clock to it.
func (k *killRun) next() (shot, *perk.CalculationInput) {
	in := k.input()
	s := resolveShot(k.w, k.agg, in, true)
	if noCritAdvantage(k.w) {
		s.crit = 1
	}
	if k.burstAt == 0 {
		k.time += s.chargeTime
	}
	if k.burstAt == 0 || !s.oneAmmo {
		k.fired++
	}
	return s, in
}

// land records a hit and waits for the next one.
func (k *killRun) land(s shot, impact, explosive float64) {
	k.damage += impact + explosive
	k.impact += impact
	k.explosive += explosive
	k.hits++
	k.time += s.delayAfter(k.burstAt)
	k.burstAt = (k.burstAt + 1) % s.cadence.BurstSize
}

func optimalKill(w *weapon.Weapon, agg *perk.Aggregator, health, overshield float64) OptimalKill {
	k := newKillRun(w, agg, overshield)
	var res OptimalKill
	for k.hits < TTKShotCap {
		s, in := k.next()
		noCrit := s.crit <= 1

		if k.damage+s.hit(false) > health {
			res = OptimalKill{Headshots: k.hits, Bodyshots: 1, TimeTaken: k.time}
			k.impact += s.impact
			k.explosive += s.explosive
			if noCrit {
				res.Headshots, res.Bodyshots = 0, k.hits+1
			}
			res.AchievableRange = achievableRange(k.w.RangeFalloff(in, true), health, k.impact, k.explosive)
			return res
		}
		if k.damage+s.hit(true) > health {
			res = OptimalKill{Headshots: k.hits + 1, TimeTaken: k.time, FinalHeadshot: true}
			k.impact += s.impact * s.crit
			k.explosive += s.explosive
			res.AchievableRange = achievableRange(k.w.RangeFalloff(in, true), health, k.impact, k.explosive)
			return res
		}
		k.land(s, s.impact*s.crit, s.explosive)
	}
	return OptimalKill{Headshots: k.hits, TimeTaken: k.time}
}

func bodyKill(w *weapon.Weapon, agg *perk.Aggregator, health, overshield float64) BodyKill {
	k := newKillRun(w, agg, overshield)
	for k.hits < TTKShotCap {
		s, _ := k.next()
		if k.damage+s.hit(false) > health {
			return BodyKill{Bodyshots: k.hits + 1, TimeTaken: k.time}
		}
		k.land(s, s.impact, s.explosive)
	}
	return BodyKill{Bodyshots: k.hits, TimeTaken: k.time}
}

// achievableRange is the farthest ADS distance at which the same hits
// still exceed health. Only the impact part is subject to falloff.
func achievableRange(f formula.RangeFalloff, health, impact, explosive float64) float64 {
	if impact <= 0 {
		return RangeAnyDistance
	}
	need := (health - explosive) / impact
	floor := f.FloorPercent / 100
	switch {
	case need <= floor:
		return RangeAnyDistance
	case need >= 1 || f.ADSEnd <= f.ADSStart:
		return max(f.ADSStart, 0)
	}
	t := (1 - need) / (1 - floor)
	return max(f.ADSStart+t*(f.ADSEnd-f.ADSStart), 0)
}
