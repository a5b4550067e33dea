package formula

import "math"

// Ammo describes magazine and reserve sizing.
//
// RoundTo is the number of decimal places the raw magazine value is rounded
// to before it is rounded up. Reserves, when present, maps a magazine stat
// to a linear inventory-stat curve; otherwise ReserveID selects a built-in
// reserve family.
type Ammo struct {
	Mag       Quadratic         `json:"mag" yaml:"mag"`
	RoundTo   int               `json:"roundTo" yaml:"round_to"`
	ReserveID uint32            `json:"reserveId" yaml:"reserve_id"`
	Reserves  map[int]Quadratic `json:"reserves,omitempty" yaml:"reserves,omitempty"`
}

// AmmoSizes is the evaluated magazine and reserve capacity.
type AmmoSizes struct {
	Mag      int `json:"magSize"`
	Reserves int `json:"reserveSize"`
}

// RawMag returns the unrounded magazine value at stat.
func (a Ammo) RawMag(stat int) float64 {
	return roundTo(a.Mag.SolveStat(stat), a.RoundTo)
}

// MagSize returns ceil(raw·scale)+add, never below one round.
func (a Ammo) MagSize(stat int, scale float64, add int) int {
	mag := int(math.Ceil(a.RawMag(stat)*scale)) + add
	if mag < 1 {
		mag = 1
	}
	return mag
}

// ReserveSize returns total reserve ammunition.
func (a Ammo) ReserveSize(magStat, invStat int, scale float64, add int) int {
	var raw float64
	if len(a.Reserves) > 0 {
		raw = a.closestReserve(magStat).SolveStat(invStat)
	} else {
		raw = ReserveFamily(a.ReserveID).Raw(a.RawMag(magStat), clampStat(magStat), clampStat(invStat))
	}
	n := int(math.Ceil(raw*scale)) + add
	if n < 0 {
		n = 0
	}
	return n
}

func (a Ammo) closestReserve(magStat int) Quadratic {
	best, bestDiff := 0, -1
	for k := range a.Reserves {
		d := k - magStat
		if d < 0 {
			d = -d
		}
		// ties resolve to the lower key so map order never matters
		if bestDiff < 0 || d < bestDiff || (d == bestDiff && k < best) {
			best, bestDiff = k, d
		}
	}
	return a.Reserves[best]
}
