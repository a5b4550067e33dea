package perk

import "github.com/udisondev/d2go/internal/model"

// Predicate gates a conditional effect.
type Predicate func(in Input) bool

// Active holds while the perk's toggle/stack value is non-zero.
func Active(in Input) bool { return in.Value > 0 }

// PvE holds outside PvP calculations.
func PvE(in Input) bool { return !in.PvP }

// FirstShotOfMag holds for the first shot of every magazine.
func FirstShotOfMag(in Input) bool { return in.Calc.ShotsFiredThisMag == 0 }

// NoShotsFired holds before the engagement's first shot.
func NoShotsFired(in Input) bool { return in.Calc.TotalShotsFired == 0 }

// NoReloads holds until the first reload.
func NoReloads(in Input) bool { return in.Calc.NumReloads == 0 }

// FullMag holds while the magazine is at least at its base size.
func FullMag(in Input) bool { return in.Calc.CurrMag >= in.Calc.BaseMag }

// Within holds while the perk is active and elapsed time is below the
// duration (enhanced perks use the enhanced duration).
func Within(base, enhanced float64) Predicate {
	return func(in Input) bool {
		d := base
		if in.Enhanced {
			d = enhanced
		}
		return in.Value > 0 && in.Calc.TimeTotal < d
	}
}

// WeaponIs holds for any of the given archetypes.
func WeaponIs(types ...model.WeaponType) Predicate {
	return func(in Input) bool {
		for _, t := range types {
			if in.Calc.WeaponType == t {
				return true
			}
		}
		return false
	}
}

// AmmoIs holds for the given ammo slot.
func AmmoIs(a model.AmmoType) Predicate {
	return func(in Input) bool { return in.Calc.AmmoType == a }
}

// DamageIs holds for the given element.
func DamageIs(d model.DamageType) Predicate {
	return func(in Input) bool { return in.Calc.DamageType == d }
}

// EnemyIs holds for any of the given target archetypes.
func EnemyIs(types ...model.EnemyType) Predicate {
	return func(in Input) bool {
		for _, t := range types {
			if in.Calc.EnemyType == t {
				return true
			}
		}
		return false
	}
}

// All holds when every predicate holds.
func All(ps ...Predicate) Predicate {
	return func(in Input) bool {
		for _, p := range ps {
			if !p(in) {
				return false
			}
		}
		return true
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(in Input) bool { return !p(in) }
}
