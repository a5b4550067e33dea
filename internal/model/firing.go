package model

// FiringData is the cadence and base damage profile of a weapon frame.
// Delays are seconds between shots; BurstDelay separates bursts and
// InnerBurstDelay separates shots within one burst.
type FiringData struct {
	Damage          float64 `json:"damage" yaml:"damage"`
	CritMult        float64 `json:"critMult" yaml:"crit_mult"`
	BurstDelay      float64 `json:"burstDelay" yaml:"burst_delay"`
	InnerBurstDelay float64 `json:"innerBurstDelay" yaml:"inner_burst_delay"`
	BurstSize       int     `json:"burstSize" yaml:"burst_size"`
	OneAmmo         bool    `json:"oneAmmo" yaml:"one_ammo"`
	Charge          bool    `json:"charge" yaml:"charge"`
	ChargeTime      float64 `json:"chargeTime" yaml:"charge_time"`
}

// DamageMods holds per-archetype PvE damage multipliers.
type DamageMods struct {
	PvE      float64 `json:"pve" yaml:"pve"`
	Minor    float64 `json:"minor" yaml:"minor"`
	Elite    float64 `json:"elite" yaml:"elite"`
	Miniboss float64 `json:"miniboss" yaml:"miniboss"`
	Champion float64 `json:"champion" yaml:"champion"`
	Boss     float64 `json:"boss" yaml:"boss"`
	Vehicle  float64 `json:"vehicle" yaml:"vehicle"`
}

// DefaultDamageMods returns the identity table (every multiplier 1.0).
func DefaultDamageMods() DamageMods {
	return DamageMods{PvE: 1, Minor: 1, Elite: 1, Miniboss: 1, Champion: 1, Boss: 1, Vehicle: 1}
}

// For returns the archetype multiplier for an enemy type.
// Players and unknown archetypes are unaffected.
func (d DamageMods) For(t EnemyType) float64 {
	var m float64
	switch t {
	case EnemyMinor:
		m = d.Minor
	case EnemyElite:
		m = d.Elite
	case EnemyMiniboss:
		m = d.Miniboss
	case EnemyChampion:
		m = d.Champion
	case EnemyBoss:
		m = d.Boss
	case EnemyVehicle:
		m = d.Vehicle
	default:
		return 1
	}
	if m == 0 {
		return 1
	}
	return m
}

// PvEMult returns the flat PvE multiplier, treating zero as unset.
func (d DamageMods) PvEMult() float64 {
	if d.PvE == 0 {
		return 1
	}
	return d.PvE
}
