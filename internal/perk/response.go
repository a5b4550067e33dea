package perk

import "github.com/udisondev/d2go/internal/model"

// DamageModifier scales impact, explosive and critical damage.
type DamageModifier struct {
	ImpactScale    float64 `json:"impactScale"`
	ExplosiveScale float64 `json:"explosiveScale"`
	CritScale      float64 `json:"critScale"`
}

func NeutralDamage() DamageModifier {
	return DamageModifier{ImpactScale: 1, ExplosiveScale: 1, CritScale: 1}
}

// FiringModifier adjusts firing cadence. BurstDelayAdd is applied before
// BurstDelayScale.
type FiringModifier struct {
	BurstDelayScale float64 `json:"burstDelayScale"`
	BurstDelayAdd   float64 `json:"burstDelayAdd"`
	InnerBurstScale float64 `json:"innerBurstScale"`
	BurstSizeAdd    int     `json:"burstSizeAdd"`
}

func NeutralFiring() FiringModifier {
	return FiringModifier{BurstDelayScale: 1, InnerBurstScale: 1}
}

type HandlingModifier struct {
	StatAdd   int     `json:"statAdd"`
	DrawScale float64 `json:"drawScale"`
	StowScale float64 `json:"stowScale"`
	ADSScale  float64 `json:"adsScale"`
}

func NeutralHandling() HandlingModifier {
	return HandlingModifier{DrawScale: 1, StowScale: 1, ADSScale: 1}
}

type RangeModifier struct {
	StatAdd   int     `json:"statAdd"`
	AllScale  float64 `json:"allScale"`
	HipScale  float64 `json:"hipScale"`
	ZoomScale float64 `json:"zoomScale"`
}

func NeutralRange() RangeModifier {
	return RangeModifier{AllScale: 1, HipScale: 1, ZoomScale: 1}
}

type ReloadModifier struct {
	StatAdd   int     `json:"statAdd"`
	TimeScale float64 `json:"timeScale"`
}

func NeutralReload() ReloadModifier {
	return ReloadModifier{TimeScale: 1}
}

// MagazineModifier is applied as stat add, then scale, then flat add.
type MagazineModifier struct {
	StatAdd int     `json:"statAdd"`
	Scale   float64 `json:"scale"`
	Add     int     `json:"add"`
}

func NeutralMagazine() MagazineModifier {
	return MagazineModifier{Scale: 1}
}

// ReserveModifier adjusts reserve (inventory) size in the same order as
// MagazineModifier.
type ReserveModifier struct {
	StatAdd int     `json:"statAdd"`
	Scale   float64 `json:"scale"`
	Add     int     `json:"add"`
}

func NeutralReserve() ReserveModifier {
	return ReserveModifier{Scale: 1}
}

// Refund returns ammunition every Requirement hits. A negative
// RefundReserves moves rounds out of reserves into the magazine.
type Refund struct {
	Crit           bool `json:"crit"`
	Requirement    int  `json:"requirement"`
	RefundMag      int  `json:"refundMag"`
	RefundReserves int  `json:"refundReserves"`
}

// Valid reports whether the refund can ever trigger.
func (r Refund) Valid() bool {
	return r.Requirement > 0 && (r.RefundMag != 0 || r.RefundReserves != 0)
}

// ExtraDamage is bonus damage produced alongside a shot: cluster bombs,
// damage-over-time ticks and similar.
type ExtraDamage struct {
	Damage             float64 `json:"damage"`
	Duration           float64 `json:"duration"`
	Hits               int     `json:"hits"`
	WeaponScale        bool    `json:"weaponScale"`
	CritScale          bool    `json:"critScale"`
	CombatantScale     bool    `json:"combatantScale"`
	IncrementTotalTime bool    `json:"incrementTotalTime"`
	AtOnce             bool    `json:"atOnce"`
	DoT                bool    `json:"dot"`
}

// Valid reports whether the entry carries any damage.
func (e ExtraDamage) Valid() bool {
	return e.Damage > 0 && e.Hits > 0
}

// StatBuffs maps a stat to a flat bump.
type StatBuffs map[model.StatHash]int

// ReloadOverride replaces the formula reload when Valid. Highest Priority wins.
// AmmoToReload of zero means a full magazine.
type ReloadOverride struct {
	Valid                 bool    `json:"valid"`
	ReloadTime            float64 `json:"reloadTime"`
	AmmoToReload          int     `json:"ammoToReload"`
	Priority              int     `json:"priority"`
	IncrementsReloadCount bool    `json:"incrementsReloadCount"`
	UsesAmmo              bool    `json:"usesAmmo"`
}

type FlinchModifier struct {
	Scale float64 `json:"scale"`
}

func NeutralFlinch() FlinchModifier {
	return FlinchModifier{Scale: 1}
}

// ExplosivePercent splits base damage into impact and explosive parts.
// With RetainBaseTotal the total stays equal to the base damage; otherwise
// the explosive part is added on top. Delayed explosions land Delayed
// seconds after the impact.
type ExplosivePercent struct {
	Percent         float64 `json:"percent"`
	Delayed         float64 `json:"delayed"`
	RetainBaseTotal bool    `json:"retainBaseTotal"`
}
