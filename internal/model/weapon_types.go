package model

import "strings"

// AmmoType is the ammunition slot a weapon draws from.
type AmmoType uint32

const (
	AmmoUnknown AmmoType = 0
	AmmoPrimary AmmoType = 1
	AmmoSpecial AmmoType = 2
	AmmoHeavy   AmmoType = 3
)

func (a AmmoType) String() string {
	switch a {
	case AmmoPrimary:
		return "primary"
	case AmmoSpecial:
		return "special"
	case AmmoHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// ParseAmmoType maps a name produced by String back to the type.
func ParseAmmoType(s string) AmmoType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary":
		return AmmoPrimary
	case "special":
		return AmmoSpecial
	case "heavy":
		return AmmoHeavy
	}
	return AmmoUnknown
}

// WeaponType is the weapon archetype id (manifest item sub type).
type WeaponType uint32

const (
	WeaponUnknown           WeaponType = 0
	WeaponAutoRifle         WeaponType = 6
	WeaponShotgun           WeaponType = 7
	WeaponMachineGun        WeaponType = 8
	WeaponHandCannon        WeaponType = 9
	WeaponRocket            WeaponType = 10
	WeaponFusionRifle       WeaponType = 11
	WeaponSniper            WeaponType = 12
	WeaponPulseRifle        WeaponType = 13
	WeaponScoutRifle        WeaponType = 14
	WeaponSidearm           WeaponType = 17
	WeaponSword             WeaponType = 18
	WeaponLinearFusionRifle WeaponType = 22
	WeaponGrenadeLauncher   WeaponType = 23
	WeaponSubMachineGun     WeaponType = 24
	WeaponTraceRifle        WeaponType = 25
	WeaponBow               WeaponType = 31
	WeaponGlaive            WeaponType = 33
)

var weaponTypeNames = map[WeaponType]string{
	WeaponAutoRifle:         "auto_rifle",
	WeaponShotgun:           "shotgun",
	WeaponMachineGun:        "machine_gun",
	WeaponHandCannon:        "hand_cannon",
	WeaponRocket:            "rocket_launcher",
	WeaponFusionRifle:       "fusion_rifle",
	WeaponSniper:            "sniper_rifle",
	WeaponPulseRifle:        "pulse_rifle",
	WeaponScoutRifle:        "scout_rifle",
	WeaponSidearm:           "sidearm",
	WeaponSword:             "sword",
	WeaponLinearFusionRifle: "linear_fusion_rifle",
	WeaponGrenadeLauncher:   "grenade_launcher",
	WeaponSubMachineGun:     "submachine_gun",
	WeaponTraceRifle:        "trace_rifle",
	WeaponBow:               "bow",
	WeaponGlaive:            "glaive",
}

func (w WeaponType) String() string {
	if n, ok := weaponTypeNames[w]; ok {
		return n
	}
	return "unknown"
}

// ParseWeaponType maps a name produced by String back to the type.
// Unknown names yield WeaponUnknown.
func ParseWeaponType(s string) WeaponType {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, n := range weaponTypeNames {
		if n == s {
			return t
		}
	}
	return WeaponUnknown
}

// DamageType is the element of a weapon's damage.
type DamageType uint32

const (
	DamageUnknown DamageType = 0
	DamageStasis  DamageType = 151347233
	DamageSolar   DamageType = 1847026933
	DamageArc     DamageType = 2303181850
	DamageKinetic DamageType = 3373582085
	DamageVoid    DamageType = 3454344768
	DamageStrand  DamageType = 3949783978
)

func (d DamageType) String() string {
	switch d {
	case DamageStasis:
		return "stasis"
	case DamageSolar:
		return "solar"
	case DamageArc:
		return "arc"
	case DamageKinetic:
		return "kinetic"
	case DamageVoid:
		return "void"
	case DamageStrand:
		return "strand"
	default:
		return "unknown"
	}
}

// ParseDamageType maps a name produced by String back to the type.
func ParseDamageType(s string) DamageType {
	for _, d := range []DamageType{DamageStasis, DamageSolar, DamageArc, DamageKinetic, DamageVoid, DamageStrand} {
		if d.String() == strings.ToLower(strings.TrimSpace(s)) {
			return d
		}
	}
	return DamageUnknown
}

// StatHash identifies a weapon or character stat.
type StatHash uint32

const (
	StatUnknown        StatHash = 0
	StatStability      StatHash = 155624089
	StatAimAssist      StatHash = 1345609583
	StatRange          StatHash = 1240592695
	StatAccuracy       StatHash = 1591432999
	StatHandling       StatHash = 943549884
	StatAmmoCap        StatHash = 925767036
	StatDrawTime       StatHash = 447667954
	StatResilience     StatHash = 392767087
	StatInventorySize  StatHash = 1931675084
	StatAirborne       StatHash = 2714457168
	StatRecoilDir      StatHash = 2715839340
	StatBlastRadius    StatHash = 3614673599
	StatChargeTime     StatHash = 2961396640
	StatZoom           StatHash = 3555269338
	StatMagazine       StatHash = 3871231066
	StatImpact         StatHash = 4043523819
	StatReload         StatHash = 4188031367
	StatRoundsPerMin   StatHash = 4284893193
	StatVelocity       StatHash = 2523465841
	StatSwingSpeed     StatHash = 2837207746
	StatGuardEfficency StatHash = 2762071195
	StatShieldDuration StatHash = 1842278586
	StatChargeRate     StatHash = 3022301683
)

var statNames = map[StatHash]string{
	StatStability:      "stability",
	StatAimAssist:      "aim_assist",
	StatRange:          "range",
	StatAccuracy:       "accuracy",
	StatHandling:       "handling",
	StatAmmoCap:        "ammo_cap",
	StatDrawTime:       "draw_time",
	StatResilience:     "resilience",
	StatInventorySize:  "inventory_size",
	StatAirborne:       "airborne",
	StatRecoilDir:      "recoil_direction",
	StatBlastRadius:    "blast_radius",
	StatChargeTime:     "charge_time",
	StatZoom:           "zoom",
	StatMagazine:       "magazine",
	StatImpact:         "impact",
	StatReload:         "reload",
	StatRoundsPerMin:   "rpm",
	StatVelocity:       "velocity",
	StatSwingSpeed:     "swing_speed",
	StatGuardEfficency: "guard_efficiency",
	StatShieldDuration: "shield_duration",
	StatChargeRate:     "charge_rate",
}

func (s StatHash) String() string {
	if n, ok := statNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseStatHash resolves a stat name as produced by String.
func ParseStatHash(s string) (StatHash, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for h, n := range statNames {
		if n == s {
			return h, true
		}
	}
	return StatUnknown, false
}
