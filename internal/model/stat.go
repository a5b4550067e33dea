package model

// Stat is a weapon stat split into its additive sources.
// Base comes from the weapon definition, Part from barrels/magazines/masterwork,
// Perk from trait stat bumps applied at simulation time.
type Stat struct {
	Base int `json:"base" yaml:"base"`
	Part int `json:"part" yaml:"part"`
	Perk int `json:"perk" yaml:"perk"`
}

// Val is the static value (base + parts), clamped to [0,100].
func (s Stat) Val() int {
	return ClampStat(s.Base + s.Part)
}

// PerkVal is the effective value including perk bumps, clamped to [0,100].
func (s Stat) PerkVal() int {
	return ClampStat(s.Base + s.Part + s.Perk)
}

// ClampStat clamps a raw stat sum into the [0,100] formula domain.
func ClampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
