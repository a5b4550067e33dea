package model

// Perk is an equipped trait, mod or buff.
//
// ID is always the base (non-enhanced) identity used for effect lookup;
// RawID keeps whatever hash the caller submitted.
type Perk struct {
	ID        uint32           `json:"id" yaml:"id"`
	RawID     uint32           `json:"rawId" yaml:"raw_id"`
	Enhanced  bool             `json:"enhanced" yaml:"enhanced"`
	Value     uint32           `json:"value" yaml:"value"`
	StatBuffs map[StatHash]int `json:"statBuffs,omitempty" yaml:"stat_buffs,omitempty"`
	Name      string           `json:"name,omitempty" yaml:"name,omitempty"`
}

// Active reports whether the perk's toggle/stack value is non-zero.
func (p Perk) Active() bool {
	return p.Value > 0
}

// Clone returns a copy with an independent StatBuffs map.
func (p Perk) Clone() Perk {
	c := p
	if p.StatBuffs != nil {
		c.StatBuffs = make(map[StatHash]int, len(p.StatBuffs))
		for k, v := range p.StatBuffs {
			c.StatBuffs[k] = v
		}
	}
	return c
}
