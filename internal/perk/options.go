package perk

// OptionKind tells a UI how a perk's value is chosen.
type OptionKind uint8

const (
	OptionStatic OptionKind = iota
	OptionToggle
	OptionStacking
	OptionChoice
)

func (k OptionKind) String() string {
	switch k {
	case OptionToggle:
		return "toggle"
	case OptionStacking:
		return "stacking"
	case OptionChoice:
		return "options"
	default:
		return "static"
	}
}

// Option describes the selectable values for a perk. Choice options always
// start with "None" so value 0 stays inactive.
type Option struct {
	Kind    OptionKind `json:"kind"`
	Min     uint32     `json:"min"`
	Max     uint32     `json:"max"`
	Choices []string   `json:"choices,omitempty"`
}

func Static() Option { return Option{Kind: OptionStatic} }

func Toggle() Option { return Option{Kind: OptionToggle, Max: 1} }

func Stacks(max uint32) Option { return Option{Kind: OptionStacking, Max: max} }

// StacksFrom is a stacking option with a lower bound other than zero.
func StacksFrom(min, max uint32) Option { return Option{Kind: OptionStacking, Min: min, Max: max} }

func Choice(names ...string) Option {
	choices := append([]string{"None"}, names...)
	return Option{Kind: OptionChoice, Max: uint32(len(names)), Choices: choices}
}

// Clamp bounds a requested value to what the option allows.
func (o Option) Clamp(v uint32) uint32 {
	switch o.Kind {
	case OptionStatic:
		return 0
	case OptionToggle:
		if v > 0 {
			return 1
		}
		return 0
	}
	if v < o.Min {
		return o.Min
	}
	if v > o.Max {
		return o.Max
	}
	return v
}
