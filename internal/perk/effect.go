package perk

// Kind tags how an Effect turns a perk value into a response.
type Kind uint8

const (
	// KindConstant always yields the same response.
	KindConstant Kind = iota
	// KindStacking indexes a table by the perk value; value 0 is neutral.
	KindStacking
	// KindConditional yields its inner effect when the predicate holds.
	KindConditional
	// KindCustom delegates to a hand-written function.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindStacking:
		return "stacking"
	case KindConditional:
		return "conditional"
	default:
		return "custom"
	}
}

// Effect is one perk's contribution to one modifier category.
type Effect[R any] struct {
	Kind Kind

	Values         []R
	EnhancedValues []R
	PvPValues      []R

	When  Predicate
	Inner *Effect[R]

	Func func(in Input) R
}

// Const yields v regardless of the perk value.
func Const[R any](v R) *Effect[R] {
	return &Effect[R]{Kind: KindConstant, Values: []R{v}}
}

// Stack yields vals[n-1] for perk value n (clamped to the table), neutral at 0.
// A single-entry table is a plain toggle.
func Stack[R any](vals ...R) *Effect[R] {
	return &Effect[R]{Kind: KindStacking, Values: vals}
}

// When yields inner only while p holds.
func When[R any](p Predicate, inner *Effect[R]) *Effect[R] {
	return &Effect[R]{Kind: KindConditional, When: p, Inner: inner}
}

// Custom wraps a hand-written effect. fn must return the category's
// neutral value when it does not apply.
func Custom[R any](fn func(in Input) R) *Effect[R] {
	return &Effect[R]{Kind: KindCustom, Func: fn}
}

// Enhanced sets the table used for enhanced perks.
func (e *Effect[R]) Enhanced(vals ...R) *Effect[R] {
	e.EnhancedValues = vals
	return e
}

// PvP sets the table used in PvP calculations.
func (e *Effect[R]) PvP(vals ...R) *Effect[R] {
	e.PvPValues = vals
	return e
}

func (e *Effect[R]) resolve(in Input, neutral R) R {
	if e == nil {
		return neutral
	}
	switch e.Kind {
	case KindCustom:
		if e.Func == nil {
			return neutral
		}
		return e.Func(in)
	case KindConditional:
		if e.When != nil && !e.When(in) {
			return neutral
		}
		return e.Inner.resolve(in, neutral)
	}

	table := e.Values
	if in.PvP && len(e.PvPValues) > 0 {
		table = e.PvPValues
	} else if in.Enhanced && len(e.EnhancedValues) > 0 {
		table = e.EnhancedValues
	}
	if len(table) == 0 {
		return neutral
	}
	if e.Kind == KindConstant {
		return table[0]
	}
	if in.Value == 0 {
		return neutral
	}
	idx := int(in.Value) - 1
	if idx >= len(table) {
		idx = len(table) - 1
	}
	return table[idx]
}
