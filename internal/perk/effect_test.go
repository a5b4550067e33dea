package perk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalc() *CalculationInput {
	return &CalculationInput{
		BaseMag:      10,
		CurrMag:      10,
		BaseCritMult: 2,
	}
}

func TestEffectResolveNilIsNeutral(t *testing.T) {
	var e *Effect[DamageModifier]
	got := e.resolve(Input{Calc: newCalc(), Value: 1}, NeutralDamage())
	assert.Equal(t, NeutralDamage(), got)
}

func TestStackIndexing(t *testing.T) {
	e := Stack(1.0, 2.0, 3.0)
	tests := []struct {
		value uint32
		want  float64
	}{
		{0, -1},
		{1, 1},
		{2, 2},
		{3, 3},
		{9, 3},
	}
	for _, tt := range tests {
		got := e.resolve(Input{Calc: newCalc(), Value: tt.value}, -1)
		assert.Equal(t, tt.want, got, "value %d", tt.value)
	}
}

func TestTablePrecedence(t *testing.T) {
	e := Const(1.0).Enhanced(2.0).PvP(3.0)
	calc := newCalc()

	assert.Equal(t, 1.0, e.resolve(Input{Calc: calc}, 0))
	assert.Equal(t, 2.0, e.resolve(Input{Calc: calc, Enhanced: true}, 0))
	assert.Equal(t, 3.0, e.resolve(Input{Calc: calc, Enhanced: true, PvP: true}, 0))
}

func TestConditional(t *testing.T) {
	e := When(Within(4, 5), Const(dmg(1.25)))
	calc := newCalc()

	calc.TimeTotal = 3.9
	assert.Equal(t, dmg(1.25), e.resolve(Input{Calc: calc, Value: 1}, NeutralDamage()))
	assert.Equal(t, NeutralDamage(), e.resolve(Input{Calc: calc, Value: 0}, NeutralDamage()), "inactive")

	calc.TimeTotal = 4.5
	assert.Equal(t, NeutralDamage(), e.resolve(Input{Calc: calc, Value: 1}, NeutralDamage()))
	assert.Equal(t, dmg(1.25), e.resolve(Input{Calc: calc, Value: 1, Enhanced: true}, NeutralDamage()))
}

func TestCustomNilFunc(t *testing.T) {
	e := &Effect[float64]{Kind: KindCustom}
	assert.Equal(t, 7.0, e.resolve(Input{Calc: newCalc()}, 7))
}

func TestOptionClamp(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		in   uint32
		want uint32
	}{
		{"static", Static(), 5, 0},
		{"toggle on", Toggle(), 5, 1},
		{"toggle off", Toggle(), 0, 0},
		{"stacks", Stacks(3), 7, 3},
		{"stacks from", StacksFrom(2, 4), 0, 2},
		{"choice", Choice("a", "b"), 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opt.Clamp(tt.in))
		})
	}
}

func TestChoiceStartsWithNone(t *testing.T) {
	o := Choice("Void", "Solar")
	require.Len(t, o.Choices, 3)
	assert.Equal(t, "None", o.Choices[0])
	assert.Equal(t, uint32(2), o.Max)
}
