package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurvePoints(t *testing.T) {
	tests := []struct {
		name  string
		d     Difficulty
		delta float64
		want  float64
	}{
		{"normal at par", Normal, 0, 1.0},
		{"normal above par", Normal, 30, 1.0},
		{"normal sample", Normal, -10, 0.78},
		{"normal midpoint", Normal, -5, 0.89},
		{"raid at par", Raid, 0, 0.925},
		{"master floor", Master, -99, 0.418},
		{"master below floor", Master, -150, 0.418},
		{"master between last two", Master, -94.5, 0.419},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.d.Curve(tt.delta), 1e-9)
		})
	}
}

func TestCurveMonotonic(t *testing.T) {
	for _, d := range []Difficulty{Normal, Raid, Master} {
		prev := d.Curve(-99)
		for delta := -98.0; delta <= 0; delta++ {
			cur := d.Curve(delta)
			require.GreaterOrEqual(t, cur, prev, "%s at %v", d, delta)
			prev = cur
		}
	}
}

func TestPLDelta(t *testing.T) {
	a := Default()
	assert.InDelta(t, a.RPLMult(), a.PLDelta(), 1e-9, "over-leveled normal reads the par point")

	a.Player.PL = uint32(a.RPL) - 100
	assert.Zero(t, a.PLDelta())

	a.Player.PL = uint32(a.RPL) - 10
	assert.InDelta(t, a.RPLMult()*0.78, a.PLDelta(), 1e-9)
}

func TestRPLMult(t *testing.T) {
	a := Activity{RPL: 10}
	assert.InDelta(t, 1.0, a.RPLMult(), 1e-9)
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("Master")
	require.NoError(t, err)
	assert.Equal(t, Master, d)

	d, err = ParseDifficulty("dungeon")
	require.NoError(t, err)
	assert.Equal(t, Raid, d)

	_, err = ParseDifficulty("legend")
	require.Error(t, err)
	assert.Equal(t, 20.0, Master.Cap())
	assert.Equal(t, 50.0, Normal.Cap())
}
