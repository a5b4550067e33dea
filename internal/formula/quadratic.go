// Package formula evaluates the stat-to-quantity curves that back every
// derived weapon number (falloff, handling, reload, magazine and reserves).
package formula

import "math"

// Quadratic maps a 0-100 stat to a physical quantity:
// EVPP·x² + VPP·x + Offset.
type Quadratic struct {
	EVPP   float64 `json:"evpp" yaml:"evpp"`
	VPP    float64 `json:"vpp" yaml:"vpp"`
	Offset float64 `json:"offset" yaml:"offset"`
}

// Solve evaluates the formula at x.
func (q Quadratic) Solve(x float64) float64 {
	return q.EVPP*x*x + q.VPP*x + q.Offset
}

// SolveStat evaluates the formula at an integer stat clamped to [0,100].
func (q Quadratic) SolveStat(stat int) float64 {
	return q.Solve(float64(clampStat(stat)))
}

// IsZero reports whether every coefficient is zero.
func (q Quadratic) IsZero() bool {
	return q.EVPP == 0 && q.VPP == 0 && q.Offset == 0
}

// ZoomMult converts a zoom stat into the ADS falloff multiplier.
// Fusion rifles scale gently around 1; everything else is a tenth of zoom.
func ZoomMult(zoom float64, fusion bool) float64 {
	if fusion {
		return 1 + 0.02*zoom
	}
	return 0.1*zoom - 0.025
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	if places <= 0 {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
