package formula

// Range describes damage falloff start/end curves for one weapon frame.
type Range struct {
	Start        Quadratic `json:"start" yaml:"start"`
	End          Quadratic `json:"end" yaml:"end"`
	FloorPercent float64   `json:"floorPercent" yaml:"floor_percent"`
	Fusion       bool      `json:"fusion" yaml:"fusion"`
}

// RangeFalloff is the evaluated falloff window in meters.
type RangeFalloff struct {
	HipStart     float64 `json:"hipFalloffStart"`
	HipEnd       float64 `json:"hipFalloffEnd"`
	ADSStart     float64 `json:"adsFalloffStart"`
	ADSEnd       float64 `json:"adsFalloffEnd"`
	FloorPercent float64 `json:"floorPercent"`
}

// Falloff evaluates the curves at rangeStat. zoom is the already scaled
// zoom stat; allScale multiplies both hip and ADS, hipScale only hipfire
// (ADS inherits it since ADS is derived from hip).
func (r Range) Falloff(rangeStat int, zoom, allScale, hipScale float64) RangeFalloff {
	hipStart := r.Start.SolveStat(rangeStat) * hipScale * allScale
	hipEnd := r.End.SolveStat(rangeStat) * hipScale * allScale
	zm := ZoomMult(zoom, r.Fusion)
	return RangeFalloff{
		HipStart:     hipStart,
		HipEnd:       hipEnd,
		ADSStart:     hipStart * zm,
		ADSEnd:       hipEnd * zm,
		FloorPercent: r.FloorPercent,
	}
}

// Multiplier returns the damage multiplier at distance meters along the
// ADS falloff curve: 1 before start, FloorPercent/100 past end, linear
// in between.
func (f RangeFalloff) Multiplier(distance float64) float64 {
	floor := f.FloorPercent / 100
	switch {
	case distance <= f.ADSStart:
		return 1
	case distance >= f.ADSEnd || f.ADSEnd <= f.ADSStart:
		return floor
	}
	t := (distance - f.ADSStart) / (f.ADSEnd - f.ADSStart)
	return 1 - t*(1-floor)
}
