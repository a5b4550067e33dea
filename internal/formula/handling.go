package formula

// Handling holds ready (draw), stow and aim-down-sights time curves.
type Handling struct {
	Ready Quadratic `json:"ready" yaml:"ready"`
	Stow  Quadratic `json:"stow" yaml:"stow"`
	ADS   Quadratic `json:"ads" yaml:"ads"`
}

// HandlingTimes are evaluated handling durations in seconds.
type HandlingTimes struct {
	Ready float64 `json:"readyTime"`
	Stow  float64 `json:"stowTime"`
	ADS   float64 `json:"adsTime"`
}

// Times evaluates the handling curves at stat and applies per-action scales.
// Stow time never drops below the 100-handling stow time at the same scale.
func (h Handling) Times(stat int, drawScale, stowScale, adsScale float64) HandlingTimes {
	stow := h.Stow.SolveStat(stat) * stowScale
	if floor := h.Stow.Solve(100) * stowScale; stow < floor {
		stow = floor
	}
	return HandlingTimes{
		Ready: h.Ready.SolveStat(stat) * drawScale,
		Stow:  stow,
		ADS:   h.ADS.SolveStat(stat) * adsScale,
	}
}
