package formula

// Reload is a reload-time curve plus the fraction of the animation after
// which the new rounds are already in the magazine.
type Reload struct {
	Time        Quadratic `json:"time" yaml:"time"`
	AmmoPercent float64   `json:"ammoPercent" yaml:"ammo_percent"`
}

// ReloadTimes are evaluated reload durations in seconds.
type ReloadTimes struct {
	ReloadTime float64 `json:"reloadTime"`
	AmmoTime   float64 `json:"ammoTime"`
}

// Times evaluates the reload curve at stat scaled by scale.
func (r Reload) Times(stat int, scale float64) ReloadTimes {
	t := r.Time.SolveStat(stat) * scale
	return ReloadTimes{ReloadTime: t, AmmoTime: t * r.AmmoPercent}
}
