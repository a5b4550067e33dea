// Package activity scales weapon damage by the power-level difference
// between the player and the content they are playing.
package activity

import (
	"fmt"
	"strings"
)

// Difficulty selects the power-delta curve and default cap.
type Difficulty uint8

const (
	Normal Difficulty = iota + 1
	Raid
	Master
)

func (d Difficulty) String() string {
	switch d {
	case Raid:
		return "Raid & Dungeon"
	case Master:
		return "Master"
	default:
		return "Normal"
	}
}

// ParseDifficulty accepts "normal", "raid", "dungeon" and "master", case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return Normal, nil
	case "raid", "dungeon", "raid & dungeon":
		return Raid, nil
	case "master":
		return Master, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Cap is the highest positive power delta that still counts.
func (d Difficulty) Cap() float64 {
	if d == Raid || d == Master {
		return 20
	}
	return 50
}

// Deltas are sampled every 10 levels from 0 down to -99.
var curveDeltas = [11]float64{0, -10, -20, -30, -40, -50, -60, -70, -80, -90, -99}

var curves = map[Difficulty][11]float64{
	Normal: {1.0, 0.78, 0.66, 0.5914, 0.5405, 0.5, 0.475, 0.46, 0.44, 0.42, 0.418},
	Raid:   {0.925, 0.74, 0.62, 0.5623, 0.5225, 0.4925, 0.475, 0.46, 0.44, 0.42, 0.418},
	Master: {0.85, 0.68, 0.58, 0.5336, 0.505, 0.485, 0.475, 0.46, 0.44, 0.42, 0.418},
}

// Curve evaluates the difficulty's damage curve at delta by linear
// interpolation. Deltas above zero read the zero point; below -99 the last one.
func (d Difficulty) Curve(delta float64) float64 {
	vals, ok := curves[d]
	if !ok {
		vals = curves[Normal]
	}
	if delta >= curveDeltas[0] {
		return vals[0]
	}
	last := len(curveDeltas) - 1
	if delta <= curveDeltas[last] {
		return vals[last]
	}
	for i := 1; i <= last; i++ {
		if delta >= curveDeltas[i] {
			a, b := curveDeltas[i-1], curveDeltas[i]
			t := (delta - a) / (b - a)
			return vals[i-1] + (vals[i]-vals[i-1])*t
		}
	}
	return vals[last]
}

type Class uint8

const (
	ClassUnknown Class = iota
	ClassTitan
	ClassHunter
	ClassWarlock
)

type Player struct {
	PL    uint32 `json:"pl" yaml:"pl"`
	Class Class  `json:"class" yaml:"class"`
}

// Activity is the content a weapon is evaluated against.
// A zero Cap falls back to the difficulty's cap.
type Activity struct {
	Name       string     `json:"name" yaml:"name"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	RPL        float64    `json:"rpl" yaml:"rpl"`
	Cap        float64    `json:"cap" yaml:"cap"`
	Player     Player     `json:"player" yaml:"player"`
}

const expansionBase = 1350

// Default is a normal-difficulty activity at the expansion's base power
// with the player 200 levels above it.
func Default() Activity {
	return Activity{
		Name:       "Default",
		Difficulty: Normal,
		RPL:        expansionBase,
		Cap:        100,
		Player:     Player{PL: expansionBase + 200},
	}
}

// RPLMult is the damage scale contributed by the activity's recommended power.
func (a Activity) RPLMult() float64 {
	return (1 + a.RPL/30) / (1 + 1.0/3)
}

// PLDelta returns the combined damage multiplier for the player's power
// against the activity. Players more than 99 levels under deal nothing.
func (a Activity) PLDelta() float64 {
	delta := float64(a.Player.PL) - a.RPL
	if delta < -99 {
		return 0
	}
	limit := a.Cap
	if limit <= 0 {
		limit = a.Difficulty.Cap()
	}
	if delta > limit {
		delta = limit
	}
	return a.RPLMult() * a.Difficulty.Curve(delta)
}
