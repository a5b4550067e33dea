package model

import "strings"

// EnemyType is the combatant archetype of a simulated target.
type EnemyType uint8

const (
	EnemyEnclave EnemyType = iota
	EnemyMinor
	EnemyElite
	EnemyMiniboss
	EnemyBoss
	EnemyVehicle
	EnemyPlayer
	EnemyChampion
)

var enemyTypeNames = [...]string{
	EnemyEnclave:  "enclave",
	EnemyMinor:    "minor",
	EnemyElite:    "elite",
	EnemyMiniboss: "miniboss",
	EnemyBoss:     "boss",
	EnemyVehicle:  "vehicle",
	EnemyPlayer:   "player",
	EnemyChampion: "champion",
}

func (e EnemyType) String() string {
	if int(e) < len(enemyTypeNames) {
		return enemyTypeNames[e]
	}
	return "unknown"
}

// ParseEnemyType parses a name produced by String; unknown names map to enclave.
func ParseEnemyType(s string) EnemyType {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range enemyTypeNames {
		if n == s {
			return EnemyType(i)
		}
	}
	return EnemyEnclave
}

// Enemy is the target of a simulation.
type Enemy struct {
	Health           float64   `json:"health" yaml:"health"`
	Damage           float64   `json:"damage" yaml:"damage"`
	DamageResistance float64   `json:"damageResistance" yaml:"damage_resistance"`
	Type             EnemyType `json:"type" yaml:"type"`
	Tier             uint8     `json:"tier" yaml:"tier"`
}
