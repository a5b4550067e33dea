package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesParseBack(t *testing.T) {
	for wt := range weaponTypeNames {
		assert.Equal(t, wt, ParseWeaponType(wt.String()), wt.String())
	}
	for h := range statNames {
		got, ok := ParseStatHash(h.String())
		require.True(t, ok, h.String())
		assert.Equal(t, h, got)
	}
	for i := range enemyTypeNames {
		e := EnemyType(i)
		assert.Equal(t, e, ParseEnemyType(e.String()))
	}
	for _, a := range []AmmoType{AmmoPrimary, AmmoSpecial, AmmoHeavy} {
		assert.Equal(t, a, ParseAmmoType(a.String()))
	}
	for _, d := range []DamageType{DamageStasis, DamageSolar, DamageArc, DamageKinetic, DamageVoid, DamageStrand} {
		assert.Equal(t, d, ParseDamageType(d.String()))
	}
}

func TestParseUnknownNames(t *testing.T) {
	assert.Equal(t, WeaponUnknown, ParseWeaponType("slingshot"))
	assert.Equal(t, EnemyEnclave, ParseEnemyType("dragon"))
	assert.Equal(t, AmmoUnknown, ParseAmmoType(""))
	assert.Equal(t, DamageUnknown, ParseDamageType("fire"))
	_, ok := ParseStatHash("luck")
	assert.False(t, ok)

	assert.Equal(t, "unknown", WeaponType(1).String())
	assert.Equal(t, "unknown", EnemyType(200).String())
}

func TestParseIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, WeaponHandCannon, ParseWeaponType(" Hand_Cannon "))
	assert.Equal(t, EnemyBoss, ParseEnemyType("BOSS"))
	assert.Equal(t, AmmoHeavy, ParseAmmoType("Heavy"))
	assert.Equal(t, DamageSolar, ParseDamageType("SOLAR"))
}

func TestStatClamp(t *testing.T) {
	s := Stat{Base: 70, Part: 20, Perk: 30}
	assert.Equal(t, 90, s.Val())
	assert.Equal(t, 100, s.PerkVal())
	assert.Equal(t, 0, Stat{Base: 10, Part: -30}.Val())
}

func TestPerkClone(t *testing.T) {
	p := Perk{ID: 1, Value: 2, StatBuffs: map[StatHash]int{StatRange: 10}}
	c := p.Clone()
	c.StatBuffs[StatRange] = 20
	assert.Equal(t, 10, p.StatBuffs[StatRange])
	assert.True(t, p.Active())
	assert.False(t, Perk{}.Active())
}
