package combat

import (
	"testing"

	"github.com/bxcodec/faker/v4"
	"github.com/bxcodec/faker/v4/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/weapon"
)

const openingRound uint32 = 4_200_000_001

// scenarioWeapon fires 20 damage (2.0 crit) every 0.3s from an 8 round
// magazine with 60 rounds total and a 0.8s reload.
func scenarioWeapon(t testing.TB, reg *perk.Registry) *weapon.Weapon {
	t.Helper()
	db, err := data.FromRecords([]data.Record{{
		Path: data.Path{WeaponType: model.WeaponHandCannon, Intrinsic: 1},
		Range: formula.Range{
			Start:        formula.Quadratic{Offset: 20},
			End:          formula.Quadratic{Offset: 40},
			FloorPercent: 50,
		},
		Handling: formula.Handling{
			Ready: formula.Quadratic{Offset: 0.5},
			Stow:  formula.Quadratic{Offset: 0.5},
			ADS:   formula.Quadratic{Offset: 0.3},
		},
		Reload: formula.Reload{Time: formula.Quadratic{Offset: 0.8}, AmmoPercent: 1},
		Scalar: model.DefaultDamageMods(),
		Firing: model.FiringData{Damage: 20, CritMult: 2, BurstDelay: 0.3, BurstSize: 1},
		Ammo: formula.Ammo{
			Mag:      formula.Quadratic{Offset: 8},
			Reserves: map[int]formula.Quadratic{0: {Offset: 60}},
		},
	}})
	require.NoError(t, err)

	w, err := weapon.New(db, reg, weapon.Spec{
		WeaponType: model.WeaponHandCannon,
		Intrinsic:  1,
		AmmoType:   model.AmmoSpecial,
	})
	require.NoError(t, err)
	w.SetStats(map[model.StatHash]int{model.StatZoom: 14})
	return w
}

func staticWeapon(t testing.TB, wt model.WeaponType, intrinsic uint32) *weapon.Weapon {
	t.Helper()
	w, err := weapon.New(data.Static(), perk.NewRegistry(nil), weapon.Spec{
		WeaponType: wt,
		Intrinsic:  intrinsic,
		AmmoType:   ammoFor(wt),
		DamageType: model.DamageArc,
	})
	require.NoError(t, err)
	return w
}

func ammoFor(wt model.WeaponType) model.AmmoType {
	switch wt {
	case model.WeaponShotgun, model.WeaponSniper, model.WeaponFusionRifle, model.WeaponGlaive, model.WeaponGrenadeLauncher:
		return model.AmmoSpecial
	case model.WeaponMachineGun, model.WeaponRocket, model.WeaponLinearFusionRifle:
		return model.AmmoHeavy
	default:
		return model.AmmoPrimary
	}
}

func assertSeries(t *testing.T, r DpsResponse) {
	t.Helper()
	var sum float64
	for i, s := range r.TimeDamage {
		sum += s.Damage
		if i > 0 {
			require.LessOrEqual(t, r.TimeDamage[i-1].Time, s.Time, "series out of order at %d", i)
		}
	}
	assert.InDelta(t, r.TotalDamage, sum, 1e-6)
}

func TestDPSScenario(t *testing.T) {
	w := scenarioWeapon(t, perk.NewRegistry(nil))
	r := DPS(w, model.EnemyEnclave)

	assert.Equal(t, 60, r.TotalShots)
	assert.Equal(t, 60, r.ShotsHit)
	assert.Equal(t, 7, r.Reloads)
	assert.InDelta(t, 60*0.3+7*0.8, r.TotalTime, 1e-6)
	assert.InDelta(t, 60*40.0, r.TotalDamage, 1e-6)
	assert.Len(t, r.DpsPerMag, 8)
	assert.InDelta(t, r.TotalDamage/r.TotalTime, r.DpsPerMag[7], 1e-9)
	assertSeries(t, r)
}

func TestDPSFirstShotOfMagPerk(t *testing.T) {
	reg := perk.NewRegistry(nil)
	require.NoError(t, reg.Add(&perk.Entry{
		ID:   openingRound,
		Name: "Opening Round",
		Damage: perk.When(perk.FirstShotOfMag, perk.Const(perk.DamageModifier{
			ImpactScale: 2, ExplosiveScale: 1, CritScale: 1,
		})),
	}))
	w := scenarioWeapon(t, reg)
	w.EquipPerk(openingRound, 0)

	r := DPS(w, model.EnemyEnclave)
	require.Len(t, r.TimeDamage, 60)
	for i, s := range r.TimeDamage {
		if i%8 == 0 {
			assert.InDelta(t, 80.0, s.Damage, 1e-9, "shot %d opens a magazine", i)
		} else {
			assert.InDelta(t, 40.0, s.Damage, 1e-9, "shot %d", i)
		}
	}
	assert.InDelta(t, 60*40.0+8*40.0, r.TotalDamage, 1e-6)
}

func TestDPSPrimaryShotCap(t *testing.T) {
	w := staticWeapon(t, model.WeaponHandCannon, data.FrameAdaptive)
	r := DPS(w, model.EnemyBoss)
	baseMag := int(w.StaticInput().BaseMag)
	assert.Equal(t, ShotCap(model.AmmoPrimary, baseMag), r.TotalShots)
	assertSeries(t, r)
}

func TestDPSOneAmmoBurst(t *testing.T) {
	w := staticWeapon(t, model.WeaponShotgun, data.FrameAggressive)
	r := DPS(w, model.EnemyMinor)

	reserves := w.AmmoSizes(w.StaticInput(), false).Reserves
	assert.Equal(t, reserves, r.TotalShots)
	assert.Equal(t, 12*r.TotalShots, r.ShotsHit)
	assertSeries(t, r)
}

// pelletShotgun fires 12 pellets of 10 damage per round.
func pelletShotgun(t *testing.T, critMult float64) *weapon.Weapon {
	t.Helper()
	db, err := data.FromRecords([]data.Record{{
		Path:     data.Path{WeaponType: model.WeaponShotgun, Intrinsic: 1},
		Range:    formula.Range{Start: formula.Quadratic{Offset: 8}, End: formula.Quadratic{Offset: 12}},
		Handling: formula.Handling{Ready: formula.Quadratic{Offset: 0.5}, Stow: formula.Quadratic{Offset: 0.5}},
		Reload:   formula.Reload{Time: formula.Quadratic{Offset: 1}, AmmoPercent: 1},
		Scalar:   model.DefaultDamageMods(),
		Firing: model.FiringData{
			Damage: 10, CritMult: critMult, BurstDelay: 0.9, BurstSize: 12, OneAmmo: true,
		},
		Ammo: formula.Ammo{
			Mag:      formula.Quadratic{Offset: 5},
			Reserves: map[int]formula.Quadratic{0: {Offset: 20}},
		},
	}})
	require.NoError(t, err)

	w, err := weapon.New(db, perk.NewRegistry(nil), weapon.Spec{
		WeaponType: model.WeaponShotgun,
		Intrinsic:  1,
		AmmoType:   model.AmmoSpecial,
	})
	require.NoError(t, err)
	return w
}

func TestDPSPelletsKeepCritMult(t *testing.T) {
	plain := DPS(pelletShotgun(t, 1), model.EnemyEnclave)
	precise := DPS(pelletShotgun(t, 1.1), model.EnemyEnclave)

	require.NotEmpty(t, plain.TimeDamage)
	require.Len(t, precise.TimeDamage, len(plain.TimeDamage))
	assert.InDelta(t, plain.TimeDamage[0].Damage*1.1, precise.TimeDamage[0].Damage, 1e-9)
	assert.InDelta(t, plain.TotalDamage*1.1, precise.TotalDamage, 1e-6)
}

func TestTTKPelletsIgnoreCritMult(t *testing.T) {
	for _, r := range TTK(pelletShotgun(t, 1.1), 0) {
		assert.Zero(t, r.Optimal.Headshots)
		assert.Equal(t, r.Body.Bodyshots, r.Optimal.Bodyshots)
	}
}

func TestShotCap(t *testing.T) {
	tests := []struct {
		ammo    model.AmmoType
		baseMag int
		want    int
	}{
		{model.AmmoPrimary, 2, 15},
		{model.AmmoPrimary, 13, 65},
		{model.AmmoSpecial, 5, 60},
		{model.AmmoHeavy, 1, 28},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShotCap(tt.ammo, tt.baseMag), "%s mag %d", tt.ammo, tt.baseMag)
	}
}

func TestDpsResponseScale(t *testing.T) {
	r := DpsResponse{
		DpsPerMag:   []float64{10, 20},
		TimeDamage:  []Sample{{Time: 0, Damage: 5}, {Time: 1, Damage: 7}},
		TotalDamage: 12,
		TotalTime:   1,
	}
	r.Scale(0.5)
	assert.Equal(t, []float64{5, 10}, r.DpsPerMag)
	assert.Equal(t, 6.0, r.TotalDamage)
	assert.Equal(t, 3.5, r.TimeDamage[1].Damage)
	assert.Equal(t, 1.0, r.TotalTime)
}

func TestTTKScenario(t *testing.T) {
	w := scenarioWeapon(t, perk.NewRegistry(nil))
	res := TTK(w, 0)
	require.Len(t, res, len(ResilienceHealth))

	low := res[0]
	assert.Equal(t, 185.01, low.Health)
	assert.Equal(t, 10, low.Body.Bodyshots)
	assert.InDelta(t, 9*0.3, low.Body.TimeTaken, 1e-9)
	assert.Equal(t, OptimalKill{
		Headshots:       5,
		TimeTaken:       low.Optimal.TimeTaken,
		FinalHeadshot:   true,
		AchievableRange: low.Optimal.AchievableRange,
	}, low.Optimal)
	assert.InDelta(t, 4*0.3, low.Optimal.TimeTaken, 1e-9)
	assert.InDelta(t, 31.62225, low.Optimal.AchievableRange, 1e-6)

	high := res[10]
	assert.Equal(t, 10, high.Resilience)
	assert.Equal(t, 5, high.Optimal.Headshots)
	assert.Equal(t, 1, high.Optimal.Bodyshots)
	assert.False(t, high.Optimal.FinalHeadshot)
	assert.Equal(t, 11, high.Body.Bodyshots)
}

func TestTTKOvershieldAddsHealth(t *testing.T) {
	w := scenarioWeapon(t, perk.NewRegistry(nil))
	plain := TTK(w, 0)
	shielded := TTK(w, 40)
	for i := range plain {
		assert.Greater(t, shielded[i].Body.Bodyshots, plain[i].Body.Bodyshots)
	}
}

func TestTTKShotgunHasNoCritAdvantage(t *testing.T) {
	w := staticWeapon(t, model.WeaponShotgun, data.FrameAggressive)
	for _, r := range TTK(w, 0) {
		assert.Zero(t, r.Optimal.Headshots)
		assert.Equal(t, r.Body.Bodyshots, r.Optimal.Bodyshots)
		assert.InDelta(t, r.Body.TimeTaken, r.Optimal.TimeTaken, 1e-9)
	}
}

func TestAchievableRange(t *testing.T) {
	f := formula.RangeFalloff{ADSStart: 20, ADSEnd: 40, FloorPercent: 50}
	assert.Equal(t, RangeAnyDistance, achievableRange(f, 100, 250, 0))
	assert.Equal(t, RangeAnyDistance, achievableRange(f, 100, 0, 120))
	assert.Equal(t, 20.0, achievableRange(f, 100, 90, 5))
	assert.InDelta(t, 30.0, achievableRange(f, 75, 100, 0), 1e-9)
	assert.InDelta(t, 30.0, achievableRange(f, 100, 100, 25), 1e-9)

	// zoom 0 puts the ADS curve below zero
	below := formula.RangeFalloff{ADSStart: -0.5, ADSEnd: -0.2, FloorPercent: 50}
	assert.Zero(t, achievableRange(below, 100, 90, 5))
	assert.Zero(t, achievableRange(below, 75, 100, 0))
}

// loadout is a random weapon configuration.
type loadout struct {
	Path   uint8
	Stats  []uint8
	Perks  []uint16
	Values []uint8
	Enemy  uint8
}

var loadoutStats = []model.StatHash{
	model.StatRange, model.StatHandling, model.StatReload, model.StatMagazine,
	model.StatInventorySize, model.StatZoom, model.StatStability, model.StatBlastRadius,
}

func randomWeapon(t *testing.T, l loadout) (*weapon.Weapon, model.EnemyType) {
	t.Helper()
	db := data.Static()
	paths := db.Paths()
	p := paths[int(l.Path)%len(paths)]
	w := staticWeapon(t, p.WeaponType, p.Intrinsic)

	stats := make(map[model.StatHash]int, len(loadoutStats))
	for i, h := range loadoutStats {
		v := 50
		if i < len(l.Stats) {
			v = int(l.Stats[i]) % 101
		}
		stats[h] = v
	}
	w.SetStats(stats)

	entries := w.Registry().Entries()
	for i, id := range l.Perks {
		var v uint32
		if i < len(l.Values) {
			v = uint32(l.Values[i] % 8)
		}
		w.EquipPerk(entries[int(id)%len(entries)].ID, v)
	}
	return w, model.EnemyType(l.Enemy % 8)
}

func TestSimulationsTerminate(t *testing.T) {
	for i := 0; i < 40; i++ {
		var l loadout
		require.NoError(t, faker.FakeData(&l, options.WithRandomMapAndSliceMaxSize(8)))
		w, enemy := randomWeapon(t, l)

		r := DPS(w, enemy)
		assert.LessOrEqual(t, r.TotalShots, ShotCap(w.AmmoType, int(w.StaticInput().BaseMag)))
		assertSeries(t, r)

		for _, s := range TTK(w, 0) {
			assert.LessOrEqual(t, s.Body.Bodyshots, TTKShotCap)
			assert.LessOrEqual(t, s.Optimal.Headshots+s.Optimal.Bodyshots, TTKShotCap+1)
		}
	}
}

func TestOptimalNeverSlowerThanBody(t *testing.T) {
	for _, p := range data.Static().Paths() {
		w := staticWeapon(t, p.WeaponType, p.Intrinsic)
		w.SetStats(map[model.StatHash]int{model.StatRange: 50, model.StatZoom: 16, model.StatMagazine: 50})
		for _, r := range TTK(w, 0) {
			assert.LessOrEqual(t, r.Optimal.TimeTaken, r.Body.TimeTaken+1e-9, "%s resilience %d", p, r.Resilience)
		}
	}
}

func BenchmarkDPS(b *testing.B) {
	w := staticWeapon(b, model.WeaponAutoRifle, data.FrameRapidFire)
	w.SetStats(map[model.StatHash]int{model.StatMagazine: 70, model.StatReload: 60})
	w.EquipPerk(perk.KillClip, 1)
	w.EquipPerk(perk.Rampage, 3)
	b.ReportAllocs()
	for b.Loop() {
		_ = DPS(w, model.EnemyBoss)
	}
}
