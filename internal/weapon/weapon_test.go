package weapon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
)

func handCannon(t testing.TB) *Weapon {
	t.Helper()
	w, err := New(data.Static(), perk.NewRegistry(nil), Spec{
		Hash:       1234,
		WeaponType: model.WeaponHandCannon,
		Intrinsic:  data.FrameAdaptive,
		AmmoType:   model.AmmoPrimary,
		DamageType: model.DamageKinetic,
	})
	require.NoError(t, err)
	w.SetStats(map[model.StatHash]int{
		model.StatRange:         50,
		model.StatStability:     40,
		model.StatHandling:      50,
		model.StatReload:        50,
		model.StatMagazine:      50,
		model.StatZoom:          14,
		model.StatInventorySize: 40,
	})
	return w
}

func TestNewKnownWeapon(t *testing.T) {
	w := handCannon(t)
	assert.Equal(t, data.Pointers{Scalar: 1}, w.Pointers)
	assert.Equal(t, data.FrameAdaptive, w.Intrinsic)

	_, hasIntrinsic := w.Perk(data.FrameAdaptive)
	_, hasBuiltIn := w.Perk(perk.BuiltIn)
	assert.True(t, hasIntrinsic)
	assert.True(t, hasBuiltIn)
}

func TestNewUnknownWeapon(t *testing.T) {
	_, err := New(data.Static(), perk.NewRegistry(nil), Spec{WeaponType: model.WeaponSword, Intrinsic: 77})
	require.Error(t, err)
	assert.True(t, errors.Is(err, data.ErrUnknownWeapon))
}

func TestCloneIsIndependent(t *testing.T) {
	w := handCannon(t)
	c := w.Clone()
	c.EquipPerk(perk.KillClip, 1)
	c.SetStat(model.StatRange, 90, 0)

	_, ok := w.Perk(perk.KillClip)
	assert.False(t, ok)
	assert.Equal(t, 50, w.Stat(model.StatRange).Base)
}

func TestPerkEditing(t *testing.T) {
	w := handCannon(t)
	p := w.EquipPerk(perk.Rampage, 9)
	assert.Equal(t, uint32(3), p.Value)

	require.True(t, w.SetPerkValue(perk.Rampage, 1))
	got, _ := w.Perk(perk.Rampage)
	assert.Equal(t, uint32(1), got.Value)

	assert.False(t, w.SetPerkValue(perk.KillClip, 1), "not equipped")
	assert.True(t, w.RemovePerk(perk.Rampage))
	assert.False(t, w.RemovePerk(perk.Rampage))
}

func TestPerkStatBuffsApplied(t *testing.T) {
	w := handCannon(t)
	w.AddPerk(model.Perk{ID: 55, RawID: 55, StatBuffs: map[model.StatHash]int{model.StatRange: 70}})
	s := w.Stat(model.StatRange)
	assert.Equal(t, 70, s.Perk)
	assert.Equal(t, 100, s.PerkVal())

	w.RemovePerk(55)
	assert.Equal(t, 0, w.Stat(model.StatRange).Perk)
}

func TestRangeFalloff(t *testing.T) {
	w := handCannon(t)
	base := w.RangeFalloff(w.StaticInput(), false)
	want := w.Formulas.Range.Falloff(50, 14, 1, 1)
	if diff := cmp.Diff(want, base, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("falloff mismatch (-want +got):\n%s", diff)
	}

	w.EquipPerk(perk.RangeFinder, 0)
	zoomed := w.RangeFalloff(w.StaticInput(), false)
	assert.Greater(t, zoomed.ADSStart, base.ADSStart)
	assert.InDelta(t, base.HipStart, zoomed.HipStart, 1e-9)
}

func TestHandlingTimesWithPerk(t *testing.T) {
	w := handCannon(t)
	base := w.HandlingTimes(w.StaticInput(), false)

	w.EquipPerk(perk.QuickDraw, 0)
	fast := w.HandlingTimes(w.StaticInput(), false)
	assert.Less(t, fast.Ready, base.Ready)
}

func TestNegativeStatAddClampsStat(t *testing.T) {
	reg := perk.NewRegistry(nil)
	require.NoError(t, reg.Add(&perk.Entry{
		ID: 4_200_000_031, Name: "Sluggish",
		Handling: perk.Const(perk.HandlingModifier{StatAdd: -30, DrawScale: 1, StowScale: 1, ADSScale: 1}),
	}))
	require.NoError(t, reg.Add(&perk.Entry{
		ID: 4_200_000_032, Name: "Anchored",
		Handling: perk.Const(perk.HandlingModifier{StatAdd: -50, DrawScale: 1, StowScale: 1, ADSScale: 1}),
	}))
	w, err := New(data.Static(), reg, Spec{
		WeaponType: model.WeaponHandCannon,
		Intrinsic:  data.FrameAdaptive,
		AmmoType:   model.AmmoPrimary,
	})
	require.NoError(t, err)
	w.SetStats(map[model.StatHash]int{model.StatHandling: 50})

	base := w.Aggregator().Handling(w.StaticInput(), false)
	stat := w.Stat(model.StatHandling).PerkVal()

	w.EquipPerk(4_200_000_031, 0)
	got := w.HandlingTimes(w.StaticInput(), false)
	want := w.Formulas.Handling.Times(model.ClampStat(stat+base.StatAdd-30), base.DrawScale, base.StowScale, base.ADSScale)
	assert.Equal(t, want, got)

	w.EquipPerk(4_200_000_032, 0)
	got = w.HandlingTimes(w.StaticInput(), false)
	want = w.Formulas.Handling.Times(model.ClampStat(stat+base.StatAdd-80), base.DrawScale, base.StowScale, base.ADSScale)
	assert.Equal(t, want, got)
	assert.Equal(t, w.Formulas.Handling.Times(0, base.DrawScale, base.StowScale, base.ADSScale), got)
}

func TestReloadTimes(t *testing.T) {
	w := handCannon(t)
	rt := w.ReloadTimes(w.StaticInput(), false)
	want := 0.00012*2500 - 0.0245*50 + 3
	assert.InDelta(t, want, rt.ReloadTime, 1e-9)
	assert.InDelta(t, want*0.78, rt.AmmoTime, 1e-9)
}

func TestAmmoSizes(t *testing.T) {
	w := handCannon(t)
	sizes := w.AmmoSizes(w.StaticInput(), false)
	assert.Equal(t, 13, sizes.Mag)
	assert.Equal(t, 9999, sizes.Reserves)

	w.EquipPerk(perk.ClownCartridge, 0)
	assert.Equal(t, 20, w.AmmoSizes(w.StaticInput(), false).Mag)
}

func TestFiringData(t *testing.T) {
	w := handCannon(t)
	in := w.StaticInput()
	in.EnemyType = model.EnemyMinor

	fd := w.FiringData(in, 1)
	assert.InDelta(t, 66.0, fd.PvPImpactDamage, 1e-9)
	assert.Zero(t, fd.PvPExplosionDamage)
	// kinetic primary built-in bonus applies in PvE only
	assert.InDelta(t, 66*1.1*1.5, fd.PvEImpactDamage, 1e-9)
	assert.InDelta(t, 140.0, fd.RPM, 0.01)
	assert.Equal(t, 1, fd.BurstSize)
}

func TestCadenceAddBeforeScale(t *testing.T) {
	w := handCannon(t)
	c := w.Cadence(perk.FiringModifier{BurstDelayScale: 0.5, BurstDelayAdd: 0.1, InnerBurstScale: 1, BurstSizeAdd: -5})
	assert.InDelta(t, (0.42857+0.1)*0.5, c.BurstDelay, 1e-9)
	assert.Equal(t, 1, c.BurstSize)
}

func TestFlinchResist(t *testing.T) {
	w := handCannon(t)
	assert.InDelta(t, 0.1, w.FlinchResist(10, w.StaticInput(), true), 1e-9)
	assert.InDelta(t, 0.0, w.FlinchResist(0, w.StaticInput(), true), 1e-9)

	w.EquipPerk(perk.UnflinchingMod, 3)
	assert.InDelta(t, 1-0.6*0.9, w.FlinchResist(10, w.StaticInput(), true), 1e-9)
}

func TestSplitDamage(t *testing.T) {
	tests := []struct {
		name       string
		ex         perk.ExplosivePercent
		wantImpact float64
		wantExpl   float64
	}{
		{"none", perk.ExplosivePercent{}, 100, 0},
		{"retain", perk.ExplosivePercent{Percent: 0.3, RetainBaseTotal: true}, 70, 30},
		{"on top", perk.ExplosivePercent{Percent: 0.5}, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, e := SplitDamage(100, tt.ex)
			assert.InDelta(t, tt.wantImpact, i, 1e-9)
			assert.InDelta(t, tt.wantExpl, e, 1e-9)
		})
	}
}

func TestReversePvECalc(t *testing.T) {
	assert.InDelta(t, 100.0, ReversePvECalc(150, 1.5, 1), 1e-9)
	assert.Equal(t, 42.0, ReversePvECalc(42, 0, 1))
}

func TestStatViewIncludesDynamicBuffs(t *testing.T) {
	w := handCannon(t)
	w.EquipPerk(perk.Encore, 2)
	view := w.StatView(w.StaticInput(), false)
	assert.Equal(t, 10, view[model.StatRange].Perk)
	assert.Equal(t, 0, w.Stat(model.StatRange).Perk, "stored stats untouched")
}
