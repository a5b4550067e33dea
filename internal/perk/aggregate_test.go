package perk

import (
	"testing"

	"github.com/bxcodec/faker/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2go/internal/model"
)

func aggregatorWith(t *testing.T, perks ...model.Perk) *Aggregator {
	t.Helper()
	return NewAggregator(NewRegistry(nil), perks)
}

func on(id uint32, value uint32) model.Perk {
	return model.Perk{ID: id, RawID: id, Value: value}
}

func TestAggregatorNoPerksIsNeutral(t *testing.T) {
	a := aggregatorWith(t)
	calc := newCalc()

	assert.Equal(t, NeutralDamage(), a.Damage(calc, false))
	assert.Equal(t, NeutralFiring(), a.Firing(calc, false))
	assert.Equal(t, NeutralHandling(), a.Handling(calc, false))
	assert.Equal(t, NeutralRange(), a.Range(calc, false))
	assert.Equal(t, NeutralReload(), a.Reload(calc, false))
	assert.Equal(t, NeutralMagazine(), a.Magazine(calc, false))
	assert.Equal(t, NeutralReserve(), a.Reserve(calc, false))
	assert.Equal(t, NeutralFlinch(), a.Flinch(calc, false))
	assert.Empty(t, a.StatBuffs(calc, false))
	assert.Empty(t, a.Refunds(calc, false))
	assert.Empty(t, a.ExtraDamage(calc, false))
	assert.Empty(t, a.ReloadOverrides(calc, false))
	assert.Zero(t, a.Explosive(calc, false).Percent)
}

func TestAggregatorUnknownPerkIgnored(t *testing.T) {
	a := aggregatorWith(t, on(12345, 1))
	assert.Equal(t, NeutralDamage(), a.Damage(newCalc(), false))
}

func TestDamageMultiplies(t *testing.T) {
	a := aggregatorWith(t, on(KillClip, 1), on(FiringLine, 1))
	got := a.Damage(newCalc(), false)
	assert.InDelta(t, 1.25, got.ImpactScale, 1e-9)
	assert.InDelta(t, 1.2, got.CritScale, 1e-9)
}

func TestBuffGroupTakesStrongest(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Add(&Entry{
		ID: 4_200_000_001, Name: "Weak Empower", Group: GroupEmpowering, Option: Toggle(),
		Damage: Stack(dmg(1.1)),
	}))
	// Banner Shield (1.4) beats the weak empower; Weaken and Surge each apply once.
	perks := []model.Perk{
		on(EmpowermentBuffs, 4),
		on(4_200_000_001, 1),
		on(WeakenDebuffs, 1),
		on(SurgeMod, 4),
	}
	got := NewAggregator(reg, perks).Damage(newCalc(), false)
	assert.InDelta(t, 1.4*1.15*1.25, got.ImpactScale, 1e-9)
}

func TestHandlingStatAddSummed(t *testing.T) {
	a := aggregatorWith(t, on(QuickDraw, 0), on(Slickdraw, 0), on(DragonShadow, 1))
	got := a.Handling(newCalc(), false)
	assert.Equal(t, 300, got.StatAdd)
	assert.InDelta(t, 0.95*0.9*0.95, got.DrawScale, 1e-9)
}

func TestNegativeStatAddsKeepSign(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Add(&Entry{
		ID: 4_200_000_011, Name: "Light Touch",
		Handling: Const(handling(20)),
		Range:    Const(rangeAdd(20)),
		Reload:   Const(reload(20, 1)),
	}))
	require.NoError(t, reg.Add(&Entry{
		ID: 4_200_000_012, Name: "Heavy Frame",
		Handling: Const(handling(-50)),
		Range:    Const(rangeAdd(-50)),
		Reload:   Const(reload(-50, 1)),
	}))
	a := NewAggregator(reg, []model.Perk{on(4_200_000_011, 0), on(4_200_000_012, 0)})
	calc := newCalc()

	assert.Equal(t, -30, a.Handling(calc, false).StatAdd)
	assert.Equal(t, -30, a.Range(calc, false).StatAdd)
	assert.Equal(t, -30, a.Reload(calc, false).StatAdd)
}

func TestBuffGroupWeighsExplosiveScale(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Add(&Entry{
		ID: 4_200_000_021, Name: "Neutral Debuff", Group: GroupDebuff, Option: Toggle(),
		Damage: Stack(NeutralDamage()),
	}))
	require.NoError(t, reg.Add(&Entry{
		ID: 4_200_000_022, Name: "Brittle Casing", Group: GroupDebuff, Option: Toggle(),
		Damage: Stack(explosive(1.3)),
	}))
	perks := []model.Perk{on(4_200_000_021, 1), on(4_200_000_022, 1)}
	got := NewAggregator(reg, perks).Damage(newCalc(), false)
	assert.InDelta(t, 1.3, got.ExplosiveScale, 1e-9)
	assert.InDelta(t, 1.0, got.ImpactScale, 1e-9)
}

func TestRefundsNotFolded(t *testing.T) {
	a := aggregatorWith(t, on(TripleTap, 0), on(FourthTimesTheCharm, 0))
	refunds := a.Refunds(newCalc(), false)
	require.Len(t, refunds, 2)

	byReq := map[int]Refund{}
	for _, r := range refunds {
		byReq[r.Requirement] = r
	}
	assert.Equal(t, 1, byReq[3].RefundMag)
	assert.Equal(t, 2, byReq[4].RefundMag)
}

func TestExtraDamageCollected(t *testing.T) {
	a := aggregatorWith(t, on(ClusterBomb, 0))
	extra := a.ExtraDamage(newCalc(), false)
	require.Len(t, extra, 1)
	assert.Equal(t, 6, extra[0].Hits)
	assert.True(t, extra[0].AtOnce)
}

func TestStatBuffsSummed(t *testing.T) {
	a := aggregatorWith(t, on(Encore, 2), on(SlideWays, 1))
	got := a.StatBuffs(newCalc(), false)
	assert.Equal(t, 16+20, got[model.StatStability])
	assert.Equal(t, 10, got[model.StatRange])
	assert.Equal(t, 20, got[model.StatHandling])
}

func TestExplosivePicksLargest(t *testing.T) {
	calc := newCalc()
	calc.WeaponType = model.WeaponRocket
	a := aggregatorWith(t, on(BuiltIn, 0), on(TimedPayload, 0))
	got := a.Explosive(calc, false)
	assert.Equal(t, 0.5, got.Percent)
	assert.Equal(t, 0.6, got.Delayed)
}

func TestVeistStingerCooldown(t *testing.T) {
	a := aggregatorWith(t, on(VeistStinger, 1))
	calc := newCalc()
	calc.CurrMag = 4
	calc.TimeTotal = 4

	refunds := a.Refunds(calc, false)
	require.Len(t, refunds, 1)
	assert.Equal(t, 3, refunds[0].RefundMag)
	assert.Equal(t, -3, refunds[0].RefundReserves)
	assert.Equal(t, 4.0, calc.CachedData["veist_stinger"])

	calc.TimeTotal = 6
	assert.Empty(t, a.Refunds(calc, false), "still cooling down")

	calc.TimeTotal = 8
	calc.CurrMag = 9
	refunds = a.Refunds(calc, false)
	require.Len(t, refunds, 1)
	assert.Equal(t, 1, refunds[0].RefundMag, "clamped to missing rounds")
}

func TestReloadOverridesSortedByPriority(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Add(&Entry{
		ID: 4_200_000_002, Name: "Priority Reload",
		ReloadOverride: Const(ReloadOverride{Valid: true, ReloadTime: 0.5, Priority: 5}),
	}))
	calc := newCalc()
	calc.CurrMag = 0
	calc.ReservesLeft = 30

	got := NewAggregator(reg, []model.Perk{on(Demolitionist, 1), on(4_200_000_002, 0)}).ReloadOverrides(calc, false)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].Priority)
	assert.Equal(t, 1, got[1].Priority)
}

func TestDemolitionistOnce(t *testing.T) {
	a := aggregatorWith(t, on(Demolitionist, 1))
	calc := newCalc()
	calc.CurrMag = 0
	calc.ReservesLeft = 30

	require.Len(t, a.ReloadOverrides(calc, false), 1)
	calc.TimeTotal = 100
	assert.Empty(t, a.ReloadOverrides(calc, false))
}

func TestHighImpactReserves(t *testing.T) {
	a := aggregatorWith(t, on(HighImpactReserves, 0))
	calc := newCalc()

	calc.CurrMag = 10
	assert.Equal(t, NeutralDamage(), a.Damage(calc, false), "full magazine")

	calc.CurrMag = 1
	assert.InDelta(t, 1.256, a.Damage(calc, false).ImpactScale, 1e-9)
	assert.InDelta(t, 1.06, a.Damage(calc, true).ImpactScale, 1e-9)

	calc.CurrMag = 3
	assert.InDelta(t, 1+(0.121+0.256)/2, a.Damage(calc, false).ImpactScale, 1e-9)

	calc.CurrMag = 5
	assert.Equal(t, NeutralDamage(), a.Damage(calc, false), "at the threshold the ramp is still zero")
}

func TestTargetLockRamp(t *testing.T) {
	a := aggregatorWith(t, on(TargetLock, 0))
	calc := newCalc()
	calc.BaseMag = 100

	calc.ShotsFiredThisMag = 10
	assert.Equal(t, 1.0, a.Damage(calc, false).ImpactScale)

	calc.ShotsFiredThisMag = 37
	assert.InDelta(t, 1.23, a.Damage(calc, false).ImpactScale, 1e-9)

	calc.ShotsFiredThisMag = 200
	assert.InDelta(t, 1.4, a.Damage(calc, false).ImpactScale, 1e-9)
}

func TestGutShotKeepsPrecisionDamage(t *testing.T) {
	a := aggregatorWith(t, on(GutShot, 0))
	calc := newCalc()
	calc.WeaponType = model.WeaponHandCannon
	got := a.Damage(calc, false)
	assert.InDelta(t, 1.2, got.ImpactScale, 1e-9)
	assert.InDelta(t, 1.0, got.ImpactScale*got.CritScale, 1e-9)
}

func TestSpecModsPvEOnly(t *testing.T) {
	a := aggregatorWith(t, on(BossSpec, 0))
	calc := newCalc()
	calc.EnemyType = model.EnemyBoss
	assert.InDelta(t, 1.077, a.Damage(calc, false).ImpactScale, 1e-9)
	assert.Equal(t, 1.0, a.Damage(calc, true).ImpactScale)

	calc.EnemyType = model.EnemyMinor
	assert.Equal(t, 1.0, a.Damage(calc, false).ImpactScale)
}

// snapshotFields are the mutable counters the simulators advance; faker
// fills them with arbitrary values for the determinism check.
type snapshotFields struct {
	CurrMag           float64
	ShotsFiredThisMag float64
	TotalShotsFired   float64
	TotalShotsHit     float64
	TimeThisMag       float64
	TimeTotal         float64
	NumReloads        float64
}

func TestAggregatorIsDeterministic(t *testing.T) {
	perks := []model.Perk{
		on(KillClip, 1), on(Rampage, 2), on(RapidHit, 3), on(HighImpactReserves, 0),
		on(TargetLock, 0), on(Surrounded, 1), on(ThreatDetector, 2), on(EmpowermentBuffs, 2),
	}
	a := aggregatorWith(t, perks...)
	approx := cmpopts.EquateApprox(0, 1e-12)

	for i := 0; i < 20; i++ {
		var s snapshotFields
		require.NoError(t, faker.FakeData(&s))
		calc := newCalc()
		calc.CurrMag = s.CurrMag
		calc.ShotsFiredThisMag = s.ShotsFiredThisMag
		calc.TotalShotsFired = s.TotalShotsFired
		calc.TotalShotsHit = s.TotalShotsHit
		calc.TimeThisMag = s.TimeThisMag
		calc.TimeTotal = s.TimeTotal
		calc.NumReloads = s.NumReloads

		first := []any{a.Damage(calc, false), a.Firing(calc, false), a.Reload(calc, false), a.Handling(calc, false)}
		second := []any{a.Damage(calc, false), a.Firing(calc, false), a.Reload(calc, false), a.Handling(calc, false)}
		if diff := cmp.Diff(first, second, approx); diff != "" {
			t.Fatalf("aggregation not deterministic (-first +second):\n%s", diff)
		}
	}
}

func BenchmarkAggregatorDamage(b *testing.B) {
	a := NewAggregator(NewRegistry(nil), []model.Perk{
		on(KillClip, 1), on(Rampage, 3), on(TargetLock, 0), on(EmpowermentBuffs, 1), on(SurgeMod, 2),
	})
	calc := newCalc()
	b.ReportAllocs()
	for b.Loop() {
		_ = a.Damage(calc, false)
	}
}
