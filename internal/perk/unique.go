package perk

import (
	"math"

	"github.com/udisondev/d2go/internal/model"
)

// highImpactReserves ramps damage once the magazine drops below the
// threshold fraction of its base size.
func highImpactReserves(in Input) DamageModifier {
	lo, hi := 0.121, 0.256
	if in.PvP {
		lo, hi = 0.03, 0.06
	}
	div := 2.0
	if in.Enhanced {
		div = 4.0 / 3.0
	}
	threshold := in.Calc.BaseMag / div
	if in.Calc.CurrMag > threshold || threshold <= 1 {
		return NeutralDamage()
	}
	t := 1 - (in.Calc.CurrMag-1)/(threshold-1)
	if t <= 0 {
		return NeutralDamage()
	}
	return dmg(1 + lerp(lo, hi, clampF(t, 0, 1)))
}

func focusedFury(in Input) DamageModifier {
	need := in.Calc.BaseMag / 2
	if in.Calc.Firing.OneAmmo && in.Calc.Firing.BurstSize > 1 {
		need = in.Calc.BaseMag * float64(in.Calc.Firing.BurstSize) / 2
	}
	if in.Calc.TotalShotsHit >= need {
		return dmg(1.2)
	}
	return NeutralDamage()
}

var targetLockTable = [...][2]float64{
	{0.15, 0.166},
	{0.37, 0.23},
	{0.55, 0.28},
	{0.75, 0.34},
	{1.05, 0.4},
}

func targetLock(in Input) DamageModifier {
	if in.Calc.BaseMag <= 0 {
		return NeutralDamage()
	}
	through := in.Calc.ShotsFiredThisMag / in.Calc.BaseMag
	var buff float64
	switch {
	case through < targetLockTable[0][0]:
		buff = 0
	case through >= targetLockTable[len(targetLockTable)-1][0]:
		buff = targetLockTable[len(targetLockTable)-1][1]
	default:
		for i := 1; i < len(targetLockTable); i++ {
			lo, hi := targetLockTable[i-1], targetLockTable[i]
			if through < hi[0] {
				buff = lerp(lo[1], hi[1], (through-lo[0])/(hi[0]-lo[0]))
				break
			}
		}
	}
	if in.Enhanced {
		buff *= 1.125
	}
	return dmg(1 + buff)
}

// explosiveLight buffs the next 6 (7 enhanced) shots. Grenade launchers
// redistribute their impact and explosive split instead of a flat bonus.
func explosiveLight(in Input) DamageModifier {
	shots := 6.0
	if in.Enhanced {
		shots = 7
	}
	if float64(in.Value)*shots-in.Calc.TotalShotsFired <= 0 {
		return NeutralDamage()
	}
	if in.Calc.WeaponType == model.WeaponGrenadeLauncher {
		br := float64(in.Calc.StatVal(model.StatBlastRadius))
		switch in.Calc.AmmoType {
		case model.AmmoHeavy:
			expl := 0.7 + 0.00175*br
			return DamageModifier{ImpactScale: 0.125 / (1 - expl), ExplosiveScale: 0.875 / expl * 1.6, CritScale: 1}
		case model.AmmoSpecial:
			expl := 0.5 + 0.0025*br
			return DamageModifier{ImpactScale: 0.25 / (1 - expl), ExplosiveScale: 0.75 / expl * 1.6, CritScale: 1}
		}
	}
	return dmg(1.25)
}

const (
	demolitionistKey    = "demolitionist"
	demolitionistPeriod = 3.0
)

// demolitionist refills an empty magazine from reserves without a reload
// animation; "Once" fires a single time per run, "Every 3s" on a cooldown.
func demolitionist(in Input) ReloadOverride {
	if in.Value == 0 || in.Calc.CurrMag > 0 || in.Calc.ReservesLeft <= 0 {
		return ReloadOverride{}
	}
	cache := in.cache()
	last, seen := cache[demolitionistKey]
	switch in.Value {
	case 1:
		if seen {
			return ReloadOverride{}
		}
	default:
		if seen && in.Calc.TimeTotal-last < demolitionistPeriod {
			return ReloadOverride{}
		}
	}
	cache[demolitionistKey] = in.Calc.TimeTotal
	return ReloadOverride{
		Valid:        true,
		ReloadTime:   0,
		AmmoToReload: int(in.Calc.BaseMag),
		Priority:     1,
		UsesAmmo:     true,
	}
}

const (
	veistKey      = "veist_stinger"
	veistCooldown = 4.0
)

// veistStinger moves a quarter magazine from reserves into the magazine,
// at most once every 4 seconds and never past the base size.
func veistStinger(in Input) Refund {
	if in.Value == 0 {
		return Refund{}
	}
	cache := in.cache()
	last := cache[veistKey]
	if in.Calc.TimeTotal-last < veistCooldown {
		return Refund{}
	}
	room := int(in.Calc.BaseMag - in.Calc.CurrMag)
	if room <= 0 {
		return Refund{}
	}
	amount := int(math.Ceil(in.Calc.BaseMag / 4))
	if amount > room {
		amount = room
	}
	cache[veistKey] = in.Calc.TimeTotal
	return Refund{Requirement: 1, RefundMag: amount, RefundReserves: -amount}
}

var paracausalTable = [...]float64{1, 2.92, 3, 3.4, 4.25, 6.67, 10.71, 17.36}

// paracausalShot charges the final round of the magazine by stack count.
func paracausalShot(in Input) DamageModifier {
	if in.Calc.CurrMag != 1 {
		return NeutralDamage()
	}
	return dmg(paracausalTable[clampU(in.Value, 0, 7)])
}

// chargetimeMW shortens the charge of fusion-style frames by 5ms worth of
// their intrinsic charge base.
func chargetimeMW(in Input) FiringModifier {
	var x float64
	switch in.Calc.Intrinsic {
	case 901:
		x = 330
	case 906:
		x = 280
	case 903:
		x = 270
	case 902:
		x = 245
	default:
		return NeutralFiring()
	}
	return delay((x - 5) / x)
}

// builtInDamage is applied to every weapon regardless of equipped perks.
func builtInDamage(in Input) DamageModifier {
	if in.PvP {
		return NeutralDamage()
	}
	out := NeutralDamage()
	if in.Calc.WeaponType == model.WeaponLinearFusionRifle {
		out.CritScale = 1.15
	}
	if in.Calc.DamageType == model.DamageKinetic {
		switch in.Calc.AmmoType {
		case model.AmmoPrimary:
			out.ImpactScale *= 1.1
			out.ExplosiveScale *= 1.1
		case model.AmmoSpecial:
			out.ImpactScale *= 1.15
			out.ExplosiveScale *= 1.15
		}
	}
	return out
}

// builtInExplosive is the intrinsic impact/explosive split of launchers.
func builtInExplosive(in Input) ExplosivePercent {
	br := float64(in.Calc.StatVal(model.StatBlastRadius))
	switch in.Calc.WeaponType {
	case model.WeaponGrenadeLauncher:
		switch in.Calc.AmmoType {
		case model.AmmoSpecial:
			return ExplosivePercent{Percent: 0.5 + 0.0025*br, RetainBaseTotal: true}
		case model.AmmoHeavy:
			return ExplosivePercent{Percent: 0.7 + 0.00175*br, RetainBaseTotal: true}
		}
	case model.WeaponRocket:
		return ExplosivePercent{Percent: 0.28, RetainBaseTotal: true}
	}
	return ExplosivePercent{}
}

// specDamage is the shared shape of the targeting spec mods.
func specDamage(targets ...model.EnemyType) *Effect[DamageModifier] {
	return When(All(PvE, EnemyIs(targets...)), Const(dmg(1.077)))
}
