package perk

import "github.com/udisondev/d2go/internal/model"

func init() {
	Register(weaponTraits...)
}

var weaponTraits = []*Entry{
	{
		ID: Adagio, Name: "Adagio", Option: Toggle(),
		Damage: When(Within(7, 8), Custom(func(in Input) DamageModifier {
			if in.Calc.WeaponType == model.WeaponBow || in.Calc.WeaponType == model.WeaponShotgun {
				return dmg(1.2)
			}
			return dmg(1.3)
		})),
		Firing:    When(Within(7, 8), Const(FiringModifier{BurstDelayScale: 1.2, InnerBurstScale: 1.2})),
		Range:     Stack(rangeAdd(10)),
		StatBuffs: When(Within(7, 8), Const(StatBuffs{model.StatRange: 10})),
	},
	{
		ID: AdrenalineJunkie, Name: "Adrenaline Junkie", Option: Stacks(5),
		Damage:    When(Within(4.5, 6), Stack(dmg(1.067), dmg(1.134), dmg(1.201), dmg(1.268), dmg(1.335))),
		Handling:  Stack(handling(20)),
		StatBuffs: When(Within(4.5, 6), Const(StatBuffs{model.StatHandling: 20})),
	},
	{
		ID: AmbitiousAssassin, Name: "Ambitious Assassin", Option: Stacks(15),
		Magazine: When(NoShotsFired, Custom(func(in Input) MagazineModifier {
			per := 0.1
			if in.Calc.AmmoType == model.AmmoPrimary {
				per = 0.2
			}
			v := float64(clampU(in.Value, 0, 15))
			return magScale(clampF(1+per*v, 1, 2.5))
		})),
	},
	{
		ID: ArchersTempo, Name: "Archer's Tempo", Option: Toggle(),
		Firing: Stack(delay(0.75)),
	},
	{
		ID: BackupPlan, Name: "Backup Plan", Option: Toggle(),
		Damage:    When(Within(2, 2.2), Const(dmg(0.8))),
		Firing:    When(Within(2, 2.2), Const(delay(0.7))),
		Handling:  When(Within(2, 2.2), Const(handling(100))),
		StatBuffs: When(Within(2, 2.2), Const(StatBuffs{model.StatHandling: 100})),
	},
	{
		ID: BoxBreathing, Name: "Box Breathing", Option: Toggle(),
		Damage: When(All(Active, NoShotsFired), Custom(func(in Input) DamageModifier {
			base := in.Calc.BaseCritMult
			if base <= 0 {
				return NeutralDamage()
			}
			scale := (base + 1) / base
			if in.Calc.WeaponType == model.WeaponScoutRifle {
				scale *= 0.95
			}
			return crit(scale)
		})),
	},
	{
		ID: CascadePoint, Name: "Cascade Point", Option: Toggle(),
		Firing: When(Within(2.5, 3), Custom(func(in Input) FiringModifier {
			if in.Calc.WeaponType == model.WeaponMachineGun || in.Calc.WeaponType == model.WeaponSubMachineGun {
				return delay(0.7)
			}
			return delay(0.6)
		})),
	},
	{
		ID: ClownCartridge, Name: "Clown Cartridge",
		Magazine: Const(magScale(1.5)),
	},
	{
		ID: ClusterBomb, Name: "Cluster Bomb",
		Extra: Const(ExtraDamage{
			Damage:         350 * 0.04,
			Duration:       0.8,
			Hits:           6,
			WeaponScale:    true,
			CombatantScale: true,
			AtOnce:         true,
		}),
	},
	{
		ID: Cornered, Name: "Cornered", Option: Toggle(),
		Firing: Stack(delay(0.85)),
	},
	{
		ID: Demolitionist, Name: "Demolitionist", Option: Choice("Once", "Every 3s"),
		ReloadOverride: Custom(demolitionist),
	},
	{
		ID: Desperado, Name: "Desperado", Option: Toggle(),
		Firing: When(Within(6, 7), Const(delay(0.7))),
	},
	{
		ID: DisruptionBreak, Name: "Disruption Break", Option: Toggle(),
		Damage: When(All(Within(4, 5), DamageIs(model.DamageKinetic)), Const(dmg(1.5))),
	},
	{
		ID: ElementalCapacitor, Name: "Elemental Capacitor", Option: Choice("Void", "Solar", "Arc", "Stasis", "Strand"),
		StatBuffs: Stack(
			StatBuffs{model.StatStability: 20},
			StatBuffs{model.StatReload: 50},
			StatBuffs{model.StatHandling: 50},
			StatBuffs{model.StatRecoilDir: 20},
			StatBuffs{model.StatAirborne: 10},
		),
		Handling: Stack(NeutralHandling(), NeutralHandling(), handling(50), NeutralHandling(), NeutralHandling()),
		Reload:   Stack(NeutralReload(), reload(50, 1), NeutralReload(), NeutralReload(), NeutralReload()),
	},
	{
		ID: Encore, Name: "Encore", Option: Stacks(4),
		StatBuffs: Stack(
			StatBuffs{model.StatRange: 5, model.StatStability: 8},
			StatBuffs{model.StatRange: 10, model.StatStability: 16},
			StatBuffs{model.StatRange: 15, model.StatStability: 24},
			StatBuffs{model.StatRange: 20, model.StatStability: 32},
		),
		Range: Stack(rangeAdd(5), rangeAdd(10), rangeAdd(15), rangeAdd(20)),
	},
	{
		ID: Ensemble, Name: "Ensemble", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 30, model.StatReload: 40}).
			Enhanced(StatBuffs{model.StatHandling: 35, model.StatReload: 45}),
		Handling: Stack(handling(30)).Enhanced(handling(35)),
		Reload:   Stack(reload(40, 1)).Enhanced(reload(45, 1)),
	},
	{
		ID: ExplosiveHead, Name: "Explosive Head",
		Damage: When(PvE, Const(explosive(1.3))),
		Explosive: Custom(func(in Input) ExplosivePercent {
			d := 0.2
			if in.PvP {
				d = 0
			}
			return ExplosivePercent{Percent: 0.5, Delayed: d, RetainBaseTotal: true}
		}),
	},
	{
		ID: ExplosiveLight, Name: "Explosive Light", Option: Toggle(),
		Damage:    Custom(explosiveLight),
		StatBuffs: Stack(StatBuffs{model.StatBlastRadius: 100}),
	},
	{
		ID: ExplosivePayload, Name: "Explosive Payload",
		Damage:    When(PvE, Const(explosive(1.3))),
		Explosive: Const(ExplosivePercent{Percent: 0.5, RetainBaseTotal: true}),
	},
	{
		ID: FeedingFrenzy, Name: "Feeding Frenzy", Option: Stacks(5),
		Reload: When(Within(3.5, 3.5), Stack(
			reload(10, 1), reload(45, 0.9), reload(55, 0.88), reload(70, 0.85), reload(100, 0.8),
		)),
		StatBuffs: When(Within(3.5, 3.5), Stack(
			StatBuffs{model.StatReload: 10},
			StatBuffs{model.StatReload: 45},
			StatBuffs{model.StatReload: 55},
			StatBuffs{model.StatReload: 70},
			StatBuffs{model.StatReload: 100},
		)),
	},
	{
		ID: FieldPrep, Name: "Field Prep", Option: Toggle(),
		Reload:   Stack(reload(50, 0.8)).Enhanced(reload(55, 0.77)),
		Handling: Stack(swap(0, 0.8)),
		Reserve: Custom(func(in Input) ReserveModifier {
			return ReserveModifier{StatAdd: fieldPrepInventory(in), Scale: 1}
		}),
		StatBuffs: Custom(func(in Input) StatBuffs {
			out := StatBuffs{model.StatInventorySize: fieldPrepInventory(in)}
			if in.Value > 0 {
				out[model.StatReload] = 50
				if in.Enhanced {
					out[model.StatReload] = 55
				}
			}
			return out
		}),
	},
	{
		ID: FieldTested, Name: "Field-Tested", Option: Stacks(5),
		StatBuffs: Custom(func(in Input) StatBuffs {
			v := int(clampU(in.Value, 0, 5)) * 5
			return StatBuffs{model.StatRange: v, model.StatHandling: v, model.StatReload: v, model.StatStability: v}
		}),
		Handling: Stack(handling(5), handling(10), handling(15), handling(20), handling(25)),
		Reload:   Stack(reload(5, 1), reload(10, 1), reload(15, 1), reload(20, 1), reload(25, 1)),
		Range:    Stack(rangeAdd(5), rangeAdd(10), rangeAdd(15), rangeAdd(20), rangeAdd(25)),
	},
	{
		ID: FiringLine, Name: "Firing Line", Option: Toggle(),
		Damage: Stack(crit(1.2)),
	},
	{
		ID: FirmlyPlanted, Name: "Firmly Planted", Option: Toggle(),
		Handling: When(Active, Custom(func(in Input) HandlingModifier {
			return handling(firmlyPlanted(in, 30, 35))
		})),
		StatBuffs: When(Active, Custom(func(in Input) StatBuffs {
			return StatBuffs{
				model.StatHandling:  firmlyPlanted(in, 30, 35),
				model.StatStability: firmlyPlanted(in, 20, 25),
			}
		})),
	},
	{
		ID: FocusedFury, Name: "Focused Fury",
		Damage: Custom(focusedFury),
	},
	{
		ID: FourthTimesTheCharm, Name: "Fourth Time's the Charm",
		Refund: Const(Refund{Crit: true, Requirement: 4, RefundMag: 2}),
	},
	{
		ID: FragileFocus, Name: "Fragile Focus", Option: Toggle(),
		Range:     Stack(rangeAdd(20)),
		StatBuffs: Stack(StatBuffs{model.StatRange: 20}),
	},
	{
		ID: Frenzy, Name: "Frenzy", Option: Toggle(),
		Damage:    When(frenzyActive, Const(dmg(1.15))),
		Handling:  When(frenzyActive, Const(handling(100))),
		Reload:    When(frenzyActive, Const(reload(100, 1))),
		StatBuffs: When(frenzyActive, Const(StatBuffs{model.StatHandling: 100, model.StatReload: 100})),
	},
	{
		ID: FullCourt, Name: "Full Court", Option: Toggle(),
		Damage: Stack(explosive(1.25)),
	},
	{
		ID: GutShot, Name: "Gutshot Straight",
		Damage: Custom(func(in Input) DamageModifier {
			boost := 1.1
			switch in.Calc.WeaponType {
			case model.WeaponAutoRifle, model.WeaponHandCannon, model.WeaponBow:
				boost = 1.2
			}
			return DamageModifier{ImpactScale: boost, ExplosiveScale: boost, CritScale: 1 / boost}
		}),
	},
	{
		ID: Harmony, Name: "Harmony", Option: Toggle(),
		Damage:    When(Within(7, 8), Const(dmg(1.2))),
		Handling:  Stack(handling(15)),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 15}),
	},
	{
		ID: HighImpactReserves, Name: "High-Impact Reserves",
		Damage: Custom(highImpactReserves),
	},
	{
		ID: HipFireGrip, Name: "Hip-Fire Grip", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatAimAssist: 15, model.StatStability: 25}),
		Range: When(All(Active, Not(WeaponIs(model.WeaponFusionRifle, model.WeaponShotgun))),
			Const(RangeModifier{AllScale: 1, HipScale: 1.2, ZoomScale: 1})),
	},
	{
		ID: ImpactCasing, Name: "Impact Casing",
		Damage: Const(DamageModifier{ImpactScale: 1.1, ExplosiveScale: 1, CritScale: 1}),
	},
	{
		ID: ImpulseAmplifier, Name: "Impulse Amplifier",
		Reload:    Const(reload(10, 0.8)).Enhanced(reload(15, 0.77)),
		StatBuffs: Const(StatBuffs{model.StatReload: 10}).Enhanced(StatBuffs{model.StatReload: 15}),
	},
	{
		ID: KeepAway, Name: "Keep Away", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatRange: 10, model.StatReload: 30}),
		Range:     Stack(rangeAdd(10)),
		Reload:    Stack(reload(30, 1)),
	},
	{
		ID: KillClip, Name: "Kill Clip", Option: Toggle(),
		Damage: When(Within(4, 5), Const(dmg(1.25))),
	},
	{
		ID: KillingTally, Name: "Killing Tally", Option: Stacks(3),
		Damage: When(NoReloads, Stack(dmg(1.1), dmg(1.2), dmg(1.3)).PvP(dmg(1.05), dmg(1.1), dmg(1.15))),
	},
	{
		ID: KillingWind, Name: "Killing Wind", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 40, model.StatRange: 20}),
		Range:     Stack(rangeAdd(20)),
		Handling:  Stack(handling(40)),
	},
	{
		ID: LastingImpression, Name: "Lasting Impression",
		Damage: Const(explosive(1.2)),
	},
	{
		ID: MovingTarget, Name: "Moving Target", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatAimAssist: 10}).Enhanced(StatBuffs{model.StatAimAssist: 11}),
	},
	{
		ID: MultikillClip, Name: "Multikill Clip", Option: Stacks(3),
		Damage: When(NoReloads, Stack(dmg(1+1.0/6), dmg(1+2.0/6), dmg(1.5))),
	},
	{
		ID: OffhandStrike, Name: "Offhand Strike", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatStability: 30}),
		Range:     Stack(RangeModifier{AllScale: 1, HipScale: 1.45, ZoomScale: 1}),
	},
	{
		ID: OpeningShot, Name: "Opening Shot", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatAimAssist: 20, model.StatRange: 25}).
			Enhanced(StatBuffs{model.StatAimAssist: 25, model.StatRange: 30}),
		Range: When(NoShotsFired, Stack(rangeAdd(25)).Enhanced(rangeAdd(30))),
	},
	{
		ID: Outlaw, Name: "Outlaw", Option: Toggle(),
		Reload:    When(Within(6, 7), Const(reload(70, 0.9))),
		StatBuffs: Stack(StatBuffs{model.StatReload: 70}),
	},
	{
		ID: OverFlow, Name: "Overflow", Option: Toggle(),
		Magazine: When(NoShotsFired, Stack(magScale(2)).Enhanced(magScale(2.2))),
	},
	{
		ID: PerpetualMotion, Name: "Perpetual Motion", Option: Stacks(2),
		StatBuffs: Stack(
			StatBuffs{model.StatReload: 10, model.StatHandling: 10, model.StatStability: 10},
			StatBuffs{model.StatReload: 20, model.StatHandling: 20, model.StatStability: 20},
		),
		Handling: Stack(handling(10), handling(20)),
		Reload:   Stack(reload(10, 1), reload(20, 1)),
	},
	{
		ID: PerfectFloat, Name: "Perfect Float", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatAirborne: 30}),
		Flinch:    Stack(flinch(0.65)),
	},
	{
		ID: Pugilist, Name: "Pugilist", Option: Toggle(),
		Handling:  Stack(handling(35)),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 35}),
	},
	{
		ID: QuickDraw, Name: "Quickdraw",
		Handling:  Const(HandlingModifier{StatAdd: 100, DrawScale: 0.95, StowScale: 1, ADSScale: 1}),
		StatBuffs: Const(StatBuffs{model.StatHandling: 100}),
	},
	{
		ID: Rampage, Name: "Rampage", Option: Stacks(3),
		Damage: When(Within(4, 5), Stack(dmg(1.1), dmg(1.21), dmg(1.331))),
	},
	{
		ID: RangeFinder, Name: "Rangefinder",
		Range: Const(RangeModifier{AllScale: 1, HipScale: 1, ZoomScale: 1.1}),
	},
	{
		ID: RapidHit, Name: "Rapid Hit", Option: Stacks(5),
		Reload:    Custom(func(in Input) ReloadModifier { return rapidHitReload[rapidHitIndex(in)] }),
		StatBuffs: Custom(rapidHitStats),
	},
	{
		ID: Reconstruction, Name: "Reconstruction", Option: Toggle(),
		Magazine: Stack(magScale(2)),
	},
	{
		ID: SlideShot, Name: "Slideshot", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatStability: 30, model.StatRange: 20}).
			Enhanced(StatBuffs{model.StatStability: 35, model.StatRange: 25}),
		Range: When(Not(WeaponIs(model.WeaponFusionRifle)), Stack(rangeAdd(20)).Enhanced(rangeAdd(25))),
	},
	{
		ID: SlideWays, Name: "Slideways", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatStability: 20, model.StatHandling: 20}).
			Enhanced(StatBuffs{model.StatStability: 25, model.StatHandling: 25}),
		Handling: Stack(handling(20)).Enhanced(handling(25)),
	},
	{
		ID: Slickdraw, Name: "Slickdraw",
		Handling:  Const(swap(100, 0.9)),
		StatBuffs: Const(StatBuffs{model.StatHandling: 100}),
	},
	{
		ID: Snapshot, Name: "Snapshot Sights",
		Handling: Custom(func(in Input) HandlingModifier {
			if in.Calc.AmmoType == model.AmmoSpecial {
				return ads(0.8)
			}
			return ads(0.5)
		}),
	},
	{
		ID: StatsForAll, Name: "Stats for All", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{
			model.StatStability: 10, model.StatRange: 10, model.StatReload: 35, model.StatHandling: 35,
		}),
		Handling: When(Within(10, 11), Const(handling(35))),
		Range:    Stack(RangeModifier{StatAdd: 10, AllScale: 1.05, HipScale: 1, ZoomScale: 1}),
		Reload:   When(Within(10, 11), Const(reload(35, 0.95))),
	},
	{
		ID: SteadyHands, Name: "Steady Hands", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 100}),
		Handling:  When(Within(8.5, 9), Const(swap(100, 0.825))),
	},
	{
		ID: Surplus, Name: "Surplus", Option: Stacks(3),
		StatBuffs: Stack(
			StatBuffs{model.StatHandling: 10, model.StatReload: 5, model.StatStability: 5},
			StatBuffs{model.StatHandling: 25, model.StatReload: 25, model.StatStability: 15},
			StatBuffs{model.StatHandling: 50, model.StatReload: 50, model.StatStability: 25},
		),
		Handling: Stack(handling(10), handling(25), handling(50)),
		Reload:   Stack(reload(5, 1), reload(25, 1), reload(50, 1)),
	},
	{
		ID: Surrounded, Name: "Surrounded", Option: Toggle(),
		Damage: When(Active, Custom(func(in Input) DamageModifier {
			s := 1.4
			if in.Calc.WeaponType == model.WeaponSword {
				s = 1.35
			}
			if in.Enhanced {
				s *= 1.05
			}
			return dmg(s)
		})),
	},
	{
		ID: Swashbuckler, Name: "Swashbuckler", Option: Stacks(5),
		Damage: When(Within(4.5, 6), Stack(dmg(1.067), dmg(1.134), dmg(1.201), dmg(1.268), dmg(1.335))),
	},
	{
		ID: TapTheTrigger, Name: "Tap the Trigger", Option: Toggle(),
		StatBuffs: When(Active, Custom(func(in Input) StatBuffs {
			s := 40
			if in.Enhanced {
				s = 44
			}
			if in.Calc.WeaponType == model.WeaponFusionRifle {
				s /= 4
			}
			return StatBuffs{model.StatStability: s}
		})),
	},
	{
		ID: TargetLock, Name: "Target Lock",
		Damage: Custom(targetLock),
	},
	{
		ID: ThreatDetector, Name: "Threat Detector", Option: Stacks(2),
		StatBuffs: Stack(
			StatBuffs{model.StatStability: 15, model.StatReload: 15},
			StatBuffs{model.StatStability: 40, model.StatReload: 55},
		),
		Reload: Stack(reload(15, 1), reload(55, 1)),
		Handling: Stack(
			HandlingModifier{DrawScale: 0.75, StowScale: 0.75, ADSScale: 0.75},
			HandlingModifier{DrawScale: 0.5625, StowScale: 0.5625, ADSScale: 0.5625},
		),
	},
	{
		ID: TimedPayload, Name: "Timed Payload",
		Damage:    When(PvE, Const(explosive(1.3))),
		Explosive: Const(ExplosivePercent{Percent: 0.5, Delayed: 0.6, RetainBaseTotal: true}),
	},
	{
		ID: TripleTap, Name: "Triple Tap",
		Refund: Const(Refund{Crit: true, Requirement: 3, RefundMag: 1}),
	},
	{
		ID: Vorpal, Name: "Vorpal Weapon",
		Damage: When(EnemyIs(model.EnemyBoss, model.EnemyMiniboss, model.EnemyChampion, model.EnemyVehicle),
			Custom(func(in Input) DamageModifier {
				switch in.Calc.AmmoType {
				case model.AmmoPrimary:
					return dmg(1.2)
				case model.AmmoSpecial:
					return dmg(1.15)
				case model.AmmoHeavy:
					return dmg(1.1)
				}
				return NeutralDamage()
			})),
	},
	{
		ID: WellRounded, Name: "Well-Rounded", Option: Stacks(2),
		StatBuffs: Custom(func(in Input) StatBuffs {
			v := wellRounded(in)
			return StatBuffs{model.StatStability: v, model.StatRange: v, model.StatHandling: v}
		}),
		Handling: Custom(func(in Input) HandlingModifier { return handling(wellRounded(in)) }),
		Range:    Custom(func(in Input) RangeModifier { return rangeAdd(wellRounded(in)) }),
	},
}

func frenzyActive(in Input) bool {
	return in.Value > 0 || in.Calc.TimeTotal > 12
}

func fieldPrepInventory(in Input) int {
	inv := 30
	if in.Enhanced {
		inv = 40
	}
	if in.Calc.WeaponType == model.WeaponGrenadeLauncher {
		inv -= 10
	}
	return inv
}

func firmlyPlanted(in Input, base, enhanced int) int {
	v := base
	if in.Enhanced {
		v = enhanced
	}
	if in.Calc.WeaponType == model.WeaponFusionRifle {
		v /= 2
	}
	return v
}

func wellRounded(in Input) int {
	per := 10
	if in.Enhanced {
		per = 12
	}
	return per * int(clampU(in.Value, 0, 2))
}

var rapidHitReload = [...]ReloadModifier{
	reload(0, 1), reload(5, 0.99), reload(30, 0.97), reload(35, 0.96), reload(45, 0.94), reload(60, 0.93),
}

var rapidHitStability = [...]int{0, 2, 12, 14, 18, 25}

// rapidHitIndex counts stacks already held plus shots landed this magazine.
func rapidHitIndex(in Input) int {
	n := float64(in.Value) + in.Calc.ShotsFiredThisMag
	return int(clampF(n, 0, 5))
}

func rapidHitStats(in Input) StatBuffs {
	i := rapidHitIndex(in)
	return StatBuffs{
		model.StatReload:    rapidHitReload[i].StatAdd,
		model.StatStability: rapidHitStability[i],
	}
}
