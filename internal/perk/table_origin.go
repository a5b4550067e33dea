package perk

import "github.com/udisondev/d2go/internal/model"

func init() {
	for _, e := range originTraits {
		e.Category = CategoryOrigin
	}
	Register(originTraits...)
}

var originTraits = []*Entry{
	{
		ID: Alacrity, Name: "Alacrity", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{
			model.StatRange: 20, model.StatReload: 50, model.StatStability: 20, model.StatAimAssist: 10,
		}),
		Range:  Stack(rangeAdd(20)),
		Reload: Stack(reload(50, 1)),
	},
	{
		ID: Ambush, Name: "Ambush", Option: Toggle(),
		Damage: When(All(PvE, Within(2, 2)), Custom(func(in Input) DamageModifier {
			if in.Calc.WeaponType == model.WeaponLinearFusionRifle {
				return dmg(1.0888)
			}
			return dmg(1.1078)
		})),
		Firing:    When(All(Within(2, 2), WeaponIs(model.WeaponBow)), Const(delay(0.9))),
		Range:     When(Within(2, 2), Const(rangeAdd(20)).Enhanced(rangeAdd(30))),
		Handling:  When(Within(2, 2), Const(handling(20)).Enhanced(handling(40))),
		StatBuffs: When(Within(2, 2), Const(StatBuffs{model.StatRange: 20, model.StatHandling: 20})),
	},
	{
		ID: FluidDynamics, Name: "Fluid Dynamics", Option: Toggle(),
		StatBuffs: When(All(Active, fluidDynamicsActive), Const(StatBuffs{model.StatReload: 30, model.StatStability: 20}).
			Enhanced(StatBuffs{model.StatReload: 35, model.StatStability: 25})),
		Reload: When(All(Active, fluidDynamicsActive), Const(reload(30, 1)).Enhanced(reload(35, 1))),
	},
	{
		ID: HakkeBreach, Name: "Hakke Breach Armaments", Option: Toggle(),
		Damage: Stack(dmg(1.3)),
	},
	{
		ID: HotSwap, Name: "Hot Swap", Option: Toggle(),
		Handling:  Stack(handling(30)).Enhanced(handling(60)),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 30}).Enhanced(StatBuffs{model.StatHandling: 60}),
	},
	{
		ID: VeistStinger, Name: "Veist Stinger", Option: Toggle(),
		Refund: Custom(veistStinger),
		Firing: When(All(Active, WeaponIs(model.WeaponBow)), Const(delay(0.85))),
	},
}

func fluidDynamicsActive(in Input) bool {
	return in.Calc.ShotsFiredThisMag <= in.Calc.BaseMag/2
}
