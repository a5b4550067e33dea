package perk

import "github.com/udisondev/d2go/internal/model"

func init() {
	for _, e := range exoticPerks {
		if e.Category == CategoryTrait {
			e.Category = CategoryExotic
		}
	}
	Register(exoticPerks...)
}

var exoticPerks = []*Entry{
	{
		ID: BuiltIn, Name: "Built-in", Category: CategoryIntrinsic,
		Damage:    Custom(builtInDamage),
		Explosive: Custom(builtInExplosive),
	},
	{
		ID: AgersCall, Name: "Ager's Call", Option: Toggle(),
		Damage:   When(All(Active, NoReloads), Const(dmg(1.8))),
		Magazine: When(All(Active, NoReloads), Const(magScale(2))),
	},
	{
		ID: DragonShadow, Name: "Dragon's Shadow", Option: Toggle(),
		Handling:  Stack(swap(100, 0.95)),
		Reload:    Stack(reload(100, 1)),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 100, model.StatReload: 100}),
	},
	{
		ID: FlowState, Name: "Flow State", Option: Toggle(),
		Reload:    Stack(reload(55, 0.87)),
		StatBuffs: Stack(StatBuffs{model.StatReload: 55}),
	},
	{
		ID: Frequency, Name: "Frequency", Option: Toggle(),
		Reload:    Stack(reload(100, 0.8)),
		StatBuffs: Stack(StatBuffs{model.StatReload: 100}),
	},
	{
		ID: HeatRises, Name: "Heat Rises", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatAirborne: 70}),
	},
	{
		ID: Hedrons, Name: "Hedrons", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatAirborne: 20, model.StatAimAssist: 15, model.StatStability: 30}),
	},
	{
		ID: MementoMori, Name: "Memento Mori", Option: Toggle(),
		Damage: When(All(Active, func(in Input) bool { return in.Calc.TotalShotsHit < 7 }),
			Const(dmg(1.285)).PvP(dmg(1.5))),
	},
	{
		ID: OnYourMark, Name: "On Your Mark", Option: Stacks(3),
		Handling: Stack(handling(20), handling(40), handling(60)),
		Reload:   Stack(reload(20, 0.93), reload(40, 0.93), reload(60, 0.93)),
		StatBuffs: Stack(
			StatBuffs{model.StatHandling: 20, model.StatReload: 20},
			StatBuffs{model.StatHandling: 40, model.StatReload: 40},
			StatBuffs{model.StatHandling: 60, model.StatReload: 60},
		),
	},
	{
		ID: OphidianAspect, Name: "Ophidian Aspect",
		Handling:  Const(handling(35)),
		Reload:    Const(reload(35, 1)),
		StatBuffs: Const(StatBuffs{model.StatHandling: 35, model.StatReload: 35, model.StatAirborne: 10}),
	},
	{
		ID: ParacausalShot, Name: "Paracausal Shot", Option: Stacks(7),
		Damage: Custom(paracausalShot),
	},
	{
		ID: Roadborn, Name: "Roadborn", Option: Toggle(),
		Damage: Stack(crit(1.17)),
		Firing: Stack(delay(0.583)),
		Range: Custom(func(in Input) RangeModifier {
			if in.Value > 0 {
				return RangeModifier{AllScale: 1.15, HipScale: 1, ZoomScale: 1}
			}
			return RangeModifier{AllScale: 1.05, HipScale: 1, ZoomScale: 1}
		}),
		Handling:  Stack(handling(20)),
		Reload:    Stack(reload(40, 1)),
		StatBuffs: Stack(StatBuffs{model.StatHandling: 20, model.StatReload: 40}),
	},
	{
		ID: Tempering, Name: "Tempering", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatAirborne: 20}),
	},
}
