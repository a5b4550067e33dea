package perk

import "github.com/udisondev/d2go/internal/model"

func init() {
	for _, e := range weaponMods {
		e.Category = CategoryWeaponMod
	}
	for _, e := range armorMods {
		e.Category = CategoryArmorMod
	}
	Register(weaponMods...)
	Register(armorMods...)
}

var weaponMods = []*Entry{
	{
		ID: AlloyMag, Name: "Alloy Magazine",
		Reload: Const(reload(0, 0.85)),
	},
	{
		ID: BigOnesSpec, Name: "Spec for the Big Ones",
		Damage: specDamage(model.EnemyElite, model.EnemyMiniboss, model.EnemyChampion, model.EnemyBoss, model.EnemyVehicle),
	},
	{
		ID: BossSpec, Name: "Boss Spec",
		Damage: specDamage(model.EnemyBoss, model.EnemyVehicle),
	},
	{
		ID: ChargetimeMW, Name: "Charge Time Masterwork",
		Firing: Custom(chargetimeMW),
	},
	{
		ID: MajorSpec, Name: "Major Spec",
		Damage: specDamage(model.EnemyElite, model.EnemyMiniboss, model.EnemyChampion),
	},
	{
		ID: MinorSpec, Name: "Minor Spec",
		Damage: specDamage(model.EnemyMinor),
	},
	{
		ID: QuickAccessSling, Name: "Quick Access Sling", Option: Toggle(),
		Handling: Stack(swap(0, 0.9)),
	},
	{
		ID: SwapMag, Name: "Swap Mag",
		Handling: Const(swap(0, 0.9)),
	},
	{
		ID: TakenSpec, Name: "Taken Spec", Option: Toggle(),
		Damage: When(PvE, Stack(dmg(1.1))),
	},
}

var armorMods = []*Entry{
	{
		ID: DexterityMod, Name: "Dexterity", Option: Stacks(3),
		Handling: Stack(swap(0, 0.8), swap(0, 0.75), swap(0, 0.7)),
	},
	{
		ID: RallyBarricade, Name: "Rally Barricade", Option: Toggle(),
		StatBuffs: Stack(StatBuffs{model.StatStability: 30, model.StatReload: 100}),
		Reload:    Stack(reload(100, 0.9)),
		Flinch:    Stack(flinch(0.5)),
		Range:     Stack(RangeModifier{AllScale: 1.1, HipScale: 1, ZoomScale: 1}),
	},
	{
		ID: ReloadMod, Name: "Loader", Option: Stacks(3),
		Reload:    Stack(reload(10, 0.85), reload(15, 0.85), reload(20, 0.85)),
		StatBuffs: Stack(StatBuffs{model.StatReload: 10}, StatBuffs{model.StatReload: 15}, StatBuffs{model.StatReload: 20}),
	},
	{
		ID: ReserveMod, Name: "Reserves", Option: Stacks(3),
		Reserve: Stack(
			ReserveModifier{StatAdd: 20, Scale: 1},
			ReserveModifier{StatAdd: 35, Scale: 1},
			ReserveModifier{StatAdd: 40, Scale: 1},
		),
		StatBuffs: Stack(
			StatBuffs{model.StatInventorySize: 20},
			StatBuffs{model.StatInventorySize: 35},
			StatBuffs{model.StatInventorySize: 40},
		),
	},
	{
		ID: TargetingMod, Name: "Targeting", Option: Stacks(3),
		Handling: Stack(ads(0.75)),
		StatBuffs: Stack(
			StatBuffs{model.StatAimAssist: 10},
			StatBuffs{model.StatAimAssist: 15},
			StatBuffs{model.StatAimAssist: 20},
		),
	},
	{
		ID: UnflinchingMod, Name: "Unflinching", Option: Stacks(3),
		Flinch: Stack(flinch(0.75), flinch(0.7), flinch(0.6)),
	},
	{
		ID: SurgeMod, Name: "Surge", Option: Stacks(4), Group: GroupSurge,
		Damage: Stack(dmg(1.1), dmg(1.17), dmg(1.22), dmg(1.25)).
			PvP(dmg(1.03), dmg(1.045), dmg(1.055), dmg(1.06)),
	},
}
