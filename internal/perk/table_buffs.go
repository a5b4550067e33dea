package perk

func init() {
	Register(
		&Entry{
			ID: EmpowermentBuffs, Name: "Empowering Buffs", Category: CategoryBuff, Group: GroupEmpowering,
			Option: Choice("Well of Radiance", "Noble Rounds", "Radiant", "Banner Shield",
				"Empowering Rift", "Gyrfalcon's Hauberk", "Aeon Soul"),
			Damage: Stack(dmg(1.25), dmg(1.35), dmg(1.25), dmg(1.4), dmg(1.2), dmg(1.35), dmg(1.35)).
				PvP(dmg(1.25), dmg(1.15), dmg(1.1), dmg(1.35), dmg(1.15), dmg(1), dmg(1)),
		},
		&Entry{
			ID: WeakenDebuffs, Name: "Debuffs", Category: CategoryBuff, Group: GroupDebuff,
			Option: Choice("Weaken", "Tractor Cannon", "Moebius Quiver", "Deadfall", "Felwinter's Helm"),
			Damage: Stack(dmg(1.15), dmg(1.3), dmg(1.3), dmg(1.3), dmg(1.3)).
				PvP(dmg(1.075), dmg(1.5), dmg(1.5), dmg(1.5), dmg(1.3)),
		},
	)
}
