package perk

func dmg(scale float64) DamageModifier {
	return DamageModifier{ImpactScale: scale, ExplosiveScale: scale, CritScale: 1}
}

func explosive(scale float64) DamageModifier {
	return DamageModifier{ImpactScale: 1, ExplosiveScale: scale, CritScale: 1}
}

func crit(scale float64) DamageModifier {
	return DamageModifier{ImpactScale: 1, ExplosiveScale: 1, CritScale: scale}
}

func delay(scale float64) FiringModifier {
	return FiringModifier{BurstDelayScale: scale, InnerBurstScale: 1}
}

func handling(add int) HandlingModifier {
	return HandlingModifier{StatAdd: add, DrawScale: 1, StowScale: 1, ADSScale: 1}
}

func swap(add int, scale float64) HandlingModifier {
	return HandlingModifier{StatAdd: add, DrawScale: scale, StowScale: scale, ADSScale: 1}
}

func ads(scale float64) HandlingModifier {
	return HandlingModifier{DrawScale: 1, StowScale: 1, ADSScale: scale}
}

func rangeAdd(add int) RangeModifier {
	return RangeModifier{StatAdd: add, AllScale: 1, HipScale: 1, ZoomScale: 1}
}

func reload(add int, scale float64) ReloadModifier {
	return ReloadModifier{StatAdd: add, TimeScale: scale}
}

func magScale(scale float64) MagazineModifier {
	return MagazineModifier{Scale: scale}
}

func flinch(scale float64) FlinchModifier {
	return FlinchModifier{Scale: scale}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
