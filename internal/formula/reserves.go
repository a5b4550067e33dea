package formula

import "math"

// ReserveFamily selects the reserve curve for weapons without an explicit
// reserve table. Values are the ammo formula's reserve id.
type ReserveFamily uint32

const (
	ReservePrimary          ReserveFamily = 0
	ReserveShotgun          ReserveFamily = 71
	ReserveSmallMachineGun  ReserveFamily = 81
	ReserveLargeMachineGun  ReserveFamily = 82
	ReserveRocket           ReserveFamily = 101
	ReserveFusion           ReserveFamily = 111
	ReserveSniper           ReserveFamily = 121
	ReserveLinearFusion     ReserveFamily = 221
	ReserveLargeGrenade     ReserveFamily = 231
	ReserveSpecialGrenade   ReserveFamily = 232
	ReserveSmallGrenade     ReserveFamily = 233
	ReserveTraceRifle       ReserveFamily = 251
	ReserveGlaive           ReserveFamily = 331
	ReserveLordOfWolves     ReserveFamily = 481338655
	ReserveLeviathansBreath ReserveFamily = 1699724249
	ReserveXenophage        ReserveFamily = 2261491232
	ReserveOverture         ReserveFamily = 2940035732
	ReserveForerunner       ReserveFamily = 2984682260
	ReserveErianasVow       ReserveFamily = 3174300811
)

// Raw returns the unscaled reserve count. mag is the raw (fractional)
// magazine value. Unknown families behave as primary (effectively infinite).
func (f ReserveFamily) Raw(mag float64, magStat, invStat int) float64 {
	inv := float64(invStat)
	switch f {
	case ReserveSmallMachineGun:
		rounding := math.Ceil(mag) - mag
		offset := (-0.875 + rounding*2) * (2 - (100-float64(magStat))/100)
		base := 225 + offset
		return base + inv*base/100
	case ReserveTraceRifle:
		return mag * (inv*0.025 + 3.5)
	case ReserveGlaive:
		if magStat >= 100 {
			return 0.1681*inv + 13.44
		}
		return 0.1792*inv + 14.44
	case ReserveSniper:
		if magStat >= 100 {
			return 0.14*inv + 14
		}
		return 0.12*inv + 12
	case ReserveShotgun:
		var offset float64
		switch int(math.Ceil(mag)) {
		case 7:
			offset = 4
		case 6:
			offset = 9
		case 5:
			offset = 17
		case 4:
			offset = 30
		}
		return (offset/15 + 12) * (1 + (2.0/3.0)/100*inv)
	case ReserveForerunner:
		return inv*0.325 + 53.45
	case ReserveOverture:
		return 0.005*inv*inv - 0.4*inv + 67.375
	case ReserveXenophage:
		return 0.01*inv*inv + 0.56*inv + 25.91
	case ReserveErianasVow:
		return -0.00126*inv*inv + 0.225*inv + 29.5
	case ReserveRocket:
		return inv*0.05 + 4.5

	// fixed sizes until curves are measured
	case ReserveLeviathansBreath:
		return 8
	case ReserveFusion, ReserveSpecialGrenade, ReserveLinearFusion:
		return 21
	case ReserveSmallGrenade:
		return 18
	case ReserveLargeGrenade:
		return 20
	case ReserveLargeMachineGun:
		return 400
	case ReserveLordOfWolves:
		return 120
	default:
		return 9999
	}
}
