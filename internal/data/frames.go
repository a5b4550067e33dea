package data

// Intrinsic frame ids used as the second half of a weapon Path.
const (
	FrameHighImpact  uint32 = 901
	FrameRapidFire   uint32 = 902
	FrameAdaptive    uint32 = 903
	FrameAggressive  uint32 = 904
	FrameLightweight uint32 = 905
	FramePrecision   uint32 = 906
)
