package perk

// Perk identifiers are manifest hashes where one exists. Traits that have
// no stable manifest hash, plus the aggregated buff pickers, use ids from
// the reserved blocks below; deployments alias real hashes onto them
// through the enhanced-perk map.
const (
	BuiltIn uint32 = 0

	// buff / debuff pickers
	EmpowermentBuffs uint32 = 222
	WeakenDebuffs    uint32 = 333
	SurgeMod         uint32 = 444

	// weapon traits
	Adagio              uint32 = 3673922083
	AdrenalineJunkie    uint32 = 11612903
	BackupPlan          uint32 = 1600092898
	BoxBreathing        uint32 = 2551157718
	CascadePoint        uint32 = 3751912585
	Cornered            uint32 = 1799762209
	Desperado           uint32 = 3047969693
	Encore              uint32 = 1195158366
	Ensemble            uint32 = 2621346526
	ExplosiveHead       uint32 = 3365897133
	ExplosiveLight      uint32 = 3194351027
	ExplosivePayload    uint32 = 3038247973
	FeedingFrenzy       uint32 = 2779035018
	FieldPrep           uint32 = 2869569095
	FiringLine          uint32 = 1771339417
	FirmlyPlanted       uint32 = 280464955
	FocusedFury         uint32 = 2896038713
	FourthTimesTheCharm uint32 = 1354429876
	FragileFocus        uint32 = 2451262963
	Frenzy              uint32 = 4104185692
	GutShot             uint32 = 1365187766
	Harmony             uint32 = 438098033
	HighImpactReserves  uint32 = 2213355989
	HipFireGrip         uint32 = 1866048759
	ImpactCasing        uint32 = 3796465595
	ImpulseAmplifier    uint32 = 951095735
	KillClip            uint32 = 1015611457
	KillingWind         uint32 = 2450788523
	LastingImpression   uint32 = 3927722942
	MovingTarget        uint32 = 588594999
	MultikillClip       uint32 = 2458213969
	OffhandStrike       uint32 = 2416023159
	OpeningShot         uint32 = 47981717
	Outlaw              uint32 = 1168162263
	PerfectFloat        uint32 = 2272927194
	PerpetualMotion     uint32 = 1428297954
	Pugilist            uint32 = 691659142
	QuickDraw           uint32 = 706527188
	Rampage             uint32 = 3425386926
	RapidHit            uint32 = 247725512
	SlideShot           uint32 = 3161816588
	SlideWays           uint32 = 2039302152
	Slickdraw           uint32 = 1821614984
	Snapshot            uint32 = 957782887
	StatsForAll         uint32 = 1583705720
	SteadyHands         uint32 = 509074078
	Surplus             uint32 = 3436462433
	Surrounded          uint32 = 3708227201
	Swashbuckler        uint32 = 4082225868
	TapTheTrigger       uint32 = 1890422124
	TargetLock          uint32 = 365154968
	ThreatDetector      uint32 = 4071163871
	TimedPayload        uint32 = 1954620775
	TripleTap           uint32 = 3400784728
	Vorpal              uint32 = 1546637391
	WellRounded         uint32 = 744594675

	// origin traits
	Ambush       uint32 = 192157151
	HakkeBreach  uint32 = 1607056502
	VeistStinger uint32 = 3988215619

	// intrinsics and catalysts with manifest hashes
	DragonShadow   uint32 = 593361144
	FlowState      uint32 = 4194622036
	Frequency      uint32 = 1727069361
	HeatRises      uint32 = 83039194
	Hedrons        uint32 = 3469412970
	OnYourMark     uint32 = 3066103999
	OphidianAspect uint32 = 1147638875
	Tempering      uint32 = 362132290

	// exotic perks
	AgersCall      uint32 = 970163821
	ParacausalShot uint32 = 213689231

	// weapon mods
	AlloyMag         uint32 = 1431678320
	BigOnesSpec      uint32 = 3018373291
	BossSpec         uint32 = 2788909693
	MajorSpec        uint32 = 984527513
	MinorSpec        uint32 = 4091000557
	QuickAccessSling uint32 = 1334978104
	SwapMag          uint32 = 3721627275
	TakenSpec        uint32 = 1513326571

	// armor mods
	DexterityMod uint32 = 1111111111
	ReloadMod    uint32 = 2222222222
	ReserveMod   uint32 = 3333333333
	TargetingMod uint32 = 3333333334
)

// Reserved block for traits without a stable manifest hash.
const (
	Alacrity uint32 = 4_100_000_001 + iota
	AmbitiousAssassin
	ArchersTempo
	ClownCartridge
	ClusterBomb
	Demolitionist
	DisruptionBreak
	ElementalCapacitor
	FluidDynamics
	FullCourt
	HotSwap
	KillingTally
	OverFlow
	RangeFinder
	Reconstruction
	Roadborn
	ChargetimeMW
	UnflinchingMod
	RallyBarricade
	MementoMori
	KeepAway
	FieldTested
)
