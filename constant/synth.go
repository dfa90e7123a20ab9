package constant

// Engine Voice Mapping
// baseFreq = EngineFreqFloor + rpm/EngineRPMPerHz, second oscillator runs
// at EngineHarmonicRatio times the fundamental.
const (
	EngineStallRPM      = 50.0
	EngineFreqFloor     = 40.0
	EngineRPMPerHz      = 20.0
	EngineHarmonicRatio = 1.5

	EngineGainFloor     = 0.05
	EngineGainRPMScale  = 0.1
	EngineGainRPMRange  = 7000.0
	EngineGainLoadScale = 0.1

	// Exponential-approach time constants, seconds
	EngineRampTau  = 0.1
	EngineStallTau = 0.05
)

// Tire Squeal
const (
	SquealSlipThreshold  = 0.2
	SquealSpeedThreshold = 5.0

	SquealBaseFreq    = 800.0
	SquealWobbleRate  = 20.0 // rad/s, ~3.2 Hz tremolo
	SquealWobbleDepth = 50.0
	SquealSpeedFactor = 2.0

	SquealGainSlope = 0.5
	SquealGainMax   = 0.3

	SquealAttackTau  = 0.05
	SquealReleaseTau = 0.1
	SquealFreqTau    = 0.1
)

// Backfire Trigger
const (
	BackfireHighLoad = 0.6
	BackfireLowLoad  = 0.1
	BackfireMinRPM   = 3500.0

	BackfireCooldown = 0.4 // seconds

	BackfireChanceRPMFloor = 3000.0
	BackfireChanceRPMSpan  = 4000.0
	BackfireChanceMax      = 0.8

	BackfireDoublePopChance = 0.2
)

// Backfire Burst Sound Design
const (
	BackfirePopSpacing       = 0.08 // seconds between pops
	BackfirePopSpacingJitter = 0.05

	BackfireCutoffFloor  = 400.0 // Hz, lowpass for the dull thump
	BackfireCutoffJitter = 300.0
	BackfireFilterQ      = 1.0

	BackfirePeakFloor  = 0.5
	BackfirePeakJitter = 0.5

	BackfireDecayTime  = 0.1 // exp decay to the floor by this offset
	BackfireDecayFloor = 0.001
	BackfireCutTime    = 0.15 // source is cut here
)
