package graph

import "math"

// BurstSpec describes a one-shot filtered noise burst: a supplied sample
// buffer played through an inline lowpass, rising instantly to Peak and
// decaying exponentially to DecayFloor over DecayTime, with the source cut
// at CutTime. Delay schedules the start sample-accurately in the future.
type BurstSpec struct {
	Delay      float64 // seconds from now until the burst starts
	CutoffHz   float64
	Q          float64
	Peak       float64
	DecayFloor float64
	DecayTime  float64 // seconds after start to reach DecayFloor
	CutTime    float64 // seconds after start when the source stops
}

// burstVoice is the render-side state of a scheduled burst.
type burstVoice struct {
	buf    []float64
	delay  int // samples of silence before the burst starts
	pos    int
	cut    int
	env    float64
	floor  float64
	decay  float64 // per-sample envelope multiplier
	filter biquad
	done   bool
}

func newBurstVoice(buf []float64, spec BurstSpec, sampleRate int) *burstVoice {
	rate := float64(sampleRate)

	cut := int(spec.CutTime * rate)
	if cut > len(buf) {
		cut = len(buf)
	}

	// Per-sample multiplier reaching DecayFloor/Peak in DecayTime seconds.
	decay := 1.0
	floor := spec.DecayFloor
	if spec.Peak > 0 && floor > 0 && floor < spec.Peak && spec.DecayTime > 0 {
		decay = math.Pow(floor/spec.Peak, 1/(spec.DecayTime*rate))
	}

	return &burstVoice{
		buf:    buf,
		delay:  int(spec.Delay * rate),
		cut:    cut,
		env:    spec.Peak,
		floor:  floor,
		decay:  decay,
		filter: newLowpass(sampleRate, spec.CutoffHz, spec.Q),
	}
}

func (b *burstVoice) sample() float64 {
	if b.done {
		return 0
	}
	if b.delay > 0 {
		b.delay--
		return 0
	}
	if b.pos >= b.cut {
		b.done = true
		return 0
	}

	out := b.filter.process(b.buf[b.pos]) * b.env
	b.pos++

	b.env *= b.decay
	if b.env < b.floor {
		b.env = b.floor
	}
	return out
}
