package synth

import (
	"math"

	"github.com/lixenwraith/revsynth/constant"
	"github.com/lixenwraith/revsynth/graph"
)

// SquealVoiceState is the tire squeal's target parameters for one tick.
type SquealVoiceState struct {
	Freq float64
	Gain float64
}

// squealVoice is a single triangle oscillator, always running once the
// synthesizer starts and silenced through its gain, never stopped, to
// avoid restart clicks.
type squealVoice struct {
	osc   *graph.Oscillator
	gain  *graph.Gain
	state SquealVoiceState
}

func (v *squealVoice) allocate(b graph.Backend) {
	v.osc = b.NewOscillator(graph.WaveTriangle, constant.SquealBaseFreq)
	v.gain = b.NewGain(0, v.osc)
	b.Connect(v.gain)
	v.state = SquealVoiceState{Freq: constant.SquealBaseFreq}
}

func (v *squealVoice) start() {
	v.osc.Start()
}

func (v *squealVoice) stop() {
	v.osc.Stop()
}

// update maps slip/speed to squeal targets. The wobble term reads the
// host clock, not the tick count, so the tremolo rate is independent of
// frame rate. When inactive the gain fades and the frequency is left at
// its last value: the squeal fades out instead of sweeping home.
func (v *squealVoice) update(tireSlip, speed, now float64) SquealVoiceState {
	active := tireSlip > constant.SquealSlipThreshold &&
		math.Abs(speed) > constant.SquealSpeedThreshold

	if !active {
		v.gain.Ramp(0, constant.SquealReleaseTau)
		v.state.Gain = 0
		return v.state
	}

	wobble := math.Sin(now*constant.SquealWobbleRate) * constant.SquealWobbleDepth
	freq := constant.SquealBaseFreq + wobble + speed*constant.SquealSpeedFactor
	gain := math.Min(constant.SquealGainMax,
		(tireSlip-constant.SquealSlipThreshold)*constant.SquealGainSlope)

	v.osc.RampFreq(freq, constant.SquealFreqTau)
	v.gain.Ramp(gain, constant.SquealAttackTau)

	v.state = SquealVoiceState{Freq: freq, Gain: gain}
	return v.state
}
