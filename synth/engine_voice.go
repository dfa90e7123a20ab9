package synth

import (
	"github.com/lixenwraith/revsynth/constant"
	"github.com/lixenwraith/revsynth/graph"
)

// EngineVoiceState is the engine drone's target parameters for one tick.
type EngineVoiceState struct {
	Osc1Freq float64
	Osc2Freq float64
	Gain     float64
}

// engineVoice is two detuned continuous oscillators behind one gain stage:
// a saw at the fundamental and a square at 1.5x, beating against each
// other for the two-stroke growl.
type engineVoice struct {
	osc1  *graph.Oscillator
	osc2  *graph.Oscillator
	gain  *graph.Gain
	state EngineVoiceState
}

func (v *engineVoice) allocate(b graph.Backend) {
	base := constant.EngineFreqFloor
	v.osc1 = b.NewOscillator(graph.WaveSaw, base)
	v.osc2 = b.NewOscillator(graph.WaveSquare, base*constant.EngineHarmonicRatio)
	v.gain = b.NewGain(0, v.osc1, v.osc2)
	b.Connect(v.gain)
	v.state = EngineVoiceState{
		Osc1Freq: base,
		Osc2Freq: base * constant.EngineHarmonicRatio,
	}
}

func (v *engineVoice) start() {
	v.osc1.Start()
	v.osc2.Start()
}

func (v *engineVoice) stop() {
	v.osc1.Stop()
	v.osc2.Stop()
}

// update maps rpm/load to oscillator targets. Below the stall threshold
// only the gain is ramped down; frequencies are left alone so a restart
// does not snap. Gain is deliberately unclamped: rpm far past 7000 or
// load past 1 exceeds nominal headroom.
func (v *engineVoice) update(rpm, load, now float64) EngineVoiceState {
	_ = now

	if rpm < constant.EngineStallRPM {
		v.gain.Ramp(0, constant.EngineStallTau)
		v.state.Gain = 0
		return v.state
	}

	base := constant.EngineFreqFloor + rpm/constant.EngineRPMPerHz
	gain := constant.EngineGainFloor +
		(rpm/constant.EngineGainRPMRange)*constant.EngineGainRPMScale +
		load*constant.EngineGainLoadScale

	v.osc1.RampFreq(base, constant.EngineRampTau)
	v.osc2.RampFreq(base*constant.EngineHarmonicRatio, constant.EngineRampTau)
	v.gain.Ramp(gain, constant.EngineRampTau)

	v.state = EngineVoiceState{
		Osc1Freq: base,
		Osc2Freq: base * constant.EngineHarmonicRatio,
		Gain:     gain,
	}
	return v.state
}
