package graph

import (
	"math"
	"math/rand"
	"sync"
)

// Oscillator is a continuous waveform generator with a rampable frequency.
// A stopped oscillator outputs silence but keeps its phase and frequency,
// so restarting does not snap.
type Oscillator struct {
	mu      *sync.Mutex
	wave    WaveType
	freq    *Param
	phase   float64
	rate    float64
	running bool
}

// RampFreq ramps the frequency toward hz with time constant tau seconds.
func (o *Oscillator) RampFreq(hz, tau float64) {
	o.mu.Lock()
	o.freq.SetTarget(hz, tau)
	o.mu.Unlock()
}

// SetFreq jumps the frequency immediately.
func (o *Oscillator) SetFreq(hz float64) {
	o.mu.Lock()
	o.freq.Set(hz)
	o.mu.Unlock()
}

// FreqTarget returns the frequency the oscillator is ramping toward.
func (o *Oscillator) FreqTarget() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.freq.Target()
}

// Start begins sample generation. Idempotent.
func (o *Oscillator) Start() {
	o.mu.Lock()
	o.running = true
	o.mu.Unlock()
}

// Stop halts sample generation without resetting phase or frequency.
func (o *Oscillator) Stop() {
	o.mu.Lock()
	o.running = false
	o.mu.Unlock()
}

// Running reports whether the oscillator is generating samples.
func (o *Oscillator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

// sample is called with the backend lock held.
func (o *Oscillator) sample() float64 {
	if !o.running {
		return 0
	}

	var val float64
	switch o.wave {
	case WaveSine:
		val = math.Sin(2 * math.Pi * o.phase)
	case WaveSquare:
		if o.phase < 0.5 {
			val = 1.0
		} else {
			val = -1.0
		}
	case WaveSaw:
		val = 2.0 * (o.phase - 0.5)
	case WaveTriangle:
		val = 4.0*math.Abs(o.phase-0.5) - 1.0
	case WaveNoise:
		val = rand.Float64()*2 - 1
	}

	o.phase += o.freq.step() / o.rate
	o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
	return val
}

// Gain mixes its input nodes through a rampable level.
type Gain struct {
	mu     *sync.Mutex
	level  *Param
	inputs []Node
}

// Ramp moves the gain toward target with time constant tau seconds.
func (g *Gain) Ramp(target, tau float64) {
	g.mu.Lock()
	g.level.SetTarget(target, tau)
	g.mu.Unlock()
}

// Set jumps the gain immediately.
func (g *Gain) Set(v float64) {
	g.mu.Lock()
	g.level.Set(v)
	g.mu.Unlock()
}

// Target returns the level the gain is ramping toward.
func (g *Gain) Target() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.level.Target()
}

// Level returns the current (mid-ramp) level.
func (g *Gain) Level() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.level.Value()
}

func (g *Gain) sample() float64 {
	var sum float64
	for _, in := range g.inputs {
		sum += in.sample()
	}
	return sum * g.level.step()
}
