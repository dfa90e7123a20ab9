package graph

import "math"

// Param is an audio parameter that approaches its target with a first-order
// lag. Retargeting never jumps the current value, so frequency and gain
// changes stay click-free.
type Param struct {
	value  float64
	target float64
	coeff  float64 // per-sample approach fraction, 0 = frozen at value
	rate   float64
}

func newParam(value float64, sampleRate int) *Param {
	return &Param{
		value:  value,
		target: value,
		rate:   float64(sampleRate),
	}
}

// SetTarget starts an exponential approach toward target with time
// constant tau in seconds. tau <= 0 jumps immediately.
func (p *Param) SetTarget(target, tau float64) {
	p.target = target
	if tau <= 0 {
		p.value = target
		p.coeff = 0
		return
	}
	p.coeff = 1 - math.Exp(-1/(tau*p.rate))
}

// Set jumps the parameter to v and cancels any ramp in progress.
func (p *Param) Set(v float64) {
	p.value = v
	p.target = v
	p.coeff = 0
}

// Value returns the current (mid-ramp) value.
func (p *Param) Value() float64 { return p.value }

// Target returns the value the parameter is approaching.
func (p *Param) Target() float64 { return p.target }

// step advances one sample and returns the new value.
func (p *Param) step() float64 {
	if p.coeff > 0 {
		p.value += (p.target - p.value) * p.coeff
	}
	return p.value
}
