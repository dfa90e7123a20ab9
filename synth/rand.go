package synth

import "math/rand"

// RandomSource supplies the uniform draws driving backfire probability,
// pop count and burst randomization. Tests inject scripted sequences to
// pin the trigger logic down exactly.
type RandomSource interface {
	Float64() float64
}

type defaultRand struct{}

func (defaultRand) Float64() float64 { return rand.Float64() }
