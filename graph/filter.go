package graph

import "math"

// biquad is a 2nd-order IIR section in transposed direct form II.
// Coefficients are pre-normalized by 1/a0.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64
}

// newLowpass returns an RBJ Audio EQ Cookbook lowpass biquad.
func newLowpass(sampleRate int, cutoffHz, q float64) biquad {
	nyquist := float64(sampleRate) / 2
	if cutoffHz >= nyquist {
		cutoffHz = nyquist - 1
	}
	if cutoffHz <= 0 {
		cutoffHz = 1
	}
	if q <= 0 {
		q = 0.707
	}

	w0 := 2 * math.Pi * cutoffHz / float64(sampleRate)
	sinW0 := math.Sin(w0)
	cosW0 := math.Cos(w0)
	alpha := sinW0 / (2 * q)

	b0 := (1 - cosW0) / 2
	b1 := 1 - cosW0
	b2 := (1 - cosW0) / 2
	a0 := 1 + alpha
	a1 := -2 * cosW0
	a2 := 1 - alpha

	invA0 := 1 / a0
	return biquad{
		b0: b0 * invA0,
		b1: b1 * invA0,
		b2: b2 * invA0,
		a1: a1 * invA0,
		a2: a2 * invA0,
	}
}

func (f *biquad) process(in float64) float64 {
	out := in*f.b0 + f.z1
	f.z1 = in*f.b1 + f.z2 - f.a1*out
	f.z2 = in*f.b2 - f.a2*out
	return out
}
