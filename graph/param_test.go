package graph

import (
	"math"
	"testing"
)

// TestParamApproachesTarget verifies the first-order lag reaches ~63% of
// the distance to target after one time constant.
func TestParamApproachesTarget(t *testing.T) {
	rate := 44100
	tau := 0.1
	p := newParam(0, rate)
	p.SetTarget(1.0, tau)

	steps := int(tau * float64(rate))
	for i := 0; i < steps; i++ {
		p.step()
	}

	want := 1.0 - 1.0/math.E
	if math.Abs(p.Value()-want) > 0.01 {
		t.Errorf("After one tau expected ~%.3f, got %.3f", want, p.Value())
	}
}

// TestParamConverges verifies the value settles on the target.
func TestParamConverges(t *testing.T) {
	p := newParam(5, 44100)
	p.SetTarget(2, 0.05)

	// One second is 20 time constants, well past settling
	for i := 0; i < 44100; i++ {
		p.step()
	}

	if math.Abs(p.Value()-2) > 1e-6 {
		t.Errorf("Expected value to settle at 2, got %f", p.Value())
	}
}

// TestParamRetargetKeepsValue verifies retargeting mid-ramp does not jump
// the current value.
func TestParamRetargetKeepsValue(t *testing.T) {
	p := newParam(0, 44100)
	p.SetTarget(1, 0.1)

	for i := 0; i < 1000; i++ {
		p.step()
	}
	mid := p.Value()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("Expected mid-ramp value in (0,1), got %f", mid)
	}

	p.SetTarget(-1, 0.1)
	if p.Value() != mid {
		t.Errorf("Retarget moved value from %f to %f", mid, p.Value())
	}
}

// TestParamZeroTauJumps verifies tau <= 0 is an immediate set.
func TestParamZeroTauJumps(t *testing.T) {
	p := newParam(0, 44100)
	p.SetTarget(3, 0)
	if p.Value() != 3 {
		t.Errorf("Expected immediate jump to 3, got %f", p.Value())
	}
}

// TestParamSetCancelsRamp verifies Set pins both value and target.
func TestParamSetCancelsRamp(t *testing.T) {
	p := newParam(0, 44100)
	p.SetTarget(1, 0.1)
	p.Set(0.5)

	for i := 0; i < 1000; i++ {
		p.step()
	}
	if p.Value() != 0.5 {
		t.Errorf("Expected value pinned at 0.5, got %f", p.Value())
	}
	if p.Target() != 0.5 {
		t.Errorf("Expected target 0.5, got %f", p.Target())
	}
}
