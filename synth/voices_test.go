package synth

import (
	"math"
	"testing"
)

// TestEngineStalledGainIsZero verifies rpm below the stall threshold
// targets zero gain regardless of load.
func TestEngineStalledGainIsZero(t *testing.T) {
	s, _ := newTestSynth(t)

	for _, load := range []float64{0, 0.3, 1.0, 2.0} {
		s.Update(Telemetry{RPM: 49, Load: load})
		if got := s.EngineState().Gain; got != 0 {
			t.Errorf("rpm=49 load=%f: expected gain 0, got %f", load, got)
		}
	}
}

// TestEngineStalledFreqsUnchanged verifies stalling does not touch the
// oscillator frequencies so a restart does not snap.
func TestEngineStalledFreqsUnchanged(t *testing.T) {
	s, _ := newTestSynth(t)

	s.Update(Telemetry{RPM: 4000, Load: 0.5})
	before := s.EngineState()

	s.Update(Telemetry{RPM: 10, Load: 0.5})
	after := s.EngineState()

	if after.Osc1Freq != before.Osc1Freq || after.Osc2Freq != before.Osc2Freq {
		t.Errorf("Stall changed frequencies: %+v -> %+v", before, after)
	}
}

// TestEngineFrequencyMapping verifies osc1 = 40 + rpm/20 and osc2 at
// exactly 1.5x for running rpm.
func TestEngineFrequencyMapping(t *testing.T) {
	s, _ := newTestSynth(t)

	for _, rpm := range []float64{50, 850, 3000, 7000, 9500} {
		s.Update(Telemetry{RPM: rpm, Load: 0.5})
		st := s.EngineState()

		want1 := 40 + rpm/20
		if st.Osc1Freq != want1 {
			t.Errorf("rpm=%f: expected osc1 %f, got %f", rpm, want1, st.Osc1Freq)
		}
		if st.Osc2Freq != 1.5*st.Osc1Freq {
			t.Errorf("rpm=%f: expected osc2 = 1.5*osc1, got %f vs %f", rpm, st.Osc2Freq, st.Osc1Freq)
		}
	}
}

// TestEngineGainMonotonic verifies gain never decreases as rpm or load
// rises, holding the other fixed.
func TestEngineGainMonotonic(t *testing.T) {
	s, _ := newTestSynth(t)

	prev := -1.0
	for rpm := 50.0; rpm <= 9000; rpm += 250 {
		s.Update(Telemetry{RPM: rpm, Load: 0.4})
		if g := s.EngineState().Gain; g < prev {
			t.Errorf("Gain decreased with rpm: %f -> %f at rpm=%f", prev, g, rpm)
		} else {
			prev = g
		}
	}

	prev = -1.0
	for load := 0.0; load <= 1.0; load += 0.05 {
		s.Update(Telemetry{RPM: 3000, Load: load})
		if g := s.EngineState().Gain; g < prev {
			t.Errorf("Gain decreased with load: %f -> %f at load=%f", prev, g, load)
		} else {
			prev = g
		}
	}
}

// TestEngineGainUnclamped verifies inputs past nominal headroom are
// applied as-is rather than rejected or clamped.
func TestEngineGainUnclamped(t *testing.T) {
	s, _ := newTestSynth(t)

	s.Update(Telemetry{RPM: 14000, Load: 1.5})
	want := 0.05 + (14000.0/7000.0)*0.1 + 1.5*0.1
	if g := s.EngineState().Gain; math.Abs(g-want) > 1e-12 {
		t.Errorf("Expected unclamped gain %f, got %f", want, g)
	}
}

// TestSquealInactiveBelowThresholds verifies squeal gain is zero when
// slip or speed is under its onset threshold.
func TestSquealInactiveBelowThresholds(t *testing.T) {
	s, _ := newTestSynth(t)

	cases := []Telemetry{
		{TireSlip: 0.2, Speed: 100}, // slip at, not over, the threshold
		{TireSlip: 0.05, Speed: 100},
		{TireSlip: 0.9, Speed: 5}, // speed at the threshold
		{TireSlip: 0.9, Speed: -4},
		{TireSlip: 0, Speed: 0},
	}
	for _, tc := range cases {
		tc.RPM = 3000
		s.Update(tc)
		if g := s.SquealState().Gain; g != 0 {
			t.Errorf("slip=%f speed=%f: expected gain 0, got %f", tc.TireSlip, tc.Speed, g)
		}
	}
}

// TestSquealActiveInReverse verifies the onset uses absolute speed.
func TestSquealActiveInReverse(t *testing.T) {
	s, _ := newTestSynth(t)

	s.Update(Telemetry{RPM: 3000, TireSlip: 0.5, Speed: -40})
	if g := s.SquealState().Gain; g <= 0 {
		t.Errorf("Expected squeal while sliding in reverse, gain %f", g)
	}
}

// TestSquealGainCapped verifies gain never exceeds 0.3 for any slip.
func TestSquealGainCapped(t *testing.T) {
	s, _ := newTestSynth(t)

	for _, slip := range []float64{0.25, 0.5, 0.8, 1.0, 5.0} {
		s.Update(Telemetry{RPM: 3000, TireSlip: slip, Speed: 50})
		if g := s.SquealState().Gain; g > 0.3 {
			t.Errorf("slip=%f: gain %f exceeds cap", slip, g)
		}
	}
}

// TestSquealGainSlope verifies gain = (slip - 0.2) * 0.5 under the cap.
func TestSquealGainSlope(t *testing.T) {
	s, _ := newTestSynth(t)

	s.Update(Telemetry{RPM: 3000, TireSlip: 0.4, Speed: 50})
	want := (0.4 - 0.2) * 0.5
	if g := s.SquealState().Gain; math.Abs(g-want) > 1e-12 {
		t.Errorf("Expected gain %f, got %f", want, g)
	}
}

// TestSquealFreqHeldWhenInactive verifies the frequency stays at its last
// value while the squeal fades out.
func TestSquealFreqHeldWhenInactive(t *testing.T) {
	s, _ := newTestSynth(t)

	s.Update(Telemetry{RPM: 3000, TireSlip: 0.6, Speed: 60})
	active := s.SquealState().Freq
	if active == 0 {
		t.Fatal("Expected active squeal frequency")
	}

	s.Update(Telemetry{RPM: 3000, TireSlip: 0, Speed: 60})
	if got := s.SquealState().Freq; got != active {
		t.Errorf("Inactive tick moved frequency %f -> %f", active, got)
	}
}

// TestSquealWobbleIsTimeBased verifies the wobble term follows the host
// clock, so identical telemetry at different times maps to different
// frequencies.
func TestSquealWobbleIsTimeBased(t *testing.T) {
	s, b := newTestSynth(t)
	tel := Telemetry{RPM: 3000, TireSlip: 0.6, Speed: 60}

	s.Update(tel)
	f0 := s.SquealState().Freq

	b.AdvanceSeconds(0.05) // sin(20t) moves well within 50ms
	s.Update(tel)
	f1 := s.SquealState().Freq

	if f0 == f1 {
		t.Errorf("Expected wobble to move with time, frequency stuck at %f", f0)
	}

	// Amplitude bound: wobble is +/-50Hz around 800 + speed*2
	base := 800.0 + 60*2
	for _, f := range []float64{f0, f1} {
		if math.Abs(f-base) > 50+1e-9 {
			t.Errorf("Wobble out of range: freq %f, base %f", f, base)
		}
	}
}
