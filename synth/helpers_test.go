package synth

import (
	"testing"

	"github.com/lixenwraith/revsynth/graph"
)

// scriptedRand replays a fixed sequence of draws, cycling when exhausted.
type scriptedRand struct {
	seq []float64
	pos int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.seq) == 0 {
		return 0
	}
	v := r.seq[r.pos%len(r.seq)]
	r.pos++
	return v
}

// newTestSynth builds a started synthesizer on a null backend. An
// optional draw sequence pins the trigger randomness.
func newTestSynth(t *testing.T, seq ...float64) (*Synthesizer, *graph.NullBackend) {
	t.Helper()

	b := graph.NewNullBackend(44100)
	s := New(b)
	if len(seq) > 0 {
		s.SetRandomSource(&scriptedRand{seq: seq})
	}
	s.Init()
	s.Start()
	if !s.Running() {
		t.Fatal("Synthesizer failed to start on null backend")
	}
	return s, b
}
