package graph

import "sync"

// Backend is the signal-graph capability set consumed by the synthesizer:
// continuous oscillators, gain stages, exponential parameter ramps,
// scheduled filtered noise bursts, and a sample-position clock.
type Backend interface {
	// SampleRate returns the render rate in Hz.
	SampleRate() int

	// Now returns the clock in seconds, derived from streamed samples.
	Now() float64

	// NewOscillator creates a continuous oscillator. It is silent until
	// Started and must be Connected (directly or through a Gain) to sound.
	NewOscillator(wave WaveType, freq float64) *Oscillator

	// NewGain creates a gain stage mixing the given inputs.
	NewGain(level float64, inputs ...Node) *Gain

	// Connect attaches a node to the output sink.
	Connect(n Node)

	// ScheduleBurst plays buf as a one-shot filtered, enveloped burst.
	// The buffer is read concurrently by the render goroutine and must not
	// be mutated after scheduling.
	ScheduleBurst(buf []float64, spec BurstSpec)

	// Resume brings the output device up. Idempotent.
	Resume() error

	// Close tears the output down. In-flight state is discarded.
	Close()
}

// sink is the shared render core: the set of connected nodes plus active
// one-shot bursts, summed sample by sample under a single lock.
type sink struct {
	mu     sync.Mutex
	rate   int
	master float64

	nodes  []Node
	bursts []*burstVoice

	clock int64 // samples rendered since start
}

func newSink(sampleRate int, master float64) sink {
	return sink{
		rate:   sampleRate,
		master: master,
	}
}

func (s *sink) SampleRate() int { return s.rate }

func (s *sink) Now() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.clock) / float64(s.rate)
}

func (s *sink) NewOscillator(wave WaveType, freq float64) *Oscillator {
	osc := &Oscillator{
		mu:   &s.mu,
		wave: wave,
		freq: newParam(freq, s.rate),
		rate: float64(s.rate),
	}
	return osc
}

func (s *sink) NewGain(level float64, inputs ...Node) *Gain {
	return &Gain{
		mu:     &s.mu,
		level:  newParam(level, s.rate),
		inputs: inputs,
	}
}

func (s *sink) Connect(n Node) {
	s.mu.Lock()
	s.nodes = append(s.nodes, n)
	s.mu.Unlock()
}

func (s *sink) ScheduleBurst(buf []float64, spec BurstSpec) {
	v := newBurstVoice(buf, spec, s.rate)
	s.mu.Lock()
	s.bursts = append(s.bursts, v)
	s.mu.Unlock()
}

// renderBlock fills samples with the summed graph output and advances the
// clock. Finished bursts are compacted out.
func (s *sink) renderBlock(samples [][2]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range samples {
		var v float64
		for _, n := range s.nodes {
			v += n.sample()
		}
		for _, b := range s.bursts {
			v += b.sample()
		}
		v *= s.master
		samples[i][0] = v
		samples[i][1] = v
		s.clock++
	}

	if len(s.bursts) > 0 {
		live := s.bursts[:0]
		for _, b := range s.bursts {
			if !b.done {
				live = append(live, b)
			}
		}
		s.bursts = live
	}
}
