// Package synth turns physics telemetry into vehicle sound: an rpm/load
// mapped engine drone, a slip-driven tire squeal and stochastic backfire
// pops, all rendered procedurally through a small signal graph.
package synth

import (
	"log"
	"math/rand"

	"github.com/lixenwraith/revsynth/constant"
	"github.com/lixenwraith/revsynth/graph"
)

// Synthesizer owns one vehicle's voices and trigger state. Instances are
// independent; a multiplayer host runs one per vehicle. A single caller
// drives Update once per simulation tick, there is no internal
// synchronization between ticks.
type Synthesizer struct {
	backend graph.Backend
	rng     RandomSource

	initialized bool
	disabled    bool
	running     bool

	noise []float64 // one second of uniform noise, allocated once

	engine   engineVoice
	squeal   squealVoice
	backfire backfireState

	allocated bool
	backfires uint64
}

// New creates a synthesizer on the given backend using the default random
// source.
func New(backend graph.Backend) *Synthesizer {
	return &Synthesizer{
		backend: backend,
		rng:     defaultRand{},
	}
}

// SetRandomSource replaces the random source. Call before Init.
func (s *Synthesizer) SetRandomSource(r RandomSource) {
	if r != nil {
		s.rng = r
	}
}

// Init brings the host audio up and allocates the shared noise buffer.
// Idempotent: a second call neither reallocates nor duplicates state.
// If the host is unavailable the failure is logged and the synthesizer
// stays permanently disabled; every later call is a no-op.
func (s *Synthesizer) Init() {
	if s.initialized || s.disabled {
		return
	}

	if err := s.backend.Resume(); err != nil {
		log.Printf("[synth] audio unavailable: %v (sound disabled)", err)
		s.disabled = true
		return
	}

	// Buffer content is sound-design-irrelevant noise; the injected
	// RandomSource is reserved for the trigger logic.
	n := s.backend.SampleRate() * constant.NoiseBufferSeconds
	s.noise = make([]float64, n)
	for i := range s.noise {
		s.noise[i] = rand.Float64()*2 - 1
	}

	s.initialized = true
}

// Start allocates the continuous voices on first use and starts their
// oscillators. Idempotent while running; start after stop reuses the
// existing voices. Backfire memory is reset on each (re)start.
func (s *Synthesizer) Start() {
	if !s.initialized || s.disabled || s.running {
		return
	}

	if !s.allocated {
		s.engine.allocate(s.backend)
		s.squeal.allocate(s.backend)
		s.allocated = true
	}

	// Seeded far enough back that the cooldown never blocks a fire on
	// the very first tick after start.
	s.backfire = backfireState{
		lastBackfireTime: -2 * constant.BackfireCooldown,
	}

	s.engine.start()
	s.squeal.start()
	s.running = true
}

// Stop halts the continuous oscillators. In-flight backfire bursts finish
// naturally. Idempotent.
func (s *Synthesizer) Stop() {
	if !s.running {
		return
	}
	s.engine.stop()
	s.squeal.stop()
	s.running = false
}

// Update pushes one tick of telemetry through the voices and the backfire
// trigger. No-op when not running: neither the graph nor the trigger
// memory is touched.
func (s *Synthesizer) Update(t Telemetry) {
	if !s.running {
		return
	}

	now := s.backend.Now()
	s.engine.update(t.RPM, t.Load, now)
	s.squeal.update(t.TireSlip, t.Speed, now)
	s.evaluateBackfire(t.RPM, t.Load, now)
}

// Running reports whether the continuous voices are live.
func (s *Synthesizer) Running() bool { return s.running }

// EngineState returns the engine voice targets from the latest tick.
func (s *Synthesizer) EngineState() EngineVoiceState { return s.engine.state }

// SquealState returns the squeal voice targets from the latest tick.
func (s *Synthesizer) SquealState() SquealVoiceState { return s.squeal.state }

// Backfires returns how many bursts have fired since Start.
func (s *Synthesizer) Backfires() uint64 { return s.backfires }
