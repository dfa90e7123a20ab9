package graph

// NullBackend renders on demand with no audio device behind it. It backs
// tests and muted operation: the clock only moves when the caller renders
// or advances it, and every scheduled burst is recorded for inspection.
type NullBackend struct {
	sink
	records []BurstSpec
}

// NewNullBackend creates a headless backend at the given sample rate.
func NewNullBackend(sampleRate int) *NullBackend {
	return &NullBackend{
		sink: newSink(sampleRate, 1.0),
	}
}

// Resume is a no-op; there is no device to bring up.
func (b *NullBackend) Resume() error { return nil }

// Close is a no-op.
func (b *NullBackend) Close() {}

// ScheduleBurst records the request and queues it for rendering.
func (b *NullBackend) ScheduleBurst(buf []float64, spec BurstSpec) {
	b.mu.Lock()
	b.records = append(b.records, spec)
	b.mu.Unlock()
	b.sink.ScheduleBurst(buf, spec)
}

// Bursts returns a copy of every burst scheduled so far.
func (b *NullBackend) Bursts() []BurstSpec {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BurstSpec, len(b.records))
	copy(out, b.records)
	return out
}

// RenderSamples renders n samples through the graph, advancing the clock.
func (b *NullBackend) RenderSamples(n int) [][2]float64 {
	samples := make([][2]float64, n)
	b.renderBlock(samples)
	return samples
}

// AdvanceSeconds moves the clock forward without rendering. Ramps and
// scheduled bursts do not progress; use RenderSamples when their output
// matters.
func (b *NullBackend) AdvanceSeconds(sec float64) {
	b.mu.Lock()
	b.clock += int64(sec * float64(b.rate))
	b.mu.Unlock()
}
