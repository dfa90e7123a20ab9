package graph

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerBackend renders the graph through the system audio device via
// beep's speaker. The backend itself is the beep.Streamer: the speaker
// goroutine pulls blocks out of the sink while update code mutates
// parameters under the same lock.
type SpeakerBackend struct {
	sink
	buffer  time.Duration
	started bool
}

// NewSpeakerBackend creates a speaker-driven backend. The device is not
// touched until Resume.
func NewSpeakerBackend(sampleRate int, master float64, buffer time.Duration) *SpeakerBackend {
	if buffer <= 0 {
		buffer = 50 * time.Millisecond
	}
	return &SpeakerBackend{
		sink:   newSink(sampleRate, master),
		buffer: buffer,
	}
}

// Resume initializes the speaker and starts streaming. Idempotent; a
// failure leaves the backend unstarted and is reported to the caller.
func (b *SpeakerBackend) Resume() error {
	if b.started {
		return nil
	}

	sr := beep.SampleRate(b.rate)
	if err := speaker.Init(sr, sr.N(b.buffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}

	speaker.Play(b)
	b.started = true
	return nil
}

// Close stops streaming and releases the device.
func (b *SpeakerBackend) Close() {
	if !b.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.started = false
}

// Stream implements beep.Streamer. The graph never drains; silence is a
// matter of gain, not of stream termination.
func (b *SpeakerBackend) Stream(samples [][2]float64) (n int, ok bool) {
	b.renderBlock(samples)
	return len(samples), true
}

// Err implements beep.Streamer.
func (b *SpeakerBackend) Err() error { return nil }
