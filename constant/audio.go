package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioChannels   = 2
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency and render block size
	AudioBufferDuration = 50 * time.Millisecond

	// NoiseBufferSeconds is the length of the pre-generated white noise
	// source used for backfire bursts
	NoiseBufferSeconds = 1
)
