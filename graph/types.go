package graph

import "errors"

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// Node is a mono signal source attached to a backend's render graph.
// Implementations live in this package; the interface is sealed.
type Node interface {
	sample() float64
}

// Sentinel errors
var (
	ErrSpeakerInit = errors.New("speaker initialization failed")
)
