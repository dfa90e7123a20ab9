// Package telemetry feeds the synthesizer from a vehicle data source:
// a simulated drive cycle, a Speeduino-style ECU on a serial port, or a
// websocket stream pushed by a sim.
package telemetry

import "errors"

// Frame is one sample of vehicle state. Load is throttle position
// normalized to [0,1]; Speed is signed, in the source's speed units.
type Frame struct {
	RPM      float64 `json:"rpm"`
	Load     float64 `json:"load"`
	TireSlip float64 `json:"tireSlip"`
	Speed    float64 `json:"speed"`
}

// Provider is the interface all telemetry backends implement.
type Provider interface {
	// Name returns the human-readable name of this provider.
	Name() string
	// Connect opens the underlying source.
	Connect() error
	// Close shuts the source down.
	Close() error
	// Poll returns the latest frame. It may block up to the source's
	// read timeout.
	Poll() (Frame, error)
}

// Sentinel errors
var (
	ErrNotConnected = errors.New("telemetry source not connected")
	ErrShortFrame   = errors.New("telemetry frame truncated")
)
