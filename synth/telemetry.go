package synth

// Telemetry is one tick of physics input. Load is the throttle/gas
// position in [0,1]; Speed is signed (reverse is negative). Out-of-range
// values are not rejected: the mapping formulas apply as-is.
type Telemetry struct {
	RPM      float64
	Load     float64
	TireSlip float64
	Speed    float64
}
