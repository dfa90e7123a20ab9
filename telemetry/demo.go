package telemetry

import (
	"math"
	"math/rand"
	"sync"
)

// Demo generates a simulated drive cycle for development and for running
// the synthesizer without hardware: rpm sweeps between idle and redline,
// throttle lifts on the way down (the backfire window), and hard launches
// slip the tires.
type Demo struct {
	mu   sync.Mutex
	t    float64 // virtual time accumulator
	step float64
	rng  *rand.Rand
}

// NewDemo creates a demo provider advancing its cycle at pollHz.
func NewDemo(pollHz int) *Demo {
	if pollHz <= 0 {
		pollHz = 20
	}
	return &Demo{
		step: 1.0 / float64(pollHz),
		rng:  rand.New(rand.NewSource(1)),
	}
}

func (d *Demo) Name() string   { return "Demo (Simulated)" }
func (d *Demo) Connect() error { return nil }
func (d *Demo) Close() error   { return nil }

func (d *Demo) Poll() (Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.t += d.step

	// RPM cycles between idle and near redline, ~10s period
	s := math.Sin(d.t * 0.3)
	sweep := s * s
	rpm := 900 + 6100*sweep + d.rng.Float64()*50

	// Throttle follows the sweep on the way up and lifts abruptly on the
	// way down, which is exactly the backfire edge: high load, then a
	// sudden release while revs are still up.
	rising := math.Cos(d.t*0.3)*s > 0
	var load float64
	if rising {
		load = 0.15 + 0.85*sweep
	} else {
		load = 0.02 + d.rng.Float64()*0.03
	}

	speed := 20 + 160*sweep

	// Wheelspin on hard launches: full throttle at low road speed
	var slip float64
	if rising && load > 0.7 && speed < 80 {
		slip = 0.3 + 0.4*d.rng.Float64()
	} else {
		slip = d.rng.Float64() * 0.05
	}

	return Frame{
		RPM:      rpm,
		Load:     load,
		TireSlip: slip,
		Speed:    speed,
	}, nil
}
