package synth

import (
	"math"

	"github.com/lixenwraith/revsynth/constant"
	"github.com/lixenwraith/revsynth/graph"
)

// Pop is one scheduled backfire detonation.
type Pop struct {
	StartOffset    float64 // seconds from now
	FilterCutoffHz float64
	PeakVolume     float64
}

// BurstRequest is the randomized pop set handed to the host graph when the
// trigger fires. Constructed, scheduled, discarded.
type BurstRequest struct {
	Pops []Pop
}

// backfireState is the trigger's persisted memory: the load seen on the
// previous completed tick and the time of the last fired burst.
type backfireState struct {
	lastGasPosition  float64
	lastBackfireTime float64
}

// evaluate runs the edge/cooldown/probability chain for one tick and
// returns the burst request if it fired. lastGasPosition is written after
// the edge check, unconditionally: the check must see the previous tick's
// load or it would detect steady state instead of a release transition.
func (s *Synthesizer) evaluateBackfire(rpm, load, now float64) (BurstRequest, bool) {
	var req BurstRequest
	fired := false

	if s.backfire.lastGasPosition > constant.BackfireHighLoad &&
		load < constant.BackfireLowLoad &&
		rpm > constant.BackfireMinRPM {
		if now-s.backfire.lastBackfireTime > constant.BackfireCooldown {
			if s.rng.Float64() < backfireChance(rpm) {
				req = s.buildBurst()
				s.scheduleBurst(req)
				s.backfire.lastBackfireTime = now
				s.backfires++
				fired = true
			}
		}
	}

	s.backfire.lastGasPosition = load
	return req, fired
}

// backfireChance maps rpm to fire probability, capped high. Not floored
// at 0: a negative chance can never beat a uniform draw, so low rpm
// simply never fires.
func backfireChance(rpm float64) float64 {
	return math.Min(constant.BackfireChanceMax,
		(rpm-constant.BackfireChanceRPMFloor)/constant.BackfireChanceRPMSpan)
}

// buildBurst randomizes the pop set: usually one pop, sometimes two,
// staggered and individually voiced.
func (s *Synthesizer) buildBurst() BurstRequest {
	popCount := 1
	if s.rng.Float64() < constant.BackfireDoublePopChance {
		popCount = 2
	}

	pops := make([]Pop, popCount)
	for i := range pops {
		spacing := constant.BackfirePopSpacing + s.rng.Float64()*constant.BackfirePopSpacingJitter
		pops[i] = Pop{
			StartOffset:    float64(i) * spacing,
			FilterCutoffHz: constant.BackfireCutoffFloor + s.rng.Float64()*constant.BackfireCutoffJitter,
			PeakVolume:     constant.BackfirePeakFloor + s.rng.Float64()*constant.BackfirePeakJitter,
		}
	}
	return BurstRequest{Pops: pops}
}

func (s *Synthesizer) scheduleBurst(req BurstRequest) {
	for _, pop := range req.Pops {
		s.backend.ScheduleBurst(s.noise, graph.BurstSpec{
			Delay:      pop.StartOffset,
			CutoffHz:   pop.FilterCutoffHz,
			Q:          constant.BackfireFilterQ,
			Peak:       pop.PeakVolume,
			DecayFloor: constant.BackfireDecayFloor,
			DecayTime:  constant.BackfireDecayTime,
			CutTime:    constant.BackfireCutTime,
		})
	}
}
