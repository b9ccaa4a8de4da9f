package workload

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// IntervalSampler generates gaps between consecutive random hall calls.
type IntervalSampler interface {
	// SampleInterval returns the next gap in simulated milliseconds.
	// Always returns a positive value (>= 1).
	SampleInterval(rng *rand.Rand) int64
}

// UniformSampler draws gaps uniformly from [min, max).
type UniformSampler struct {
	minMs int64
	maxMs int64
}

func (s *UniformSampler) SampleInterval(rng *rand.Rand) int64 {
	gap := s.minMs
	if s.maxMs > s.minMs {
		gap += int64(rng.Float64() * float64(s.maxMs-s.minMs))
	}
	if gap < 1 {
		return 1
	}
	return gap
}

// PoissonSampler generates exponentially-distributed gaps with a fixed mean.
type PoissonSampler struct {
	meanMs float64
}

func (s *PoissonSampler) SampleInterval(rng *rand.Rand) int64 {
	gap := int64(rng.ExpFloat64() * s.meanMs)
	if gap < 1 {
		return 1
	}
	return gap
}

// validProcesses maps accepted call-arrival process names.
var validProcesses = map[string]bool{"": true, "uniform": true, "poisson": true}

// IsValidProcess returns true if name is a recognized call-arrival process.
func IsValidProcess(name string) bool { return validProcesses[name] }

// NewIntervalSampler creates an IntervalSampler by process name.
// "uniform" (default) spreads gaps over [minMs, maxMs); "poisson" uses the midpoint as mean.
// Panics on unrecognized names.
func NewIntervalSampler(process string, minMs, maxMs int64) IntervalSampler {
	if maxMs < minMs {
		logrus.Warnf("call interval max %dms below min %dms; using min for both", maxMs, minMs)
		maxMs = minMs
	}
	switch process {
	case "", "uniform":
		return &UniformSampler{minMs: minMs, maxMs: maxMs}
	case "poisson":
		return &PoissonSampler{meanMs: float64(minMs+maxMs) / 2}
	default:
		panic(fmt.Sprintf("unknown call arrival process %q", process))
	}
}
