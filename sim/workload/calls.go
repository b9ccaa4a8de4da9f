package workload

import (
	"math/rand"

	"github.com/ivokostovski/elevator-exercise/sim"
)

// CallGenerator produces random hall calls: floors uniform over the building, direction
// forced Up on the ground floor and Down on the top floor, a fair coin elsewhere.
type CallGenerator struct {
	rng            *rand.Rand
	sampler        IntervalSampler
	numberOfFloors int
}

// NewCallGenerator creates a generator for a building with numberOfFloors floors.
func NewCallGenerator(rng *rand.Rand, sampler IntervalSampler, numberOfFloors int) *CallGenerator {
	return &CallGenerator{rng: rng, sampler: sampler, numberOfFloors: numberOfFloors}
}

// NextInterval returns the gap before the next call, in simulated ms.
func (g *CallGenerator) NextInterval() int64 {
	return g.sampler.SampleInterval(g.rng)
}

// NextCall draws one call. Returns false for a building without floors.
func (g *CallGenerator) NextCall() (int, sim.Direction, bool) {
	if g.numberOfFloors <= 0 {
		return 0, "", false
	}
	floor := g.rng.Intn(g.numberOfFloors) + 1
	direction := sim.DirectionDown
	if g.rng.Float64() > 0.5 {
		direction = sim.DirectionUp
	}

	switch floor {
	case 1:
		direction = sim.DirectionUp
	case g.numberOfFloors:
		direction = sim.DirectionDown
	}
	return floor, direction, true
}

// GenerateCalls pre-computes call events from start up to (excluding) horizon. The first
// call arrives one sampled interval after start.
func (g *CallGenerator) GenerateCalls(start, horizon int64) []sim.Event {
	var events []sim.Event
	for at := start + g.NextInterval(); at < horizon; at += g.NextInterval() {
		floor, direction, ok := g.NextCall()
		if !ok {
			break
		}
		events = append(events, sim.NewCallEvent(at, floor, direction))
	}
	return events
}
