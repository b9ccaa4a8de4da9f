package h1fleetsize

import (
	"fmt"
	"testing"

	"github.com/ivokostovski/elevator-exercise/sim"
	"github.com/ivokostovski/elevator-exercise/sim/workload"
)

// =============================================================================
// H1: Fleet Size vs Hall-Call Service Time
//
// Hypothesis: Under a fixed random call load, tripling the number of elevators
// reduces the mean time from a hall call being pressed to a car opening its
// doors on that floor.
//
// Background: The dispatcher only assigns calls after a 2s processing delay and
// then picks the cheapest car. With few cars every car carries a long
// destination list, so the 5-per-stop penalty dominates and calls wait for a
// full run to finish. More cars mean more idle or same-direction candidates.
//
// Refuted if: for any seed, the 6-car mean service time is not below the
// 2-car mean.
//
// Independent variable: number of elevators (2 vs 6)
// Controlled variables: 10 floors, calls every 3–8s, 1h horizon, seed
// Dependent variable: mean service time (call press → doors open on that floor)
// =============================================================================

const horizonMs = 3_600_000

// serviceTimes runs one simulation and returns the mean and count of served calls.
func serviceTimes(t *testing.T, elevators int, seed int64) (float64, int) {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.NumberOfElevators = elevators
	cfg.RandomCallIntervalMin = 3_000
	cfg.RandomCallIntervalMax = 8_000

	engine := sim.NewEngine(cfg, sim.NewSimulationKey(seed))
	s := sim.NewSimulator(engine, horizonMs)
	sampler := workload.NewIntervalSampler("uniform", cfg.RandomCallIntervalMin, cfg.RandomCallIntervalMax)
	gen := workload.NewCallGenerator(engine.RNG().ForSubsystem(sim.SubsystemCalls), sampler, cfg.NumberOfFloors)

	pending := map[int][]int64{} // floor → press times not yet served
	for _, ev := range gen.GenerateCalls(0, horizonMs) {
		s.Schedule(ev)
		call := ev.(*sim.CallEvent)
		pending[call.Floor] = append(pending[call.Floor], call.Timestamp())
	}

	var total int64
	var served int
	s.OnTick = func(clock int64, state sim.BuildingState) {
		for _, e := range state.PresentElevators() {
			if e.DoorStatus != sim.DoorOpen || e.LoadingUnloadingRemainingTime != cfg.LoadUnloadTime {
				continue
			}
			// Doors opened this tick: every call already pressed on this floor is served.
			remaining := pending[e.CurrentFloor][:0]
			for _, pressed := range pending[e.CurrentFloor] {
				if pressed < clock {
					total += clock - pressed
					served++
				} else {
					remaining = append(remaining, pressed)
				}
			}
			pending[e.CurrentFloor] = remaining
		}
	}
	s.Run()

	if served == 0 {
		t.Fatalf("%d elevators, seed %d: no calls served", elevators, seed)
	}
	return float64(total) / float64(served), served
}

func TestH1_MoreElevatorsServeCallsFaster(t *testing.T) {
	for _, seed := range []int64{1, 42, 2024} {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			small, smallServed := serviceTimes(t, 2, seed)
			large, largeServed := serviceTimes(t, 6, seed)
			ratio := large / small

			t.Logf("2 cars: mean %.1fs over %d calls; 6 cars: mean %.1fs over %d calls; ratio %.2f",
				small/1000, smallServed, large/1000, largeServed, ratio)
			if ratio >= 1 {
				t.Errorf("6-car service time is %.0f%% of 2-car, want below 100%%", ratio*100)
			}
		})
	}
}
