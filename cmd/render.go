package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ivokostovski/elevator-exercise/sim"
	"github.com/ivokostovski/elevator-exercise/sim/trace"
)

// renderBuilding writes a text snapshot of the building: one line per elevator slot,
// then the floors with pending calls.
func renderBuilding(w io.Writer, clock int64, state sim.BuildingState) {
	fmt.Fprintf(w, "--- t=%.1fs  queue=%d ---\n", float64(clock)/1000, len(state.ElevatorCallQueue))
	for i, slot := range state.Elevators {
		e, ok := slot.Get()
		if !ok {
			fmt.Fprintf(w, "  [slot %d] (empty)\n", i+1)
			continue
		}
		status := e.DisplayStatus()
		fmt.Fprintf(w, "  %-12s floor %2d  %s %-11s doors=%-6s dest=%v pax=%d  %s\n",
			e.ID, e.CurrentFloor, status.Icon(), status.Label(), e.DoorStatus,
			e.DestinationFloors, len(e.Passengers), e.StatusMessage)
	}

	var calls []string
	for _, f := range state.Floors {
		if f.HasUpCall {
			calls = append(calls, fmt.Sprintf("%d▲", f.FloorNumber))
		}
		if f.HasDownCall {
			calls = append(calls, fmt.Sprintf("%d▼", f.FloorNumber))
		}
	}
	if len(calls) > 0 {
		fmt.Fprintf(w, "  calls: %s\n", strings.Join(calls, " "))
	}
}

// printTraceSummary writes the dispatch trace summary with a stable elevator order.
func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Dispatch Trace Summary ===")
	fmt.Fprintf(w, "Dispatches        : %d\n", s.TotalDispatches)
	fmt.Fprintf(w, "Requeued Calls    : %d\n", s.TotalRequeued)
	fmt.Fprintf(w, "Mean Wait         : %.2f s\n", s.MeanWaitMs/1000)
	fmt.Fprintf(w, "Max Wait          : %.2f s\n", float64(s.MaxWaitMs)/1000)
	fmt.Fprintf(w, "Mean Chosen Cost  : %.2f\n", s.MeanChosenCost)
	fmt.Fprintf(w, "Elevators Used    : %d\n", s.UniqueTargets)
	ids := make([]string, 0, len(s.TargetDistribution))
	for id := range s.TargetDistribution {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  %-16s: %d\n", id, s.TargetDistribution[id])
	}
}
