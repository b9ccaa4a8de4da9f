// Tracks simulation-wide dispatch and passenger-flow counters such as:
// calls submitted/dispatched/requeued, passengers boarded/delivered, and per-call
// queue waits between submission and dispatch.

package sim

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// Metrics aggregates statistics about the simulation
// for final reporting. Useful for evaluating dispatcher behavior over time.
type Metrics struct {
	Ticks               int     // Number of ticks executed
	CallsSubmitted      int     // Hall calls submitted (random, scripted or manual)
	CallsDispatched     int     // Calls assigned to an elevator
	CallsRequeued       int     // Calls synthesized by disable evacuations
	PassengersBoarded   int     // Passengers generated at door close
	PassengersDelivered int     // Passengers dropped at their destination
	DoorOpenings        int     // Arrivals that opened doors
	FloorsTraveled      int     // Single-floor moves across all elevators
	PeakQueueDepth      int     // Max call queue length observed after a tick
	DispatchWaits       []int64 // ms each dispatched call waited in the queue
	SimEndedTime        int64   // simulated ms at the end of the run
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		DispatchWaits: make([]int64, 0),
	}
}

// Print displays aggregated metrics on stdout.
func (m *Metrics) Print(pendingCalls int) {
	m.Fprint(os.Stdout, pendingCalls)
}

// Fprint writes aggregated metrics to w. pendingCalls is the call queue length at the
// end of the run (calls never dispatched).
func (m *Metrics) Fprint(w io.Writer, pendingCalls int) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Simulated Time       : %.1f s\n", float64(m.SimEndedTime)/1000)
	fmt.Fprintf(w, "Ticks                : %d\n", m.Ticks)
	fmt.Fprintf(w, "Calls Submitted      : %d\n", m.CallsSubmitted)
	fmt.Fprintf(w, "Calls Requeued       : %d\n", m.CallsRequeued)
	fmt.Fprintf(w, "Calls Dispatched     : %d\n", m.CallsDispatched)
	fmt.Fprintf(w, "Calls Pending        : %d\n", pendingCalls)
	fmt.Fprintf(w, "Peak Queue Depth     : %d\n", m.PeakQueueDepth)
	fmt.Fprintf(w, "Passengers Boarded   : %d\n", m.PassengersBoarded)
	fmt.Fprintf(w, "Passengers Delivered : %d\n", m.PassengersDelivered)
	fmt.Fprintf(w, "Door Openings        : %d\n", m.DoorOpenings)
	fmt.Fprintf(w, "Floors Traveled      : %d\n", m.FloorsTraveled)
	if len(m.DispatchWaits) > 0 {
		sorted := slices.Clone(m.DispatchWaits)
		slices.Sort(sorted)
		fmt.Fprintf(w, "Dispatch Wait Mean   : %.2f s\n", CalculateMean(sorted))
		fmt.Fprintf(w, "Dispatch Wait P90    : %.2f s\n", CalculatePercentile(sorted, 90))
		fmt.Fprintf(w, "Dispatch Wait P99    : %.2f s\n", CalculatePercentile(sorted, 99))
	}
}
