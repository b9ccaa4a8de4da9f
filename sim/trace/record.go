// Package trace provides decision-trace recording for dispatch analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// CandidateCost captures one elevator's cost for a dispatched call.
type CandidateCost struct {
	ElevatorID string
	Cost       float64 // +Inf for disabled elevators
}

// DispatchRecord captures a single dispatch decision: a queued call assigned to an elevator.
type DispatchRecord struct {
	Clock          int64  // simulated ms when the call was dispatched
	CallFloor      int
	CallDirection  string
	CallTimestamp  int64  // simulated ms when the call was queued
	ChosenElevator string
	ChosenCost     float64
	Candidates     []CandidateCost // every elevator scored, in building order
}

// WaitMs returns how long the call sat in the queue before dispatch.
func (r DispatchRecord) WaitMs() int64 {
	return r.Clock - r.CallTimestamp
}

// RequeueRecord captures the evacuation of a disabled elevator into the call queue.
type RequeueRecord struct {
	Clock      int64
	ElevatorID string
	Floors     []int // floor numbers of the synthesized calls, in queue order
}
