package sim

// Event defines the interface for all scheduled simulation inputs.
// Each event must have a Timestamp (in simulated ms) and an Execute method
// that applies it to the simulator's building state.
type Event interface {
	Timestamp() int64
	Execute(*Simulator)
}

// CallEvent represents a hall call pressed at a floor.
type CallEvent struct {
	time      int64     // Simulated time of the button press (ms)
	Floor     int       // Floor the call was made from
	Direction Direction // Requested travel direction
}

// NewCallEvent creates a CallEvent at the given simulated time.
func NewCallEvent(at int64, floor int, direction Direction) *CallEvent {
	return &CallEvent{time: at, Floor: floor, Direction: direction}
}

// Timestamp returns the scheduled time of the CallEvent.
func (e *CallEvent) Timestamp() int64 {
	return e.time
}

// Execute submits the call to the engine.
func (e *CallEvent) Execute(sim *Simulator) {
	sim.State = sim.Engine.SubmitCall(sim.State, e.Floor, e.Direction)
}

// ToggleEvent represents an operator enabling or disabling an elevator.
type ToggleEvent struct {
	time       int64
	ElevatorID string
	Disabled   bool
}

// NewToggleEvent creates a ToggleEvent at the given simulated time.
func NewToggleEvent(at int64, elevatorID string, disabled bool) *ToggleEvent {
	return &ToggleEvent{time: at, ElevatorID: elevatorID, Disabled: disabled}
}

// Timestamp returns the scheduled time of the ToggleEvent.
func (e *ToggleEvent) Timestamp() int64 {
	return e.time
}

// Execute applies the enable/disable request.
func (e *ToggleEvent) Execute(sim *Simulator) {
	sim.State = sim.Engine.SetElevatorDisabled(sim.State, e.ElevatorID, e.Disabled)
}
