// sim/engine.go
package sim

import (
	"fmt"
	"math"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ivokostovski/elevator-exercise/sim/trace"
)

// Engine owns the simulated clock and the collaborators of the tick transition.
// It never holds a BuildingState: callers pass the prior state in and receive the next
// one back, so ownership of the state moves with each call.
//
// Thread-safety: NOT thread-safe. Concurrent callers must be serialized externally
// (see sim/controller).
type Engine struct {
	Config Config
	// Clock is the current simulated time in milliseconds. Tick advances it by
	// Config.TickInterval and then evaluates at the new value, so a tick sees the time
	// at the end of its interval.
	Clock int64
	// Passengers supplies boarding demand at door close. Nil means nobody boards.
	Passengers PassengerSource
	Metrics    *Metrics
	// Trace records dispatch decisions; nil disables tracing.
	Trace *trace.SimulationTrace
	rng   *PartitionedRNG
}

// NewEngine creates an Engine whose passenger demand is drawn from the key's
// SubsystemPassengers stream.
func NewEngine(cfg Config, key SimulationKey) *Engine {
	rng := NewPartitionedRNG(key)
	return &Engine{
		Config:     cfg,
		Passengers: NewRandomPassengerSource(rng.ForSubsystem(SubsystemPassengers)),
		Metrics:    NewMetrics(),
		rng:        rng,
	}
}

// RNG returns the engine's partitioned random source, for drivers that need their own
// deterministic streams (e.g. random calls).
func (e *Engine) RNG() *PartitionedRNG {
	return e.rng
}

// NewBuilding returns an initialized building sized from the engine's Config.
func (e *Engine) NewBuilding() BuildingState {
	return e.Initialize(BuildingState{
		NumberOfFloors:    e.Config.NumberOfFloors,
		NumberOfElevators: e.Config.NumberOfElevators,
	})
}

// Initialize rebuilds floors and elevators from the counts already set on state.
func (e *Engine) Initialize(state BuildingState) BuildingState {
	logrus.Infof("[clock %08dms] Initializing building: %d floors, %d elevators",
		e.Clock, state.NumberOfFloors, state.NumberOfElevators)
	return InitializeBuilding(state)
}

// SubmitCall queues a hall call stamped with the current clock.
func (e *Engine) SubmitCall(state BuildingState, floorNumber int, direction Direction) BuildingState {
	logrus.Debugf("[clock %08dms] << Call: floor %d %s", e.Clock, floorNumber, direction)
	e.metrics().CallsSubmitted++
	return HandleCallElevator(state, CallRequest{FloorNumber: floorNumber, Direction: direction}, e.Clock)
}

// SetElevatorDisabled enables or disables an elevator. Unknown IDs are a no-op.
func (e *Engine) SetElevatorDisabled(state BuildingState, elevatorID string, disabled bool) BuildingState {
	next := HandleToggleElevatorDisabled(state, ToggleRequest{ElevatorID: elevatorID, IsDisabled: disabled}, e.Clock)
	if _, _, ok := state.FindElevator(elevatorID); !ok {
		logrus.Warnf("[clock %08dms] toggle ignored: no elevator %q", e.Clock, elevatorID)
		return next
	}

	requeued := next.ElevatorCallQueue[len(state.ElevatorCallQueue):]
	logrus.Infof("[clock %08dms] %s disabled=%v, requeued %d calls", e.Clock, elevatorID, disabled, len(requeued))
	if len(requeued) > 0 {
		e.metrics().CallsRequeued += len(requeued)
		if e.Trace != nil {
			floors := make([]int, len(requeued))
			for i, c := range requeued {
				floors[i] = c.FloorNumber
			}
			e.Trace.RecordRequeue(trace.RequeueRecord{Clock: e.Clock, ElevatorID: elevatorID, Floors: floors})
		}
	}
	return next
}

// Tick advances the clock by one interval and runs the transition at the new time.
// A call submitted at t is therefore dispatchable on the tick that ends at
// t+CallProcessingDelay.
func (e *Engine) Tick(state BuildingState) BuildingState {
	e.Clock += e.Config.TickInterval
	return e.HandleTick(state)
}

// HandleTick advances every present, enabled elevator by one tick and then drains the
// call queue against the updated elevators. It does not move the clock.
func (e *Engine) HandleTick(state BuildingState) BuildingState {
	next := state.Clone()

	for i, slot := range next.Elevators {
		el, ok := slot.Get()
		if !ok || el.IsDisabled {
			continue
		}
		next.Elevators[i] = Some(e.advanceElevator(el, next.Floors, next.NumberOfFloors))
	}

	e.drainCallQueue(&next)

	m := e.metrics()
	m.Ticks++
	m.PeakQueueDepth = max(m.PeakQueueDepth, len(next.ElevatorCallQueue))
	return next
}

// advanceElevator applies one tick of the doors-open → moving → idle state machine.
func (e *Engine) advanceElevator(el Elevator, floors []Floor, numberOfFloors int) Elevator {
	switch {
	case el.DoorStatus == DoorOpen:
		return e.advanceDoors(el, numberOfFloors)
	case el.DoorStatus == DoorClosed && len(el.DestinationFloors) > 0:
		return e.advanceMovement(el, floors)
	case len(el.DestinationFloors) == 0:
		return becomeIdle(el)
	default:
		return el
	}
}

// advanceDoors counts down the dwell time. When it expires the doors close, arriving
// passengers leave, new passengers board and the current floor is struck from the
// destinations.
func (e *Engine) advanceDoors(el Elevator, numberOfFloors int) Elevator {
	remaining := el.LoadingUnloadingRemainingTime - e.Config.TickInterval
	if remaining > 0 {
		el.LoadingUnloadingRemainingTime = remaining
		el.Status = StatusLoading
		if passengerBoundFor(el, el.CurrentFloor) {
			el.Status = StatusUnloading
		}
		el.StatusMessage = fmt.Sprintf("Loading/Unloading (%ds)", ceilSeconds(remaining))
		return el
	}

	// Capacity is checked against the load before drop-off.
	onboard := len(el.Passengers)
	staying := make([]Passenger, 0, onboard)
	for _, p := range el.Passengers {
		if p.DestinationFloor != el.CurrentFloor {
			staying = append(staying, p)
		}
	}

	var boarding []Passenger
	if spots := max(0, e.Config.MaxPassengers-onboard); spots > 0 && e.Passengers != nil {
		generated := e.Passengers.Generate(el.CurrentFloor, numberOfFloors)
		boarding = generated[:min(spots, len(generated))]
	}

	destinations := slices.Clone(el.DestinationFloors)
	for _, p := range boarding {
		if !slices.Contains(destinations, p.DestinationFloor) {
			destinations = append(destinations, p.DestinationFloor)
		}
	}
	destinations = slices.DeleteFunc(destinations, func(f int) bool { return f == el.CurrentFloor })

	m := e.metrics()
	m.PassengersDelivered += onboard - len(staying)
	m.PassengersBoarded += len(boarding)

	el.DoorStatus = DoorClosed
	el.LoadingUnloadingRemainingTime = 0
	el.Passengers = append(staying, boarding...)
	el.DestinationFloors = destinations
	el.Status = StatusDeparting
	el.StatusMessage = "Moving"
	return el
}

// advanceMovement counts down travel time, or steps one floor toward the next target and
// decides whether to stop there.
func (e *Engine) advanceMovement(el Elevator, floors []Floor) Elevator {
	if el.MovementRemainingTime > 0 {
		secs := ceilSeconds(el.MovementRemainingTime)
		el.MovementRemainingTime -= e.Config.TickInterval
		el.Status = movingStatus(el.Direction)
		el.StatusMessage = fmt.Sprintf("Moving %s (%ds)", el.Direction, secs)
		return el
	}

	target, ok := NextDestinationFloor(el)
	if !ok {
		return becomeIdle(el)
	}
	if target == el.CurrentFloor {
		return e.openDoors(el)
	}

	direction, step := DirectionDown, -1
	if target > el.CurrentFloor {
		direction, step = DirectionUp, 1
	}
	el.CurrentFloor += step
	el.Direction = direction
	e.metrics().FloorsTraveled++

	if el.CurrentFloor == target || passengerBoundFor(el, el.CurrentFloor) || hasPendingCall(floors, el.CurrentFloor) {
		return e.openDoors(el)
	}

	el.MovementRemainingTime = e.Config.FloorMovementTime
	el.Status = movingStatus(direction)
	el.StatusMessage = fmt.Sprintf("Moving %s", direction)
	return el
}

func (e *Engine) openDoors(el Elevator) Elevator {
	e.metrics().DoorOpenings++
	el.DoorStatus = DoorOpen
	el.MovementRemainingTime = 0
	el.LoadingUnloadingRemainingTime = e.Config.LoadUnloadTime
	el.Status = StatusArrivedOpening
	el.StatusMessage = "Arrived, Opening Doors"
	return el
}

func becomeIdle(el Elevator) Elevator {
	el.Direction = DirectionIdle
	el.Status = StatusIdle
	el.StatusMessage = "Idle"
	return el
}

func passengerBoundFor(el Elevator, floor int) bool {
	return slices.ContainsFunc(el.Passengers, func(p Passenger) bool { return p.DestinationFloor == floor })
}

func hasPendingCall(floors []Floor, floor int) bool {
	return slices.ContainsFunc(floors, func(f Floor) bool {
		return f.FloorNumber == floor && (f.HasUpCall || f.HasDownCall)
	})
}

// drainCallQueue dispatches every call that has aged at least CallProcessingDelay to the
// cheapest elevator, in queue order. Calls with no finite-cost elevator stay queued;
// there is no aging boost, so a building with every car disabled starves its calls.
func (e *Engine) drainCallQueue(state *BuildingState) {
	now := e.Clock
	pending := make([]ElevatorCall, 0, len(state.ElevatorCallQueue))

	for _, call := range state.ElevatorCallQueue {
		if now-call.Timestamp < e.Config.CallProcessingDelay {
			pending = append(pending, call)
			continue
		}

		candidates := state.PresentElevators()
		best, ok := FindBestElevator(candidates, call.FloorNumber, call.Direction)
		if !ok {
			pending = append(pending, call)
			continue
		}

		_, idx, _ := state.FindElevator(best.ID)
		state.Elevators[idx] = Some(assignCall(state.Elevators[idx].Value, call.FloorNumber))
		clearFloorCall(state.Floors, call)

		cost := CalculateElevatorCost(best, call.FloorNumber, call.Direction)
		logrus.Debugf("[clock %08dms] Dispatched call floor %d %s to %s (cost=%.1f, waited %dms)",
			now, call.FloorNumber, call.Direction, best.ID, cost, now-call.Timestamp)
		m := e.metrics()
		m.CallsDispatched++
		m.DispatchWaits = append(m.DispatchWaits, now-call.Timestamp)
		if e.Trace != nil {
			e.Trace.RecordDispatch(dispatchRecord(now, call, best.ID, cost, candidates))
		}
	}

	state.ElevatorCallQueue = pending
}

// assignCall merges a call floor into the elevator's destinations. An idle elevator
// takes the direction of the call floor (unchanged when already there).
func assignCall(el Elevator, floor int) Elevator {
	direction := el.Direction
	if direction == DirectionIdle {
		if floor > el.CurrentFloor {
			direction = DirectionUp
		} else if floor < el.CurrentFloor {
			direction = DirectionDown
		}
	}

	destinations := make([]int, 0, len(el.DestinationFloors)+1)
	for _, f := range append(slices.Clone(el.DestinationFloors), floor) {
		if !slices.Contains(destinations, f) {
			destinations = append(destinations, f)
		}
	}
	sortDestinations(destinations, direction)

	el.DestinationFloors = destinations
	el.Direction = direction
	return el
}

// clearFloorCall lowers the flag for the call's direction on the call's floor only.
func clearFloorCall(floors []Floor, call ElevatorCall) {
	for i := range floors {
		if floors[i].FloorNumber != call.FloorNumber {
			continue
		}
		if call.Direction == DirectionUp {
			floors[i].HasUpCall = false
		}
		if call.Direction == DirectionDown {
			floors[i].HasDownCall = false
		}
	}
}

func dispatchRecord(now int64, call ElevatorCall, chosen string, cost float64, candidates []Elevator) trace.DispatchRecord {
	scores := ScoreElevators(candidates, call.FloorNumber, call.Direction)
	costs := make([]trace.CandidateCost, len(scores))
	for i, s := range scores {
		costs[i] = trace.CandidateCost{ElevatorID: s.ElevatorID, Cost: s.Cost}
	}
	return trace.DispatchRecord{
		Clock:          now,
		CallFloor:      call.FloorNumber,
		CallDirection:  string(call.Direction),
		CallTimestamp:  call.Timestamp,
		ChosenElevator: chosen,
		ChosenCost:     cost,
		Candidates:     costs,
	}
}

// metrics returns the engine's Metrics, creating it for zero-value Engines.
func (e *Engine) metrics() *Metrics {
	if e.Metrics == nil {
		e.Metrics = NewMetrics()
	}
	return e.Metrics
}

// ceilSeconds converts milliseconds to whole seconds, rounding up.
func ceilSeconds(ms int64) int64 {
	return int64(math.Ceil(float64(ms) / 1000))
}
