// Defines the building data model (floors, elevators, call queue) and the dispatch entry
// points that mutate it outside of tick timing: initialization, call submission and
// elevator enable/disable.

package sim

import (
	"fmt"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// Direction is the travel direction of an elevator or the requested direction of a call.
type Direction string

const (
	DirectionUp   Direction = "Up"
	DirectionDown Direction = "Down"
	DirectionIdle Direction = "Idle"
)

// ParseDirection converts user input ("up", "DOWN", "Idle") into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "idle":
		return DirectionIdle, nil
	default:
		return "", fmt.Errorf("unknown direction %q (expected up, down or idle)", s)
	}
}

// DoorStatus is the state of an elevator's doors.
type DoorStatus string

const (
	DoorOpen   DoorStatus = "Open"
	DoorClosed DoorStatus = "Closed"
)

// Passenger is a rider inside an elevator.
type Passenger struct {
	DestinationFloor int
}

// WaitingPassenger is a rider waiting on a floor.
type WaitingPassenger struct {
	FromFloor int
	ToFloor   int
}

// Floor holds the pending call flags of one floor. Floors are numbered from 1.
type Floor struct {
	FloorNumber       int
	HasUpCall         bool
	HasDownCall       bool
	WaitingPassengers []WaitingPassenger
}

// Elevator models one car. Timers are in milliseconds of simulated time.
//
// DestinationFloors never contains CurrentFloor while the doors are closed and the car
// is travelling; a disabled elevator always has empty DestinationFloors and Passengers.
type Elevator struct {
	ID                            string
	CurrentFloor                  int
	Direction                     Direction
	DoorStatus                    DoorStatus
	LoadingUnloadingRemainingTime int64
	MovementRemainingTime         int64
	DestinationFloors             []int
	Passengers                    []Passenger
	IsDisabled                    bool
	Status                        Status
	StatusMessage                 string
}

// DisplayStatus returns the status a read-only consumer should show.
func (e Elevator) DisplayStatus() Status {
	if e.IsDisabled {
		return StatusDisabled
	}
	return e.Status
}

// ElevatorCall is a queued request for service at a floor. Timestamp is in simulated ms.
type ElevatorCall struct {
	FloorNumber int
	Direction   Direction
	Timestamp   int64
}

// BuildingState is the aggregate root of the simulation. Transitions never mutate a
// BuildingState in place; they return a new value.
type BuildingState struct {
	NumberOfFloors    int
	NumberOfElevators int
	Elevators         []Optional[Elevator]
	Floors            []Floor
	ElevatorCallQueue []ElevatorCall
}

// Clone returns a deep copy sharing no slices with s.
func (s BuildingState) Clone() BuildingState {
	var out BuildingState
	if err := deepcopy.Copy(&out, &s); err != nil {
		panic(fmt.Sprintf("BuildingState.Clone: %v", err))
	}
	return out
}

// PresentElevators returns the elevators that are present, in slot order.
func (s BuildingState) PresentElevators() []Elevator {
	out := make([]Elevator, 0, len(s.Elevators))
	for _, slot := range s.Elevators {
		if e, ok := slot.Get(); ok {
			out = append(out, e)
		}
	}
	return out
}

// FindElevator returns the elevator with the given ID and its slot index.
func (s BuildingState) FindElevator(id string) (Elevator, int, bool) {
	for i, slot := range s.Elevators {
		if e, ok := slot.Get(); ok && e.ID == id {
			return e, i, true
		}
	}
	return Elevator{}, -1, false
}

// CallRequest is the payload of a call submission.
type CallRequest struct {
	FloorNumber int
	Direction   Direction
}

// ToggleRequest is the payload of an enable/disable request.
type ToggleRequest struct {
	ElevatorID string
	IsDisabled bool
}

// newElevator returns the initial state of the n-th elevator (1-based).
func newElevator(n int) Elevator {
	return Elevator{
		ID:                fmt.Sprintf("elevator-%d", n),
		CurrentFloor:      1,
		Direction:         DirectionIdle,
		DoorStatus:        DoorClosed,
		DestinationFloors: []int{},
		Passengers:        []Passenger{},
		Status:            StatusIdle,
		StatusMessage:     "Idle",
	}
}

// InitializeBuilding rebuilds floors 1..NumberOfFloors and NumberOfElevators fresh
// elevators. The call queue is preserved untouched. Negative counts yield no entries.
func InitializeBuilding(state BuildingState) BuildingState {
	next := state.Clone()

	numFloors := max(state.NumberOfFloors, 0)
	next.Floors = make([]Floor, numFloors)
	for i := 0; i < numFloors; i++ {
		next.Floors[i] = Floor{
			FloorNumber:       i + 1,
			WaitingPassengers: []WaitingPassenger{},
		}
	}

	numElevators := max(state.NumberOfElevators, 0)
	next.Elevators = make([]Optional[Elevator], numElevators)
	for i := 0; i < numElevators; i++ {
		next.Elevators[i] = Some(newElevator(i + 1))
	}
	return next
}

// HandleCallElevator raises the matching floor's call flag and appends the call to the
// queue. Floor numbers are not validated; a call for a missing floor is still queued.
func HandleCallElevator(state BuildingState, req CallRequest, now int64) BuildingState {
	next := state.Clone()
	for i := range next.Floors {
		f := &next.Floors[i]
		if f.FloorNumber != req.FloorNumber {
			continue
		}
		if req.Direction == DirectionUp {
			f.HasUpCall = true
		}
		if req.Direction == DirectionDown {
			f.HasDownCall = true
		}
	}
	next.ElevatorCallQueue = append(next.ElevatorCallQueue, ElevatorCall{
		FloorNumber: req.FloorNumber,
		Direction:   req.Direction,
		Timestamp:   now,
	})
	return next
}

// HandleToggleElevatorDisabled enables or disables an elevator. Disabling evacuates the
// elevator's destinations and passenger destinations into the call queue. An unknown
// elevator ID returns state unchanged.
func HandleToggleElevatorDisabled(state BuildingState, req ToggleRequest, now int64) BuildingState {
	_, idx, ok := state.FindElevator(req.ElevatorID)
	if !ok {
		return state
	}

	next := state.Clone()
	e := next.Elevators[idx].Value
	e.IsDisabled = req.IsDisabled

	if req.IsDisabled {
		requeued := evacuationCalls(e, now)
		next.ElevatorCallQueue = append(next.ElevatorCallQueue, requeued...)
		e.DestinationFloors = []int{}
		e.Passengers = []Passenger{}
	}

	next.Elevators[idx] = Some(e)
	return next
}

// evacuationCalls synthesizes one call per destination, then one per passenger
// destination not already covered (matched by floor number only).
func evacuationCalls(e Elevator, now int64) []ElevatorCall {
	calls := make([]ElevatorCall, 0, len(e.DestinationFloors)+len(e.Passengers))
	queued := make(map[int]bool, cap(calls))
	for _, floor := range e.DestinationFloors {
		calls = append(calls, ElevatorCall{
			FloorNumber: floor,
			Direction:   directionTowards(e.CurrentFloor, floor),
			Timestamp:   now,
		})
		queued[floor] = true
	}
	for _, p := range e.Passengers {
		if queued[p.DestinationFloor] {
			continue
		}
		calls = append(calls, ElevatorCall{
			FloorNumber: p.DestinationFloor,
			Direction:   directionTowards(e.CurrentFloor, p.DestinationFloor),
			Timestamp:   now,
		})
		queued[p.DestinationFloor] = true
	}
	return calls
}

// directionTowards returns Up when to is above from, Down otherwise (including equal).
func directionTowards(from, to int) Direction {
	if to > from {
		return DirectionUp
	}
	return DirectionDown
}
