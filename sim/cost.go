package sim

import "math"

// ElevatorScore is the dispatcher cost of one elevator for one call.
type ElevatorScore struct {
	ElevatorID string
	Cost       float64
}

// CalculateElevatorCost scores how well an elevator fits a call; lower is better.
//
//   - disabled: +Inf (never selected)
//   - idle on the call floor: 0
//   - travelling in the call direction and not yet past the call floor:
//     distance + 0.5 per queued stop before the call floor
//   - otherwise (opposite direction, already past, idle elsewhere):
//     2 × distance + 5 per queued stop
func CalculateElevatorCost(e Elevator, callFloor int, callDirection Direction) float64 {
	if e.IsDisabled {
		return math.Inf(1)
	}

	if e.CurrentFloor == callFloor && e.Direction == DirectionIdle {
		return 0
	}

	distance := math.Abs(float64(e.CurrentFloor - callFloor))

	if e.Direction == callDirection && notYetPassed(e.CurrentFloor, callFloor, callDirection) {
		cost := distance
		for _, dest := range e.DestinationFloors {
			if (callDirection == DirectionUp && dest < callFloor) ||
				(callDirection == DirectionDown && dest > callFloor) {
				cost += 0.5
			}
		}
		return cost
	}

	return distance*2 + float64(len(e.DestinationFloors))*5
}

// notYetPassed reports whether a car at floor, travelling in d, will still reach callFloor.
func notYetPassed(floor, callFloor int, d Direction) bool {
	switch d {
	case DirectionUp:
		return floor <= callFloor
	case DirectionDown:
		return floor >= callFloor
	default:
		return false
	}
}

// FindBestElevator returns the elevator with the lowest finite cost for the call.
// Ties are broken by first occurrence (strict <). Returns false when the list is empty
// or every elevator scores +Inf.
func FindBestElevator(elevators []Elevator, callFloor int, callDirection Direction) (Elevator, bool) {
	var best Elevator
	found := false
	minCost := math.Inf(1)

	for _, e := range elevators {
		cost := CalculateElevatorCost(e, callFloor, callDirection)
		if cost < minCost {
			minCost = cost
			best = e
			found = true
		}
	}
	return best, found
}

// ScoreElevators returns every elevator's cost for the call, in input order.
func ScoreElevators(elevators []Elevator, callFloor int, callDirection Direction) []ElevatorScore {
	scores := make([]ElevatorScore, len(elevators))
	for i, e := range elevators {
		scores[i] = ElevatorScore{ElevatorID: e.ID, Cost: CalculateElevatorCost(e, callFloor, callDirection)}
	}
	return scores
}
