package sim

import (
	"cmp"
	"slices"
)

// NextDestinationFloor picks the destination the elevator should currently target.
//
// Destinations are sorted ascending when travelling up, descending when travelling down,
// and by distance from the current floor when idle. The first destination ahead in the
// travel direction wins; if none is ahead the run reverses and the first sorted entry is
// returned. Returns false when there are no destinations.
func NextDestinationFloor(e Elevator) (int, bool) {
	if len(e.DestinationFloors) == 0 {
		return 0, false
	}

	sorted := slices.Clone(e.DestinationFloors)
	slices.SortStableFunc(sorted, func(a, b int) int {
		switch e.Direction {
		case DirectionUp:
			return cmp.Compare(a, b)
		case DirectionDown:
			return cmp.Compare(b, a)
		default:
			return cmp.Compare(absInt(e.CurrentFloor-a), absInt(e.CurrentFloor-b))
		}
	})

	for _, floor := range sorted {
		if (e.Direction == DirectionUp && floor >= e.CurrentFloor) ||
			(e.Direction == DirectionDown && floor <= e.CurrentFloor) {
			return floor, true
		}
	}
	return sorted[0], true
}

// sortDestinations orders destinations for a direction: ascending for Up, descending
// otherwise. Duplicates must already be removed.
func sortDestinations(floors []int, d Direction) {
	if d == DirectionUp {
		slices.Sort(floors)
		return
	}
	slices.SortFunc(floors, func(a, b int) int { return cmp.Compare(b, a) })
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
