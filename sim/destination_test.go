package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDestinationFloor(t *testing.T) {
	tests := []struct {
		name   string
		floor  int
		dir    Direction
		dests  []int
		want   int
		wantOK bool
	}{
		{name: "no destinations", floor: 3, dir: DirectionUp, dests: nil, wantOK: false},
		{name: "up picks first ahead", floor: 5, dir: DirectionUp, dests: []int{3, 7, 9}, want: 7, wantOK: true},
		{name: "up with all behind reverses to lowest", floor: 5, dir: DirectionUp, dests: []int{1, 3}, want: 1, wantOK: true},
		{name: "up counts the current floor as ahead", floor: 5, dir: DirectionUp, dests: []int{9, 5}, want: 5, wantOK: true},
		{name: "down picks first ahead", floor: 5, dir: DirectionDown, dests: []int{3, 7, 1}, want: 3, wantOK: true},
		{name: "down with all behind reverses to highest", floor: 5, dir: DirectionDown, dests: []int{7, 9}, want: 9, wantOK: true},
		{name: "idle picks nearest", floor: 5, dir: DirectionIdle, dests: []int{9, 4, 2}, want: 4, wantOK: true},
		{name: "idle equal distance keeps queue order", floor: 5, dir: DirectionIdle, dests: []int{7, 3}, want: 7, wantOK: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NextDestinationFloor(Elevator{CurrentFloor: tc.floor, Direction: tc.dir, DestinationFloors: tc.dests})
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestNextDestinationFloor_DoesNotReorderInput(t *testing.T) {
	dests := []int{9, 3, 7}
	_, _ = NextDestinationFloor(Elevator{CurrentFloor: 5, Direction: DirectionUp, DestinationFloors: dests})
	assert.Equal(t, []int{9, 3, 7}, dests)
}

func TestSortDestinations(t *testing.T) {
	up := []int{7, 2, 5}
	sortDestinations(up, DirectionUp)
	assert.Equal(t, []int{2, 5, 7}, up)

	down := []int{2, 7, 5}
	sortDestinations(down, DirectionDown)
	assert.Equal(t, []int{7, 5, 2}, down)

	idle := []int{2, 7, 5}
	sortDestinations(idle, DirectionIdle)
	assert.Equal(t, []int{7, 5, 2}, idle)
}
