package sim

// fixedPassengers always offers the same boarding batch.
type fixedPassengers struct {
	batch []Passenger
	calls int
}

func (f *fixedPassengers) Generate(currentFloor, numberOfFloors int) []Passenger {
	f.calls++
	out := make([]Passenger, len(f.batch))
	copy(out, f.batch)
	return out
}

// testEngine returns an engine on the default config whose boarding demand is batch.
func testEngine(batch ...Passenger) *Engine {
	e := NewEngine(DefaultConfig(), NewSimulationKey(42))
	e.Passengers = &fixedPassengers{batch: batch}
	return e
}

// testBuilding returns a freshly initialized building.
func testBuilding(floors, elevators int) BuildingState {
	return InitializeBuilding(BuildingState{NumberOfFloors: floors, NumberOfElevators: elevators})
}

// setElevator edits slot i in place. Only for building fixtures.
func setElevator(s *BuildingState, i int, mutate func(*Elevator)) {
	e := s.Elevators[i].Value
	mutate(&e)
	s.Elevators[i] = Some(e)
}

// elevatorAt returns the elevator in slot i, failing loudly on an empty slot.
func elevatorAt(s BuildingState, i int) Elevator {
	e, ok := s.Elevators[i].Get()
	if !ok {
		panic("empty elevator slot")
	}
	return e
}
