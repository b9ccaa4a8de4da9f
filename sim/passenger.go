package sim

import "math/rand"

// PassengerSource produces boarding demand when an elevator closes its doors.
type PassengerSource interface {
	Generate(currentFloor, numberOfFloors int) []Passenger
}

// RandomPassengerSource draws passengers from an injected RNG.
type RandomPassengerSource struct {
	rng *rand.Rand
}

// NewRandomPassengerSource creates a source backed by rng.
func NewRandomPassengerSource(rng *rand.Rand) *RandomPassengerSource {
	return &RandomPassengerSource{rng: rng}
}

// Generate implements PassengerSource.
func (s *RandomPassengerSource) Generate(currentFloor, numberOfFloors int) []Passenger {
	return GenerateRandomPassengers(s.rng, currentFloor, numberOfFloors)
}

// GenerateRandomPassengers returns 1–3 passengers, each bound for a floor drawn uniformly
// from [1, numberOfFloors] excluding currentFloor. Buildings with fewer than two floors
// have nowhere to go and yield no passengers.
func GenerateRandomPassengers(rng *rand.Rand, currentFloor, numberOfFloors int) []Passenger {
	if numberOfFloors <= 1 {
		return []Passenger{}
	}
	n := rng.Intn(3) + 1
	passengers := make([]Passenger, 0, n)
	for i := 0; i < n; i++ {
		dest := currentFloor
		for dest == currentFloor {
			dest = rng.Intn(numberOfFloors) + 1
		}
		passengers = append(passengers, Passenger{DestinationFloor: dest})
	}
	return passengers
}
