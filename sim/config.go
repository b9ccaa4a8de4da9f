package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config groups the building dimensions and timing constants of a simulation.
// All durations are milliseconds of simulated time.
type Config struct {
	NumberOfFloors        int   `yaml:"number_of_floors"`
	NumberOfElevators     int   `yaml:"number_of_elevators"`
	TickInterval          int64 `yaml:"tick_interval_ms"`            // simulated time per tick (must be > 0)
	FloorMovementTime     int64 `yaml:"floor_movement_time_ms"`      // travel time between adjacent floors
	LoadUnloadTime        int64 `yaml:"load_unload_time_ms"`         // doors-open dwell per stop
	MaxPassengers         int   `yaml:"max_passengers"`              // car capacity
	RandomCallIntervalMin int64 `yaml:"random_call_interval_min_ms"` // lower bound between random calls
	RandomCallIntervalMax int64 `yaml:"random_call_interval_max_ms"` // upper bound between random calls
	CallProcessingDelay   int64 `yaml:"call_processing_delay_ms"`    // age a call must reach before dispatch
}

// DefaultConfig returns the stock 10-floor, 4-car building.
func DefaultConfig() Config {
	return Config{
		NumberOfFloors:        10,
		NumberOfElevators:     4,
		TickInterval:          100,
		FloorMovementTime:     10_000,
		LoadUnloadTime:        10_000,
		MaxPassengers:         8,
		RandomCallIntervalMin: 10_000,
		RandomCallIntervalMax: 30_000,
		CallProcessingDelay:   2_000,
	}
}

// LoadConfig reads a YAML building configuration. Fields absent from the file keep their
// DefaultConfig values; unknown fields are rejected so typos surface as errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading building config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing building config: %w", err)
	}
	return cfg, nil
}

// Validate checks parameter ranges. The engine itself accepts any values; validation
// applies only at the configuration boundary.
func (c Config) Validate() error {
	if c.NumberOfFloors < 0 {
		return fmt.Errorf("number_of_floors must be non-negative, got %d", c.NumberOfFloors)
	}
	if c.NumberOfElevators < 0 {
		return fmt.Errorf("number_of_elevators must be non-negative, got %d", c.NumberOfElevators)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickInterval)
	}
	if c.FloorMovementTime < 0 {
		return fmt.Errorf("floor_movement_time_ms must be non-negative, got %d", c.FloorMovementTime)
	}
	if c.LoadUnloadTime < 0 {
		return fmt.Errorf("load_unload_time_ms must be non-negative, got %d", c.LoadUnloadTime)
	}
	if c.MaxPassengers < 0 {
		return fmt.Errorf("max_passengers must be non-negative, got %d", c.MaxPassengers)
	}
	if c.CallProcessingDelay < 0 {
		return fmt.Errorf("call_processing_delay_ms must be non-negative, got %d", c.CallProcessingDelay)
	}
	if c.RandomCallIntervalMin <= 0 {
		return fmt.Errorf("random_call_interval_min_ms must be positive, got %d", c.RandomCallIntervalMin)
	}
	if c.RandomCallIntervalMax < c.RandomCallIntervalMin {
		return fmt.Errorf("random_call_interval_max_ms (%d) must be >= random_call_interval_min_ms (%d)",
			c.RandomCallIntervalMax, c.RandomCallIntervalMin)
	}
	return nil
}
