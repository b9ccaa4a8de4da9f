package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivokostovski/elevator-exercise/internal/testutil"
)

func TestDefaultConfig_Validates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	// GIVEN a file that only overrides floors and capacity
	path := testutil.WriteTempYAML(t, "building.yaml", "number_of_floors: 15\nmax_passengers: 12\n")

	// WHEN loaded
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// THEN those fields change and the rest keep their defaults
	want := DefaultConfig()
	want.NumberOfFloors = 15
	want.MaxPassengers = 12
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_UnknownField_Rejected(t *testing.T) {
	path := testutil.WriteTempYAML(t, "typo.yaml", "number_of_flors: 15\n")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing building config")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/building.yaml")
	assert.ErrorContains(t, err, "reading building config")
}

func TestConfigValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative floors", func(c *Config) { c.NumberOfFloors = -1 }, "number_of_floors"},
		{"negative elevators", func(c *Config) { c.NumberOfElevators = -1 }, "number_of_elevators"},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, "tick_interval_ms"},
		{"negative movement", func(c *Config) { c.FloorMovementTime = -1 }, "floor_movement_time_ms"},
		{"negative dwell", func(c *Config) { c.LoadUnloadTime = -1 }, "load_unload_time_ms"},
		{"negative capacity", func(c *Config) { c.MaxPassengers = -1 }, "max_passengers"},
		{"negative delay", func(c *Config) { c.CallProcessingDelay = -1 }, "call_processing_delay_ms"},
		{"zero min interval", func(c *Config) { c.RandomCallIntervalMin = 0 }, "random_call_interval_min_ms"},
		{"max below min", func(c *Config) { c.RandomCallIntervalMax = c.RandomCallIntervalMin - 1 }, "random_call_interval_max_ms"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.wantErr)
		})
	}
}

func TestConfigValidate_ZeroSizedBuildingAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumberOfFloors = 0
	cfg.NumberOfElevators = 0
	cfg.MaxPassengers = 0
	assert.NoError(t, cfg.Validate())
}
