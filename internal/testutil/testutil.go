// Package testutil provides shared test infrastructure for the elevator simulator.
// It consolidates fixture-file and assertion helpers used across the sim/, sim/workload/
// and cmd/ test packages. It must not import sim so that sim's own tests can use it.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WriteTempYAML writes content to a fresh file in t.TempDir() and returns its path.
func WriteTempYAML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
