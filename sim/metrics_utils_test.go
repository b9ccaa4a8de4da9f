package sim

import (
	"testing"

	"github.com/ivokostovski/elevator-exercise/internal/testutil"
)

func TestCalculatePercentile_Interpolates(t *testing.T) {
	data := []int64{1000, 2000, 3000, 4000, 5000}
	testutil.AssertFloat64Equal(t, "p0", 1.0, CalculatePercentile(data, 0), 1e-9)
	testutil.AssertFloat64Equal(t, "p50", 3.0, CalculatePercentile(data, 50), 1e-9)
	testutil.AssertFloat64Equal(t, "p90", 4.6, CalculatePercentile(data, 90), 1e-9)
	testutil.AssertFloat64Equal(t, "p100", 5.0, CalculatePercentile(data, 100), 1e-9)
}

func TestCalculatePercentile_EmptyAndSingle(t *testing.T) {
	if got := CalculatePercentile([]int64{}, 99); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
	if got := CalculatePercentile([]int64{2500}, 99); got != 2.5 {
		t.Errorf("single: got %v, want 2.5", got)
	}
}

func TestCalculateMean(t *testing.T) {
	if got := CalculateMean([]int{}); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
	testutil.AssertFloat64Equal(t, "mean", 2.0, CalculateMean([]float64{1000, 2000, 3000}), 1e-9)
}
