// sim/metrics_utils.go
package sim

import "math"

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculatePercentile is a util function that calculates the p-th percentile of a sorted
// data list of milliseconds. Return values are in seconds; empty input returns 0.
func CalculatePercentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if upperIdx >= n {
		return float64(data[n-1]) / 1000
	}
	if lowerIdx == upperIdx {
		return float64(data[lowerIdx]) / 1000
	}
	lowerVal := data[lowerIdx]
	upperVal := data[upperIdx]
	return float64(lowerVal)/1000 + float64(upperVal-lowerVal)*(rank-float64(lowerIdx))/1000
}

// CalculateMean is a util function that calculates the mean of a data list of milliseconds.
// Return values are in seconds.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return (sum / float64(len(numbers))) / 1000
}
