package aggregate

import (
	"math"
	"sort"
)

// Percentile selects the pth percentile from values using the nearest-rank
// rule: sort ascending, pick index ceil(p/100*n)-1 clamped to [0, n-1].
// For even-length inputs the 50th percentile therefore differs from the
// textbook average-of-two-middles median; downstream consumers depend on
// this exact rule. Returns 0 for empty input.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := int(math.Ceil(p/100*float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[idx]
}

// Median is the 50th percentile by the nearest-rank rule.
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev computes the population standard deviation.
// Returns 0 for empty input.
func StdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n))
}

// Ratio divides num by den, returning 0 when den is zero. NaN must never
// reach the serialized summaries (encoding/json rejects it), so every rate
// computation goes through this guard. Callers that need the empty input to
// stay visible raise an Issue alongside (see advice.go).
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
