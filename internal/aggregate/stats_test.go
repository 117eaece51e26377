package aggregate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentile_SingleSample(t *testing.T) {
	samples := []float64{42}
	require.Equal(t, 42.0, Median(samples))
	require.Equal(t, 42.0, Percentile(samples, 95))
}

func TestPercentile_NearestRank(t *testing.T) {
	// ceil(0.5*3)-1 = 1 -> index 1 -> 1200
	samples := []float64{1000, 1200, 1400}
	require.Equal(t, 1200.0, Median(samples))

	// Even-length input picks the lower middle, not the textbook average.
	even := []float64{1, 2, 3, 4}
	require.Equal(t, 2.0, Median(even))

	// p95 of 100 ascending values: ceil(0.95*100)-1 = 94 -> value 95
	many := make([]float64, 100)
	for i := range many {
		many[i] = float64(i + 1)
	}
	require.Equal(t, 95.0, Percentile(many, 95))
}

func TestPercentile_Empty(t *testing.T) {
	require.Equal(t, 0.0, Median(nil))
	require.Equal(t, 0.0, Percentile([]float64{}, 95))
}

func TestPercentile_DoesNotMutateInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	Median(samples)
	require.Equal(t, []float64{3, 1, 2}, samples)
}

func TestMedian_OrderIndependent(t *testing.T) {
	samples := []float64{1000, 1200, 1400, 800, 2000}
	want := Median(samples)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]float64, len(samples))
		copy(shuffled, samples)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		require.Equal(t, want, Median(shuffled))
	}
}

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestStdDev(t *testing.T) {
	require.Equal(t, 0.0, StdDev(nil))
	require.Equal(t, 0.0, StdDev([]float64{5, 5, 5}))
	require.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestRatio_ZeroDenominator(t *testing.T) {
	require.Equal(t, 0.0, Ratio(5, 0))
	require.Equal(t, 0.5, Ratio(1, 2))
}
