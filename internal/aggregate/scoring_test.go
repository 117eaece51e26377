package aggregate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackmesa/qreport/internal/models"
)

func TestWeights_SumToOne(t *testing.T) {
	perf := WeightFCP + WeightLCP + WeightCLS + WeightFID + WeightTTI + WeightSI
	require.InDelta(t, 1.0, perf, 1e-12)

	a11y := WeightWCAGAA + WeightKeyboardNav + WeightScreenReader + WeightColorContrast
	require.InDelta(t, 1.0, a11y, 1e-12)
}

func TestSummarizeMetric(t *testing.T) {
	m := SummarizeMetric([]float64{1000, 1200, 1400, 2500}, 1800)
	require.Equal(t, 3, m.Passed)
	require.Equal(t, 4, m.Total)
	require.Equal(t, 0.75, m.Score)
	require.Equal(t, 1800.0, m.Threshold)
	require.Equal(t, 1200.0, m.Median)
	require.Equal(t, 2500.0, m.P95)
}

func TestSummarizeMetric_Empty(t *testing.T) {
	m := SummarizeMetric(nil, 1800)
	require.Equal(t, 0, m.Total)
	require.Equal(t, 0.0, m.Score)
	require.False(t, m.Score != m.Score, "score must not be NaN")
}

func TestSummarizeMetric_ThresholdIsInclusive(t *testing.T) {
	m := SummarizeMetric([]float64{1800}, 1800)
	require.Equal(t, 1, m.Passed)
}

func TestPerformanceScore_Closure(t *testing.T) {
	// Any set of six per-metric scores in [0,1] must produce a composite
	// in [0,1] because the weights sum to 1.
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		v := models.CoreWebVitals{}
		for _, m := range v.ByName() {
			m.Score = rng.Float64()
		}
		score := PerformanceScore(&v)
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)
	}
}

func TestPerformanceScore_ExactWeighting(t *testing.T) {
	v := models.CoreWebVitals{}
	v.FCP.Score = 1.0
	require.InDelta(t, 0.15, PerformanceScore(&v), 1e-12)

	for _, m := range v.ByName() {
		m.Score = 1.0
	}
	require.InDelta(t, 1.0, PerformanceScore(&v), 1e-12)
}

func TestAccessibilityScore(t *testing.T) {
	a := &models.AccessibilitySummary{
		WCAG:          models.WCAGCompliance{AA: models.ComplianceCount{Passed: 10, Total: 10}},
		KeyboardNav:   1.0,
		ScreenReader:  1.0,
		ColorContrast: 1.0,
	}
	require.InDelta(t, 1.0, AccessibilityScore(a), 1e-12)
}

func TestAccessibilityScore_ZeroWCAGTotal(t *testing.T) {
	// A zero AA denominator must not poison the composite with NaN.
	a := &models.AccessibilitySummary{
		KeyboardNav:   1.0,
		ScreenReader:  1.0,
		ColorContrast: 1.0,
	}
	score := AccessibilityScore(a)
	require.InDelta(t, 0.70, score, 1e-12)
}

func TestDomainStatus(t *testing.T) {
	require.Equal(t, models.StatusFailed, DomainStatus(10, 1))
	require.Equal(t, models.StatusPassed, DomainStatus(10, 0))
	require.Equal(t, models.StatusEmpty, DomainStatus(0, 0))
}
