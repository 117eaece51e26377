package aggregate

import "github.com/stackmesa/qreport/internal/models"

// Core Web Vitals composite weights. These must sum to 1.0 so the weighted
// composite stays in [0,1]; re-runs on identical input must reproduce
// identical scores.
const (
	WeightFCP = 0.15
	WeightLCP = 0.25
	WeightCLS = 0.25
	WeightFID = 0.25
	WeightTTI = 0.05
	WeightSI  = 0.05
)

// Accessibility composite weights. Sum to 1.0.
const (
	WeightWCAGAA        = 0.30
	WeightKeyboardNav   = 0.25
	WeightScreenReader  = 0.25
	WeightColorContrast = 0.20
)

// SummarizeMetric folds a full sample list into a MetricSummary against the
// given threshold. Score is the fraction of samples at or below the
// threshold, not a continuous decay.
func SummarizeMetric(samples []float64, threshold float64) models.MetricSummary {
	passed := 0
	for _, v := range samples {
		if v <= threshold {
			passed++
		}
	}
	return models.MetricSummary{
		Median:    Median(samples),
		P95:       Percentile(samples, 95),
		Threshold: threshold,
		Passed:    passed,
		Total:     len(samples),
		Score:     Ratio(float64(passed), float64(len(samples))),
	}
}

// PerformanceScore computes the weighted Core Web Vitals composite.
// With all six per-metric scores in [0,1] the result is also in [0,1].
func PerformanceScore(v *models.CoreWebVitals) float64 {
	return v.FCP.Score*WeightFCP +
		v.LCP.Score*WeightLCP +
		v.CLS.Score*WeightCLS +
		v.FID.Score*WeightFID +
		v.TTI.Score*WeightTTI +
		v.SI.Score*WeightSI
}

// AccessibilityScore computes the weighted accessibility composite from the
// WCAG-AA pass fraction and the three sub-scores.
func AccessibilityScore(a *models.AccessibilitySummary) float64 {
	wcagAA := Ratio(float64(a.WCAG.AA.Passed), float64(a.WCAG.AA.Total))
	return wcagAA*WeightWCAGAA +
		a.KeyboardNav*WeightKeyboardNav +
		a.ScreenReader*WeightScreenReader +
		a.ColorContrast*WeightColorContrast
}

// DomainStatus derives a domain status from its counters: failed when any
// test failed, empty when nothing ran at all, passed otherwise.
func DomainStatus(total, failed int) models.Status {
	switch {
	case failed > 0:
		return models.StatusFailed
	case total == 0:
		return models.StatusEmpty
	default:
		return models.StatusPassed
	}
}
