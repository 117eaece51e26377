package collect

import (
	"context"

	"github.com/stackmesa/qreport/internal/aggregate"
	"github.com/stackmesa/qreport/internal/grade"
	"github.com/stackmesa/qreport/internal/models"
)

// AccessibilityPrefix matches accessibility-*.json and
// accessibility-summary.json.
const AccessibilityPrefix = "accessibility-"

type a11yArtifact struct {
	TotalTests     int `json:"totalTests"`
	PassedTests    int `json:"passedTests"`
	FailedTests    int `json:"failedTests"`
	WCAGCompliance struct {
		AA  compliancePair `json:"aa"`
		AAA compliancePair `json:"aaa"`
	} `json:"wcagCompliance"`
	KeyboardNavigation  scoredCheck `json:"keyboardNavigation"`
	ScreenReaderSupport scoredCheck `json:"screenReaderSupport"`
	ColorContrast       scoredCheck `json:"colorContrast"`
	FocusManagement     scoredCheck `json:"focusManagement"`
	Violations          struct {
		Critical int `json:"critical"`
		Serious  int `json:"serious"`
		Moderate int `json:"moderate"`
		Minor    int `json:"minor"`
	} `json:"violations"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

type compliancePair struct {
	Passed int `json:"passed"`
	Total  int `json:"total"`
}

type scoredCheck struct {
	Score float64 `json:"score"`
}

type a11yAccumulator struct {
	summary     models.AccessibilitySummary
	sumKeyboard float64
	sumReader   float64
	sumContrast float64
	sumFocus    float64
}

// Accessibility scans root for accessibility artifacts and aggregates them.
func Accessibility(ctx context.Context, opts Options) (*models.AccessibilitySummary, error) {
	acc := &a11yAccumulator{}

	folded, err := foldFiles(ctx, opts, AccessibilityPrefix, acc.fold)
	if err != nil {
		return nil, err
	}
	acc.summary.FilesScanned = folded

	return acc.finalize(), nil
}

func (acc *a11yAccumulator) fold(a *a11yArtifact) {
	s := &acc.summary
	s.TotalTests += a.TotalTests
	s.PassedTests += a.PassedTests
	s.FailedTests += a.FailedTests

	s.WCAG.AA.Passed += a.WCAGCompliance.AA.Passed
	s.WCAG.AA.Total += a.WCAGCompliance.AA.Total
	s.WCAG.AAA.Passed += a.WCAGCompliance.AAA.Passed
	s.WCAG.AAA.Total += a.WCAGCompliance.AAA.Total

	acc.sumKeyboard += a.KeyboardNavigation.Score
	acc.sumReader += a.ScreenReaderSupport.Score
	acc.sumContrast += a.ColorContrast.Score
	acc.sumFocus += a.FocusManagement.Score

	s.Violations.Critical += a.Violations.Critical
	s.Violations.Serious += a.Violations.Serious
	s.Violations.Moderate += a.Violations.Moderate
	s.Violations.Minor += a.Violations.Minor

	s.Recommendations = append(s.Recommendations, a.Recommendations...)
}

func (acc *a11yAccumulator) finalize() *models.AccessibilitySummary {
	s := &acc.summary
	n := float64(s.FilesScanned)

	// Sub-scores are per-file averages, same simplification as the resource
	// rates in the performance summary.
	s.KeyboardNav = aggregate.Ratio(acc.sumKeyboard, n)
	s.ScreenReader = aggregate.Ratio(acc.sumReader, n)
	s.ColorContrast = aggregate.Ratio(acc.sumContrast, n)
	s.FocusManagement = aggregate.Ratio(acc.sumFocus, n)

	s.Score = aggregate.AccessibilityScore(s)
	s.Grade = grade.FineLetter(s.Score)
	s.Status = aggregate.DomainStatus(s.TotalTests, s.FailedTests)

	s.Recommendations = append(s.Recommendations, aggregate.AccessibilityAdvice(s)...)

	return s
}
