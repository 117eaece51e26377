package collect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stackmesa/qreport/internal/models"
)

func TestAccessibility_Aggregates(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "accessibility-home.json", `{
		"totalTests": 10, "passedTests": 9, "failedTests": 1,
		"wcagCompliance": {"aa": {"passed": 18, "total": 20}, "aaa": {"passed": 5, "total": 10}},
		"keyboardNavigation": {"score": 0.9},
		"screenReaderSupport": {"score": 0.8},
		"colorContrast": {"score": 1.0},
		"focusManagement": {"score": 0.7},
		"violations": {"critical": 1, "serious": 2, "moderate": 0, "minor": 4}
	}`)
	writeArtifact(t, dir, "accessibility-forms.json", `{
		"totalTests": 4, "passedTests": 4,
		"wcagCompliance": {"aa": {"passed": 10, "total": 10}},
		"keyboardNavigation": {"score": 0.7},
		"screenReaderSupport": {"score": 1.0},
		"colorContrast": {"score": 0.8},
		"focusManagement": {"score": 0.9}
	}`)

	a, err := Accessibility(context.Background(), defaultOpts(dir))
	require.NoError(t, err)

	require.Equal(t, 14, a.TotalTests)
	require.Equal(t, 1, a.FailedTests)
	require.Equal(t, models.StatusFailed, a.Status)

	require.Equal(t, 28, a.WCAG.AA.Passed)
	require.Equal(t, 30, a.WCAG.AA.Total)

	// Per-file averages of the sub-scores.
	require.InDelta(t, 0.8, a.KeyboardNav, 1e-9)
	require.InDelta(t, 0.9, a.ScreenReader, 1e-9)
	require.InDelta(t, 0.9, a.ColorContrast, 1e-9)
	require.InDelta(t, 0.8, a.FocusManagement, 1e-9)

	require.Equal(t, 1, a.Violations.Critical)
	require.Equal(t, 7, a.Violations.Total())

	// 9-tier grade for accessibility.
	require.Contains(t, []string{"A+", "A", "B+", "B", "C+", "C", "D+", "D", "F"}, a.Grade)

	// Critical violations must surface as a recommendation.
	var found bool
	for _, rec := range a.Recommendations {
		if rec.Title == "fix critical accessibility violations" {
			found = true
		}
	}
	require.True(t, found)
}

func TestAccessibility_EmptyDirectory(t *testing.T) {
	a, err := Accessibility(context.Background(), defaultOpts(t.TempDir()))
	require.NoError(t, err)
	require.Equal(t, 0, a.FilesScanned)
	require.Equal(t, models.StatusEmpty, a.Status)
	require.Equal(t, 0.0, a.Score)
}
