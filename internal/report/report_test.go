package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stackmesa/qreport/internal/models"
)

func sampleConsolidated() *models.ConsolidatedSummary {
	return &models.ConsolidatedSummary{
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Overall: models.OverallSummary{
			TotalTests: 30, PassedTests: 28, FailedTests: 2,
			Status: models.StatusFailed, Score: 0.87, Grade: "B",
		},
		Performance: &models.PerformanceSummary{
			TotalTests: 10, PassedTests: 10, Status: models.StatusPassed,
			Score: 0.92, Grade: "A",
		},
		E2E: &models.E2ESummary{
			TotalTests: 20, PassedTests: 18, FailedTests: 2,
			Status: models.StatusFailed,
		},
		Issues: []models.Issue{
			{Title: "end-to-end failures", Description: "2 of 20 E2E tests failed", Severity: models.SeverityCritical, Category: "e2e"},
		},
		Recommendations: []models.Recommendation{
			{Title: "improve cache hit rate", Description: "add Cache-Control headers", Priority: models.PriorityMedium, Category: "performance"},
		},
	}
}

func TestWriteJSON_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", "summary.json")

	require.NoError(t, WriteJSON(path, sampleConsolidated()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(data, []byte("\n")))

	var round models.ConsolidatedSummary
	require.NoError(t, json.Unmarshal(data, &round))
	require.Equal(t, 30, round.Overall.TotalTests)
	require.Equal(t, "B", round.Overall.Grade)
}

func TestWriteJSON_SnakeCaseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, WriteJSON(path, sampleConsolidated()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"total_tests"`)
	require.Contains(t, string(data), `"e2e"`)
	require.NotContains(t, string(data), `"visual_regression"`, "nil domains are omitted")
	require.NotContains(t, string(data), `"totalTests"`)
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "bad.json"), make(chan int))
	require.Error(t, err)
	require.ErrorContains(t, err, "marshaling")
}

func TestRenderConsolidatedHTML(t *testing.T) {
	out, err := RenderConsolidatedHTML(sampleConsolidated())
	require.NoError(t, err)

	html := string(out)
	require.Contains(t, html, "<!DOCTYPE html>")
	require.Contains(t, html, "Consolidated Test Report")
	require.Contains(t, html, "Performance")
	require.Contains(t, html, "End-to-End")
	require.NotContains(t, html, "Accessibility</td>", "nil domains are left out of the table")
	require.Contains(t, html, "end-to-end failures")
	require.Contains(t, html, "improve cache hit rate")
}

func TestRenderPerformanceHTML(t *testing.T) {
	p := &models.PerformanceSummary{
		TotalTests: 5, PassedTests: 5, Status: models.StatusPassed,
		Score: 0.92, Grade: "A",
	}
	p.Vitals.LCP = models.MetricSummary{Median: 2100, P95: 2400, Threshold: 2500, Passed: 9, Total: 10, Score: 0.9}

	out, err := RenderPerformanceHTML(p)
	require.NoError(t, err)

	html := string(out)
	require.Contains(t, html, "Performance Report")
	require.Contains(t, html, "lcp")
	require.Contains(t, html, "2400")
}

func TestRenderAccessibilityHTML(t *testing.T) {
	a := &models.AccessibilitySummary{
		TotalTests: 8, PassedTests: 8, Status: models.StatusPassed,
		Score: 0.96, Grade: "A+",
	}
	a.WCAG.AA = models.ComplianceCount{Passed: 12, Total: 12}

	out, err := RenderAccessibilityHTML(a)
	require.NoError(t, err)

	html := string(out)
	require.Contains(t, html, "Accessibility Report")
	require.Contains(t, html, "12/12")
	require.Contains(t, html, "A+")
}

func TestFormatRunSummary(t *testing.T) {
	md := FormatRunSummary(sampleConsolidated())

	require.Contains(t, md, "## Test Run Summary")
	require.Contains(t, md, "❌ Failed")
	require.Contains(t, md, "| Performance | 10 | 10 | 0 | ✅ |")
	require.Contains(t, md, "| End-to-End | 20 | 18 | 2 | ❌ |")
	require.Contains(t, md, "### Issues")
	require.Contains(t, md, "### Recommendations")
	require.NotContains(t, md, "Visual Regression")
}

func TestFormatRunSummary_PassedWithoutAdvice(t *testing.T) {
	c := sampleConsolidated()
	c.Overall.Status = models.StatusPassed
	c.Issues = nil
	c.Recommendations = nil

	md := FormatRunSummary(c)
	require.Contains(t, md, "✅ Passed")
	require.NotContains(t, md, "### Issues")
	require.NotContains(t, md, "### Recommendations")
}

func TestWriteConsoleDigest(t *testing.T) {
	var buf bytes.Buffer
	WriteConsoleDigest(&buf, sampleConsolidated())

	out := buf.String()
	require.Contains(t, out, "=== Test Run Digest ===")
	require.Contains(t, out, "30 total, 28 passed, 2 failed")
	require.Contains(t, out, "Score:   0.87 (grade B)")
	require.Contains(t, out, "performance")
	require.Contains(t, out, "e2e")
	require.NotContains(t, out, "visual-regression")
	require.Contains(t, out, "Issues:  1")
}
