// Package cisummary projects a consolidated summary down to the minimal
// scalar artifact consumed by CI gating.
package cisummary

import (
	"fmt"
	"os"

	"github.com/stackmesa/qreport/internal/models"
	"github.com/stackmesa/qreport/internal/report"
)

// Summary is the reduced CI artifact. It contains only scalar fields, no
// issue lists or per-page results, so the shape stays small and stable for
// downstream gate scripts.
type Summary struct {
	Status             models.Status      `json:"status"`
	TotalTests         int                `json:"total_tests"`
	PassedTests        int                `json:"passed_tests"`
	FailedTests        int                `json:"failed_tests"`
	SkippedTests       int                `json:"skipped_tests"`
	OverallScore       float64            `json:"overall_score"`
	OverallGrade       string             `json:"overall_grade"`
	PerformanceScore   float64            `json:"performance_score,omitempty"`
	AccessibilityScore float64            `json:"accessibility_score,omitempty"`
	Metadata           models.RunMetadata `json:"metadata"`
}

// FromConsolidated builds the reduced summary, attaching CI metadata from
// env.
func FromConsolidated(c *models.ConsolidatedSummary) Summary {
	s := Summary{
		Status:       c.Overall.Status,
		TotalTests:   c.Overall.TotalTests,
		PassedTests:  c.Overall.PassedTests,
		FailedTests:  c.Overall.FailedTests,
		SkippedTests: c.Overall.SkippedTests,
		OverallScore: c.Overall.Score,
		OverallGrade: c.Overall.Grade,
		Metadata:     c.Metadata,
	}
	if c.Performance != nil {
		s.PerformanceScore = c.Performance.Score
	}
	if c.Accessibility != nil {
		s.AccessibilityScore = c.Accessibility.Score
	}
	return s
}

// Write emits the reduced summary to path.
func Write(path string, c *models.ConsolidatedSummary) error {
	return report.WriteJSON(path, FromConsolidated(c))
}

// MetadataFromEnv reads the GitHub Actions environment into RunMetadata.
// The variables populate descriptive fields only; no behavior branches on
// them. Unset variables leave their fields empty.
func MetadataFromEnv() models.RunMetadata {
	m := models.RunMetadata{
		RunID:      os.Getenv("GITHUB_RUN_ID"),
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		Branch:     os.Getenv("GITHUB_REF_NAME"),
		Commit:     os.Getenv("GITHUB_SHA"),
		Actor:      os.Getenv("GITHUB_ACTOR"),
		Event:      os.Getenv("GITHUB_EVENT_NAME"),
	}
	if server := os.Getenv("GITHUB_SERVER_URL"); server != "" && m.Repository != "" && m.RunID != "" {
		m.RunURL = fmt.Sprintf("%s/%s/actions/runs/%s", server, m.Repository, m.RunID)
	}
	return m
}
