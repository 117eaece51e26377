package aggregate

import (
	"time"

	"github.com/stackmesa/qreport/internal/grade"
	"github.com/stackmesa/qreport/internal/models"
)

// Consolidate merges the per-domain summaries into one ConsolidatedSummary.
// Nil domains are left out of the totals. Invariants held here:
// overall.TotalTests equals the sum of domain totals, and overall.Status is
// failed exactly when at least one domain status is failed.
func Consolidate(perf *models.PerformanceSummary, a11y *models.AccessibilitySummary, e2e *models.E2ESummary, vis *models.VisualSummary) *models.ConsolidatedSummary {
	c := &models.ConsolidatedSummary{
		Timestamp:     time.Now().UTC(),
		Performance:   perf,
		Accessibility: a11y,
		E2E:           e2e,
		Visual:        vis,
	}

	var scores []float64
	failed := false

	if perf != nil {
		c.Overall.TotalTests += perf.TotalTests
		c.Overall.PassedTests += perf.PassedTests
		c.Overall.FailedTests += perf.FailedTests
		c.Overall.SkippedTests += perf.SkippedTests
		failed = failed || perf.Status == models.StatusFailed
		if perf.Status != models.StatusEmpty {
			scores = append(scores, perf.Score)
		}
		c.Issues = append(c.Issues, perf.Issues...)
		c.Recommendations = append(c.Recommendations, perf.Recommendations...)
	}
	if a11y != nil {
		c.Overall.TotalTests += a11y.TotalTests
		c.Overall.PassedTests += a11y.PassedTests
		c.Overall.FailedTests += a11y.FailedTests
		failed = failed || a11y.Status == models.StatusFailed
		if a11y.Status != models.StatusEmpty {
			scores = append(scores, a11y.Score)
		}
		c.Recommendations = append(c.Recommendations, a11y.Recommendations...)
	}
	if e2e != nil {
		c.Overall.TotalTests += e2e.TotalTests
		c.Overall.PassedTests += e2e.PassedTests
		c.Overall.FailedTests += e2e.FailedTests
		c.Overall.SkippedTests += e2e.SkippedTests
		failed = failed || e2e.Status == models.StatusFailed
		if e2e.Status != models.StatusEmpty {
			scores = append(scores, Ratio(float64(e2e.PassedTests), float64(e2e.TotalTests)))
		}
	}
	if vis != nil {
		c.Overall.TotalTests += vis.TotalTests
		c.Overall.PassedTests += vis.PassedTests
		c.Overall.FailedTests += vis.FailedTests
		failed = failed || vis.Status == models.StatusFailed
		if vis.Status != models.StatusEmpty {
			scores = append(scores, Ratio(float64(vis.PassedTests), float64(vis.TotalTests)))
		}
	}

	c.Overall.Score = Mean(scores)
	c.Overall.Grade = grade.Letter(c.Overall.Score)
	if failed {
		c.Overall.Status = models.StatusFailed
	} else if c.Overall.TotalTests == 0 {
		c.Overall.Status = models.StatusEmpty
	} else {
		c.Overall.Status = models.StatusPassed
	}

	c.Issues = append(c.Issues, CrossDomainIssues(c)...)
	c.Recommendations = append(c.Recommendations, CrossDomainRecommendations(c)...)

	return c
}
