package aggregate

import (
	"fmt"

	"github.com/stackmesa/qreport/internal/models"
)

// Thresholds for advice generation. These gate Issue/Recommendation
// creation only; they do not affect scores.
const (
	adviceScoreFloor   = 0.70
	adviceFlakyCeiling = 0
)

// PerformanceAdvice derives issues and recommendations from a finished
// performance summary. A zero request count with scanned files present is
// surfaced as an issue so the guarded zero ratio (see Ratio) stays visible
// instead of silently reading as a perfect or empty rate.
func PerformanceAdvice(p *models.PerformanceSummary) ([]models.Issue, []models.Recommendation) {
	var issues []models.Issue
	var recs []models.Recommendation

	for name, m := range p.Vitals.ByName() {
		if m.Total == 0 {
			continue
		}
		if m.Score < adviceScoreFloor {
			issues = append(issues, models.Issue{
				Title:       fmt.Sprintf("%s exceeds threshold", name),
				Description: fmt.Sprintf("%d of %d samples for %s were above the %.0f threshold (p95=%.0f)", m.Total-m.Passed, m.Total, name, m.Threshold, m.P95),
				Severity:    models.SeverityHigh,
				Category:    "performance",
			})
		}
	}

	if p.FilesScanned > 0 && p.Resources.TotalRequests == 0 {
		issues = append(issues, models.Issue{
			Title:       "no resource requests recorded",
			Description: "performance artifacts were scanned but reported zero network requests; cache-hit and compression rates default to 0",
			Severity:    models.SeverityMedium,
			Category:    "performance",
		})
	}

	if p.Resources.TotalRequests > 0 && p.Resources.CacheHitRate < 0.5 {
		recs = append(recs, models.Recommendation{
			Title:       "improve cache hit rate",
			Description: fmt.Sprintf("average cache hit rate is %.0f%%; add long-lived Cache-Control headers for static assets", p.Resources.CacheHitRate*100),
			Priority:    models.PriorityMedium,
			Category:    "performance",
		})
	}

	if p.Score < adviceScoreFloor && p.TotalTests > 0 {
		recs = append(recs, models.Recommendation{
			Title:       "performance composite below target",
			Description: fmt.Sprintf("composite score %.2f is below %.2f; LCP, CLS and FID carry the largest weights", p.Score, adviceScoreFloor),
			Priority:    models.PriorityHigh,
			Category:    "performance",
		})
	}

	return issues, recs
}

// AccessibilityAdvice derives recommendations from a finished accessibility
// summary.
func AccessibilityAdvice(a *models.AccessibilitySummary) []models.Recommendation {
	var recs []models.Recommendation

	if a.Violations.Critical > 0 {
		recs = append(recs, models.Recommendation{
			Title:       "fix critical accessibility violations",
			Description: fmt.Sprintf("%d critical violations block assistive-technology users", a.Violations.Critical),
			Priority:    models.PriorityHigh,
			Category:    "accessibility",
		})
	}
	if a.KeyboardNav < adviceScoreFloor && a.FilesScanned > 0 {
		recs = append(recs, models.Recommendation{
			Title:       "improve keyboard navigation",
			Description: fmt.Sprintf("keyboard navigation score is %.2f; ensure all interactive elements are reachable by Tab", a.KeyboardNav),
			Priority:    models.PriorityMedium,
			Category:    "accessibility",
		})
	}
	if a.WCAG.AA.Total > 0 && a.WCAG.AA.Passed < a.WCAG.AA.Total {
		recs = append(recs, models.Recommendation{
			Title:       "WCAG AA compliance incomplete",
			Description: fmt.Sprintf("%d of %d AA checks passed", a.WCAG.AA.Passed, a.WCAG.AA.Total),
			Priority:    models.PriorityHigh,
			Category:    "accessibility",
		})
	}

	return recs
}

// CrossDomainIssues inspects the consolidated summary for problems that span
// domains.
func CrossDomainIssues(c *models.ConsolidatedSummary) []models.Issue {
	var issues []models.Issue

	if c.E2E != nil && c.E2E.FailedTests > 0 {
		issues = append(issues, models.Issue{
			Title:       "end-to-end failures",
			Description: fmt.Sprintf("%d of %d E2E tests failed", c.E2E.FailedTests, c.E2E.TotalTests),
			Severity:    models.SeverityCritical,
			Category:    "e2e",
		})
	}
	if c.Visual != nil && c.Visual.Differences > 0 {
		issues = append(issues, models.Issue{
			Title:       "visual differences detected",
			Description: fmt.Sprintf("%d screenshots differ from their baselines", c.Visual.Differences),
			Severity:    models.SeverityMedium,
			Category:    "visual-regression",
		})
	}

	return issues
}

// CrossDomainRecommendations inspects the consolidated summary for follow-ups
// that only make sense with the full picture.
func CrossDomainRecommendations(c *models.ConsolidatedSummary) []models.Recommendation {
	var recs []models.Recommendation

	if c.E2E != nil && c.E2E.FlakyTests > adviceFlakyCeiling {
		recs = append(recs, models.Recommendation{
			Title:       "investigate flaky E2E tests",
			Description: fmt.Sprintf("%d tests passed only on retry; stabilize before tightening CI gates", c.E2E.FlakyTests),
			Priority:    models.PriorityMedium,
			Category:    "e2e",
		})
	}
	if c.Visual != nil && c.Visual.NewScreenshots > 0 {
		recs = append(recs, models.Recommendation{
			Title:       "review new screenshots",
			Description: fmt.Sprintf("%d screenshots have no baseline yet and were recorded as new", c.Visual.NewScreenshots),
			Priority:    models.PriorityLow,
			Category:    "visual-regression",
		})
	}

	return recs
}
