package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/stackmesa/qreport/internal/grade"
	"github.com/stackmesa/qreport/internal/models"
)

// Badge is a colored label rendered as a pill in the report header.
type Badge struct {
	Text  string
	Color string
}

// Card is one stat card in the overview grid.
type Card struct {
	Label    string
	Value    string
	Subtitle string
}

// MetricRow is one row of the Core Web Vitals table.
type MetricRow struct {
	Name      string
	Median    float64
	P95       float64
	Threshold float64
	Passed    int
	Total     int
	Score     float64
}

// consolidatedView is the typed input for the consolidated report template.
type consolidatedView struct {
	Title           string
	Generated       string
	StatusBadge     Badge
	GradeBadge      Badge
	Cards           []Card
	Domains         []domainRow
	Issues          []models.Issue
	Recommendations []models.Recommendation
	Artifacts       models.ArtifactIndex
	Metadata        models.RunMetadata
	Notes           template.HTML
}

type domainRow struct {
	Name   string
	Total  int
	Passed int
	Failed int
	Status models.Status
	Color  string
	Score  string
}

// performanceView is the typed input for the performance report template.
type performanceView struct {
	Title       string
	Generated   string
	StatusBadge Badge
	GradeBadge  Badge
	Cards       []Card
	Metrics     []MetricRow
	Issues      []models.Issue
}

// accessibilityView is the typed input for the accessibility report template.
type accessibilityView struct {
	Title           string
	Generated       string
	StatusBadge     Badge
	GradeBadge      Badge
	Cards           []Card
	Recommendations []models.Recommendation
}

func statusBadge(s models.Status) Badge {
	return Badge{Text: string(s), Color: grade.StatusColor(s)}
}

func gradeBadge(letter string) Badge {
	return Badge{Text: letter, Color: grade.Color(letter)}
}

// RenderConsolidatedHTML renders the consolidated summary as a standalone
// HTML document.
func RenderConsolidatedHTML(c *models.ConsolidatedSummary) ([]byte, error) {
	view := consolidatedView{
		Title:           "Consolidated Test Report",
		Generated:       c.Timestamp.Format(time.RFC3339),
		StatusBadge:     statusBadge(c.Overall.Status),
		GradeBadge:      gradeBadge(c.Overall.Grade),
		Issues:          c.Issues,
		Recommendations: c.Recommendations,
		Artifacts:       c.Artifacts,
		Metadata:        c.Metadata,
		Notes:           markdownNotes(c),
		Cards: []Card{
			{Label: "Total Tests", Value: fmt.Sprintf("%d", c.Overall.TotalTests)},
			{Label: "Passed", Value: fmt.Sprintf("%d", c.Overall.PassedTests)},
			{Label: "Failed", Value: fmt.Sprintf("%d", c.Overall.FailedTests)},
			{Label: "Overall Score", Value: fmt.Sprintf("%.2f", c.Overall.Score), Subtitle: "grade " + c.Overall.Grade},
		},
	}

	if p := c.Performance; p != nil {
		view.Domains = append(view.Domains, domainRow{
			Name: "Performance", Total: p.TotalTests, Passed: p.PassedTests, Failed: p.FailedTests,
			Status: p.Status, Color: grade.StatusColor(p.Status), Score: fmt.Sprintf("%.2f (%s)", p.Score, p.Grade),
		})
	}
	if a := c.Accessibility; a != nil {
		view.Domains = append(view.Domains, domainRow{
			Name: "Accessibility", Total: a.TotalTests, Passed: a.PassedTests, Failed: a.FailedTests,
			Status: a.Status, Color: grade.StatusColor(a.Status), Score: fmt.Sprintf("%.2f (%s)", a.Score, a.Grade),
		})
	}
	if e := c.E2E; e != nil {
		view.Domains = append(view.Domains, domainRow{
			Name: "End-to-End", Total: e.TotalTests, Passed: e.PassedTests, Failed: e.FailedTests,
			Status: e.Status, Color: grade.StatusColor(e.Status), Score: "—",
		})
	}
	if v := c.Visual; v != nil {
		view.Domains = append(view.Domains, domainRow{
			Name: "Visual Regression", Total: v.TotalTests, Passed: v.PassedTests, Failed: v.FailedTests,
			Status: v.Status, Color: grade.StatusColor(v.Status), Score: "—",
		})
	}

	return execute("consolidated", view)
}

// RenderPerformanceHTML renders the performance summary as a standalone
// HTML document.
func RenderPerformanceHTML(p *models.PerformanceSummary) ([]byte, error) {
	view := performanceView{
		Title:       "Performance Report",
		Generated:   time.Now().UTC().Format(time.RFC3339),
		StatusBadge: statusBadge(p.Status),
		GradeBadge:  gradeBadge(p.Grade),
		Issues:      p.Issues,
		Cards: []Card{
			{Label: "Tests", Value: fmt.Sprintf("%d", p.TotalTests), Subtitle: fmt.Sprintf("%d passed / %d failed", p.PassedTests, p.FailedTests)},
			{Label: "Composite Score", Value: fmt.Sprintf("%.2f", p.Score), Subtitle: "grade " + p.Grade},
			{Label: "Avg Load Time", Value: fmt.Sprintf("%.0f ms", p.Pages.AvgLoadTimeMs), Subtitle: fmt.Sprintf("max %.0f ms", p.Pages.MaxLoadTimeMs)},
			{Label: "Cache Hit Rate", Value: fmt.Sprintf("%.0f%%", p.Resources.CacheHitRate*100), Subtitle: fmt.Sprintf("%d requests", p.Resources.TotalRequests)},
		},
	}

	for _, name := range []string{"fcp", "lcp", "cls", "fid", "tti", "si"} {
		m := p.Vitals.ByName()[name]
		view.Metrics = append(view.Metrics, MetricRow{
			Name: name, Median: m.Median, P95: m.P95, Threshold: m.Threshold,
			Passed: m.Passed, Total: m.Total, Score: m.Score,
		})
	}

	return execute("performance", view)
}

// RenderAccessibilityHTML renders the accessibility summary as a standalone
// HTML document.
func RenderAccessibilityHTML(a *models.AccessibilitySummary) ([]byte, error) {
	view := accessibilityView{
		Title:           "Accessibility Report",
		Generated:       time.Now().UTC().Format(time.RFC3339),
		StatusBadge:     statusBadge(a.Status),
		GradeBadge:      gradeBadge(a.Grade),
		Recommendations: a.Recommendations,
		Cards: []Card{
			{Label: "Tests", Value: fmt.Sprintf("%d", a.TotalTests), Subtitle: fmt.Sprintf("%d passed / %d failed", a.PassedTests, a.FailedTests)},
			{Label: "Composite Score", Value: fmt.Sprintf("%.2f", a.Score), Subtitle: "grade " + a.Grade},
			{Label: "WCAG AA", Value: fmt.Sprintf("%d/%d", a.WCAG.AA.Passed, a.WCAG.AA.Total)},
			{Label: "Violations", Value: fmt.Sprintf("%d", a.Violations.Total()), Subtitle: fmt.Sprintf("%d critical", a.Violations.Critical)},
		},
	}

	return execute("accessibility", view)
}

func execute(name string, view any) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, view); err != nil {
		return nil, fmt.Errorf("rendering %s report: %w", name, err)
	}
	return buf.Bytes(), nil
}
