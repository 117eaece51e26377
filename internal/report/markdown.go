package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/stackmesa/qreport/internal/models"
)

// FormatRunSummary formats a consolidated summary as a markdown comment
// suitable for posting on a pull request.
func FormatRunSummary(c *models.ConsolidatedSummary) string {
	var b strings.Builder

	statusIcon := "✅ Passed"
	if c.Overall.Status == models.StatusFailed {
		statusIcon = "❌ Failed"
	}

	b.WriteString("## Test Run Summary\n\n")
	b.WriteString(fmt.Sprintf("**Status:** %s | **Score:** %.2f (%s)\n\n",
		statusIcon, c.Overall.Score, c.Overall.Grade))
	b.WriteString(fmt.Sprintf("- **Tests:** %d total, %d passed, %d failed, %d skipped\n",
		c.Overall.TotalTests, c.Overall.PassedTests, c.Overall.FailedTests, c.Overall.SkippedTests))

	b.WriteString("\n| Domain | Total | Passed | Failed | Status |\n")
	b.WriteString("|--------|-------|--------|--------|--------|\n")
	writeDomainRow := func(name string, total, passed, failed int, status models.Status) {
		icon := "✅"
		if status == models.StatusFailed {
			icon = "❌"
		} else if status == models.StatusEmpty {
			icon = "➖"
		}
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %s |\n", name, total, passed, failed, icon))
	}
	if p := c.Performance; p != nil {
		writeDomainRow("Performance", p.TotalTests, p.PassedTests, p.FailedTests, p.Status)
	}
	if a := c.Accessibility; a != nil {
		writeDomainRow("Accessibility", a.TotalTests, a.PassedTests, a.FailedTests, a.Status)
	}
	if e := c.E2E; e != nil {
		writeDomainRow("End-to-End", e.TotalTests, e.PassedTests, e.FailedTests, e.Status)
	}
	if v := c.Visual; v != nil {
		writeDomainRow("Visual Regression", v.TotalTests, v.PassedTests, v.FailedTests, v.Status)
	}

	if len(c.Issues) > 0 {
		b.WriteString("\n### Issues\n\n")
		for _, issue := range c.Issues {
			b.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", issue.Title, issue.Severity, issue.Description))
		}
	}
	if len(c.Recommendations) > 0 {
		b.WriteString("\n### Recommendations\n\n")
		for _, rec := range c.Recommendations {
			b.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", rec.Title, rec.Priority, rec.Description))
		}
	}

	return b.String()
}

// markdownNotes renders the markdown run summary to HTML for embedding in
// the consolidated report page. Returns an empty fragment on conversion
// failure; the notes block is cosmetic.
func markdownNotes(c *models.ConsolidatedSummary) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(FormatRunSummary(c)), &buf); err != nil {
		return ""
	}
	return template.HTML(buf.String()) //nolint:gosec // input is our own generated markdown
}
