package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stackmesa/qreport/internal/models"
)

// WriteConsoleDigest prints a human-readable run digest. Machine consumers
// must rely on the JSON outputs, never on this text.
func WriteConsoleDigest(w io.Writer, c *models.ConsolidatedSummary) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, "=== Test Run Digest ===")
	p.Fprintf(w, "Tests:   %d total, %d passed, %d failed, %d skipped\n",
		c.Overall.TotalTests, c.Overall.PassedTests, c.Overall.FailedTests, c.Overall.SkippedTests)
	fmt.Fprintf(w, "Score:   %.2f (grade %s)\n", c.Overall.Score, c.Overall.Grade)
	fmt.Fprintf(w, "Status:  %s\n", c.Overall.Status)

	writeDomain := func(name string, total, passed, failed int, status models.Status) {
		p.Fprintf(w, "  %-18s %d total, %d passed, %d failed (%s)\n", name, total, passed, failed, status)
	}
	fmt.Fprintln(w, "Domains:")
	if d := c.Performance; d != nil {
		writeDomain("performance", d.TotalTests, d.PassedTests, d.FailedTests, d.Status)
	}
	if d := c.Accessibility; d != nil {
		writeDomain("accessibility", d.TotalTests, d.PassedTests, d.FailedTests, d.Status)
	}
	if d := c.E2E; d != nil {
		writeDomain("e2e", d.TotalTests, d.PassedTests, d.FailedTests, d.Status)
	}
	if d := c.Visual; d != nil {
		writeDomain("visual-regression", d.TotalTests, d.PassedTests, d.FailedTests, d.Status)
	}

	if n := len(c.Issues); n > 0 {
		p.Fprintf(w, "Issues:  %d\n", n)
	}
	if n := len(c.Recommendations); n > 0 {
		p.Fprintf(w, "Recommendations: %d\n", n)
	}
}
