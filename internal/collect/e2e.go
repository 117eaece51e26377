package collect

import (
	"context"

	"github.com/stackmesa/qreport/internal/aggregate"
	"github.com/stackmesa/qreport/internal/models"
)

// E2EPrefix matches e2e-*.json artifacts (Playwright JSON reporter output).
const E2EPrefix = "e2e-"

// e2eArtifact accepts both Playwright report shapes: the full report with
// nested suites and specs, and the reduced one that only carries stats.
type e2eArtifact struct {
	Suites []playwrightSuite `json:"suites"`
	Stats  *playwrightStats  `json:"stats"`
}

type playwrightSuite struct {
	Title  string            `json:"title"`
	Suites []playwrightSuite `json:"suites"`
	Specs  []playwrightSpec  `json:"specs"`
}

type playwrightSpec struct {
	Title string           `json:"title"`
	OK    bool             `json:"ok"`
	Tests []playwrightTest `json:"tests"`
}

type playwrightTest struct {
	ProjectName string `json:"projectName"`
	Status      string `json:"status"` // expected, unexpected, flaky, skipped
}

type playwrightStats struct {
	Expected   int     `json:"expected"`
	Unexpected int     `json:"unexpected"`
	Flaky      int     `json:"flaky"`
	Skipped    int     `json:"skipped"`
	Duration   float64 `json:"duration"` // milliseconds
}

type e2eAccumulator struct {
	summary models.E2ESummary
}

// E2E scans root for Playwright-shaped E2E artifacts and aggregates them.
func E2E(ctx context.Context, opts Options) (*models.E2ESummary, error) {
	acc := &e2eAccumulator{}
	acc.summary.Browsers = make(map[string]models.BrowserStats)

	folded, err := foldFiles(ctx, opts, E2EPrefix, acc.fold)
	if err != nil {
		return nil, err
	}
	acc.summary.FilesScanned = folded

	s := &acc.summary
	if len(s.Browsers) == 0 {
		s.Browsers = nil
	}
	s.Status = aggregate.DomainStatus(s.TotalTests, s.FailedTests)
	return s, nil
}

func (acc *e2eAccumulator) fold(a *e2eArtifact) {
	s := &acc.summary

	if a.Stats != nil {
		s.TotalTests += a.Stats.Expected + a.Stats.Unexpected + a.Stats.Flaky + a.Stats.Skipped
		s.PassedTests += a.Stats.Expected
		s.FailedTests += a.Stats.Unexpected
		s.FlakyTests += a.Stats.Flaky
		s.SkippedTests += a.Stats.Skipped
		s.DurationMs += int64(a.Stats.Duration)
	}

	for i := range a.Suites {
		acc.foldSuite(&a.Suites[i], a.Stats == nil)
	}
}

// foldSuite walks the suite tree. Counters are only folded from specs when
// the artifact carried no stats block, so files with both shapes are not
// double counted; the browser breakdown is always folded since stats carry
// no per-project data.
func (acc *e2eAccumulator) foldSuite(suite *playwrightSuite, countSpecs bool) {
	s := &acc.summary

	for _, spec := range suite.Specs {
		if countSpecs {
			s.TotalTests++
			if spec.OK {
				s.PassedTests++
			} else {
				s.FailedTests++
			}
		}
		for _, t := range spec.Tests {
			if countSpecs {
				switch t.Status {
				case "flaky":
					s.FlakyTests++
				case "skipped":
					s.SkippedTests++
				}
			}
			if t.ProjectName != "" {
				b := s.Browsers[t.ProjectName]
				b.Total++
				if spec.OK {
					b.Passed++
				} else {
					b.Failed++
				}
				s.Browsers[t.ProjectName] = b
			}
		}
	}

	for i := range suite.Suites {
		acc.foldSuite(&suite.Suites[i], countSpecs)
	}
}
