package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stackmesa/qreport/internal/aggregate"
	"github.com/stackmesa/qreport/internal/cisummary"
	"github.com/stackmesa/qreport/internal/collect"
	"github.com/stackmesa/qreport/internal/config"
	"github.com/stackmesa/qreport/internal/models"
	"github.com/stackmesa/qreport/internal/report"
)

func newAggregateCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "aggregate [artifacts-dir]",
		Short: "Aggregate all test artifacts into a consolidated report",
		Long: `Scan a directory for performance, accessibility, E2E and
visual-regression artifacts, consolidate them, and write test-summary.json,
consolidated-report/index.html and ci-summary.json.

Exits 1 when a configured CI gate is violated, 2 on runtime errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := config.FindAndLoad(root)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}

			c, err := collect.All(cmd.Context(), collect.Options{
				Root:       root,
				Thresholds: cfg.Thresholds,
			})
			if err != nil {
				return err
			}
			c.Metadata = cisummary.MetadataFromEnv()

			if err := report.WriteJSON(filepath.Join(outputDir, "test-summary.json"), c); err != nil {
				return err
			}
			html, err := report.RenderConsolidatedHTML(c)
			if err != nil {
				return err
			}
			if err := report.WriteFile(filepath.Join(outputDir, "consolidated-report", "index.html"), html); err != nil {
				return err
			}
			if err := cisummary.Write(filepath.Join(outputDir, "ci-summary.json"), c); err != nil {
				return err
			}

			report.WriteConsoleDigest(cmd.OutOrStdout(), c)

			return checkGates(cfg, c)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for generated reports (defaults to config output_dir)")

	return cmd
}

// checkGates applies the configured per-domain CI gates to the consolidated
// results. The first violated gate is returned as a GateFailureError.
func checkGates(cfg *config.Config, c *models.ConsolidatedSummary) error {
	type domainResult struct {
		score  float64
		failed int
	}
	results := map[string]domainResult{
		"overall": {c.Overall.Score, c.Overall.FailedTests},
	}
	if c.Performance != nil {
		results["performance"] = domainResult{c.Performance.Score, c.Performance.FailedTests}
	}
	if c.Accessibility != nil {
		results["accessibility"] = domainResult{c.Accessibility.Score, c.Accessibility.FailedTests}
	}
	if c.E2E != nil {
		rate := aggregate.Ratio(float64(c.E2E.PassedTests), float64(c.E2E.TotalTests))
		results["e2e"] = domainResult{rate, c.E2E.FailedTests}
	}
	if c.Visual != nil {
		rate := aggregate.Ratio(float64(c.Visual.PassedTests), float64(c.Visual.TotalTests))
		results["visual"] = domainResult{rate, c.Visual.FailedTests}
	}

	for _, domain := range []string{"overall", "performance", "accessibility", "e2e", "visual"} {
		r, ok := results[domain]
		if !ok {
			continue
		}
		gate, err := cfg.GateFor(domain)
		if err != nil {
			return err
		}
		if gate == nil {
			continue
		}
		if gate.MinScore > 0 && r.score < gate.MinScore {
			return &GateFailureError{
				Message: fmt.Sprintf("gate failed: %s score %.2f below minimum %.2f", domain, r.score, gate.MinScore),
			}
		}
		if gate.MaxFailed != nil && r.failed > *gate.MaxFailed {
			return &GateFailureError{
				Message: fmt.Sprintf("gate failed: %s has %d failed tests (max %d)", domain, r.failed, *gate.MaxFailed),
			}
		}
	}
	return nil
}
