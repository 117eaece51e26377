package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stackmesa/qreport/internal/collect"
	"github.com/stackmesa/qreport/internal/config"
	"github.com/stackmesa/qreport/internal/report"
)

func newAccessibilityCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "accessibility [artifacts-dir]",
		Short: "Aggregate accessibility artifacts only",
		Long: `Scan a directory for accessibility-*.json artifacts and write
accessibility-summary.json and accessibility-report/index.html.`,
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

			a, err := collect.Accessibility(cmd.Context(), collect.Options{
				Root:       root,
				Thresholds: cfg.Thresholds,
			})
			if err != nil {
				return err
			}

			if err := report.WriteJSON(filepath.Join(outputDir, "accessibility-summary.json"), a); err != nil {
				return err
			}
			html, err := report.RenderAccessibilityHTML(a)
			if err != nil {
				return err
			}
			if err := report.WriteFile(filepath.Join(outputDir, "accessibility-report", "index.html"), html); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "accessibility: %d tests, score %.2f (%s), %d files scanned\n",
				a.TotalTests, a.Score, a.Grade, a.FilesScanned)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for generated reports (defaults to config output_dir)")

	return cmd
}
