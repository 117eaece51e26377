package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stackmesa/qreport/internal/collect"
	"github.com/stackmesa/qreport/internal/config"
	"github.com/stackmesa/qreport/internal/report"
)

func newPerformanceCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "performance [artifacts-dir]",
		Short: "Aggregate performance artifacts only",
		Long: `Scan a directory for performance-*.json artifacts and write
performance-summary.json and performance-report/index.html.`,
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

			p, err := collect.Performance(cmd.Context(), collect.Options{
				Root:       root,
				Thresholds: cfg.Thresholds,
			})
			if err != nil {
				return err
			}

			if err := report.WriteJSON(filepath.Join(outputDir, "performance-summary.json"), p); err != nil {
				return err
			}
			html, err := report.RenderPerformanceHTML(p)
			if err != nil {
				return err
			}
			if err := report.WriteFile(filepath.Join(outputDir, "performance-report", "index.html"), html); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "performance: %d tests, score %.2f (%s), %d files scanned\n",
				p.TotalTests, p.Score, p.Grade, p.FilesScanned)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for generated reports (defaults to config output_dir)")

	return cmd
}
