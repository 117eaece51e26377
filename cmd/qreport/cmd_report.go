package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackmesa/qreport/internal/config"
	"github.com/stackmesa/qreport/internal/models"
	"github.com/stackmesa/qreport/internal/report"
	"github.com/stackmesa/qreport/internal/schema"
	"github.com/stackmesa/qreport/internal/webserver"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Work with generated reports",
	}

	cmd.AddCommand(newReportGenerateCommand())
	cmd.AddCommand(newReportStatsCommand())
	cmd.AddCommand(newReportValidateCommand())
	cmd.AddCommand(newReportOpenCommand())

	return cmd
}

// loadConsolidated reads a previously written test-summary.json.
func loadConsolidated(path string) (*models.ConsolidatedSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading summary: %w", err)
	}
	var c models.ConsolidatedSummary
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing summary %s: %w", path, err)
	}
	return &c, nil
}

func newReportGenerateCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate <test-summary.json>",
		Short: "Re-render the HTML report from an existing summary",
		Long: `Render consolidated-report/index.html from a previously written
test-summary.json. The JSON is authoritative; this only re-derives the HTML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConsolidated(args[0])
			if err != nil {
				return err
			}
			html, err := report.RenderConsolidatedHTML(c)
			if err != nil {
				return err
			}
			out := filepath.Join(outputDir, "consolidated-report", "index.html")
			if err := report.WriteFile(out, html); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory for the generated report")

	return cmd
}

func newReportStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <test-summary.json>",
		Short: "Print a console digest of an existing summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConsolidated(args[0])
			if err != nil {
				return err
			}
			report.WriteConsoleDigest(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func newReportValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <artifact.json> [artifact.json ...]",
		Short: "Validate artifact files against their JSON Schemas",
		Long: `Check artifact files against the embedded schema for their kind
(inferred from the filename prefix). The collectors themselves stay lenient;
this surfaces malformed input that would otherwise silently fold as zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid := 0
			for _, path := range args {
				kind := schema.KindForFile(filepath.Base(path))
				if kind == "" {
					fmt.Fprintf(out, "%s: no schema for this artifact kind, skipped\n", path)
					continue
				}
				failures, err := schema.ValidateFile(path, kind)
				if err != nil {
					return err
				}
				if len(failures) == 0 {
					fmt.Fprintf(out, "%s: ok\n", path)
					continue
				}
				invalid++
				fmt.Fprintf(out, "%s: INVALID\n  %s\n", path, strings.Join(failures, "\n  "))
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d artifacts failed validation", invalid, len(args))
			}
			return nil
		},
	}
}

func newReportOpenCommand() *cobra.Command {
	var (
		port      int
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "open [report-dir]",
		Short: "Serve the report directory over HTTP and open a browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if port == 0 {
				cfg, err := config.FindAndLoad(dir)
				if err != nil {
					return err
				}
				port = cfg.ServerPort
			}

			srv := webserver.New(webserver.Config{
				Port:      port,
				ReportDir: dir,
				NoBrowser: noBrowser,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to serve on (defaults to config server_port)")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open a browser")

	return cmd
}
