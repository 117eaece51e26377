package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qreport",
		Short: "qreport - aggregate browser-test artifacts into scored reports",
		Long: `qreport scans a directory of JSON test artifacts (performance,
accessibility, end-to-end, visual regression), aggregates them into scored
summaries, and writes JSON and HTML reports plus a reduced CI gate summary.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newAggregateCommand())
	cmd.AddCommand(newPerformanceCommand())
	cmd.AddCommand(newAccessibilityCommand())
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newThresholdsCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
