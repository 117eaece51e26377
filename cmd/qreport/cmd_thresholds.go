package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stackmesa/qreport/internal/config"
	"github.com/stackmesa/qreport/internal/wizard"
)

func newThresholdsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Inspect or edit Core Web Vitals thresholds",
	}

	cmd.AddCommand(newThresholdsShowCommand())
	cmd.AddCommand(newThresholdsSetCommand())

	return cmd
}

func newThresholdsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FindAndLoad(".")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range []string{"fcp", "lcp", "cls", "fid", "tti", "si"} {
				fmt.Fprintf(out, "%-4s %g\n", name, cfg.Thresholds.ByName()[name])
			}
			return nil
		},
	}
}

func newThresholdsSetCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Interactively edit thresholds and save .qreport.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FindAndLoad(dir)
			if err != nil {
				return err
			}

			updated, err := wizard.RunThresholdWizard(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Thresholds)
			if err != nil {
				return err
			}
			cfg.Thresholds = updated

			path := filepath.Join(dir, config.ConfigFileName)
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write the config file in")

	return cmd
}
