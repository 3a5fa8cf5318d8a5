package main

import (
	"fmt"
	"stalepr/internal/config"
	"stalepr/internal/digest"
	"stalepr/pkg/ghactions"
	"stalepr/pkg/reports"

	"github.com/spf13/cobra"
)

// previewCommand constructs the 'preview' subcommand. It runs the same
// pipeline as 'digest' but prints the summary and outputs to stdout, so it
// works outside of a GitHub Actions runner.
func previewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [limit]",
		Short: "Prints the stale PR digest to stdout",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			_, err := digest.Run(cmd.Context(), reports.NewGlob(inputPattern(cmd, cfg)), digest.Sinks{
				Summary: ghactions.NewSummary(out),
				Outputs: ghactions.NewOutputs(out),
			}, digest.ParseLimit(args, cfg.Digest.DefaultLimit))
			if err != nil {
				return fmt.Errorf("could not build stale PR digest: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Glob of stale PR report files (overrides STALE_PRS_INPUT_GLOB)")

	return cmd
}
