package main

import (
	"context"
	"fmt"
	"stalepr/internal/config"
	"stalepr/internal/digest"
	"stalepr/pkg/domain"
	"stalepr/pkg/ghactions"
	"stalepr/pkg/logger"
	"stalepr/pkg/metrics"
	"stalepr/pkg/reports"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// closeSink closes a sink file, logging failures.
func closeSink(ctx context.Context, f *ghactions.AppendFile) {
	if err := f.Close(); err != nil {
		logger.Warn(ctx, "could not close sink", zap.Error(err))
	}
}

// inputPattern returns the --input flag when given, else the configured glob.
func inputPattern(cmd *cobra.Command, cfg *config.Config) string {
	if pattern, _ := cmd.Flags().GetString("input"); pattern != "" {
		return pattern
	}

	return cfg.Input.Glob
}

// writeMetrics writes the optional textfile report. Failures are logged only.
func writeMetrics(ctx context.Context, cfg *config.Config, d domain.Digest) {
	if cfg.Metrics.TextfilePath == "" {
		return
	}
	if err := metrics.WriteTextfile(ctx, cfg.Metrics.TextfilePath, d); err != nil {
		logger.Warn(ctx, "could not write metrics", zap.Error(err))
	}
}

// digestCommand constructs the 'digest' subcommand that reads stale PR reports
// and appends the digest to GITHUB_STEP_SUMMARY and GITHUB_OUTPUT.
func digestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest [limit]",
		Short: "Publishes the stale PR digest to the step summary and step outputs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := cfg.RequireOutput(); err != nil {
				return err
			}

			// the summary file is only opened when there is a section to append.
			summary := ghactions.NewAppendFile("GITHUB_STEP_SUMMARY", cfg.GitHub.StepSummary)
			defer closeSink(ctx, summary)
			outputs := ghactions.NewAppendFile("GITHUB_OUTPUT", cfg.GitHub.Output)
			defer closeSink(ctx, outputs)

			pattern := inputPattern(cmd, cfg)
			limit := digest.ParseLimit(args, cfg.Digest.DefaultLimit)
			ctx = logger.WithFields(ctx, zap.String("input", pattern), zap.Int("limit", limit))

			d, err := digest.Run(ctx, reports.NewGlob(pattern), digest.Sinks{
				Summary: ghactions.NewSummary(summary),
				Outputs: ghactions.NewOutputs(outputs),
			}, limit)
			if err != nil {
				return fmt.Errorf("could not publish stale PR digest: %w", err)
			}

			writeMetrics(ctx, cfg, d)

			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Glob of stale PR report files (overrides STALE_PRS_INPUT_GLOB)")

	return cmd
}
