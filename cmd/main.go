// Package main provides the CLI entrypoint for the stale PR digest.
// It loads configuration, initializes logging and wires the digest and
// preview subcommands.
package main

import (
	"context"
	"os"
	"stalepr/internal/config"
	"stalepr/pkg/logger"
	"stalepr/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// kindField logs the semantic kind of err, when it has one.
func kindField(err error) zap.Field {
	if k := serrors.KindOf(err); k != nil {
		return zap.String("kind", k.Error())
	}

	return zap.Skip()
}

// newRootCommand builds the root Cobra command. Configuration is loaded
// before any subcommand runs so every command shares the same cfg.
func newRootCommand() *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "stale-prs",
		Short:         "Builds a digest of stale pull requests for GitHub Actions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment, cfg.LogLevel)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config File Path")

	rootCmd.AddCommand(
		digestCommand(cfg),
		previewCommand(cfg),
	)

	return rootCmd
}

// main executes the CLI and exits with status 1 on any failure.
func main() {
	// config may fail to load; errors still need a logger.
	logger.Setup(logger.DevelopmentEnvironment, "")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err), kindField(err))
	}
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
