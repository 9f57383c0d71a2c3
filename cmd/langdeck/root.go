package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"langdeck/internal/logging"
	"langdeck/internal/pipeline"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var summary bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "langdeck",
		Short:         "Convert a flashcard export into numbered unit records",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = logging.WithRunID(logger, uuid.NewString())

			res, err := pipeline.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d entries to %s\n", res.Count(), res.OutputPath)
			if summary {
				fmt.Fprintln(out, renderSummary(res.Records, shouldColorize(out)))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a per-unit record table after converting")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
