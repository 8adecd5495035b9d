// =============================================================================
// Calculate Sales - Aggregation Command
// =============================================================================
//
// This file holds the code shared by the root command and the 'validate'
// command. Both load the configuration, set up logging and run the
// aggregation pipeline; 'validate' always runs it as a dry run.
//
// COMMAND USAGE:
//   calculate-sales <dir> [--dry-run] [--xlsx FILE]
//   calculate-sales validate <dir>
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/calculate-sales/internal/aggregator"
	"github.com/ginjaninja78/calculate-sales/internal/config"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
	"github.com/ginjaninja78/calculate-sales/pkg/logger"
)

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// newValidateCmd builds the 'validate' command.
func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: "Check the input directory without writing branch.out",
		Long: `The validate command runs the complete aggregation pipeline over <dir>
but does not write branch.out or any spreadsheet. It prints the same
diagnostic line as a normal run when a check fails.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregation(cmd, opts, args, true)
		},
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runAggregation loads the configuration, builds the logger and runs one
// aggregation over args[0].
func runAggregation(cmd *cobra.Command, opts *rootOptions, args []string, dryRun bool) error {
	cfg, err := config.Load(opts.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log, err := logger.New(cfg.LogMode, level)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Sync()

	if len(args) != 1 {
		return report(cmd, cfg, validation.New(validation.UnknownError,
			fmt.Errorf("expected 1 argument, got %d", len(args))))
	}

	xlsxPath := cfg.XLSXOutput
	if opts.xlsxOutput != "" {
		xlsxPath = opts.xlsxOutput
	}

	agg := aggregator.New(aggregator.Options{
		Dir:       args[0],
		DryRun:    dryRun,
		XLSXPath:  xlsxPath,
		XLSXSheet: cfg.XLSXSheet,
	}, log.With("dir", args[0]))

	if _, err := agg.Run(); err != nil {
		return report(cmd, cfg, err)
	}

	return nil
}

// report prints the single diagnostic line for err.
func report(cmd *cobra.Command, cfg *config.Config, err error) error {
	fmt.Fprintln(cmd.OutOrStdout(), validation.Diagnostic(err, cfg.Locale))
	return errAborted
}
