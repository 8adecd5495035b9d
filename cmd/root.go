// =============================================================================
// Calculate Sales - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Called with a
// directory, the root command runs the aggregation itself; the remaining
// commands are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (calculate-sales <dir>)
//   ├── validateCmd (calculate-sales validate <dir>)
//   └── versionCmd (calculate-sales version)
//
// OUTPUT CONTRACT:
//   - stdout carries at most one line: the diagnostic of a failed run
//   - stderr carries the structured logs
//   - the exit status is 1 after a failure, 0 otherwise
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/calculate-sales/internal/config"
)

// errAborted is returned by commands that have already printed their
// diagnostic line. Execute exits without printing anything more.
var errAborted = errors.New("run aborted")

// =============================================================================
// FLAGS
// =============================================================================

// rootOptions holds the values bound to the command-line flags.
type rootOptions struct {
	// cfgFile is the path to the configuration file (--config).
	cfgFile string

	// verbose forces debug logging (--verbose).
	verbose bool

	// dryRun runs every check without writing output (--dry-run).
	dryRun bool

	// xlsxOutput overrides the configured spreadsheet path (--xlsx).
	xlsxOutput string
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "calculate-sales <dir>",
		Short: "Aggregate branch sales from daily record files",
		Long: `calculate-sales reads a directory containing a branch definition file
(branch.lst) and sequentially numbered sales record files (00000001.rcd,
00000002.rcd, ...) and writes the sales total of every branch to branch.out.

Checks performed before anything is written:
  - branch.lst exists and every line is "<3-digit code>,<name>"
  - sales file numbers form a gapless run
  - every sales file has exactly two lines: branch code and amount
  - every branch code is declared in branch.lst
  - every amount is a non-negative integer
  - no branch total reaches 11 digits

Example Usage:
  calculate-sales ./sales                   # Write ./sales/branch.out
  calculate-sales ./sales --xlsx report.xlsx # Also export a spreadsheet
  calculate-sales validate ./sales          # Check without writing

A bare directory argument named "validate" or "version" selects the
subcommand instead. Pass it as a path, e.g. ./validate.`,

		// The argument count is checked in RunE so that a wrong count gets
		// the same diagnostic line as any other failure.
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregation(cmd, opts, args, opts.dryRun)
		},
	}

	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(
		&opts.cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================

	rootCmd.Flags().BoolVar(
		&opts.dryRun,
		"dry-run",
		false,
		"Run every check without writing output files",
	)

	rootCmd.Flags().StringVar(
		&opts.xlsxOutput,
		"xlsx",
		"",
		"Also write the summary to this XLSX file (relative to <dir>)",
	)

	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute builds the command tree and runs it. It is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
