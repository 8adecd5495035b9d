// =============================================================================
// Calculate Sales - Aggregator
// =============================================================================
//
// This module contains the core pipeline. One run reads an input directory
// and produces the per-branch summary.
//
// PIPELINE:
//   1. Load the branch definitions (branch.lst)
//   2. Discover the sales record files (NNNNNNNN.rcd)
//   3. Check that the file numbers form a gapless run
//   4. Read every record and add it to its branch total
//   5. Write the summary (branch.out), optionally also as XLSX
//
// Every stage either succeeds completely or stops the run. Nothing is
// written unless stages 1-4 all succeed.
//
// =============================================================================

package aggregator

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/calculate-sales/internal/branchlist"
	"github.com/ginjaninja78/calculate-sales/internal/salesfile"
	"github.com/ginjaninja78/calculate-sales/internal/summary"
	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
)

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options configures a single run.
type Options struct {
	// Dir is the input directory containing branch.lst and the sales files.
	// branch.out is written here as well.
	Dir string

	// DryRun runs every check but writes no output.
	DryRun bool

	// XLSXPath is an optional spreadsheet summary path. Relative paths are
	// resolved against Dir.
	XLSXPath string

	// XLSXSheet is the sheet name of the spreadsheet summary.
	XLSXSheet string
}

// Result describes a successful run.
type Result struct {
	// RunID identifies the run in the logs.
	RunID string

	// FilesProcessed is the number of sales files accumulated.
	FilesProcessed int

	// Branches is the number of branches in the summary.
	Branches int

	// OutputFile is the path of branch.out. Empty on a dry run.
	OutputFile string

	// XLSXFile is the path of the spreadsheet summary, if one was written.
	XLSXFile string

	// Registry and Totals are the final aggregation state.
	Registry *types.Registry
	Totals   *types.Totals

	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}

// Logger is the logging interface used by the aggregator.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
}

// =============================================================================
// AGGREGATOR
// =============================================================================

// Aggregator runs the pipeline over one directory.
type Aggregator struct {
	opts   Options
	logger Logger
	runID  string
}

// New creates an Aggregator with a fresh run ID.
func New(opts Options, logger Logger) *Aggregator {
	return &Aggregator{
		opts:   opts,
		logger: logger,
		runID:  uuid.New().String(),
	}
}

// RunID returns the identifier attached to this run's log entries.
func (a *Aggregator) RunID() string {
	return a.runID
}

// Run executes the pipeline.
//
// RETURNS:
//   - The run result on success.
//   - A *validation.Error describing the first failure otherwise.
func (a *Aggregator) Run() (*Result, error) {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD BRANCH DEFINITIONS
	// =========================================================================

	definitionPath := filepath.Join(a.opts.Dir, branchlist.FileName)
	registry, totals, err := branchlist.Load(definitionPath)
	if err != nil {
		return nil, a.fail("load branch definitions", err)
	}
	a.logger.Debug("loaded branch definitions", "run_id", a.runID, "branches", registry.Len())

	// =========================================================================
	// STEP 2: DISCOVER SALES FILES
	// =========================================================================

	files, err := salesfile.Discover(a.opts.Dir)
	if err != nil {
		return nil, a.fail("discover sales files", err)
	}
	a.logger.Debug("discovered sales files", "run_id", a.runID, "files", len(files))

	// =========================================================================
	// STEP 3: VALIDATE SEQUENCE
	// =========================================================================
	// Runs over the whole list before any record is read.

	if err := validation.CheckSequence(files); err != nil {
		return nil, a.fail("validate sales file sequence", err)
	}

	// =========================================================================
	// STEP 4: ACCUMULATE
	// =========================================================================

	if err := Accumulate(files, registry, totals); err != nil {
		return nil, a.fail("accumulate sales", err)
	}

	result := &Result{
		RunID:          a.runID,
		FilesProcessed: len(files),
		Branches:       registry.Len(),
		Registry:       registry,
		Totals:         totals,
	}

	// =========================================================================
	// STEP 5: WRITE SUMMARY
	// =========================================================================

	if a.opts.DryRun {
		a.logger.Info("dry run, summary not written", "run_id", a.runID)
	} else {
		var xlsxPath string
		if a.opts.XLSXPath != "" {
			xlsxPath = a.resolve(a.opts.XLSXPath)
			if err := a.checkSpreadsheetPath(xlsxPath); err != nil {
				return nil, a.fail("check spreadsheet path", err)
			}
		}

		outputPath := filepath.Join(a.opts.Dir, summary.FileName)
		if err := summary.WriteText(outputPath, registry, totals); err != nil {
			return nil, a.fail("write summary", err)
		}
		result.OutputFile = outputPath

		if xlsxPath != "" {
			if err := summary.WriteXLSX(xlsxPath, a.opts.XLSXSheet, registry, totals); err != nil {
				return nil, a.fail("write spreadsheet summary", err)
			}
			result.XLSXFile = xlsxPath
		}
	}

	result.ProcessingTime = time.Since(startTime)
	a.logger.Info("aggregation complete",
		"run_id", a.runID,
		"files", result.FilesProcessed,
		"branches", result.Branches,
		"output", result.OutputFile,
		"elapsed", result.ProcessingTime.String(),
	)

	return result, nil
}

// fail logs a failed stage and returns err unchanged. The user already gets
// the diagnostic line, so the cause is only logged at debug level.
func (a *Aggregator) fail(stage string, err error) error {
	a.logger.Debug("aggregation failed",
		"run_id", a.runID,
		"stage", stage,
		"kind", validation.KindOf(err).String(),
		"error", err.Error(),
	)
	return err
}

func (a *Aggregator) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.opts.Dir, path)
}

// checkSpreadsheetPath rejects a spreadsheet path that would overwrite
// branch.lst, branch.out or a sales file of the input directory.
func (a *Aggregator) checkSpreadsheetPath(path string) error {
	dir, err := filepath.Abs(a.opts.Dir)
	if err != nil {
		return validation.New(validation.UnknownError, err)
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return validation.New(validation.UnknownError, err)
	}
	if filepath.Dir(target) != dir {
		return nil
	}

	base := filepath.Base(target)
	if base == branchlist.FileName || base == summary.FileName || validation.IsSalesFileName(base) {
		return validation.New(validation.UnknownError,
			fmt.Errorf("spreadsheet path %s would overwrite an input or output file", path))
	}
	return nil
}
