// =============================================================================
// Calculate Sales - Branch Definition Loader
// =============================================================================
//
// This module reads the branch definition file (branch.lst). Each line maps a
// 3-digit branch code to a branch name:
//
//   001,Sapporo
//   002,Sendai
//
// LOADING PROCESS:
//   1. Open the file (missing file -> FileNotFound)
//   2. Read it line by line
//   3. Split each line on commas; exactly two fields are required
//   4. Validate the code and reject duplicates (-> InvalidFormat)
//   5. Seed a zero total for every branch
//
// The loader does not return partial results. The first bad line aborts the
// load and the caller halts the run.
//
// =============================================================================

package branchlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
)

// FileName is the name of the branch definition file inside the input
// directory.
const FileName = "branch.lst"

// fieldSeparator separates the code from the name.
const fieldSeparator = ","

// maxLineSize bounds a single definition line.
const maxLineSize = 1024 * 1024

// =============================================================================
// LOADER
// =============================================================================

// Load reads the definition file at path.
//
// PARAMETERS:
//   - path: The path to branch.lst.
//
// A code declared twice is an InvalidFormat error rather than a silent
// overwrite, so a total can never be reported under the wrong name.
//
// RETURNS:
//   - The registry in file order.
//   - Totals seeded with zero for every branch.
//   - A *validation.Error of kind FileNotFound, InvalidFormat or UnknownError.
func Load(path string) (registry *types.Registry, totals *types.Totals, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, validation.New(validation.FileNotFound, err)
		}
		return nil, nil, validation.New(validation.UnknownError, fmt.Errorf("open %s: %w", path, err))
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			registry, totals = nil, nil
			err = validation.New(validation.UnknownError, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	registry = types.NewRegistry()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		branch, perr := ParseLine(scanner.Text())
		if perr != nil {
			return nil, nil, validation.New(validation.InvalidFormat, fmt.Errorf("line %d: %w", lineNumber, perr))
		}
		if !registry.Add(branch.Code, branch.Name) {
			return nil, nil, validation.New(validation.InvalidFormat,
				fmt.Errorf("line %d: branch code %s declared twice", lineNumber, branch.Code))
		}
	}
	if serr := scanner.Err(); serr != nil {
		return nil, nil, validation.New(validation.UnknownError, fmt.Errorf("read %s: %w", path, serr))
	}

	return registry, types.NewTotals(registry), nil
}

// ParseLine parses a single "code,name" line.
//
// The line must split into exactly two fields, the code must be three
// digits and the name must not be empty.
func ParseLine(line string) (types.Branch, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 2 {
		return types.Branch{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	code, name := fields[0], fields[1]
	if !validation.IsBranchCode(code) {
		return types.Branch{}, fmt.Errorf("branch code %q is not 3 digits", code)
	}
	if name == "" {
		return types.Branch{}, fmt.Errorf("branch %s has no name", code)
	}

	return types.Branch{Code: code, Name: name}, nil
}
