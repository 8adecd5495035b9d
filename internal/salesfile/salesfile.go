// =============================================================================
// Calculate Sales - Sales File Discovery and Reading
// =============================================================================
//
// This module finds the sales record files in the input directory and reads
// their content.
//
// FILE NAMING:
//   Sales files are named with exactly eight digits and the ".rcd"
//   extension, e.g. 00000001.rcd. Anything else in the directory
//   (branch.lst, branch.out, subdirectories, "x00000001.rcd", ...) is
//   ignored.
//
// FILE CONTENT:
//   Line 1: branch code
//   Line 2: sale amount
//
// ORDERING:
//   Directory listing order is not guaranteed by the platform, so the
//   discovered files are always sorted by name. The names are fixed-width
//   digit strings, so name order is numeric order.
//
// =============================================================================

package salesfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
)

// recordLines is the number of lines a sales record file must contain.
const recordLines = 2

// maxLineSize bounds a single record line. Amounts far longer than ten
// digits must still be read so they can be reported as an overflow.
const maxLineSize = 1024 * 1024

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// Discover lists the sales record files in dir, sorted by name.
//
// PARAMETERS:
//   - dir: The input directory.
//
// RETURNS:
//   - The matching regular files. Symlinks are followed.
//   - An UnknownError if the directory cannot be listed.
func Discover(dir string) ([]types.SalesFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, validation.New(validation.UnknownError, fmt.Errorf("list %s: %w", dir, err))
	}

	var files []types.SalesFile
	for _, entry := range entries {
		name := entry.Name()
		if !validation.IsSalesFileName(name) {
			continue
		}

		path := filepath.Join(dir, name)

		// os.Stat follows symlinks, DirEntry.Type does not.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		sequence, err := validation.SequenceOf(name)
		if err != nil {
			return nil, validation.New(validation.UnknownError, err)
		}

		files = append(files, types.SalesFile{
			Name:     name,
			Path:     path,
			Sequence: sequence,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// =============================================================================
// RECORD READING
// =============================================================================

// ReadRecord reads a sales record file.
//
// RETURNS:
//   - The branch code and amount lines, unvalidated.
//   - A PerFileFormat error if the file does not have exactly two lines.
//   - An UnknownError on any I/O failure.
func ReadRecord(file types.SalesFile) (types.Record, error) {
	lines, err := readLines(file.Path)
	if err != nil {
		return types.Record{}, validation.New(validation.UnknownError, err)
	}

	if len(lines) != recordLines {
		return types.Record{}, validation.NewForFile(validation.PerFileFormat, file.Name,
			fmt.Errorf("expected %d lines, got %d", recordLines, len(lines)))
	}

	return types.Record{BranchCode: lines[0], Amount: lines[1]}, nil
}

// readLines returns every line of the file at path. A trailing newline does
// not start an extra line; "\r\n" endings are accepted.
func readLines(path string) (lines []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			lines = nil
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}
