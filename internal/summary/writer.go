// =============================================================================
// Calculate Sales - Summary Writer
// =============================================================================
//
// This module writes the per-branch summary (branch.out). The file has one
// line per branch, in the order the branches were declared:
//
//   001,Sapporo,1234567
//   002,Sendai,0
//
// Branches without sales are still written, with a total of 0. Lines end
// with the platform line terminator.
//
// If writing fails halfway the partially written file is left behind; the
// caller reports UnknownError and stops.
//
// =============================================================================

package summary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
	"github.com/ginjaninja78/calculate-sales/pkg/utils"
)

// FileName is the name of the summary file inside the input directory.
const FileName = "branch.out"

// Line formats a single summary line without the terminator.
func Line(branch types.Branch, totals *types.Totals) string {
	return fmt.Sprintf("%s,%s,%s", branch.Code, branch.Name, totals.Get(branch.Code).String())
}

// Render writes the summary to w.
func Render(w io.Writer, registry *types.Registry, totals *types.Totals) error {
	bw := bufio.NewWriter(w)
	eol := utils.LineEnding()

	for _, branch := range registry.Branches() {
		if _, err := bw.WriteString(Line(branch, totals) + eol); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteText creates (or truncates) the summary file at path.
//
// PARAMETERS:
//   - path: The output path, normally <dir>/branch.out.
//   - registry: The branches in output order.
//   - totals: The accumulated totals.
//
// RETURNS:
//   - An UnknownError on any create, write, flush or close failure.
func WriteText(path string, registry *types.Registry, totals *types.Totals) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return validation.New(validation.UnknownError, fmt.Errorf("create %s: %w", path, err))
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = validation.New(validation.UnknownError, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := Render(file, registry, totals); err != nil {
		return validation.New(validation.UnknownError, fmt.Errorf("write %s: %w", path, err))
	}

	return nil
}
