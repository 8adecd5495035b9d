// =============================================================================
// Calculate Sales - Spreadsheet Export
// =============================================================================
//
// This module exports the summary as an XLSX workbook for users who open the
// results in a spreadsheet application. The layout is:
//
//   | Column A | Column B | Column C |
//   |----------|----------|----------|
//   | Code     | Name     | Total    |
//   | 001      | Sapporo  | 1234567  |
//
// Codes are written as text so leading zeros survive; totals are written as
// numbers. The export is optional and only runs after branch.out has been
// written successfully.
//
// =============================================================================

package summary

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
)

// DefaultSheet is the sheet name used when none is configured.
const DefaultSheet = "Summary"

// defaultWorkbookSheet is the sheet excelize creates in a new workbook.
const defaultWorkbookSheet = "Sheet1"

// Header is the first row of the exported sheet.
var Header = []interface{}{"Code", "Name", "Total"}

// WriteXLSX writes the summary to an XLSX workbook at path.
//
// PARAMETERS:
//   - path: The workbook path.
//   - sheet: The sheet name; DefaultSheet if empty.
//   - registry: The branches in output order.
//   - totals: The accumulated totals.
//
// RETURNS:
//   - An UnknownError if the workbook cannot be built or saved.
func WriteXLSX(path, sheet string, registry *types.Registry, totals *types.Totals) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != defaultWorkbookSheet {
		if err := f.SetSheetName(defaultWorkbookSheet, sheet); err != nil {
			return validation.New(validation.UnknownError, fmt.Errorf("rename sheet: %w", err))
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &Header); err != nil {
		return validation.New(validation.UnknownError, fmt.Errorf("write header: %w", err))
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return validation.New(validation.UnknownError, fmt.Errorf("create header style: %w", err))
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return validation.New(validation.UnknownError, fmt.Errorf("style header: %w", err))
	}

	for i, branch := range registry.Branches() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return validation.New(validation.UnknownError, err)
		}

		// Totals are capped below 10^10, so they fit in an int64.
		row := []interface{}{branch.Code, branch.Name, totals.Get(branch.Code).IntPart()}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return validation.New(validation.UnknownError, fmt.Errorf("write branch %s: %w", branch.Code, err))
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return validation.New(validation.UnknownError, fmt.Errorf("size columns: %w", err))
	}

	if err := f.SaveAs(path); err != nil {
		return validation.New(validation.UnknownError, fmt.Errorf("save %s: %w", path, err))
	}

	return nil
}
