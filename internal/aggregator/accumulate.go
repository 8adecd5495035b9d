package aggregator

import (
	"fmt"

	"github.com/ginjaninja78/calculate-sales/internal/salesfile"
	"github.com/ginjaninja78/calculate-sales/internal/types"
	"github.com/ginjaninja78/calculate-sales/internal/validation"
)

// Accumulate reads every file in order and adds its amount to the branch
// total. The first failing file stops the loop; totals already updated by
// earlier files are left as they are and must not be used.
func Accumulate(files []types.SalesFile, registry *types.Registry, totals *types.Totals) error {
	for _, file := range files {
		record, err := salesfile.ReadRecord(file)
		if err != nil {
			return err
		}
		if err := AddRecord(file, record, registry, totals); err != nil {
			return err
		}
	}
	return nil
}

// AddRecord applies a single record.
//
// CHECKS (in order):
//   - branch code declared in the registry   -> InvalidBranchCode
//   - amount made of decimal digits only     -> UnknownError
//   - new total below 10^10                  -> AmountOverflow
func AddRecord(file types.SalesFile, record types.Record, registry *types.Registry, totals *types.Totals) error {
	if !registry.Has(record.BranchCode) {
		return validation.NewForFile(validation.InvalidBranchCode, file.Name,
			fmt.Errorf("branch code %q is not declared", record.BranchCode))
	}

	amount, err := validation.ParseAmount(record.Amount)
	if err != nil {
		return err
	}

	total := totals.Add(record.BranchCode, amount)
	return validation.CheckTotal(total)
}
