// =============================================================================
// Calculate Sales - Validation Rules
// =============================================================================
//
// This module holds the format and range rules shared by the pipeline
// stages:
//   - Branch code format (3 digits)
//   - Sales file name format (8 digits + ".rcd")
//   - Amount format (decimal digits only)
//   - Total range (fewer than 11 digits)
//   - Sales file sequence (no gaps)
//
// Rules return a *Error of the matching Kind, or a plain bool for pure
// format predicates. Callers decide which Kind a failed predicate maps to.
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/calculate-sales/internal/types"
)

// =============================================================================
// FORMAT PATTERNS
// =============================================================================

var (
	branchCodePattern    = regexp.MustCompile(`^[0-9]{3}$`)
	salesFileNamePattern = regexp.MustCompile(`^[0-9]{8}\.rcd$`)
	amountPattern        = regexp.MustCompile(`^[0-9]+$`)
)

// SalesFileExt is the extension of sales record files.
const SalesFileExt = ".rcd"

// MaxTotalDigits is the number of digits a branch total may have.
const MaxTotalDigits = 10

// totalLimit is the smallest total that overflows: 10^MaxTotalDigits.
var totalLimit = decimal.New(1, MaxTotalDigits)

// =============================================================================
// FORMAT PREDICATES
// =============================================================================

// IsBranchCode reports whether s is a 3-digit branch code.
func IsBranchCode(s string) bool {
	return branchCodePattern.MatchString(s)
}

// IsSalesFileName reports whether name is a whole-name match for the
// sales file pattern. Names that merely contain the pattern do not match.
func IsSalesFileName(name string) bool {
	return salesFileNamePattern.MatchString(name)
}

// IsAmount reports whether s consists only of decimal digits.
// Signs, decimal points and surrounding whitespace are rejected.
func IsAmount(s string) bool {
	return amountPattern.MatchString(s)
}

// =============================================================================
// VALUE PARSING
// =============================================================================

// SequenceOf returns the numeric value of a sales file name's 8-digit stem.
//
// PARAMETERS:
//   - name: A name accepted by IsSalesFileName.
//
// RETURNS:
//   - The sequence number.
//   - An error if the name is not a sales file name.
func SequenceOf(name string) (int, error) {
	if !IsSalesFileName(name) {
		return 0, fmt.Errorf("%q is not a sales file name", name)
	}
	return strconv.Atoi(strings.TrimSuffix(name, SalesFileExt))
}

// ParseAmount parses an amount line. Any text that is not purely decimal
// digits is an UnknownError.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !IsAmount(s) {
		return decimal.Zero, New(UnknownError, fmt.Errorf("amount %q is not numeric", s))
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, New(UnknownError, fmt.Errorf("parse amount %q: %w", s, err))
	}
	return amount, nil
}

// =============================================================================
// RANGE AND SEQUENCE RULES
// =============================================================================

// CheckTotal fails with AmountOverflow when total has more than
// MaxTotalDigits digits.
func CheckTotal(total decimal.Decimal) error {
	if total.GreaterThanOrEqual(totalLimit) {
		return New(AmountOverflow, fmt.Errorf("total %s exceeds %d digits", total.String(), MaxTotalDigits))
	}
	return nil
}

// CheckSequence fails with NonSequentialFiles when two consecutive files
// in the sorted list are not numbered exactly one apart.
//
// PARAMETERS:
//   - files: Sales files sorted by name.
//
// RETURNS:
//   - nil for zero or one file, or a gapless run.
func CheckSequence(files []types.SalesFile) error {
	for i := 0; i+1 < len(files); i++ {
		former, latter := files[i], files[i+1]
		if latter.Sequence-former.Sequence != 1 {
			return New(NonSequentialFiles, fmt.Errorf("%s is followed by %s", former.Name, latter.Name))
		}
	}
	return nil
}
