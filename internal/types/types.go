// =============================================================================
// Calculate Sales - Shared Types
// =============================================================================
//
// This package contains the types passed between the pipeline stages. They
// live here so that the loader, the file reader, the aggregator and the
// summary writer can share them without import cycles:
//   - branchlist
//   - salesfile
//   - aggregator
//   - summary
//
// =============================================================================

package types

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// BRANCH TYPES
// =============================================================================

// Branch is a single entry of the branch definition file.
type Branch struct {
	// Code is the 3-digit branch code.
	Code string

	// Name is the display name of the branch.
	Name string
}

// Registry is the ordered set of branches declared in the definition file.
// Iteration order is the order in which branches were added.
type Registry struct {
	order []string
	names map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Add appends a branch. It reports false if the code is already present.
func (r *Registry) Add(code, name string) bool {
	if _, exists := r.names[code]; exists {
		return false
	}
	r.names[code] = name
	r.order = append(r.order, code)
	return true
}

// Has reports whether code was declared.
func (r *Registry) Has(code string) bool {
	_, ok := r.names[code]
	return ok
}

// Len returns the number of branches.
func (r *Registry) Len() int {
	return len(r.order)
}

// Branches returns the branches in declaration order.
func (r *Registry) Branches() []Branch {
	out := make([]Branch, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, Branch{Code: code, Name: r.names[code]})
	}
	return out
}

// =============================================================================
// SALES TOTALS
// =============================================================================

// Totals holds the running sales total of each branch.
type Totals struct {
	amounts map[string]decimal.Decimal
}

// NewTotals returns Totals seeded with zero for every branch in the registry.
func NewTotals(registry *Registry) *Totals {
	t := &Totals{amounts: make(map[string]decimal.Decimal, registry.Len())}
	for _, code := range registry.order {
		t.amounts[code] = decimal.Zero
	}
	return t
}

// Add increases the total of code by amount and returns the new total.
func (t *Totals) Add(code string, amount decimal.Decimal) decimal.Decimal {
	total := t.amounts[code].Add(amount)
	t.amounts[code] = total
	return total
}

// Get returns the current total of code. Unknown codes report zero.
func (t *Totals) Get(code string) decimal.Decimal {
	return t.amounts[code]
}

// =============================================================================
// SALES FILE TYPES
// =============================================================================

// SalesFile is a discovered sales record file.
type SalesFile struct {
	// Name is the base name, e.g. "00000001.rcd".
	Name string

	// Path is the full path to the file.
	Path string

	// Sequence is the numeric value of the 8-digit stem.
	Sequence int
}

// Record is the content of a sales record file.
type Record struct {
	// BranchCode is the first line of the file.
	BranchCode string

	// Amount is the second line of the file, unparsed.
	Amount string
}
