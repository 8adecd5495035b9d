// =============================================================================
// Calculate Sales - Main Entry Point
// =============================================================================
//
// This is the main entry point for the branch sales aggregation CLI. It
// delegates to the cmd package, which builds the Cobra command tree.
//
// USAGE:
//   calculate-sales <dir>            - Aggregate the sales files in <dir>
//   calculate-sales validate <dir>   - Run every check without writing output
//   calculate-sales version          - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Aggregation pipeline (not for external import)
//   - pkg/           : Shared utilities (logging, files)
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/calculate-sales/cmd"
)

func main() {
	cmd.Execute()
}
