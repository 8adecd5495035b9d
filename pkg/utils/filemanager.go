// =============================================================================
// Calculate Sales - File Utilities
// =============================================================================
//
// Small file helpers shared by the command layer and the pipeline:
//   - Existence checks
//   - Platform line terminator
//
// =============================================================================

package utils

import (
	"os"
	"runtime"
)

// LineEnding returns the platform line terminator.
func LineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
