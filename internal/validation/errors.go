// =============================================================================
// Calculate Sales - Error Taxonomy
// =============================================================================
//
// Every failure detected by the pipeline is reported as a *Error carrying a
// Kind. The kind decides the single diagnostic line shown to the user; the
// wrapped cause is kept for logging only.
//
// KINDS:
//   FileNotFound        - branch definition file is missing
//   InvalidFormat       - branch definition file has a malformed line
//   NonSequentialFiles  - gap in the sales file numbering
//   PerFileFormat       - a sales file does not have exactly two lines
//   InvalidBranchCode   - a sales file references an undeclared branch
//   AmountOverflow      - a branch total reached 11 digits
//   UnknownError        - I/O failure, non-numeric amount, anything else
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	UnknownError Kind = iota
	FileNotFound
	InvalidFormat
	NonSequentialFiles
	PerFileFormat
	InvalidBranchCode
	AmountOverflow
)

var kindNames = map[Kind]string{
	UnknownError:       "UnknownError",
	FileNotFound:       "FileNotFound",
	InvalidFormat:      "InvalidFormat",
	NonSequentialFiles: "NonSequentialFiles",
	PerFileFormat:      "PerFileFormat",
	InvalidBranchCode:  "InvalidBranchCode",
	AmountOverflow:     "AmountOverflow",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// =============================================================================
// ERROR TYPE
// =============================================================================

// Error is a classified pipeline failure.
type Error struct {
	// Kind selects the user-facing message.
	Kind Kind

	// File is the base name of the sales file the error refers to.
	// Only set for PerFileFormat and InvalidBranchCode.
	File string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.File != "" {
		msg = e.File + " " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Message renders the diagnostic line for the given locale.
func (e *Error) Message(locale string) string {
	text := catalogFor(locale)[e.Kind]
	if e.File != "" {
		return e.File + text
	}
	return text
}

// New returns a *Error of the given kind wrapping cause.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// NewForFile returns a *Error of the given kind attached to a sales file.
func NewForFile(kind Kind, file string, cause error) *Error {
	return &Error{Kind: kind, File: file, Err: cause}
}

// KindOf returns the Kind of err. Errors that are not a *Error are
// UnknownError.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownError
}

// Diagnostic returns the single user-facing line for any error.
func Diagnostic(err error, locale string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message(locale)
	}
	return New(UnknownError, err).Message(locale)
}
