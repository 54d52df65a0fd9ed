package fixturehost

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Contract violations are raised as panics whose value is an error wrapping
// ErrContractViolation or ErrNotSupported:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, fixturehost.ErrNotSupported) {
//	        // the consumer tried to write through a read-only fixture
//	    }
//	}()
var (
	// ErrNotSupported indicates a mutating operation was called on the
	// read-only host (writeFile, createDirectory, exit, ...).
	ErrNotSupported = errors.New("operation not supported")

	// ErrContractViolation indicates a caller broke a precondition, such as
	// reading a path that is not a file.
	ErrContractViolation = errors.New("contract violation")

	// ErrInvalidFixture indicates the descriptor list cannot form a tree,
	// for example a file declared where a folder already exists.
	ErrInvalidFixture = errors.New("invalid fixture")

	// ErrFixtureNotFound indicates the fixture document could not be located.
	ErrFixtureNotFound = errors.New("fixture not found")

	// ErrPathNotFound indicates a CLI query named a path absent from the fixture.
	ErrPathNotFound = errors.New("path not found")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidFixture):
		return ExitInvalidFixture
	case errors.Is(err, ErrFixtureNotFound):
		return ExitFixtureNotFound
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrContractViolation), errors.Is(err, ErrNotSupported):
		return ExitPanic
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
