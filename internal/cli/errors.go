package cli

import "errors"

// ErrArguments indicates a command was invoked with missing arguments.
var ErrArguments = errors.New("invalid arguments")

// Exit codes returned by ExitCode.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitArguments = 2
)

// ExitCode maps an error returned by Execute to a process exit status.
// Configuration and parse errors are ordinary failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrArguments):
		return ExitArguments
	}
	return ExitFailure
}
