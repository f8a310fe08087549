package launcher

import "fmt"

// NotFoundError reports that the base command binary is absent from the
// system, so the subcommand could not be launched at all.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("The command %q was not found on the system", e.Name)
}

// BlacklistedError reports that a subcommand name matched a launcher's
// blacklist and was refused before any delegation.
type BlacklistedError struct {
	Name string
}

func (e BlacklistedError) Error() string {
	return fmt.Sprintf("The command %q is blacklisted from this launcher", e.Name)
}

// ExitError reports that the child process ran but terminated with a
// non-zero exit code, or via a signal when no code is available.
type ExitError struct {
	Name string
	// Code is the numeric exit code. It is meaningless when Signaled.
	Code int
	// Signaled is true when the process was terminated by a signal
	// rather than exiting with a code.
	Signaled bool
}

func (e ExitError) Error() string {
	if e.Signaled {
		return fmt.Sprintf("The command %q was terminated by a signal.", e.Name)
	}
	return fmt.Sprintf("The command %q returned error code %d.", e.Name, e.Code)
}

// ExitCode returns the child's exit code so the entry point can mirror it.
func (e ExitError) ExitCode() int {
	if e.Signaled {
		return 1
	}
	return e.Code
}
