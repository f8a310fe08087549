package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ProcessLauncher runs subcommands as child processes of a base command,
// nominally git: Launch("status", args) spawns `git status args...`.
type ProcessLauncher struct {
	// Base is the external binary name resolved through PATH.
	Base string
}

// NewProcessLauncher returns a launcher spawning base as a child process.
func NewProcessLauncher(base string) ProcessLauncher {
	return ProcessLauncher{Base: base}
}

// Launch spawns `<base> <name> <args...>` with inherited stdio and waits
// for it to terminate. A zero exit code is success; a missing base binary
// is NotFoundError; any other exit is ExitError. Other spawn failures
// propagate wrapped.
func (p ProcessLauncher) Launch(ctx context.Context, name string, args []string) error {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, name)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, p.Base, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Exited() {
			return ExitError{Name: name, Signaled: true}
		}
		return ExitError{Name: name, Code: exitErr.ExitCode()}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return NotFoundError{Name: name}
	}
	return fmt.Errorf("launch %s: %w", name, err)
}
