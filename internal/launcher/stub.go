package launcher

import "context"

// StubLauncher is the placeholder for in-process execution. It reports
// success for any subcommand without doing any work, which makes it the
// terminal element of the default chain. Real in-process commands live in
// internal/native and sit ahead of the process launcher when enabled.
type StubLauncher struct{}

// Launch always succeeds.
func (StubLauncher) Launch(ctx context.Context, name string, args []string) error {
	return nil
}
