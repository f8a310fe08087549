package launcher

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestProcessLaunchSucceedsOnZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix coreutils")
	}
	// `env true <args...>` ignores everything and exits 0.
	p := NewProcessLauncher("env")
	if err := p.Launch(context.Background(), "true", []string{"status", "--short"}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestProcessLaunchNotFound(t *testing.T) {
	p := NewProcessLauncher("rgit-no-such-base-binary")
	err := p.Launch(context.Background(), "status", nil)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Name != "status" {
		t.Fatalf("error must carry the subcommand name, got %q", nf.Name)
	}
}

func TestProcessLaunchBadExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix coreutils")
	}
	p := NewProcessLauncher("env")
	err := p.Launch(context.Background(), "false", nil)
	var ee ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if ee.Name != "false" || ee.Code != 1 || ee.Signaled {
		t.Fatalf("unexpected exit error payload: %+v", ee)
	}
}

func TestProcessLaunchPropagatesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a unix shell")
	}
	p := NewProcessLauncher("sh")
	err := p.Launch(context.Background(), "-c", []string{"exit 3"})
	var ee ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if ee.Code != 3 {
		t.Fatalf("expected exit code 3, got %d", ee.Code)
	}
	if ee.ExitCode() != 3 {
		t.Fatalf("ExitCode() must mirror the child's code, got %d", ee.ExitCode())
	}
}
