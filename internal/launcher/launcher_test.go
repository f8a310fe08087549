package launcher

import (
	"context"
	"errors"
	"testing"
)

type recordedCall struct {
	name string
	args []string
}

// fakeLauncher records invocations and returns a fixed result.
type fakeLauncher struct {
	err   error
	calls []recordedCall
}

func (f *fakeLauncher) Launch(ctx context.Context, name string, args []string) error {
	f.calls = append(f.calls, recordedCall{name: name, args: args})
	return f.err
}

func TestBlacklistDelegatesUnlistedNames(t *testing.T) {
	wrappedErr := errors.New("wrapped failure")
	fake := &fakeLauncher{err: wrappedErr}
	b := NewBlacklistLauncher(fake, "help")

	err := b.Launch(context.Background(), "status", []string{"-s"})
	if !errors.Is(err, wrappedErr) {
		t.Fatalf("expected wrapped launcher's error, got %v", err)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("expected one delegated call, got %d", len(fake.calls))
	}
	if fake.calls[0].name != "status" || len(fake.calls[0].args) != 1 || fake.calls[0].args[0] != "-s" {
		t.Fatalf("arguments not passed through verbatim: %+v", fake.calls[0])
	}
}

func TestBlacklistRejectsWithoutDelegating(t *testing.T) {
	fake := &fakeLauncher{}
	b := NewBlacklistLauncher(fake, "help", "shell")

	err := b.Launch(context.Background(), "help", nil)
	var be BlacklistedError
	if !errors.As(err, &be) {
		t.Fatalf("expected BlacklistedError, got %v", err)
	}
	if be.Name != "help" {
		t.Fatalf("expected blacklisted name %q, got %q", "help", be.Name)
	}
	if len(fake.calls) != 0 {
		t.Fatalf("wrapped launcher must not be invoked, saw %d calls", len(fake.calls))
	}
}

func TestBlacklistMatchIsExact(t *testing.T) {
	fake := &fakeLauncher{}
	b := NewBlacklistLauncher(fake, "help")

	// Case and whitespace variants are not normalized.
	for _, name := range []string{"Help", "HELP", " help", "help "} {
		if err := b.Launch(context.Background(), name, nil); err != nil {
			t.Fatalf("name %q should delegate, got %v", name, err)
		}
	}
	if len(fake.calls) != 4 {
		t.Fatalf("expected 4 delegated calls, got %d", len(fake.calls))
	}
}

func TestFallbackStopsAtFirstSuccess(t *testing.T) {
	failing := &fakeLauncher{err: errors.New("first failure")}
	succeeding := &fakeLauncher{}
	unreached := &fakeLauncher{err: errors.New("should not run")}
	chain := NewFallbackChain(failing, succeeding, unreached)

	if err := chain.Launch(context.Background(), "status", nil); err != nil {
		t.Fatalf("expected success from second launcher, got %v", err)
	}
	if len(unreached.calls) != 0 {
		t.Fatalf("launchers after the first success must not run")
	}
}

func TestFallbackReturnsLastError(t *testing.T) {
	firstErr := errors.New("first failure")
	lastErr := errors.New("last failure")
	chain := NewFallbackChain(&fakeLauncher{err: firstErr}, &fakeLauncher{err: lastErr})

	err := chain.Launch(context.Background(), "status", nil)
	if !errors.Is(err, lastErr) {
		t.Fatalf("expected last launcher's error, got %v", err)
	}
	if errors.Is(err, firstErr) {
		t.Fatalf("earlier errors must be discarded, got %v", err)
	}
}

func TestFallbackSingleElement(t *testing.T) {
	only := errors.New("only failure")
	chain := NewFallbackChain(&fakeLauncher{err: only})
	if err := chain.Launch(context.Background(), "status", nil); !errors.Is(err, only) {
		t.Fatalf("expected sole launcher's error, got %v", err)
	}
}

func TestDefaultChainBlacklistsHelp(t *testing.T) {
	// help is refused by the blacklist, so the stub answers.
	chain := DefaultChain("rgit-no-such-base-binary")
	if err := chain.Launch(context.Background(), "help", nil); err != nil {
		t.Fatalf("default chain must succeed on help via the stub, got %v", err)
	}
}

func TestDefaultChainMasksMissingBase(t *testing.T) {
	chain := DefaultChain("rgit-no-such-base-binary")
	if err := chain.Launch(context.Background(), "not-a-real-command", nil); err != nil {
		t.Fatalf("stub must mask the process launcher failure, got %v", err)
	}
}
