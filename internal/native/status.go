package native

import (
	"context"
	"fmt"
	"os"
	"sort"

	git "github.com/go-git/go-git/v5"
)

func openRepository() (*git.Repository, error) {
	return git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
}

// statusRunner prints a short-format worktree status, one `XY path` line
// per changed file, nothing when the worktree is clean.
func statusRunner(ctx context.Context, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	paths := make([]string, 0, len(status))
	for path := range status {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		fs := status[path]
		fmt.Fprintf(os.Stdout, "%c%c %s\n", fs.Staging, fs.Worktree, path)
	}
	return nil
}

func init() { Register("status", statusRunner) }
