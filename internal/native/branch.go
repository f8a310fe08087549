package native

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5/plumbing"
)

// branchRunner lists local branches, marking the one HEAD points at.
func branchRunner(ctx context.Context, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return fmt.Errorf("branch: %w", err)
	}

	current := ""
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		current = head.Name().Short()
	}

	iter, err := repo.Branches()
	if err != nil {
		return fmt.Errorf("branch: %w", err)
	}
	defer iter.Close()
	return iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if name == current {
			fmt.Fprintf(os.Stdout, "* %s\n", name)
			return nil
		}
		fmt.Fprintf(os.Stdout, "  %s\n", name)
		return nil
	})
}

func init() { Register("branch", branchRunner) }
