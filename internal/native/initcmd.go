package native

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

func initRunner(ctx context.Context, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if _, err := git.PlainInit(abs, false); err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			fmt.Fprintf(os.Stdout, "Reinitialized existing Git repository in %s\n", filepath.Join(abs, ".git"))
			return nil
		}
		return fmt.Errorf("init: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Initialized empty Git repository in %s\n", filepath.Join(abs, ".git"))
	return nil
}

func init() { Register("init", initRunner) }
