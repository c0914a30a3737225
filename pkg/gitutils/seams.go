package gitutils

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

var (
	osStat       = os.Stat
	filepathAbs  = filepath.Abs
	filepathRel  = filepath.Rel
	gitPlainOpen = git.PlainOpen

	repoWorktree = func(repo *git.Repository) (*git.Worktree, error) {
		return repo.Worktree()
	}
	worktreeStatus = func(wt *git.Worktree) (git.Status, error) {
		return wt.Status()
	}

	isCtxDone = func(ctx context.Context) bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}
)
