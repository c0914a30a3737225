package gitutils

import (
	"path/filepath"
)

// GetRepositoryRoot walks up from dirPath to the closest directory holding
// a .git entry. A .git file (linked worktree or submodule) counts as well.
func GetRepositoryRoot(dirPath string) (repoRootDir string) {
	dirPath, err := filepathAbs(dirPath)
	if err != nil {
		return ""
	}
	for {
		if _, err := osStat(filepath.Join(dirPath, ".git")); err == nil {
			return dirPath
		}
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			break
		}
		dirPath = parent
	}
	return ""
}
