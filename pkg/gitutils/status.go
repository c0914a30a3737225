package gitutils

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// Status is the VCS state of a single listed path.
type Status int

const (
	StatusNone Status = iota
	StatusModified
	StatusAdded
	StatusDeleted
	StatusUntracked
	StatusRenamed
	StatusCopied
)

// Symbol is the one-letter listing suffix. Renamed and copied files show
// as modified.
func (s Status) Symbol() string {
	switch s {
	case StatusModified, StatusRenamed, StatusCopied:
		return "M"
	case StatusAdded:
		return "A"
	case StatusDeleted:
		return "D"
	case StatusUntracked:
		return "U"
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusAdded:
		return "added"
	case StatusDeleted:
		return "deleted"
	case StatusUntracked:
		return "untracked"
	case StatusRenamed:
		return "renamed"
	case StatusCopied:
		return "copied"
	default:
		return "none"
	}
}

// StatusOf maps a go-git file status. Staged changes win over worktree ones.
func StatusOf(fs *git.FileStatus) Status {
	if fs == nil {
		return StatusNone
	}
	switch fs.Staging {
	case git.Modified:
		return StatusModified
	case git.Added:
		return StatusAdded
	case git.Deleted:
		return StatusDeleted
	case git.Renamed:
		return StatusRenamed
	case git.Copied:
		return StatusCopied
	}
	switch fs.Worktree {
	case git.Modified:
		return StatusModified
	case git.Added:
		return StatusAdded
	case git.Deleted:
		return StatusDeleted
	case git.Untracked:
		return StatusUntracked
	case git.Renamed:
		return StatusRenamed
	case git.Copied:
		return StatusCopied
	}
	return StatusNone
}

var ErrNotRepository = errors.New("not in a git repository")

// Snapshot is the worktree status of one repository taken at a point in time.
type Snapshot struct {
	root   string
	status git.Status
}

func (s *Snapshot) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

func (s *Snapshot) StatusOf(path string) Status {
	if s == nil {
		return StatusNone
	}
	relPath, err := filepathRel(s.root, path)
	if err != nil || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return StatusNone
	}
	fileStatus, ok := s.status[filepath.ToSlash(relPath)]
	if !ok {
		return StatusNone
	}
	return StatusOf(fileStatus)
}

// Symbol returns the listing suffix for path.
func (s *Snapshot) Symbol(path string) string {
	return s.StatusOf(path).Symbol()
}

// Provider reads VCS status for listed directories.
type Provider struct {
	logger *zap.Logger
}

func NewProvider(logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{logger: logger}
}

// Snapshot reads the status of the repository that contains dir.
func (p *Provider) Snapshot(ctx context.Context, dir string) (*Snapshot, error) {
	repoRoot := GetRepositoryRoot(dir)
	if repoRoot == "" {
		return nil, ErrNotRepository
	}
	if isCtxDone(ctx) {
		return nil, ctx.Err()
	}
	repo, err := gitPlainOpen(repoRoot)
	if err != nil {
		return nil, err
	}
	wt, err := repoWorktree(repo)
	if err != nil {
		return nil, err
	}
	status, err := worktreeStatus(wt)
	if err != nil {
		return nil, err
	}
	return &Snapshot{root: repoRoot, status: status}, nil
}

// StatusFunc returns a lookup of listing suffixes for entries of dir.
// Outside a repository, or on any error, every path gets no suffix.
func (p *Provider) StatusFunc(ctx context.Context, dir string) func(path string) string {
	snapshot, err := p.Snapshot(ctx, dir)
	if err != nil {
		if !errors.Is(err, ErrNotRepository) {
			p.logger.Debug("git status unavailable", zap.String("dir", dir), zap.Error(err))
		}
		return func(string) string { return "" }
	}
	return snapshot.Symbol
}
