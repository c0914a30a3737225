// Package billyfile serves listings from any go-billy filesystem.
package billyfile

import (
	"context"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/filetug/dirbuf/pkg/files"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

var _ files.Store = (*Store)(nil)

type Store struct {
	title string
	fs    billy.Filesystem
}

func NewStore(title string, filesystem billy.Filesystem) *Store {
	return &Store{title: title, fs: filesystem}
}

// NewMemoryStore returns a store over an empty in-memory filesystem.
func NewMemoryStore() *Store {
	return NewStore("memory", memfs.New())
}

// NewOSStore returns a store over the host filesystem rooted at root.
func NewOSStore(root string) *Store {
	return NewStore(root, osfs.New(root))
}

func (s *Store) Filesystem() billy.Filesystem {
	return s.fs
}

func (s *Store) RootTitle() string {
	return s.title
}

func (s *Store) RootURL() url.URL {
	return url.URL{Scheme: "billy", Path: s.fs.Root()}
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := s.fs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	entries := make([]os.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (s *Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.Stat(name)
}

func (s *Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.fs.MkdirAll(path, 0o755)
}

func (s *Store) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func (s *Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.fs.Stat(path); err != nil {
		return err
	}
	return util.RemoveAll(s.fs, path)
}

func (s *Store) Rename(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if info, err := s.fs.Stat(dst); err == nil {
		if info.IsDir() {
			return &os.PathError{Op: "rename", Path: dst, Err: files.ErrIsADirectory}
		}
		if err = s.fs.Remove(dst); err != nil {
			return err
		}
	}
	if err := s.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return s.fs.Rename(src, dst)
}
