package osfile

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/dirbuf/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname
var osMkdirAll = os.MkdirAll
var osCreate = os.Create
var osRemoveAll = os.RemoveAll
var osRename = os.Rename

var _ files.Store = (*Store)(nil)

type Store struct {
	title string
	root  string
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   s.root,
	}
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osMkdirAll(path, 0o755)
}

func (s Store) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := osMkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := osCreate(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := osStat(path); err != nil {
		return err
	}
	return osRemoveAll(path)
}

func (s Store) Rename(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if info, err := osStat(dst); err == nil && info.IsDir() {
		return &os.PathError{Op: "rename", Path: dst, Err: files.ErrIsADirectory}
	}
	if err := osMkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return osRename(src, dst)
}

func NewStore(root string) *Store {
	if root == "" {
		_, _ = fmt.Fprintf(os.Stderr, "osfile store root is empty, defaulting to /\n")
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}
