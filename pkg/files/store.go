package files

import (
	"context"
	"net/url"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store is the filesystem a listing is read from and operated on.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	// CreateDir creates path along with any missing parents.
	CreateDir(ctx context.Context, path string) error
	// CreateFile creates an empty file, creating missing parents.
	CreateFile(ctx context.Context, path string) error
	// Delete removes path recursively.
	Delete(ctx context.Context, path string) error
	// Rename moves src to dst, replacing an existing file at dst.
	Rename(ctx context.Context, src, dst string) error
}
