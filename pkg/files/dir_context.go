package files

import (
	"context"
	"os"
	"path/filepath"

	"github.com/filetug/dirbuf/pkg/listing"
)

// DirContext is a directory together with the children read from its store.
type DirContext struct {
	Store    Store
	Path     string
	children []os.DirEntry
}

func (c *DirContext) SetChildren(entries []os.DirEntry) {
	c.children = entries
}

func (c *DirContext) Children() []os.DirEntry {
	return c.children
}

// Entries converts the children into listing entries, keeping their order.
func (c *DirContext) Entries() []listing.Entry {
	entries := make([]listing.Entry, len(c.children))
	for i, child := range c.children {
		entries[i] = EntryOf(child)
	}
	return entries
}

func (c *DirContext) ChildPath(name string) string {
	return filepath.Join(c.Path, name)
}

func (c *DirContext) HasParent() bool {
	return listing.HasParent(c.Path)
}

func (c *DirContext) String() string {
	return c.Path
}

func (c *DirContext) Name() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Base(c.Path)
}

// Load reads the directory children from the store.
func (c *DirContext) Load(ctx context.Context) error {
	children, err := c.Store.ReadDir(ctx, c.Path)
	if err != nil {
		return err
	}
	c.children = children
	return nil
}

func NewDirContext(store Store, path string, children []os.DirEntry) *DirContext {
	return &DirContext{
		Store:    store,
		Path:     path,
		children: children,
	}
}
