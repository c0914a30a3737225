package files

import (
	"os"
	"strings"

	"github.com/filetug/dirbuf/pkg/listing"
)

var _ os.DirEntry = DirEntry{}

// DirEntry is an os.DirEntry without file info, used for synthetic listings.
type DirEntry struct {
	entry listing.Entry
}

// NewDirEntry panics when name is not a single path component.
func NewDirEntry(name string, isDir bool) DirEntry {
	if strings.ContainsAny(name, `/\`) {
		panic("dir entry name can not have path: " + name)
	}
	return DirEntry{entry: listing.Entry{Name: name, IsDir: isDir}}
}

// DirEntriesOf builds store entries from listing entries, keeping their order.
func DirEntriesOf(entries []listing.Entry) []os.DirEntry {
	result := make([]os.DirEntry, len(entries))
	for i, e := range entries {
		result[i] = NewDirEntry(e.Name, e.IsDir)
	}
	return result
}

// EntryOf is the listing view of a store entry.
func EntryOf(de os.DirEntry) listing.Entry {
	if d, ok := de.(DirEntry); ok {
		return d.entry
	}
	return listing.Entry{Name: de.Name(), IsDir: de.IsDir()}
}

func (d DirEntry) Name() string { return d.entry.Name }

func (d DirEntry) IsDir() bool { return d.entry.IsDir }

func (d DirEntry) Type() os.FileMode {
	if d.entry.IsDir {
		return os.ModeDir
	}
	return 0
}

// Info is always nil; synthetic entries have no backing file.
func (d DirEntry) Info() (os.FileInfo, error) {
	return nil, nil
}
