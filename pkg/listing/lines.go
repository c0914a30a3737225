package listing

import "strings"

// Kind classifies a listing line.
type Kind int

const (
	KindEntry Kind = iota
	KindParent
	KindHelp
	KindSeparator
	KindBookmark
)

func (k Kind) String() string {
	switch k {
	case KindEntry:
		return "entry"
	case KindParent:
		return "parent"
	case KindHelp:
		return "help"
	case KindSeparator:
		return "separator"
	case KindBookmark:
		return "bookmark"
	default:
		return "unknown"
	}
}

const (
	ParentMarker      = "../"
	BookmarkSeparator = "-- BOOKMARKS --"
	// HelpPrefix starts every help banner line.
	HelpPrefix = `" `
	helpSep    = ": "
)

var helpBanner = []string{
	`" ========================`,
	`" dirbuf directory listing`,
	`" ========================`,
	`" enter: open`,
	`" s: open in split`,
	`" v: open in vertical split`,
	`" -: close`,
	`" backspace: parent directory`,
	`" ~: home`,
	`" .: back to root`,
	`" o: open in file manager`,
	`" b: bookmarks`,
	`" shift+b: toggle bookmarks`,
	`" m: add bookmark`,
	`" shift+m: delete bookmark`,
	`" r: rename`,
	`" %: create`,
	`" d: create dir`,
	`" D/delete: delete`,
	`" shift+p: toggle full paths`,
	`" a: toggle hidden`,
	`" ?: toggle help`,
	`" ctrl+l: refresh`,
}

// HelpBanner returns a copy of the fixed help banner block.
func HelpBanner() []string {
	banner := make([]string, len(helpBanner))
	copy(banner, helpBanner)
	return banner
}

// HelpBindings returns the "key: description" pairs of the help banner,
// with "a/b" keys split into separate pairs.
func HelpBindings() (bindings [][2]string) {
	for _, line := range helpBanner {
		text := strings.TrimPrefix(line, HelpPrefix)
		keys, description, ok := strings.Cut(text, helpSep)
		if !ok {
			continue
		}
		for _, key := range strings.Split(keys, "/") {
			bindings = append(bindings, [2]string{key, description})
		}
	}
	return bindings
}

// Line is a tagged listing line.
type Line struct {
	Kind   Kind
	Text   string
	Name   string
	IsDir  bool
	Status string
	Key    string
	Path   string
}

// Entry is a single directory entry as produced by a files.Store.
type Entry struct {
	Name  string
	IsDir bool
}

// Bookmark maps a short key to an absolute directory path.
type Bookmark struct {
	Key  string
	Path string
}

// Options is the subset of session state that shapes a listing.
type Options struct {
	ShowFullPaths bool
	ShowHidden    bool
	ShowHelp      bool
	ShowBookmarks bool
}

// StatusFunc reports a one-letter VCS status for an absolute path, or "".
type StatusFunc func(path string) string

func noStatus(string) string { return "" }
