package listing

import (
	"path/filepath"
	"slices"
	"strings"
)

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// partition keeps directories before files and preserves the enumeration
// order inside each group.
func partition(entries []Entry) []Entry {
	sorted := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir {
			sorted = append(sorted, entry)
		}
	}
	for _, entry := range entries {
		if !entry.IsDir {
			sorted = append(sorted, entry)
		}
	}
	return sorted
}

// HasParent reports whether dir has a parent directory.
func HasParent(dir string) bool {
	return filepath.Dir(dir) != dir
}

func entryText(entry Entry, fullPath string, opts Options) string {
	text := entry.Name
	if opts.ShowFullPaths {
		text = fullPath
	}
	if entry.IsDir {
		text += "/"
	}
	return text
}

// BookmarkLine formats a bookmark the way it appears in a listing.
func BookmarkLine(b Bookmark) string {
	return "[" + b.Key + "] " + b.Path + "/"
}

// Lines renders a directory listing into tagged lines.
func Lines(baseDir string, entries []Entry, statusOf StatusFunc, opts Options, bookmarks []Bookmark) []Line {
	if statusOf == nil {
		statusOf = noStatus
	}
	var lines []Line
	if opts.ShowHelp {
		for _, text := range helpBanner {
			lines = append(lines, Line{Kind: KindHelp, Text: text})
		}
	}
	if HasParent(baseDir) {
		lines = append(lines, Line{Kind: KindParent, Text: ParentMarker, Path: filepath.Dir(baseDir), IsDir: true})
	}
	visible := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if !opts.ShowHidden && isHidden(entry.Name) {
			continue
		}
		visible = append(visible, entry)
	}
	for _, entry := range partition(visible) {
		fullPath := filepath.Join(baseDir, entry.Name)
		line := Line{
			Kind:   KindEntry,
			Name:   entry.Name,
			IsDir:  entry.IsDir,
			Path:   fullPath,
			Status: statusOf(fullPath),
		}
		line.Text = entryText(entry, fullPath, opts)
		if line.Status != "" {
			line.Text += " " + line.Status
		}
		lines = append(lines, line)
	}
	if opts.ShowBookmarks && len(bookmarks) > 0 {
		lines = append(lines, Line{Kind: KindSeparator, Text: BookmarkSeparator})
		sorted := slices.Clone(bookmarks)
		slices.SortFunc(sorted, func(a, b Bookmark) int {
			return strings.Compare(a.Key, b.Key)
		})
		for _, b := range sorted {
			lines = append(lines, Line{
				Kind:  KindBookmark,
				Text:  BookmarkLine(b),
				Key:   b.Key,
				Path:  b.Path,
				IsDir: true,
			})
		}
	}
	return lines
}

// Render renders a directory listing into display text, one string per line.
func Render(baseDir string, entries []Entry, statusOf StatusFunc, opts Options, bookmarks []Bookmark) []string {
	lines := Lines(baseDir, entries, statusOf, opts, bookmarks)
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	return texts
}
