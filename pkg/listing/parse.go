package listing

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	bookmarkLineRe   = regexp.MustCompile(`^\[([^\]]+)\]\s+(.+)$`)
	bookmarkPrefixRe = regexp.MustCompile(`^\[([^\]]+)\]`)
)

const vcsSymbols = "MADURC"

// isDecoration reports lines that never denote a path: the bookmark
// separator and help banner lines. A file name containing ": " is
// indistinguishable from a help line and is treated as one.
func isDecoration(line string) bool {
	return line == BookmarkSeparator ||
		strings.HasPrefix(line, HelpPrefix) ||
		strings.Contains(line, helpSep)
}

// StripStatus removes a trailing " X" VCS status token, if present.
func StripStatus(text string) (string, string) {
	n := len(text)
	if n < 2 || text[n-2] != ' ' || !strings.ContainsRune(vcsSymbols, rune(text[n-1])) {
		return text, ""
	}
	return text[:n-2], text[n-1:]
}

func trimSlash(p string) string {
	return strings.TrimSuffix(p, "/")
}

// Classify tells which kind of line the text is.
func Classify(line string) Kind {
	switch {
	case line == BookmarkSeparator:
		return KindSeparator
	case isDecoration(line):
		return KindHelp
	case bookmarkLineRe.MatchString(line):
		return KindBookmark
	}
	if text, _ := StripStatus(line); text == ParentMarker {
		return KindParent
	}
	return KindEntry
}

// BookmarkKey extracts the key of a "[key] ..." line.
func BookmarkKey(line string) (string, bool) {
	m := bookmarkPrefixRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ResolvePath maps one listing line back to the path it denotes.
// It returns "" for lines that are not paths.
func ResolvePath(line, baseDir string, opts Options) string {
	if isDecoration(line) {
		return ""
	}
	if m := bookmarkLineRe.FindStringSubmatch(line); m != nil {
		return trimSlash(m[2])
	}
	text, _ := StripStatus(line)
	switch text {
	case "":
		return ""
	case ParentMarker:
		return filepath.Dir(baseDir)
	}
	if opts.ShowFullPaths {
		return trimSlash(text)
	}
	return filepath.Join(baseDir, text)
}
