package session

import (
	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/google/uuid"
)

// Toggle names one of the boolean display flags of a session.
type Toggle int

const (
	ToggleFullPaths Toggle = iota
	ToggleBookmarks
	ToggleHelp
	ToggleHidden
)

func (t Toggle) String() string {
	switch t {
	case ToggleFullPaths:
		return "fullPaths"
	case ToggleBookmarks:
		return "bookmarks"
	case ToggleHelp:
		return "help"
	case ToggleHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

const listingKeyPrefix = "dirbuf:"

// ListingKey is the identity of the listing shown for dir.
func ListingKey(dir string) string {
	return listingKeyPrefix + dir
}

// State is the display state owned by one explorer.
type State struct {
	id uuid.UUID

	opts listing.Options

	initialDir    string
	initialDirSet bool

	previousFile string

	cursors map[string]int
}

func New(defaults listing.Options) *State {
	return &State{
		id:      uuid.New(),
		opts:    defaults,
		cursors: make(map[string]int),
	}
}

func (s *State) ID() string {
	return s.id.String()
}

func (s *State) Options() listing.Options {
	return s.opts
}

// Toggle flips one flag and returns its new value.
func (s *State) Toggle(t Toggle) bool {
	switch t {
	case ToggleFullPaths:
		s.opts.ShowFullPaths = !s.opts.ShowFullPaths
		return s.opts.ShowFullPaths
	case ToggleBookmarks:
		s.opts.ShowBookmarks = !s.opts.ShowBookmarks
		return s.opts.ShowBookmarks
	case ToggleHelp:
		s.opts.ShowHelp = !s.opts.ShowHelp
		return s.opts.ShowHelp
	case ToggleHidden:
		s.opts.ShowHidden = !s.opts.ShowHidden
		return s.opts.ShowHidden
	}
	return false
}

// SetInitialDirectory records dir only on the first call.
func (s *State) SetInitialDirectory(dir string) bool {
	if s.initialDirSet {
		return false
	}
	s.initialDir = dir
	s.initialDirSet = true
	return true
}

func (s *State) InitialDirectory() (string, bool) {
	return s.initialDir, s.initialDirSet
}

func (s *State) SetPreviousFile(path string) {
	s.previousFile = path
}

func (s *State) PreviousFile() string {
	return s.previousFile
}

// SaveCursor remembers the cursor line of the listing for dir.
func (s *State) SaveCursor(dir string, line int) {
	if line < 0 {
		line = 0
	}
	s.cursors[ListingKey(dir)] = line
}

// Cursor returns the saved cursor for dir clamped to lineCount lines.
func (s *State) Cursor(dir string, lineCount int) (int, bool) {
	line, ok := s.cursors[ListingKey(dir)]
	if !ok || lineCount <= 0 {
		return 0, false
	}
	if line >= lineCount {
		line = lineCount - 1
	}
	return line, true
}
