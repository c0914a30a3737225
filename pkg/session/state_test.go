package session

import (
	"testing"

	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = listing.Options{ShowHidden: true, ShowBookmarks: true}

func TestNew(t *testing.T) {
	t.Parallel()
	s := New(defaults)
	assert.Equal(t, defaults, s.Options())
	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), New(defaults).ID())

	dir, ok := s.InitialDirectory()
	assert.False(t, ok)
	assert.Empty(t, dir)
}

func TestToggle(t *testing.T) {
	t.Parallel()
	s := New(defaults)

	assert.True(t, s.Toggle(ToggleFullPaths))
	assert.True(t, s.Options().ShowFullPaths)
	assert.False(t, s.Toggle(ToggleFullPaths))

	assert.False(t, s.Toggle(ToggleHidden))
	assert.False(t, s.Options().ShowHidden)

	assert.True(t, s.Toggle(ToggleHelp))
	assert.False(t, s.Toggle(ToggleBookmarks))

	assert.Equal(t, listing.Options{ShowHelp: true}, s.Options())
	assert.False(t, s.Toggle(Toggle(42)))
}

func TestToggle_Commutes(t *testing.T) {
	t.Parallel()
	all := []Toggle{ToggleFullPaths, ToggleBookmarks, ToggleHelp, ToggleHidden}
	for _, a := range all {
		for _, b := range all {
			s1 := New(defaults)
			s1.Toggle(a)
			s1.Toggle(b)
			s2 := New(defaults)
			s2.Toggle(b)
			s2.Toggle(a)
			assert.Equal(t, s1.Options(), s2.Options(), "%v/%v", a, b)
		}
	}
}

func TestToggle_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "fullPaths", ToggleFullPaths.String())
	assert.Equal(t, "bookmarks", ToggleBookmarks.String())
	assert.Equal(t, "help", ToggleHelp.String())
	assert.Equal(t, "hidden", ToggleHidden.String())
	assert.Equal(t, "unknown", Toggle(-1).String())
}

func TestSetInitialDirectory_Once(t *testing.T) {
	t.Parallel()
	s := New(defaults)
	assert.True(t, s.SetInitialDirectory("/a"))
	assert.False(t, s.SetInitialDirectory("/b"))
	dir, ok := s.InitialDirectory()
	assert.True(t, ok)
	assert.Equal(t, "/a", dir)
}

func TestPreviousFile(t *testing.T) {
	t.Parallel()
	s := New(defaults)
	assert.Empty(t, s.PreviousFile())
	s.SetPreviousFile("/a/f.txt")
	assert.Equal(t, "/a/f.txt", s.PreviousFile())
}

func TestCursor(t *testing.T) {
	t.Parallel()
	s := New(defaults)

	_, ok := s.Cursor("/a", 10)
	assert.False(t, ok)

	s.SaveCursor("/a", 5)
	line, ok := s.Cursor("/a", 10)
	assert.True(t, ok)
	assert.Equal(t, 5, line)

	line, ok = s.Cursor("/a", 3)
	assert.True(t, ok)
	assert.Equal(t, 2, line)

	_, ok = s.Cursor("/a", 0)
	assert.False(t, ok)

	s.SaveCursor("/b", -4)
	line, _ = s.Cursor("/b", 3)
	assert.Equal(t, 0, line)
}

func TestListingKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "dirbuf:/a/b", ListingKey("/a/b"))
}
