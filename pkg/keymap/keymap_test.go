package keymap

import (
	"testing"

	"github.com/filetug/dirbuf/pkg/explorer"
	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"enter", tcell.KeyEnter, 0},
		{"backspace", tcell.KeyBackspace2, 0},
		{"delete", tcell.KeyDelete, 0},
		{"ctrl+l", tcell.KeyCtrlL, 0},
		{"shift+b", tcell.KeyRune, 'B'},
		{"%", tcell.KeyRune, '%'},
		{"D", tcell.KeyRune, 'D'},
	} {
		t.Run(tt.name, func(t *testing.T) {
			key, r, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.r, r)
		})
	}

	for _, name := range []string{"", "ctrl+1", "shift+", "alt+x", "enterx"} {
		_, _, err := ParseKey(name)
		assert.Error(t, err, name)
	}
}

func TestDefault_CoversHelpBanner(t *testing.T) {
	t.Parallel()
	km := Default()
	assert.Len(t, km.Bindings(), len(listing.HelpBindings()))

	seen := map[explorer.Command]bool{}
	for _, b := range km.Bindings() {
		seen[b.Command] = true
		assert.NotEmpty(t, b.Description)
	}
	for _, cmd := range explorer.Commands() {
		if cmd == explorer.CmdOpen {
			continue
		}
		assert.True(t, seen[cmd], "%s has no key", cmd)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	km := Default()

	for _, tt := range []struct {
		ev  *tcell.EventKey
		cmd explorer.Command
	}{
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), explorer.CmdOpenAtCursor},
		{tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), explorer.CmdOpenParent},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), explorer.CmdOpenParent},
		{tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), explorer.CmdDelete},
		{tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), explorer.CmdRefresh},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), explorer.CmdDelete},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), explorer.CmdCreateDir},
		{tcell.NewEventKey(tcell.KeyRune, 'B', tcell.ModShift), explorer.CmdToggleBookmarks},
		{tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), explorer.CmdToggleHelp},
	} {
		cmd, ok := km.Lookup(tt.ev)
		assert.True(t, ok, tt.cmd)
		assert.Equal(t, tt.cmd, cmd)
	}

	_, ok := km.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
	_, ok = km.Lookup(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))
	assert.False(t, ok)
	_, ok = km.Lookup(nil)
	assert.False(t, ok)
}

func TestLookupName(t *testing.T) {
	t.Parallel()
	km := Default()
	cmd, ok := km.LookupName("shift+m")
	assert.True(t, ok)
	assert.Equal(t, explorer.CmdDeleteBookmark, cmd)
	_, ok = km.LookupName("nope")
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	_, err := New([][2]string{{"x", "nothing"}})
	assert.Error(t, err)
}
