package keymap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/filetug/dirbuf/pkg/explorer"
	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/gdamore/tcell/v2"
)

// Binding ties a help banner key to an explorer command.
type Binding struct {
	Name        string
	Description string
	Command     explorer.Command
	Key         tcell.Key
	Rune        rune
}

var commandsByName = map[string]explorer.Command{
	"enter":     explorer.CmdOpenAtCursor,
	"s":         explorer.CmdOpenAtCursorInHorizontalSplit,
	"v":         explorer.CmdOpenAtCursorInVerticalSplit,
	"-":         explorer.CmdClose,
	"backspace": explorer.CmdOpenParent,
	"~":         explorer.CmdOpenHome,
	".":         explorer.CmdOpenInitial,
	"o":         explorer.CmdRevealInFileManager,
	"b":         explorer.CmdJumpToBookmark,
	"shift+b":   explorer.CmdToggleBookmarks,
	"m":         explorer.CmdAddBookmark,
	"shift+m":   explorer.CmdDeleteBookmark,
	"r":         explorer.CmdRename,
	"%":         explorer.CmdCreate,
	"d":         explorer.CmdCreateDir,
	"D":         explorer.CmdDelete,
	"delete":    explorer.CmdDelete,
	"shift+p":   explorer.CmdToggleFullPaths,
	"a":         explorer.CmdToggleHidden,
	"?":         explorer.CmdToggleHelp,
	"ctrl+l":    explorer.CmdRefresh,
}

var namedKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
}

// ParseKey converts a key name such as "enter", "ctrl+l", "shift+b" or "%"
// into a tcell key and rune.
func ParseKey(name string) (tcell.Key, rune, error) {
	if key, ok := namedKeys[name]; ok {
		return key, 0, nil
	}
	if letter, ok := strings.CutPrefix(name, "ctrl+"); ok {
		if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
			return 0, 0, fmt.Errorf("unsupported key %q", name)
		}
		return tcell.KeyCtrlA + tcell.Key(letter[0]-'a'), 0, nil
	}
	if letter, ok := strings.CutPrefix(name, "shift+"); ok {
		if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
			return 0, 0, fmt.Errorf("unsupported key %q", name)
		}
		return tcell.KeyRune, rune(strings.ToUpper(letter)[0]), nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return tcell.KeyRune, r, nil
	}
	return 0, 0, fmt.Errorf("unsupported key %q", name)
}

// Keymap resolves key events to explorer commands.
type Keymap struct {
	bindings []Binding
	byKey    map[tcell.Key]explorer.Command
	byRune   map[rune]explorer.Command
}

// Default builds the key map from the help banner.
func Default() *Keymap {
	km, err := New(listing.HelpBindings())
	if err != nil {
		panic(err)
	}
	return km
}

// New builds a key map from name/description pairs.
func New(pairs [][2]string) (*Keymap, error) {
	km := &Keymap{
		byKey:  make(map[tcell.Key]explorer.Command),
		byRune: make(map[rune]explorer.Command),
	}
	for _, pair := range pairs {
		name, description := pair[0], pair[1]
		cmd, ok := commandsByName[name]
		if !ok {
			return nil, fmt.Errorf("no command bound to key %q", name)
		}
		key, r, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		km.bindings = append(km.bindings, Binding{Name: name, Description: description, Command: cmd, Key: key, Rune: r})
		if key == tcell.KeyRune {
			km.byRune[r] = cmd
		} else {
			km.byKey[key] = cmd
		}
	}
	return km, nil
}

func (km *Keymap) Bindings() []Binding {
	bindings := make([]Binding, len(km.bindings))
	copy(bindings, km.bindings)
	return bindings
}

// Lookup returns the command bound to ev.
func (km *Keymap) Lookup(ev *tcell.EventKey) (explorer.Command, bool) {
	if ev == nil {
		return "", false
	}
	key := ev.Key()
	if key == tcell.KeyRune {
		cmd, ok := km.byRune[ev.Rune()]
		return cmd, ok
	}
	if key == tcell.KeyBackspace {
		key = tcell.KeyBackspace2
	}
	cmd, ok := km.byKey[key]
	return cmd, ok
}

// LookupName returns the command bound to a key name.
func (km *Keymap) LookupName(name string) (explorer.Command, bool) {
	key, r, err := ParseKey(name)
	if err != nil {
		return "", false
	}
	return km.Lookup(tcell.NewEventKey(key, r, tcell.ModNone))
}
