package explorer

import (
	"context"
	"sync"
	"testing"

	"github.com/filetug/dirbuf/pkg/bookmarks"
	"github.com/filetug/dirbuf/pkg/files"
	"github.com/filetug/dirbuf/pkg/files/billyfile"
	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/filetug/dirbuf/pkg/session"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakePrompter struct {
	confirms []bool
	inputs   []string
	picks    []string
	asked    []string
	items    [][]string
}

func (p *fakePrompter) Confirm(_ context.Context, message string) (bool, error) {
	p.asked = append(p.asked, message)
	if len(p.confirms) == 0 {
		return false, files.ErrCancelled
	}
	ok := p.confirms[0]
	p.confirms = p.confirms[1:]
	return ok, nil
}

func (p *fakePrompter) Input(_ context.Context, prompt, initial string) (string, error) {
	p.asked = append(p.asked, prompt+"|"+initial)
	if len(p.inputs) == 0 {
		return "", files.ErrCancelled
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	return value, nil
}

func (p *fakePrompter) Pick(_ context.Context, title string, items []string) (string, error) {
	p.asked = append(p.asked, title)
	p.items = append(p.items, items)
	if len(p.picks) == 0 {
		return "", files.ErrCancelled
	}
	value := p.picks[0]
	p.picks = p.picks[1:]
	return value, nil
}

type fakeNotifier struct {
	infos, warns, errors []string
}

func (n *fakeNotifier) Info(message string)  { n.infos = append(n.infos, message) }
func (n *fakeNotifier) Warn(message string)  { n.warns = append(n.warns, message) }
func (n *fakeNotifier) Error(message string) { n.errors = append(n.errors, message) }

type fakeStatus map[string]string

func (s fakeStatus) StatusFunc(context.Context, string) func(string) string {
	return func(path string) string { return s[path] }
}

type fakeDiagnostics map[string][]Diagnostic

func (d fakeDiagnostics) Diagnostics() map[string][]Diagnostic {
	return d
}

type memPersister struct {
	mu    sync.Mutex
	marks map[string]string
}

func (p *memPersister) Load() (map[string]string, error) {
	return map[string]string{}, nil
}

func (p *memPersister) Save(marks map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.marks = marks
	return nil
}

type fixture struct {
	explorer *Explorer
	store    *billyfile.Store
	prompter *fakePrompter
	notifier *fakeNotifier
	marks    *bookmarks.Store
	status   fakeStatus
	diags    fakeDiagnostics
}

var defaultOptions = listing.Options{ShowHidden: true, ShowBookmarks: true}

func newFixture(t *testing.T, paths ...string) *fixture {
	t.Helper()
	ctx := context.Background()
	store := billyfile.NewMemoryStore()
	for _, p := range paths {
		if p[len(p)-1] == '/' {
			require.NoError(t, store.CreateDir(ctx, p))
		} else {
			require.NoError(t, store.CreateFile(ctx, p))
		}
	}
	marks, err := bookmarks.Open(&memPersister{}, nil)
	require.NoError(t, err)
	t.Cleanup(marks.Close)

	f := &fixture{
		store:    store,
		prompter: &fakePrompter{},
		notifier: &fakeNotifier{},
		marks:    marks,
		status:   fakeStatus{},
		diags:    fakeDiagnostics{},
	}
	f.explorer, err = New(Config{
		Store:       store,
		State:       session.New(defaultOptions),
		Bookmarks:   marks,
		Status:      f.status,
		Prompter:    f.prompter,
		Notifier:    f.notifier,
		Diagnostics: f.diags,
		Workspace:   "/ws",
		Logger:      zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) open(t *testing.T, dir string) *View {
	t.Helper()
	v := &View{}
	_, err := f.explorer.Open(context.Background(), v, dir)
	require.NoError(t, err)
	return v
}

func lineIndex(t *testing.T, v *View, text string) int {
	t.Helper()
	for i, line := range v.Lines {
		if line.Text == text {
			return i
		}
	}
	t.Fatalf("line %q not found in %q", text, v.Texts())
	return -1
}

func cursorAt(t *testing.T, v *View, text string) {
	t.Helper()
	v.Cursor = lineIndex(t, v, text)
}
