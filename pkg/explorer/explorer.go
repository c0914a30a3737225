package explorer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filetug/dirbuf/pkg/bookmarks"
	"github.com/filetug/dirbuf/pkg/files"
	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/filetug/dirbuf/pkg/session"
	"go.uber.org/zap"
)

// Action tells the host what to do after a command.
type Action int

const (
	ActionNone Action = iota
	ActionRender
	ActionClose
	ActionOpenFile
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionClose:
		return "close"
	case ActionOpenFile:
		return "openFile"
	default:
		return "none"
	}
}

// Result describes the state change made by a command.
type Result struct {
	Action Action
	Path   string
	Column Column
}

var errNoListing = errors.New("no listing is open")

var osUserHomeDir = os.UserHomeDir

// Config holds the collaborators of an Explorer. Store, State and Prompter
// are required.
type Config struct {
	Store       files.Store
	State       *session.State
	Bookmarks   *bookmarks.Store
	Status      StatusSource
	Prompter    Prompter
	Notifier    Notifier
	Diagnostics DiagnosticSource
	Workspace   string
	Logger      *zap.Logger
}

// Explorer runs listing commands against a View.
type Explorer struct {
	store       files.Store
	state       *session.State
	marks       *bookmarks.Store
	status      StatusSource
	prompter    Prompter
	notifier    Notifier
	diagnostics DiagnosticSource
	workspace   string
	logger      *zap.Logger
}

func New(cfg Config) (*Explorer, error) {
	if cfg.Store == nil {
		return nil, errors.New("explorer: store is required")
	}
	if cfg.State == nil {
		return nil, errors.New("explorer: session state is required")
	}
	if cfg.Prompter == nil {
		return nil, errors.New("explorer: prompter is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Explorer{
		store:       cfg.Store,
		state:       cfg.State,
		marks:       cfg.Bookmarks,
		status:      cfg.Status,
		prompter:    cfg.Prompter,
		notifier:    notifier,
		diagnostics: cfg.Diagnostics,
		workspace:   cfg.Workspace,
		logger:      logger.With(zap.String("session", cfg.State.ID())),
	}, nil
}

func (e *Explorer) State() *session.State {
	return e.state
}

type nopNotifier struct{}

func (nopNotifier) Info(string)  {}
func (nopNotifier) Warn(string)  {}
func (nopNotifier) Error(string) {}

func (e *Explorer) homeDir() string {
	if e.workspace != "" {
		return e.workspace
	}
	home, err := osUserHomeDir()
	if err != nil || home == "" {
		return "/"
	}
	return home
}

// defaultDir is the directory of the active file, else the workspace, else
// the home directory.
func (e *Explorer) defaultDir(v *View) string {
	if v.ActiveFile != "" {
		return filepath.Dir(v.ActiveFile)
	}
	return e.homeDir()
}

func (e *Explorer) bookmarkList() []listing.Bookmark {
	if e.marks == nil {
		return nil
	}
	return e.marks.All()
}

func (e *Explorer) statusFunc(ctx context.Context, dir string) listing.StatusFunc {
	if e.status == nil {
		return nil
	}
	return e.status.StatusFunc(ctx, dir)
}

// show reads dir and replaces the view lines. When restore is set the saved
// cursor for dir, or the line of the previous file, is selected; otherwise
// the current cursor is kept.
func (e *Explorer) show(ctx context.Context, v *View, dir string, restore bool) error {
	dc := files.NewDirContext(e.store, dir, nil)
	if err := dc.Load(ctx); err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	lines := listing.Lines(dir, dc.Entries(), e.statusFunc(ctx, dir), e.state.Options(), e.bookmarkList())
	v.Dir = dir
	v.Open = true
	v.Lines = lines
	v.Selection = nil
	if restore {
		v.Cursor = e.restoreCursor(v)
	}
	if v.Cursor >= len(lines) {
		v.Cursor = len(lines) - 1
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	v.Diagnostics = e.rollUp(v)
	e.logger.Debug("listing rendered", zap.String("dir", dir), zap.Int("lines", len(lines)))
	return nil
}

func (e *Explorer) restoreCursor(v *View) int {
	if line, ok := e.state.Cursor(v.Dir, len(v.Lines)); ok {
		return line
	}
	if prev := e.state.PreviousFile(); prev != "" {
		for i, line := range v.Lines {
			if line.Kind == listing.KindEntry && line.Path == prev {
				return i
			}
		}
	}
	return 0
}

func (e *Explorer) saveCursor(v *View) {
	if v.Open {
		e.state.SaveCursor(v.Dir, v.Cursor)
	}
}

func (e *Explorer) navigate(ctx context.Context, v *View, dir string) (Result, error) {
	e.saveCursor(v)
	if err := e.show(ctx, v, dir, true); err != nil {
		return Result{}, err
	}
	return Result{Action: ActionRender, Path: dir}, nil
}

func (e *Explorer) refresh(ctx context.Context, v *View) (Result, error) {
	if !v.Open {
		return Result{}, nil
	}
	if err := e.show(ctx, v, v.Dir, false); err != nil {
		return Result{}, err
	}
	return Result{Action: ActionRender, Path: v.Dir}, nil
}

func (e *Explorer) resolve(v *View, line listing.Line) string {
	return listing.ResolvePath(line.Text, v.Dir, e.state.Options())
}

func (e *Explorer) confirm(ctx context.Context, message string) error {
	ok, err := e.prompter.Confirm(ctx, message)
	if err != nil {
		return err
	}
	if !ok {
		return files.ErrCancelled
	}
	return nil
}

// Execute runs cmd and reports failures to the user. Cancellation is silent.
func (e *Explorer) Execute(ctx context.Context, v *View, cmd Command, arg string) Result {
	result, err := e.Run(ctx, v, cmd, arg)
	if err == nil {
		return result
	}
	if files.IsCancelled(err) {
		e.logger.Debug("command cancelled", zap.Stringer("command", cmd))
		return Result{}
	}
	e.logger.Warn("command failed",
		zap.Stringer("command", cmd),
		zap.String("dir", v.Dir),
		zap.Stringer("kind", files.KindOf(err)),
		zap.Error(err))
	e.notifier.Error(err.Error())
	return Result{}
}
