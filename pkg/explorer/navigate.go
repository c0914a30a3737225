package explorer

import (
	"context"
	"path/filepath"

	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/filetug/dirbuf/pkg/session"
	"go.uber.org/zap"
)

var toggles = map[Command]session.Toggle{
	CmdToggleFullPaths: session.ToggleFullPaths,
	CmdToggleBookmarks: session.ToggleBookmarks,
	CmdToggleHelp:      session.ToggleHelp,
	CmdToggleHidden:    session.ToggleHidden,
}

// Open shows the listing for dir, or for the default directory when dir is
// empty. If a listing is already open it is closed instead.
func (e *Explorer) Open(ctx context.Context, v *View, dir string) (Result, error) {
	if v.Open {
		return e.Close(v), nil
	}
	if dir == "" {
		dir = e.defaultDir(v)
	}
	dir = filepath.Clean(dir)
	prev := e.state.PreviousFile()
	e.state.SetPreviousFile(v.ActiveFile)
	if err := e.show(ctx, v, dir, true); err != nil {
		e.state.SetPreviousFile(prev)
		return Result{}, err
	}
	e.state.SetInitialDirectory(dir)
	return Result{Action: ActionRender, Path: dir}, nil
}

// OpenAtCursor opens what the cursor line denotes: a directory replaces the
// listing, a file closes it and is opened in column.
func (e *Explorer) OpenAtCursor(ctx context.Context, v *View, column Column) (Result, error) {
	line, ok := v.CurrentLine()
	if !ok {
		return Result{}, nil
	}
	if line.Kind == listing.KindBookmark {
		key, _ := listing.BookmarkKey(line.Text)
		return e.JumpToBookmark(ctx, v, key)
	}
	path := e.resolve(v, line)
	if path == "" {
		return Result{}, nil
	}
	info, err := e.store.Stat(ctx, path)
	if err != nil {
		return Result{}, err
	}
	if info.IsDir() {
		return e.navigate(ctx, v, path)
	}
	e.Close(v)
	v.ActiveFile = path
	e.logger.Debug("open file", zap.String("path", path), zap.Stringer("column", column))
	return Result{Action: ActionOpenFile, Path: path, Column: column}, nil
}

func (e *Explorer) OpenParent(ctx context.Context, v *View) (Result, error) {
	if !v.Open {
		return Result{}, errNoListing
	}
	return e.navigate(ctx, v, filepath.Dir(v.Dir))
}

// OpenHome opens the workspace folder if configured, else the home directory.
func (e *Explorer) OpenHome(ctx context.Context, v *View) (Result, error) {
	return e.navigate(ctx, v, e.homeDir())
}

// OpenInitial opens the directory the first listing was opened in.
func (e *Explorer) OpenInitial(ctx context.Context, v *View) (Result, error) {
	dir, ok := e.state.InitialDirectory()
	if !ok {
		dir = e.defaultDir(v)
		e.state.SetInitialDirectory(dir)
	}
	return e.navigate(ctx, v, dir)
}

func (e *Explorer) Refresh(ctx context.Context, v *View) (Result, error) {
	return e.refresh(ctx, v)
}

// Close remembers the cursor and hides the listing.
func (e *Explorer) Close(v *View) Result {
	if !v.Open {
		return Result{}
	}
	e.saveCursor(v)
	dir := v.Dir
	v.Open = false
	v.Lines = nil
	v.Selection = nil
	v.Diagnostics = nil
	return Result{Action: ActionClose, Path: dir}
}

// Toggle flips a display flag and re-renders an open listing.
func (e *Explorer) Toggle(ctx context.Context, v *View, t session.Toggle) (Result, error) {
	value := e.state.Toggle(t)
	res, err := e.refresh(ctx, v)
	if err != nil {
		e.state.Toggle(t)
		return Result{}, err
	}
	e.logger.Debug("toggled", zap.Stringer("toggle", t), zap.Bool("value", value))
	return res, nil
}
