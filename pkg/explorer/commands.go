package explorer

import (
	"context"
	"fmt"
)

// Command names an explorer command.
type Command string

const (
	CmdOpen                          Command = "open"
	CmdOpenAtCursor                  Command = "openAtCursor"
	CmdOpenAtCursorInHorizontalSplit Command = "openAtCursorInHorizontalSplit"
	CmdOpenAtCursorInVerticalSplit   Command = "openAtCursorInVerticalSplit"
	CmdOpenParent                    Command = "openParent"
	CmdOpenHome                      Command = "openHome"
	CmdOpenInitial                   Command = "openInitial"
	CmdRename                        Command = "rename"
	CmdDelete                        Command = "delete"
	CmdCreate                        Command = "create"
	CmdCreateDir                     Command = "createDir"
	CmdRefresh                       Command = "refresh"
	CmdClose                         Command = "close"
	CmdToggleFullPaths               Command = "toggleFullPaths"
	CmdToggleBookmarks               Command = "toggleBookmarks"
	CmdToggleHelp                    Command = "toggleHelp"
	CmdToggleHidden                  Command = "toggleHidden"
	CmdAddBookmark                   Command = "addBookmark"
	CmdDeleteBookmark                Command = "deleteBookmark"
	CmdJumpToBookmark                Command = "jumpToBookmark"
	CmdRevealInFileManager           Command = "revealInFileManager"
)

func (c Command) String() string {
	return string(c)
}

// Commands lists every command in a stable order.
func Commands() []Command {
	return []Command{
		CmdOpen,
		CmdOpenAtCursor,
		CmdOpenAtCursorInHorizontalSplit,
		CmdOpenAtCursorInVerticalSplit,
		CmdOpenParent,
		CmdOpenHome,
		CmdOpenInitial,
		CmdRename,
		CmdDelete,
		CmdCreate,
		CmdCreateDir,
		CmdRefresh,
		CmdClose,
		CmdToggleFullPaths,
		CmdToggleBookmarks,
		CmdToggleHelp,
		CmdToggleHidden,
		CmdAddBookmark,
		CmdDeleteBookmark,
		CmdJumpToBookmark,
		CmdRevealInFileManager,
	}
}

// Run executes cmd and returns its error unreported. arg is the directory
// for open and the bookmark key for addBookmark and jumpToBookmark.
func (e *Explorer) Run(ctx context.Context, v *View, cmd Command, arg string) (Result, error) {
	switch cmd {
	case CmdOpen:
		return e.Open(ctx, v, arg)
	case CmdOpenAtCursor:
		return e.OpenAtCursor(ctx, v, ColumnActive)
	case CmdOpenAtCursorInHorizontalSplit:
		return e.OpenAtCursor(ctx, v, ColumnHorizontalSplit)
	case CmdOpenAtCursorInVerticalSplit:
		return e.OpenAtCursor(ctx, v, ColumnVerticalSplit)
	case CmdOpenParent:
		return e.OpenParent(ctx, v)
	case CmdOpenHome:
		return e.OpenHome(ctx, v)
	case CmdOpenInitial:
		return e.OpenInitial(ctx, v)
	case CmdRename:
		return e.Rename(ctx, v)
	case CmdDelete:
		return e.Delete(ctx, v)
	case CmdCreate:
		return e.Create(ctx, v)
	case CmdCreateDir:
		return e.CreateDir(ctx, v)
	case CmdRefresh:
		return e.Refresh(ctx, v)
	case CmdClose:
		return e.Close(v), nil
	case CmdToggleFullPaths, CmdToggleBookmarks, CmdToggleHelp, CmdToggleHidden:
		return e.Toggle(ctx, v, toggles[cmd])
	case CmdAddBookmark:
		return e.AddBookmark(ctx, v, arg)
	case CmdDeleteBookmark:
		return e.DeleteBookmark(ctx, v)
	case CmdJumpToBookmark:
		return e.JumpToBookmark(ctx, v, arg)
	case CmdRevealInFileManager:
		return e.RevealInFileManager(v)
	default:
		return Result{}, fmt.Errorf("unknown command %q", cmd)
	}
}
