package explorer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/filetug/dirbuf/pkg/listing"
)

var errNoBookmarkStore = errors.New("bookmarks are not available")

// AddBookmark bookmarks the directory of the cursor line under key. On a
// bookmark line it deletes that bookmark instead.
func (e *Explorer) AddBookmark(ctx context.Context, v *View, key string) (Result, error) {
	if e.marks == nil {
		return Result{}, errNoBookmarkStore
	}
	line, ok := v.CurrentLine()
	if !ok {
		return Result{}, nil
	}
	if line.Kind == listing.KindBookmark {
		return e.DeleteBookmark(ctx, v)
	}
	path := e.resolve(v, line)
	if path == "" {
		return Result{}, nil
	}
	info, err := e.store.Stat(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("bookmark %s: %w", path, err)
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
	}
	if key == "" {
		key, err = e.prompter.Input(ctx, "Bookmark key", "")
		if err != nil {
			return Result{}, err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			key = filepath.Base(path)
		}
	}
	if existing, found := e.marks.Lookup(key); found && existing != path {
		if err = e.confirm(ctx, fmt.Sprintf("Bookmark [%s] already points to %s. Overwrite?", key, existing)); err != nil {
			return Result{}, err
		}
	}
	if err = e.marks.Add(key, path); err != nil {
		return Result{}, err
	}
	e.notifier.Info(fmt.Sprintf("Bookmark [%s] added for %s", key, path))
	return e.refresh(ctx, v)
}

// DeleteBookmark removes the bookmark under the cursor.
func (e *Explorer) DeleteBookmark(ctx context.Context, v *View) (Result, error) {
	if e.marks == nil {
		return Result{}, errNoBookmarkStore
	}
	line, ok := v.CurrentLine()
	if !ok || line.Kind != listing.KindBookmark {
		e.notifier.Warn("Cursor is not on a bookmark")
		return Result{}, nil
	}
	key, _ := listing.BookmarkKey(line.Text)
	if !e.marks.Remove(key) {
		e.notifier.Warn(fmt.Sprintf("Unknown bookmark [%s]", key))
		return Result{}, nil
	}
	e.notifier.Info(fmt.Sprintf("Bookmark [%s] deleted", key))
	return e.refresh(ctx, v)
}

// JumpToBookmark opens the directory bookmarked under key. Without a key the
// user picks one.
func (e *Explorer) JumpToBookmark(ctx context.Context, v *View, key string) (Result, error) {
	if e.marks == nil {
		return Result{}, errNoBookmarkStore
	}
	if key == "" {
		all := e.marks.All()
		if len(all) == 0 {
			e.notifier.Warn("No bookmarks defined")
			return Result{}, nil
		}
		items := make([]string, len(all))
		for i, b := range all {
			items[i] = listing.BookmarkLine(b)
		}
		picked, err := e.prompter.Pick(ctx, "Jump to bookmark", items)
		if err != nil {
			return Result{}, err
		}
		var ok bool
		if key, ok = listing.BookmarkKey(picked); !ok {
			key = picked
		}
	}
	path, ok := e.marks.Lookup(key)
	if !ok {
		e.notifier.Warn(fmt.Sprintf("Unknown bookmark [%s]", key))
		return Result{}, nil
	}
	return e.navigate(ctx, v, path)
}
