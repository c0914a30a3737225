package explorer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/dirbuf/pkg/files"
	"github.com/filetug/dirbuf/pkg/listing"
	"go.uber.org/zap"
)

func (e *Explorer) exists(ctx context.Context, path string) (fs.FileInfo, bool, error) {
	info, err := e.store.Stat(ctx, path)
	if err == nil {
		return info, true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	return nil, false, err
}

// Rename moves the entry under the cursor. A destination directory receives
// the entry under its current name.
func (e *Explorer) Rename(ctx context.Context, v *View) (Result, error) {
	line, ok := v.CurrentLine()
	if !ok || line.Kind != listing.KindEntry {
		return Result{}, nil
	}
	src := e.resolve(v, line)
	if src == "" {
		return Result{}, nil
	}
	name, err := e.prompter.Input(ctx, "Rename to", filepath.Base(src))
	if err != nil {
		return Result{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, nil
	}
	dst := filepath.Join(v.Dir, name)
	if dst == src {
		return Result{}, nil
	}
	info, found, err := e.exists(ctx, dst)
	if err != nil {
		return Result{}, fmt.Errorf("rename %s: %w", src, err)
	}
	if found && info.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
		if info, found, err = e.exists(ctx, dst); err != nil {
			return Result{}, fmt.Errorf("rename %s: %w", src, err)
		}
	}
	if found {
		if info.IsDir() {
			return Result{}, &os.PathError{Op: "rename", Path: dst, Err: files.ErrIsADirectory}
		}
		if err = e.confirm(ctx, fmt.Sprintf("Overwrite %s?", dst)); err != nil {
			return Result{}, err
		}
	}
	if err = e.store.Rename(ctx, src, dst); err != nil {
		return Result{}, fmt.Errorf("rename %s: %w", src, err)
	}
	e.logger.Info("renamed", zap.String("path", src), zap.String("to", dst))
	return e.refresh(ctx, v)
}

// Delete removes the selected entries, or the entry under the cursor.
func (e *Explorer) Delete(ctx context.Context, v *View) (Result, error) {
	if !v.Open {
		return Result{}, nil
	}
	var paths []string
	for _, line := range v.selectedLines() {
		if line.Kind != listing.KindEntry {
			continue
		}
		if path := e.resolve(v, line); path != "" {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return Result{}, nil
	}
	message := fmt.Sprintf("Confirm deletion of %s", filepath.Base(paths[0]))
	if len(paths) > 1 {
		message = fmt.Sprintf("Confirm deletion of %d files", len(paths))
	}
	if err := e.confirm(ctx, message); err != nil {
		return Result{}, err
	}
	var deleteErr error
	for _, path := range paths {
		if err := e.store.Delete(ctx, path); err != nil {
			deleteErr = fmt.Errorf("delete %s: %w", path, err)
			break
		}
		e.logger.Info("deleted", zap.String("path", path))
	}
	result, err := e.refresh(ctx, v)
	if deleteErr != nil {
		return result, deleteErr
	}
	return result, err
}

// Create makes a file, or a directory when the name ends with "/". A new
// file is opened.
func (e *Explorer) Create(ctx context.Context, v *View) (Result, error) {
	if !v.Open {
		return Result{}, errNoListing
	}
	name, err := e.prompter.Input(ctx, "Create file (end with / for a directory)", "")
	if err != nil {
		return Result{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, nil
	}
	path := filepath.Join(v.Dir, name)
	_, found, err := e.exists(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", path, err)
	}
	if found {
		return Result{}, nil
	}
	if strings.HasSuffix(name, "/") {
		if err = e.store.CreateDir(ctx, path); err != nil {
			return Result{}, fmt.Errorf("create %s: %w", path, err)
		}
		return e.refresh(ctx, v)
	}
	if err = e.store.CreateFile(ctx, path); err != nil {
		return Result{}, fmt.Errorf("create %s: %w", path, err)
	}
	e.logger.Info("created", zap.String("path", path))
	e.Close(v)
	v.ActiveFile = path
	return Result{Action: ActionOpenFile, Path: path, Column: ColumnActive}, nil
}

// CreateDir makes a directory along with any missing parents.
func (e *Explorer) CreateDir(ctx context.Context, v *View) (Result, error) {
	if !v.Open {
		return Result{}, errNoListing
	}
	name, err := e.prompter.Input(ctx, "Create directory", "")
	if err != nil {
		return Result{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Result{}, nil
	}
	path := filepath.Join(v.Dir, name)
	if err = e.store.CreateDir(ctx, path); err != nil {
		return Result{}, fmt.Errorf("create directory %s: %w", path, err)
	}
	e.logger.Info("created directory", zap.String("path", path))
	return e.refresh(ctx, v)
}
