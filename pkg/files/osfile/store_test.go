package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/dirbuf/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	t.Run("valid_root", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "test-host", nil
		}
		s := NewStore("/tmp")
		assert.NotNil(t, s)
		assert.Equal(t, "/tmp", s.root)
		assert.Equal(t, "test-host", s.title)
	})

	t.Run("hostname_error", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "", errors.New("hostname error")
		}
		s := NewStore("/tmp")
		assert.Equal(t, "hostname error", s.title)
	})

	t.Run("empty_root_defaults", func(t *testing.T) {
		s := NewStore("")
		assert.Equal(t, "/", s.root)
	})
}

func TestStore_RootURL(t *testing.T) {
	s := NewStore("/tmp")
	u := s.RootURL()
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, "/tmp", u.Path)
}

func TestStore_RootTitle(t *testing.T) {
	s := Store{title: "my-host.local"}
	assert.Equal(t, "my-host", s.RootTitle())

	s = Store{title: "my-host"}
	assert.Equal(t, "my-host", s.RootTitle())
}

func TestStore_ReadDir(t *testing.T) {
	origReadDir := osReadDir
	defer func() { osReadDir = origReadDir }()

	s := NewStore("/tmp")

	t.Run("success", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return []os.DirEntry{}, nil
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.NoError(t, err)
		assert.NotNil(t, entries)
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		entries, err := s.ReadDir(ctx, "/tmp")
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Nil(t, entries)
	})

	t.Run("read_error", func(t *testing.T) {
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return nil, errors.New("read error")
		}
		entries, err := s.ReadDir(context.Background(), "/tmp")
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestStore_FileOperations(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	s := NewStore(root)
	ctx := context.Background()

	nested := filepath.Join(root, "a", "b", "note.txt")
	require.NoError(t, s.CreateFile(ctx, nested))
	info, err := s.Stat(ctx, nested)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(0), info.Size())

	dir := filepath.Join(root, "x", "y")
	require.NoError(t, s.CreateDir(ctx, dir))
	info, err = s.Stat(ctx, dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	moved := filepath.Join(root, "moved", "note.md")
	require.NoError(t, s.Rename(ctx, nested, moved))
	_, err = s.Stat(ctx, nested)
	assert.Equal(t, files.KindNotFound, files.KindOf(err))

	entries, err := s.ReadDir(ctx, filepath.Join(root, "moved"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "note.md", entries[0].Name())

	require.NoError(t, s.Delete(ctx, filepath.Join(root, "x")))
	_, err = s.Stat(ctx, dir)
	assert.Equal(t, files.KindNotFound, files.KindOf(err))

	err = s.Delete(ctx, filepath.Join(root, "never"))
	assert.Equal(t, files.KindNotFound, files.KindOf(err))
}

func TestStore_RenameOntoDirectory(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	s := NewStore(root)
	ctx := context.Background()

	src := filepath.Join(root, "f.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))
	dst := filepath.Join(root, "d")
	require.NoError(t, os.Mkdir(dst, 0o755))

	err := s.Rename(ctx, src, dst)
	assert.Equal(t, files.KindIsADirectory, files.KindOf(err))
}

func TestStore_RenameOverwritesFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	s := NewStore(root)
	ctx := context.Background()

	src := filepath.Join(root, "new.txt")
	dst := filepath.Join(root, "old.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	require.NoError(t, s.Rename(ctx, src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestStore_CreateFileError(t *testing.T) {
	origCreate := osCreate
	defer func() { osCreate = origCreate }()
	osCreate = func(name string) (*os.File, error) {
		return nil, os.ErrPermission
	}
	s := NewStore(t.TempDir())
	err := s.CreateFile(context.Background(), filepath.Join(s.root, "f"))
	assert.Equal(t, files.KindPermissionDenied, files.KindOf(err))
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore("/tmp")
	assert.ErrorIs(t, s.CreateDir(ctx, "/tmp/x"), context.Canceled)
	assert.ErrorIs(t, s.CreateFile(ctx, "/tmp/x"), context.Canceled)
	assert.ErrorIs(t, s.Delete(ctx, "/tmp/x"), context.Canceled)
	assert.ErrorIs(t, s.Rename(ctx, "/tmp/x", "/tmp/y"), context.Canceled)
	_, err := s.Stat(ctx, "/tmp")
	assert.ErrorIs(t, err, context.Canceled)
}
