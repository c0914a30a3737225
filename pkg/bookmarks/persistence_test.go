package bookmarks

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLFile_FileNotExists(t *testing.T) {
	f := NewYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	marks, err := f.Load()
	assert.NoError(t, err)
	assert.Empty(t, marks)
	assert.NotNil(t, marks)
}

func TestYAMLFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	marks, err := NewYAMLFile(path).Load()
	assert.NoError(t, err)
	assert.Empty(t, marks)
}

func TestYAMLFile_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: ["), 0o644))
	marks, err := NewYAMLFile(path).Load()
	assert.Nil(t, marks)
	assert.Error(t, err)
}

func TestYAMLFile_EmptyPath(t *testing.T) {
	f := NewYAMLFile("")
	_, err := f.Load()
	assert.ErrorIs(t, err, errFilePathIsEmpty)
	assert.ErrorIs(t, f.Save(nil), errFilePathIsEmpty)
}

func TestYAMLFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookmarks.yaml")
	f := NewYAMLFile(path)
	assert.Equal(t, path, f.Path())

	require.NoError(t, f.Save(map[string]string{"w": "/work", "a": "/a"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "key: a")
	assert.Contains(t, text, "path: /work")
	assert.Less(t, strings.Index(text, "key: a"), strings.Index(text, "key: w"))

	marks, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"w": "/work", "a": "/a"}, marks)
}

func TestYAMLFile_SkipsIncompleteItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- key: a\n- path: /b\n- key: c\n  path: /c\n"), 0o644))
	marks, err := NewYAMLFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"c": "/c"}, marks)
}

func TestYAMLFile_SkipsUnparsableKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	data := "- key: \"a]b\"\n  path: /x\n- key: \" w\"\n  path: /y\n- key: ok\n  path: /z\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	marks, err := NewYAMLFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ok": "/z"}, marks)
}

func TestYAMLFile_HomeContraction(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		t.Skip("no usable home directory")
	}
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	f := NewYAMLFile(path)
	require.NoError(t, f.Save(map[string]string{"h": filepath.Join(home, "projects")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "path: ~/projects")

	marks, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), marks["h"])
}

func TestYAMLFile_SaveErrors(t *testing.T) {
	f := NewYAMLFile(filepath.Join(t.TempDir(), "bookmarks.yaml"))

	origMarshal := yamlMarshal
	yamlMarshal = func(any) ([]byte, error) { return nil, errors.New("marshal") }
	assert.EqualError(t, f.Save(map[string]string{"a": "/a"}), "marshal")
	yamlMarshal = origMarshal

	origMkdirAll := osMkdirAll
	osMkdirAll = func(string, os.FileMode) error { return errors.New("mkdir") }
	assert.EqualError(t, f.Save(map[string]string{"a": "/a"}), "mkdir")
	osMkdirAll = origMkdirAll

	origWriteFile := osWriteFile
	osWriteFile = func(string, []byte, os.FileMode) error { return errors.New("write") }
	assert.EqualError(t, f.Save(map[string]string{"a": "/a"}), "write")
	osWriteFile = origWriteFile
}

func TestYAMLFile_ReadError(t *testing.T) {
	orig := osReadFile
	defer func() { osReadFile = orig }()
	osReadFile = func(string) ([]byte, error) { return nil, errors.New("read") }
	_, err := NewYAMLFile("/x.yaml").Load()
	assert.EqualError(t, err, "read")
}

func TestYAMLFile_WithStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.yaml")
	s, err := Open(NewYAMLFile(path), nil)
	require.NoError(t, err)
	require.NoError(t, s.Add("w", "/work"))
	s.Close()

	reopened, err := Open(NewYAMLFile(path), nil)
	require.NoError(t, err)
	defer reopened.Close()
	p, ok := reopened.Lookup("w")
	assert.True(t, ok)
	assert.Equal(t, "/work", p)
}
