package listing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	t.Parallel()
	relative := Options{}
	full := Options{ShowFullPaths: true}
	tests := []struct {
		name string
		line string
		base string
		opts Options
		want string
	}{
		{"file_with_status", "f.txt M", "/a", relative, "/a/f.txt"},
		{"dir", "sub/", "/a", relative, "/a/sub"},
		{"plain_file", "f.txt", "/a", relative, "/a/f.txt"},
		{"parent", "../", "/a/b", relative, "/a"},
		{"parent_full_paths", "../", "/a/b", full, "/a"},
		{"full_dir", "/a/sub/", "/a", full, "/a/sub"},
		{"full_file_status", "/a/f.txt A", "/a", full, "/a/f.txt"},
		{"renamed_status", "x R", "/a", relative, "/a/x"},
		{"copied_status", "x C", "/a", relative, "/a/x"},
		{"bookmark", "[w] /work/", "/anything", relative, "/work"},
		{"bookmark_full_paths", "[w] /work/", "/anything", full, "/work"},
		{"bookmark_long_key", "[projects] /home/u/projects/", "/", relative, "/home/u/projects"},
		{"separator", BookmarkSeparator, "/a", relative, ""},
		{"help_prefix", `" dirbuf directory listing`, "/a", relative, ""},
		{"colon_space", "r: rename", "/a", relative, ""},
		{"empty", "", "/a", relative, ""},
		{"lowercase_not_status", "file m", "/a", relative, "/a/file m"},
		{"two_spaces_status", "file  M", "/a", relative, "/a/file "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.line, tt.base, tt.opts))
		})
	}
}

func TestResolvePath_RoundTrip(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Name: "plain"},
		{Name: "with space.txt"},
		{Name: "dir", IsDir: true},
		{Name: ".hidden"},
		{Name: "x.tar.gz"},
		{Name: "ünïcode", IsDir: true},
		{Name: "a]b"},
	}
	status := statusMap(map[string]string{
		"/base/plain":    "M",
		"/base/x.tar.gz": "U",
	})
	for _, opts := range []Options{
		{ShowHidden: true},
		{ShowHidden: true, ShowFullPaths: true},
	} {
		lines := Lines("/base", entries, status, opts, nil)
		for _, line := range lines {
			if line.Kind != KindEntry {
				continue
			}
			assert.Equal(t, filepath.Join("/base", line.Name), ResolvePath(line.Text, "/base", opts), line.Text)
		}
	}
}

func TestResolvePath_BookmarkRoundTrip(t *testing.T) {
	t.Parallel()
	bookmarks := []Bookmark{{Key: "w", Path: "/work"}, {Key: "home", Path: "/home/u"}}
	lines := Lines("/", nil, nil, Options{ShowBookmarks: true}, bookmarks)
	for _, line := range lines {
		if line.Kind != KindBookmark {
			continue
		}
		assert.Equal(t, line.Path, ResolvePath(line.Text, "/elsewhere", Options{}))
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	assert.Equal(t, KindSeparator, Classify(BookmarkSeparator))
	assert.Equal(t, KindHelp, Classify(HelpBanner()[0]))
	assert.Equal(t, KindHelp, Classify("x: y"))
	assert.Equal(t, KindBookmark, Classify("[w] /work/"))
	assert.Equal(t, KindParent, Classify("../"))
	assert.Equal(t, KindEntry, Classify("f.txt M"))
	assert.Equal(t, KindEntry, Classify("[oops]"))
}

func TestBookmarkKey(t *testing.T) {
	t.Parallel()
	key, ok := BookmarkKey("[w] /work/")
	assert.True(t, ok)
	assert.Equal(t, "w", key)

	key, ok = BookmarkKey("[solo]")
	assert.True(t, ok)
	assert.Equal(t, "solo", key)

	_, ok = BookmarkKey("plain")
	assert.False(t, ok)
}

func TestStripStatus(t *testing.T) {
	t.Parallel()
	text, status := StripStatus("f.txt D")
	assert.Equal(t, "f.txt", text)
	assert.Equal(t, "D", status)

	text, status = StripStatus("f.txt")
	assert.Equal(t, "f.txt", text)
	assert.Equal(t, "", status)

	text, status = StripStatus("M")
	assert.Equal(t, "M", text)
	assert.Equal(t, "", status)
}
