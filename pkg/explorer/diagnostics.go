package explorer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/filetug/dirbuf/pkg/listing"
)

// Severity orders diagnostics; lower is more severe.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInformation
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "info"
	default:
		return "hint"
	}
}

// Diagnostic is one problem reported for a file.
type Diagnostic struct {
	Path     string
	Severity Severity
	Message  string
}

// LineDiagnostic summarizes the problems of the path a listing line denotes.
type LineDiagnostic struct {
	Line     int
	Severity Severity
	Message  string
	Related  []Diagnostic
}

func problemsMessage(n int, isDir bool) string {
	noun := "problems"
	if n == 1 {
		noun = "problem"
	}
	where := "file"
	if isDir {
		where = "directory"
	}
	return fmt.Sprintf("%d %s in this %s", n, noun, where)
}

func (e *Explorer) rollUp(v *View) []LineDiagnostic {
	if e.diagnostics == nil {
		return nil
	}
	byPath := e.diagnostics.Diagnostics()
	if len(byPath) == 0 {
		return nil
	}
	var result []LineDiagnostic
	for i, line := range v.Lines {
		if line.Kind != listing.KindEntry {
			continue
		}
		path := e.resolve(v, line)
		if path == "" {
			continue
		}
		related := collect(byPath, path, line.IsDir)
		if len(related) == 0 {
			continue
		}
		worst := related[0].Severity
		for _, d := range related[1:] {
			if d.Severity < worst {
				worst = d.Severity
			}
		}
		result = append(result, LineDiagnostic{
			Line:     i,
			Severity: worst,
			Message:  problemsMessage(len(related), line.IsDir),
			Related:  related,
		})
	}
	return result
}

// collect returns the diagnostics of path, or of every file under path when
// it is a directory, ordered by path.
func collect(byPath map[string][]Diagnostic, path string, isDir bool) []Diagnostic {
	if !isDir {
		return withPath(nil, path, byPath[path])
	}
	prefix := path + "/"
	var keys []string
	for p := range byPath {
		if strings.HasPrefix(p, prefix) {
			keys = append(keys, p)
		}
	}
	sort.Strings(keys)
	var related []Diagnostic
	for _, p := range keys {
		related = withPath(related, p, byPath[p])
	}
	return related
}

func withPath(dst []Diagnostic, path string, src []Diagnostic) []Diagnostic {
	for _, d := range src {
		if d.Path == "" {
			d.Path = path
		}
		dst = append(dst, d)
	}
	return dst
}
