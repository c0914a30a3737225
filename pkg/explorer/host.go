package explorer

import (
	"context"

	"github.com/filetug/dirbuf/pkg/listing"
)

// Prompter asks the user for input. A dismissed prompt returns
// files.ErrCancelled.
type Prompter interface {
	Confirm(ctx context.Context, message string) (bool, error)
	Input(ctx context.Context, prompt, initial string) (string, error)
	Pick(ctx context.Context, title string, items []string) (string, error)
}

// Notifier shows messages to the user.
type Notifier interface {
	Info(message string)
	Warn(message string)
	Error(message string)
}

// StatusSource provides VCS status suffixes for a listed directory.
type StatusSource interface {
	StatusFunc(ctx context.Context, dir string) func(path string) string
}

// DiagnosticSource reports the problems known for files, keyed by
// absolute path.
type DiagnosticSource interface {
	Diagnostics() map[string][]Diagnostic
}

// Column is where a file gets opened.
type Column int

const (
	ColumnActive Column = iota
	ColumnHorizontalSplit
	ColumnVerticalSplit
)

func (c Column) String() string {
	switch c {
	case ColumnHorizontalSplit:
		return "split"
	case ColumnVerticalSplit:
		return "vsplit"
	default:
		return "active"
	}
}

// View is the host window a listing is shown in.
type View struct {
	// Dir is the listed directory.
	Dir string
	// Open is true while the listing is shown.
	Open bool

	Lines  []listing.Line
	Cursor int
	// Selection holds line indexes; when empty the cursor line is used.
	Selection []int

	// ActiveFile is the file shown in the window when no listing is open.
	ActiveFile string

	Diagnostics []LineDiagnostic
}

// Texts returns the display text of every line.
func (v *View) Texts() []string {
	texts := make([]string, len(v.Lines))
	for i, line := range v.Lines {
		texts[i] = line.Text
	}
	return texts
}

// CurrentLine returns the line under the cursor.
func (v *View) CurrentLine() (listing.Line, bool) {
	if !v.Open || v.Cursor < 0 || v.Cursor >= len(v.Lines) {
		return listing.Line{}, false
	}
	return v.Lines[v.Cursor], true
}

func (v *View) selectedLines() []listing.Line {
	if len(v.Selection) == 0 {
		line, ok := v.CurrentLine()
		if !ok {
			return nil
		}
		return []listing.Line{line}
	}
	lines := make([]listing.Line, 0, len(v.Selection))
	for _, i := range v.Selection {
		if i >= 0 && i < len(v.Lines) {
			lines = append(lines, v.Lines[i])
		}
	}
	return lines
}
