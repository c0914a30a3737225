package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/filetug/dirbuf/pkg/explorer"
	"github.com/filetug/dirbuf/pkg/files"
	"github.com/filetug/dirbuf/pkg/keymap"
	"github.com/filetug/dirbuf/pkg/session"
	"github.com/filetug/dirbuf/pkg/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const replHelp = `commands:
  <key>            run the key binding, e.g. enter, -, shift+b, %
  :<command> [arg] run an explorer command, e.g. :open /tmp, :addBookmark w
  j / k            move the cursor down / up
  g <n>            move the cursor to line n
  sel <n>...       select lines for delete
  p                print the listing
  keys             list key bindings
  q                quit`

// lineHost is a line-oriented explorer host: it reads commands and prompt
// answers from one input stream and prints listings and messages.
type lineHost struct {
	lines   <-chan string
	out     io.Writer
	logger  *zap.Logger
	keys    *keymap.Keymap
	exp     *explorer.Explorer
	view    *explorer.View
	watcher *watch.Watcher
}

// readLines feeds r line by line until EOF or until ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func (h *lineHost) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(h.out, format, args...)
}

func (h *lineHost) Info(message string)  { h.printf("info: %s\n", message) }
func (h *lineHost) Warn(message string)  { h.printf("warn: %s\n", message) }
func (h *lineHost) Error(message string) { h.printf("error: %s\n", message) }

func (h *lineHost) read(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", files.ErrCancelled
	case line, ok := <-h.lines:
		if !ok {
			return "", files.ErrCancelled
		}
		return line, nil
	}
}

func (h *lineHost) Confirm(ctx context.Context, message string) (bool, error) {
	h.printf("%s [y/N] ", message)
	answer, err := h.read(ctx)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func (h *lineHost) Input(ctx context.Context, prompt, initial string) (string, error) {
	if initial != "" {
		h.printf("%s [%s]: ", prompt, initial)
	} else {
		h.printf("%s: ", prompt)
	}
	answer, err := h.read(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return initial, nil
	}
	return answer, nil
}

func (h *lineHost) Pick(ctx context.Context, title string, items []string) (string, error) {
	h.printf("%s\n", title)
	for i, item := range items {
		h.printf("%3d %s\n", i+1, item)
	}
	h.printf("> ")
	answer, err := h.read(ctx)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", files.ErrCancelled
	}
	if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}
	return answer, nil
}

func (h *lineHost) print() {
	if !h.view.Open {
		h.printf("(no listing)\n")
		return
	}
	h.printf("%s\n", h.view.Dir)
	problems := make(map[int]string, len(h.view.Diagnostics))
	for _, d := range h.view.Diagnostics {
		problems[d.Line] = fmt.Sprintf("  <- %s: %s", d.Severity, d.Message)
	}
	for i, line := range h.view.Lines {
		marker := "  "
		if i == h.view.Cursor {
			marker = "> "
		}
		h.printf("%s%s%s\n", marker, line.Text, problems[i])
	}
}

func (h *lineHost) follow() {
	if h.watcher == nil || !h.view.Open || h.watcher.Dir() == h.view.Dir {
		return
	}
	if err := h.watcher.Watch(h.view.Dir); err != nil {
		h.logger.Warn("cannot watch listing", zap.String("dir", h.view.Dir), zap.Error(err))
	}
}

func (h *lineHost) run(ctx context.Context, cmd explorer.Command, arg string) {
	result := h.exp.Execute(ctx, h.view, cmd, arg)
	switch result.Action {
	case explorer.ActionOpenFile:
		h.printf("open %s (%s)\n", result.Path, result.Column)
	case explorer.ActionClose:
		h.printf("closed %s\n", result.Path)
	case explorer.ActionRender:
		h.follow()
		h.print()
	}
}

func (h *lineHost) move(to int) {
	if to < 0 {
		to = 0
	}
	if to >= len(h.view.Lines) {
		to = len(h.view.Lines) - 1
	}
	h.view.Cursor = max(to, 0)
	h.print()
}

// handle runs one input line and reports whether the session goes on.
func (h *lineHost) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "q", "quit":
		return false
	case "help":
		h.printf("%s\n", replHelp)
	case "p":
		h.print()
	case "j":
		h.move(h.view.Cursor + 1)
	case "k":
		h.move(h.view.Cursor - 1)
	case "g":
		if len(fields) < 2 {
			h.Warn("usage: g <line>")
			break
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			h.Warn(fmt.Sprintf("not a line number: %s", fields[1]))
			break
		}
		h.move(n)
	case "sel":
		h.view.Selection = h.view.Selection[:0]
		for _, f := range fields[1:] {
			if n, err := strconv.Atoi(f); err == nil {
				h.view.Selection = append(h.view.Selection, n)
			}
		}
	case "keys":
		for _, b := range h.keys.Bindings() {
			h.printf("%-10s %-28s %s\n", b.Name, b.Description, b.Command)
		}
	default:
		if name, ok := strings.CutPrefix(fields[0], ":"); ok {
			h.run(ctx, explorer.Command(name), strings.Join(fields[1:], " "))
			break
		}
		cmd, ok := h.keys.LookupName(fields[0])
		if !ok {
			h.Warn(fmt.Sprintf("unknown key %q, type help", fields[0]))
			break
		}
		h.run(ctx, cmd, "")
	}
	return true
}

func (h *lineHost) loop(ctx context.Context) {
	var events <-chan watch.Event
	if h.watcher != nil {
		events = h.watcher.Events()
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if h.view.Open && ev.Dir == h.view.Dir {
				h.run(ctx, explorer.CmdRefresh, "")
			}
		case line, ok := <-h.lines:
			if !ok || !h.handle(ctx, line) {
				return
			}
		}
	}
}

func newReplCmd(a *app) *cobra.Command {
	var follow bool
	cmd := &cobra.Command{
		Use:   "repl [dir]",
		Short: "Browse a directory interactively, one command per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			marks, err := a.openBookmarks()
			if err != nil {
				return err
			}
			defer marks.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			h := &lineHost{
				lines:  readLines(ctx, cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
				logger: a.logger,
				keys:   keymap.Default(),
				view:   &explorer.View{},
			}
			if follow {
				if h.watcher, err = newWatcher(a.logger); err != nil {
					return err
				}
				defer func() { _ = h.watcher.Close() }()
			}
			h.exp, err = explorer.New(explorer.Config{
				Store:     store,
				State:     session.New(a.options()),
				Bookmarks: marks,
				Status:    a.status(),
				Prompter:  h,
				Notifier:  h,
				Workspace: a.cfg.Workspace,
				Logger:    a.logger,
			})
			if err != nil {
				return err
			}
			h.run(ctx, explorer.CmdOpen, dir)
			h.loop(ctx)
			return nil
		},
	}
	cmd.Flags().BoolVar(&follow, "watch", false, "refresh the listing when the directory changes")
	return cmd
}
