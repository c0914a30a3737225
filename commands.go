package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/filetug/dirbuf/pkg/files"
	"github.com/filetug/dirbuf/pkg/highlight"
	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/filetug/dirbuf/pkg/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNotADirectory = errors.New("not a directory")

type displayFlags struct {
	full, hidden, help, bookmarks bool
	color                         string
}

func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.full, "full", false, "show full paths")
	cmd.Flags().BoolVar(&f.hidden, "hidden", true, "show hidden entries")
	cmd.Flags().BoolVar(&f.help, "help-banner", false, "prepend the help banner")
	cmd.Flags().BoolVar(&f.bookmarks, "bookmarks", true, "append bookmarks")
	cmd.Flags().StringVar(&f.color, "color", "none", "colouring: none, ansi or tview")
}

// apply overrides settings with the flags given on the command line.
func (f *displayFlags) apply(cmd *cobra.Command, opts listing.Options) listing.Options {
	flags := cmd.Flags()
	if flags.Changed("full") {
		opts.ShowFullPaths = f.full
	}
	if flags.Changed("hidden") {
		opts.ShowHidden = f.hidden
	}
	if flags.Changed("help-banner") {
		opts.ShowHelp = f.help
	}
	if flags.Changed("bookmarks") {
		opts.ShowBookmarks = f.bookmarks
	}
	return opts
}

// renderDir reads dir and writes its listing to w.
func (a *app) renderDir(ctx context.Context, w io.Writer, dir string, opts listing.Options, mode highlight.Mode) error {
	store, err := a.store()
	if err != nil {
		return err
	}
	dc := files.NewDirContext(store, dir, nil)
	if err = dc.Load(ctx); err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	var marks []listing.Bookmark
	if opts.ShowBookmarks {
		bs, err := a.openBookmarks()
		if err != nil {
			return err
		}
		marks = bs.All()
		bs.Close()
	}
	lines := listing.Render(dir, dc.Entries(), a.status().StatusFunc(ctx, dir), opts, marks)
	return highlight.Write(w, lines, mode, a.cfg.Style)
}

func newLsCmd(a *app) *cobra.Command {
	var df displayFlags
	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "Print the listing of a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			mode, err := highlight.ParseMode(df.color)
			if err != nil {
				return err
			}
			return a.renderDir(cmd.Context(), cmd.OutOrStdout(), dir, df.apply(cmd, a.options()), mode)
		},
	}
	df.register(cmd)
	return cmd
}

func newResolveCmd(a *app) *cobra.Command {
	var base string
	var full bool
	cmd := &cobra.Command{
		Use:   "resolve <line>",
		Short: "Print the path a listing line denotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg([]string{base})
			if err != nil {
				return err
			}
			opts := a.options()
			if cmd.Flags().Changed("full") {
				opts.ShowFullPaths = full
			}
			path := listing.ResolvePath(args[0], dir, opts)
			kind := listing.Classify(args[0])
			a.logger.Debug("resolved", zap.String("line", args[0]), zap.Stringer("kind", kind), zap.String("path", path))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "listing directory (default: working directory)")
	cmd.Flags().BoolVar(&full, "full", false, "the line was rendered with full paths")
	return cmd
}

func newBookmarkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage bookmarks",
	}
	add := &cobra.Command{
		Use:   "add <key> [dir]",
		Short: "Bookmark a directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args[1:])
			if err != nil {
				return err
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			info, err := store.Stat(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s: %w", dir, errNotADirectory)
			}
			bs, err := a.openBookmarks()
			if err != nil {
				return err
			}
			defer bs.Close()
			if err = bs.Add(args[0], dir); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bookmark [%s] added for %s\n", args[0], dir)
			return err
		},
	}
	rm := &cobra.Command{
		Use:   "rm <key>",
		Short: "Delete a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.openBookmarks()
			if err != nil {
				return err
			}
			defer bs.Close()
			if !bs.Remove(args[0]) {
				return fmt.Errorf("unknown bookmark [%s]", args[0])
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bookmark [%s] deleted\n", args[0])
			return err
		},
	}
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := a.openBookmarks()
			if err != nil {
				return err
			}
			defer bs.Close()
			for _, b := range bs.All() {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), listing.BookmarkLine(b)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.AddCommand(add, rm, ls)
	return cmd
}

var newWatcher = watch.New

func newWatchCmd(a *app) *cobra.Command {
	var df displayFlags
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Print the listing again whenever the directory changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dirArg(args)
			if err != nil {
				return err
			}
			mode, err := highlight.ParseMode(df.color)
			if err != nil {
				return err
			}
			opts := df.apply(cmd, a.options())
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			w, err := newWatcher(a.logger)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()
			if err = w.Watch(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			if err = a.renderDir(ctx, out, dir, opts, mode); err != nil {
				return err
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-w.Events():
					if !ok {
						return nil
					}
					a.logger.Debug("directory changed", zap.String("path", ev.Path), zap.Stringer("op", ev.Op))
					if _, err = fmt.Fprintln(out); err != nil {
						return err
					}
					if err = a.renderDir(ctx, out, dir, opts, mode); err != nil {
						return err
					}
				}
			}
		},
	}
	df.register(cmd)
	return cmd
}
