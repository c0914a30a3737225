package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/filetug/dirbuf/pkg/bookmarks"
	"github.com/filetug/dirbuf/pkg/files"
	"github.com/filetug/dirbuf/pkg/files/billyfile"
	"github.com/filetug/dirbuf/pkg/files/osfile"
	"github.com/filetug/dirbuf/pkg/fsutils"
	"github.com/filetug/dirbuf/pkg/gitutils"
	"github.com/filetug/dirbuf/pkg/listing"
	"github.com/filetug/dirbuf/pkg/logging"
	"github.com/filetug/dirbuf/pkg/profiling"
	"github.com/filetug/dirbuf/pkg/settings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "v0.1.0"

var osExit = os.Exit
var osGetwd = os.Getwd
var stderr io.Writer = os.Stderr

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		osExit(1)
	}
}

// app carries what every subcommand needs.
type app struct {
	envFile    string
	storeKind  string
	cpuProfile string
	memProfile string

	cfg    *settings.Config
	logger *zap.Logger

	cleanups []func()
}

func (a *app) init() error {
	cfg, err := settings.Load(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) startProfiling(ctx context.Context) {
	if a.cpuProfile != "" {
		a.cleanups = append(a.cleanups, profiling.DoCPUProfiling(a.cpuProfile, a.logger))
	}
	if a.memProfile != "" {
		ctx, cancel := context.WithCancel(ctx)
		writeMemProfile := profiling.DoMemProfiling(ctx, a.memProfile, a.logger)
		a.cleanups = append(a.cleanups, func() {
			cancel()
			writeMemProfile()
		})
	}
}

func (a *app) close() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) options() listing.Options {
	return listing.Options{
		ShowFullPaths: a.cfg.ListingConfig.ShowFullPaths,
		ShowHidden:    a.cfg.ListingConfig.ShowHidden,
		ShowHelp:      a.cfg.ListingConfig.ShowHelp,
		ShowBookmarks: a.cfg.ListingConfig.ShowBookmarks,
	}
}

func (a *app) store() (files.Store, error) {
	switch a.storeKind {
	case "", "os":
		return osfile.NewStore("/"), nil
	case "billy":
		return billyfile.NewOSStore("/"), nil
	default:
		return nil, fmt.Errorf("unknown store %q, expected os or billy", a.storeKind)
	}
}

func (a *app) openBookmarks() (*bookmarks.Store, error) {
	return bookmarks.Open(bookmarks.NewYAMLFile(a.cfg.BookmarksPath()), a.logger)
}

func (a *app) status() *gitutils.Provider {
	return gitutils.NewProvider(a.logger)
}

// dirArg resolves an optional directory argument to an absolute path.
func dirArg(args []string) (string, error) {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = fsutils.ExpandHome(args[0])
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, dir), nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "dirbuf",
		Short:         "Render directories as text listings and map lines back to paths",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(); err != nil {
				return err
			}
			a.startProfiling(cmd.Context())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env", "", "path to a .env file with DIRBUF_* settings")
	root.PersistentFlags().StringVar(&a.storeKind, "store", "os", "filesystem backend: os or billy")
	root.PersistentFlags().StringVar(&a.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	root.PersistentFlags().StringVar(&a.memProfile, "memprofile", "", "write memory profile to `file`")

	root.AddCommand(
		newLsCmd(a),
		newResolveCmd(a),
		newBookmarkCmd(a),
		newWatchCmd(a),
		newReplCmd(a),
	)
	return root
}
