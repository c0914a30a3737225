package explorer

import (
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

var goos = runtime.GOOS

func fileManagerCommand(system string) string {
	switch system {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

var startFileManager = func(name, dir string) error {
	cmd := exec.Command(name, dir)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// RevealInFileManager shows the listed directory in the platform file
// manager without waiting for it.
func (e *Explorer) RevealInFileManager(v *View) (Result, error) {
	dir := v.Dir
	if !v.Open || dir == "" {
		dir = e.defaultDir(v)
	}
	name := fileManagerCommand(goos)
	if err := startFileManager(name, dir); err != nil {
		return Result{}, fmt.Errorf("%s %s: %w", name, dir, err)
	}
	e.logger.Debug("file manager started", zap.String("command", name), zap.String("dir", dir))
	return Result{}, nil
}
