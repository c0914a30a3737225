package profiling

import (
	"io"
	"os"
	"runtime/pprof"

	"go.uber.org/zap"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts a CPU profile written to path. The returned func
// stops it; it is never nil.
func DoCPUProfiling(path string, logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := osCreate(path)
	if err != nil {
		logger.Error("could not create CPU profile", zap.String("path", path), zap.Error(err))
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logger.Error("could not start CPU profile", zap.Error(err))
		closeFile(f, logger)
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(f, logger)
	}
}

func closeFile(c io.Closer, logger *zap.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("could not close profile", zap.Error(err))
	}
}
