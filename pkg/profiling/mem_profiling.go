package profiling

import (
	"context"
	"io"
	"runtime"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"
)

var memProfilingInterval = 10 * time.Second
var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

// DoMemProfiling rewrites a heap profile at path every interval until ctx is
// done. The returned func writes one more snapshot.
func DoMemProfiling(ctx context.Context, path string, logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	create, writeHeap := osCreate, pprofWriteHeapProfile
	write := func() {
		f, err := create(path)
		if err != nil {
			logger.Error("could not create memory profile", zap.String("path", path), zap.Error(err))
			return
		}
		defer closeFile(f, logger)
		runtime.GC()
		if err = writeHeap(f); err != nil {
			logger.Error("could not write memory profile", zap.Error(err))
		}
	}
	interval := memProfilingInterval
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				write()
			}
		}
	}()
	return write
}
