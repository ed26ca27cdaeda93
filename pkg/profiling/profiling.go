package profiling

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoCPUProfiling starts a CPU profile written to filePath.
// Call the returned func to stop profiling and close the file.
func DoCPUProfiling(filePath string) (stop func(), err error) {
	f, err := osCreate(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}, nil
}

// DoMemProfiling returns a func that writes a heap profile to filePath.
// It is meant to be deferred so the profile reflects the end of the run.
func DoMemProfiling(filePath string) (write func() error) {
	return func() error {
		f, err := osCreate(filePath)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %w", err)
		}
		return nil
	}
}
