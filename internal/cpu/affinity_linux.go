//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore pins the current OS thread to a specific CPU core.
// Must be called after runtime.LockOSThread().
//
// Worker IDs beyond the core count wrap around.
func pinToCore(workerID int) error {
	core := workerID % NumCPU()
	if core < 0 {
		core += NumCPU()
	}

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}

// PinWorker locks the calling goroutine to an OS thread and pins that
// thread to a CPU core chosen by worker ID. The returned cleanup function
// should be deferred.
func PinWorker(workerID int) func() {
	runtime.LockOSThread()
	_ = pinToCore(workerID)

	return func() {
		runtime.UnlockOSThread()
	}
}
