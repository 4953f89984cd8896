//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
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

	handle, _, _ := getCurrentThread.Call()

	// Bit N of the mask selects CPU N.
	mask := uintptr(1) << core

	prevMask, _, err := setThreadAffinityMask.Call(handle, mask)
	if prevMask == 0 {
		return err
	}

	return nil
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
