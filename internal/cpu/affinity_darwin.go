//go:build darwin

package cpu

import "runtime"

// PinWorker locks the calling goroutine to an OS thread. CPU pinning is
// not available on macOS.
func PinWorker(workerID int) func() {
	runtime.LockOSThread()

	return func() {
		runtime.UnlockOSThread()
	}
}
