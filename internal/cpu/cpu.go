// Package cpu reports hardware concurrency and pins worker goroutines to
// CPU cores where the platform supports it.
package cpu

import "runtime"

// NumCPU returns the number of logical CPUs available, always at least 1.
func NumCPU() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
