// Package syncprint serializes interleaved output from multiple workers
// onto one stream. As long as every goroutine prints exclusively through
// the same Printer, no two prints are ever intermixed. The pool itself
// never prints; this is a convenience for application code.
package syncprint

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Printer is a mutex-guarded writer. The zero value is not usable; use
// New.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a Printer writing to out. A nil out means os.Stdout.
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Print writes the items to the stream in one uninterruptible step.
func (p *Printer) Print(items ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.out, items...)
}

// Println is Print followed by a newline.
func (p *Printer) Println(items ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, items...)
}

// Printf formats and writes in one uninterruptible step.
func (p *Printer) Printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}
