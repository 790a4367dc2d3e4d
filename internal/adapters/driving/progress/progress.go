package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
)

// Stopper is implemented by reporters that own a render loop and must be
// shut down before the process writes its completion message.
type Stopper interface {
	Stop()
}

// New selects the reporter for the current run: no-op when verbose logging
// owns stderr, bars on an interactive terminal, plain carriage-return output
// otherwise.
func New(verbose bool) driven.ProgressReporter {
	if verbose {
		return Nop{}
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return NewBars(os.Stderr)
	}
	return NewPlain(os.Stderr)
}

// Ensure the reporters implement the port.
var (
	_ driven.ProgressReporter = Nop{}
	_ driven.ProgressReporter = (*Plain)(nil)
)

// Nop discards all progress updates.
type Nop struct{}

func (Nop) Start(string, int) {}
func (Nop) Increment(string)  {}
func (Nop) Done(string)       {}

// Plain writes one carriage-return-refreshed counter line per label.
type Plain struct {
	mu     sync.Mutex
	w      io.Writer
	counts map[string]*counter
}

type counter struct {
	done  int
	total int
}

// NewPlain creates a plain reporter writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w, counts: make(map[string]*counter)}
}

// Start announces a labelled round. Repeated announcements for one label
// grow its total.
func (p *Plain) Start(label string, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counts[label]
	if !ok {
		c = &counter{}
		p.counts[label] = c
	}
	c.total += total
}

// Increment records one completed item and refreshes the label's line.
func (p *Plain) Increment(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counts[label]
	if !ok {
		return
	}
	c.done++
	fmt.Fprintf(p.w, "\r%s: %d/%d", label, c.done, c.total) //nolint:errcheck // Best-effort display
}

// Done finishes the label's line.
func (p *Plain) Done(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.counts[label]
	if !ok {
		return
	}
	fmt.Fprintf(p.w, "\r%s: %d/%d\n", label, c.done, c.total) //nolint:errcheck // Best-effort display
}
