// Package logger is the diagnostics channel for absorbed failures.
//
// Extraction never aborts for a single bad file, issue, or wiki page; the
// only trace such items leave is a line here. Output goes to stderr and is
// silent unless --verbose is set, so the progress display owns the terminal
// by default.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects log output away from os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// emit writes one prefixed line when verbose mode is on. The read lock
// covers both the verbose check and the write.
func emit(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug logs low-level detail (branch resolution, missing optional content).
func Debug(format string, args ...any) {
	emit("[DEBUG] ", format, args...)
}

// Info logs notable but expected events, like a skipped binary file.
func Info(format string, args ...any) {
	emit("[INFO] ", format, args...)
}

// Warn logs an absorbed failure: the item contributed nothing to the
// output, the run continued.
func Warn(format string, args ...any) {
	emit("[WARN] ", format, args...)
}

// Section marks the start of one extraction job in the log.
func Section(name string) {
	emit("", "\n=== %s ===", name)
}
