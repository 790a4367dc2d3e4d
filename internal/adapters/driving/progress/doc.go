// Package progress renders extraction progress on stderr.
//
// Three reporters exist: a bubbletea program with per-label bars for
// interactive terminals, a carriage-return plain writer for pipes, and a
// no-op for verbose runs where the logger owns stderr. Progress is purely
// informational; the extraction result never depends on it.
package progress
