// Package file implements TOML-backed persistence for user settings.
//
// Settings live in ~/.ghcontext/config.toml and carry knobs that rarely
// change between runs: the inner worker pool cap and the remote request
// timeout. Command-line flags override stored values for one run.
package file
