// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RepoSource: Supplies tree listings, file bytes, issues, wiki pages
//     and the README for one remote repository
//   - OutputSink: Receives the assembled document (file write or clipboard)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SettingsStore: Persistent user settings. Without it, built-in
//     defaults apply.
//   - ProgressReporter: Live extraction progress. Without it, runs are
//     silent apart from verbose diagnostics.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
