// Package domain defines the core business entities for ghcontext.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entry: One node (file or directory) from a remote tree snapshot
//   - ContentBlock: A labelled, decoded text unit destined for the output
//   - Issue, Comment, WikiPage: Discussion and wiki content
//   - IgnoreRules: Substring patterns excluding paths from extraction
//   - Modes: The resolved set of content categories for one run
//
// It also holds the pure content-filter decisions (ShouldIgnore, IsBinary):
// total functions with no I/O, applied to every fetched file before
// inclusion.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
