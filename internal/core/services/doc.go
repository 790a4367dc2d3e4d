// Package services implements the core extraction logic.
//
// Services orchestrate the flow between ports:
//
//   - Aggregate: bounded fan-out/fan-in over independent work items,
//     collecting results in completion order and absorbing failures
//   - Extractor: the run coordinator - resolves the repository, dispatches
//     the requested extraction jobs through an outer fan-out, walks the
//     tree depth-first, and assembles the final document
//
// # Import Rules
//
//   - Can Import: domain, ports, logger
//   - Cannot Import: Any adapter or connector package
package services
