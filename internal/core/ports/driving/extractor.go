package driving

import (
	"context"

	"github.com/custodia-labs/ghcontext-cli/internal/core/domain"
)

// Extractor assembles one repository's content into a single document.
type Extractor interface {
	// Run executes the requested extraction jobs and returns the assembled
	// document. It returns an error only for run-aborting failures
	// (unresolvable repository); per-item failures are absorbed into
	// diagnostics and the run completes.
	Run(ctx context.Context, modes domain.Modes) (string, error)

	// Branch reports the ref the run read from, resolved during Run when
	// no explicit branch was requested. Callers use it to name the output.
	Branch() string
}
