package driven

import (
	"context"

	"github.com/custodia-labs/ghcontext-cli/internal/core/domain"
)

// RepoSource supplies the content of one remote repository at one ref.
// It is the only interface through which core services reach the remote;
// every method that fetches is a suspension point, everything above it is
// synchronous computation.
type RepoSource interface {
	// Resolve fetches repository metadata and reports the default branch.
	// Failure here is fatal to the run: an unresolvable repository aborts
	// before any extraction work begins.
	Resolve(ctx context.Context) (defaultBranch string, err error)

	// ListDir returns the ordered entries of one directory level.
	ListDir(ctx context.Context, path, ref string) ([]domain.Entry, error)

	// ReadFile fetches and transport-decodes the raw bytes of a file entry.
	ReadFile(ctx context.Context, entry domain.Entry, ref string) ([]byte, error)

	// Issues lists all issues without comments. Comments are fetched per
	// issue, inside that issue's own extraction task.
	Issues(ctx context.Context) ([]domain.Issue, error)

	// Comments returns one issue's full comment list in the remote's
	// native order.
	Comments(ctx context.Context, issueNumber int) ([]domain.Comment, error)

	// WikiPages lists wiki pages without content. A repository without
	// wiki capability returns domain.ErrNotPresent, distinct from a fetch
	// failure.
	WikiPages(ctx context.Context) ([]domain.WikiPage, error)

	// WikiContent fetches and decodes one wiki page's content.
	WikiContent(ctx context.Context, page domain.WikiPage) (string, error)

	// Readme returns the decoded README text for a ref, or
	// domain.ErrNotPresent when the repository has none.
	Readme(ctx context.Context, ref string) (string, error)

	// IgnoreFile returns the root ignore-file content for a ref, or
	// domain.ErrNotPresent when the repository has none.
	IgnoreFile(ctx context.Context, ref string) (string, error)

	// Tree returns every entry of the repository at a ref, recursively,
	// for the file-structure listing. Paths use "/" separators.
	Tree(ctx context.Context, ref string) ([]domain.Entry, error)
}

// OutputSink receives the final assembled document.
type OutputSink interface {
	// Write delivers the document. Failure is fatal to the run.
	Write(doc string) error

	// Destination describes where the document went, for the user-facing
	// completion message.
	Destination() string
}

// SettingsStore provides persisted user settings.
type SettingsStore interface {
	// GetInt retrieves an integer setting, or 0 when unset.
	GetInt(key string) int

	// GetString retrieves a string setting, or "" when unset.
	GetString(key string) string
}

// ProgressReporter observes extraction progress. Implementations must be
// safe for concurrent use; the completed count per label only ever grows.
type ProgressReporter interface {
	// Start announces a labelled round of work with a known item count.
	// A label may be announced more than once; its total accumulates.
	Start(label string, total int)

	// Increment records one completed item for a label.
	Increment(label string)

	// Done marks a labelled round finished.
	Done(label string)
}
