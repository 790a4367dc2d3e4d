package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotPresent indicates an optional remote sub-resource does not
	// exist at all (no wiki, no README, no ignore file). This is a
	// distinguishable outcome, not a failure: callers absorb it silently,
	// unlike a genuine fetch error which is absorbed with a diagnostic.
	ErrNotPresent = errors.New("not present")

	// ErrTokenMissing indicates the authentication credential is absent.
	// This is a fatal precondition: no work begins without it.
	ErrTokenMissing = errors.New("authentication token missing")

	// ErrRepoNotResolvable indicates the repository identifier could not
	// be resolved. This is the run-aborting error class: no partial
	// document is emitted.
	ErrRepoNotResolvable = errors.New("repository not resolvable")

	// ErrInvalidRepo indicates a malformed "owner/repo" identifier.
	ErrInvalidRepo = errors.New("invalid repository identifier")
)

// IsNotPresent reports whether err marks an absent optional sub-resource.
func IsNotPresent(err error) bool {
	return errors.Is(err, ErrNotPresent)
}
