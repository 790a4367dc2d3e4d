// Package github implements the repository source for GitHub.
//
// The source supplies one repository's content at one ref through the
// [driven.RepoSource] port: directory listings, file bytes, issues with
// comments, wiki pages, the README, and the recursive tree used for the
// file-structure listing. It comprises:
//
//   - Client: GitHub API communication with rate limiting
//   - Source: the RepoSource implementation bound to one owner/repo
//
// # Authentication
//
// A personal access token is read from the GITHUB_TOKEN environment
// variable by the CLI and passed in at construction. Authenticated
// requests are allowed 5,000 API calls per hour; unauthenticated use is
// not supported.
//
// # Rate Limiting
//
// A dual-strategy approach keeps long extractions under the quota:
//
//  1. Proactive throttling: a token bucket limits requests to
//     approximately 1.2 requests per second.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset
//     response headers are tracked, and requests wait for the reset once
//     the remaining quota drops below a reserve.
//
// # Wiki access
//
// GitHub's REST API has no wiki endpoint. Wiki pages live in a separate
// git repository at {owner}/{repo}.wiki, read through the Trees API; a
// 404 or 403 there means the wiki does not exist and is reported as
// [domain.ErrNotPresent] rather than a failure.
package github
