package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ghcontext-cli/internal/core/domain"
	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ghcontext-cli/internal/logger"
)

// JobWorkers caps the outer pool of concurrent top-level extraction jobs.
const JobWorkers = 3

// Ensure Extractor implements the interface.
var _ driving.Extractor = (*Extractor)(nil)

// Extractor coordinates one extraction run: it resolves the repository,
// dispatches the requested jobs across the outer pool, merges their output
// in completion order, and appends the file-structure listing for code runs.
type Extractor struct {
	source   driven.RepoSource
	progress driven.ProgressReporter

	owner   string
	repo    string
	branch  string
	workers int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWorkers sets the inner worker pool cap.
func WithWorkers(n int) Option {
	return func(e *Extractor) { e.workers = n }
}

// WithProgress attaches a progress reporter.
func WithProgress(p driven.ProgressReporter) Option {
	return func(e *Extractor) { e.progress = p }
}

// WithBranch pins the ref to read. When empty, the repository's reported
// default branch is used, falling back to "main".
func WithBranch(branch string) Option {
	return func(e *Extractor) { e.branch = branch }
}

// NewExtractor creates an extractor for one repository.
func NewExtractor(source driven.RepoSource, owner, repo string, opts ...Option) *Extractor {
	e := &Extractor{
		source:  source,
		owner:   owner,
		repo:    repo,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Branch returns the ref the extractor reads, once resolved.
func (e *Extractor) Branch() string {
	return e.branch
}

// Run executes the requested extraction jobs and returns the assembled
// document. Only a top-level precondition failure (unresolvable repository)
// returns an error; every per-item failure is absorbed as a diagnostic.
func (e *Extractor) Run(ctx context.Context, modes domain.Modes) (string, error) {
	defaultBranch, err := e.source.Resolve(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s: %w", domain.ErrRepoNotResolvable, e.owner, e.repo, err)
	}
	if e.branch == "" {
		e.branch = defaultBranch
		if e.branch == "" {
			e.branch = "main"
		}
	}

	var doc strings.Builder
	doc.WriteString(domain.DocumentTitle(e.owner, e.repo, e.branch))

	jobs := modes.Jobs()
	e.startProgress("jobs", len(jobs))
	sections := Aggregate(ctx, len(jobs), JobWorkers, func(ctx context.Context, i int) (string, error) {
		return e.runJob(ctx, jobs[i])
	}, func() { e.incProgress("jobs") })
	e.doneProgress("jobs")

	for _, section := range sections {
		doc.WriteString(section)
	}

	if modes.Code {
		doc.WriteString(e.fileStructure(ctx))
	}

	return doc.String(), nil
}

// runJob executes one top-level job. A returned error is absorbed by the
// outer aggregation round: the job contributes empty text and its siblings
// keep running.
func (e *Extractor) runJob(ctx context.Context, job domain.Job) (string, error) {
	logger.Section("Extracting " + job.String())
	switch job {
	case domain.JobCode:
		return e.extractCode(ctx)
	case domain.JobIssues:
		return e.extractIssues(ctx)
	case domain.JobWiki:
		return e.extractWiki(ctx)
	case domain.JobReadme:
		return e.extractReadme(ctx), nil
	default:
		return "", fmt.Errorf("unknown job %d", job)
	}
}

// extractCode loads the ignore rules and walks the tree from the root.
func (e *Extractor) extractCode(ctx context.Context) (string, error) {
	rules := e.ignoreRules(ctx)
	defer e.doneProgress("files")
	return e.walk(ctx, "", rules)
}

// walk recursively extracts one directory level, depth-first. Each
// subdirectory's full result is resolved synchronously and appended before
// the current level's files; only the files of one level are fanned out.
// The call owns and returns its own result; nothing is accumulated across
// goroutines.
func (e *Extractor) walk(ctx context.Context, path string, rules domain.IgnoreRules) (string, error) {
	entries, err := e.source.ListDir(ctx, path, e.branch)
	if err != nil {
		return "", fmt.Errorf("list %q: %w", path, err)
	}

	var dirs, files []domain.Entry
	for _, entry := range entries {
		if entry.Kind == domain.EntryDir {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	var out strings.Builder
	for _, dir := range dirs {
		sub, err := e.walk(ctx, dir.Path, rules)
		if err != nil {
			return "", err
		}
		out.WriteString(sub)
	}

	e.startProgress("files", len(files))
	blocks := Aggregate(ctx, len(files), e.workers, func(ctx context.Context, i int) (string, error) {
		return e.extractFile(ctx, files[i], rules)
	}, func() { e.incProgress("files") })

	for _, block := range blocks {
		out.WriteString(block)
	}
	return out.String(), nil
}

// extractFile fetches, filters and renders one file. Ignored paths produce
// nothing silently; binary files are skipped with a diagnostic.
func (e *Extractor) extractFile(ctx context.Context, entry domain.Entry, rules domain.IgnoreRules) (string, error) {
	if domain.ShouldIgnore(entry.Path, rules) {
		return "", nil
	}

	content, err := e.source.ReadFile(ctx, entry, e.branch)
	if err != nil {
		return "", fmt.Errorf("file %s: %w", entry.Path, err)
	}

	if domain.IsBinary(content) {
		logger.Info("Skipping binary file: %s", entry.Path)
		return "", nil
	}

	return domain.FileBlock(entry.Path, string(content)), nil
}

// extractIssues fans the issue list out across the inner pool. Each worker
// fetches its issue's comments synchronously; comment lists are small.
func (e *Extractor) extractIssues(ctx context.Context) (string, error) {
	issues, err := e.source.Issues(ctx)
	if err != nil {
		return "", fmt.Errorf("list issues: %w", err)
	}

	e.startProgress("issues", len(issues))
	blocks := Aggregate(ctx, len(issues), e.workers, func(ctx context.Context, i int) (string, error) {
		issue := issues[i]
		comments, err := e.source.Comments(ctx, issue.Number)
		if err != nil {
			return "", fmt.Errorf("issue #%d comments: %w", issue.Number, err)
		}
		issue.Comments = comments
		return domain.IssueBlock(issue), nil
	}, func() { e.incProgress("issues") })
	e.doneProgress("issues")

	return strings.Join(blocks, ""), nil
}

// extractWiki fans the wiki page list out across the inner pool. A
// repository without wiki capability yields an empty result silently.
func (e *Extractor) extractWiki(ctx context.Context) (string, error) {
	pages, err := e.source.WikiPages(ctx)
	if err != nil {
		if domain.IsNotPresent(err) {
			logger.Debug("No wiki for %s/%s", e.owner, e.repo)
			return "", nil
		}
		return "", fmt.Errorf("list wiki pages: %w", err)
	}

	e.startProgress("wiki pages", len(pages))
	blocks := Aggregate(ctx, len(pages), e.workers, func(ctx context.Context, i int) (string, error) {
		page := pages[i]
		content, err := e.source.WikiContent(ctx, page)
		if err != nil {
			return "", fmt.Errorf("wiki page %s: %w", page.Title, err)
		}
		page.Content = content
		return domain.WikiBlock(page), nil
	}, func() { e.incProgress("wiki pages") })
	e.doneProgress("wiki pages")

	return strings.Join(blocks, ""), nil
}

// extractReadme fetches the README once, outside the fan-out engine.
// Any failure yields empty content and a diagnostic.
func (e *Extractor) extractReadme(ctx context.Context) string {
	content, err := e.source.Readme(ctx, e.branch)
	if err != nil {
		if domain.IsNotPresent(err) {
			logger.Debug("No README for %s/%s", e.owner, e.repo)
		} else {
			logger.Warn("Error extracting README: %v", err)
		}
		return ""
	}
	return domain.ReadmeBlock(content)
}

// ignoreRules fetches and parses the root ignore file. Absence yields an
// empty rule set; any other failure is absorbed the same way, with a
// diagnostic.
func (e *Extractor) ignoreRules(ctx context.Context) domain.IgnoreRules {
	content, err := e.source.IgnoreFile(ctx, e.branch)
	if err != nil {
		if !domain.IsNotPresent(err) {
			logger.Warn("Error reading %s: %v", domain.IgnoreFileName, err)
		}
		return nil
	}
	return domain.ParseIgnoreRules(content)
}

func (e *Extractor) startProgress(label string, total int) {
	if e.progress != nil {
		e.progress.Start(label, total)
	}
}

func (e *Extractor) incProgress(label string) {
	if e.progress != nil {
		e.progress.Increment(label)
	}
}

func (e *Extractor) doneProgress(label string) {
	if e.progress != nil {
		e.progress.Done(label)
	}
}
