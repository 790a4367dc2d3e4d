package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/ghcontext-cli/internal/core/domain"
	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
)

// wikiRef is the ref wiki git repositories are read at.
const wikiRef = "master"

// Ensure Source implements the interface.
var _ driven.RepoSource = (*Source)(nil)

// Source supplies one GitHub repository's content through the RepoSource port.
type Source struct {
	client *Client
	owner  string
	repo   string
}

// NewSource creates a source bound to one owner/repo.
func NewSource(client *Client, owner, repo string) *Source {
	return &Source{client: client, owner: owner, repo: repo}
}

// ParseRepo splits an "owner/repo" identifier.
func ParseRepo(identifier string) (owner, repo string, err error) {
	parts := strings.Split(identifier, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q (want \"owner/repo\")", domain.ErrInvalidRepo, identifier)
	}
	return parts[0], parts[1], nil
}

// Resolve fetches the repository metadata and reports its default branch.
func (s *Source) Resolve(ctx context.Context) (string, error) {
	repository, err := s.client.GetRepository(ctx, s.owner, s.repo)
	if err != nil {
		if IsNotFound(err) {
			return "", ErrRepoNotFound
		}
		return "", err
	}
	return repository.GetDefaultBranch(), nil
}

// ListDir returns the entries of one directory level, in the remote's
// listing order. Symlinks and submodules are not extractable and are
// dropped here.
func (s *Source) ListDir(ctx context.Context, path, ref string) ([]domain.Entry, error) {
	fileContent, listing, err := s.client.GetContents(ctx, s.owner, s.repo, path, ref)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		if fileContent != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
		}
		return nil, nil
	}

	entries := make([]domain.Entry, 0, len(listing))
	for _, item := range listing {
		var kind domain.EntryKind
		switch item.GetType() {
		case "file":
			kind = domain.EntryFile
		case "dir":
			kind = domain.EntryDir
		default:
			continue
		}
		entries = append(entries, domain.Entry{
			Path: item.GetPath(),
			Kind: kind,
			SHA:  item.GetSHA(),
			Size: int64(item.GetSize()),
		})
	}
	return entries, nil
}

// ReadFile fetches a file's blob by the SHA from its listing entry and
// decodes the transport encoding.
func (s *Source) ReadFile(ctx context.Context, entry domain.Entry, _ string) ([]byte, error) {
	return s.blobContent(ctx, s.repo, entry.SHA)
}

// Issues lists all issues, newest first per the API default, without
// comments. Pull requests surface on the issues endpoint too and are
// filtered out.
func (s *Source) Issues(ctx context.Context) ([]domain.Issue, error) {
	opts := &gh.IssueListByRepoOptions{
		State:       "all",
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	issues, err := s.client.ListIssues(ctx, s.owner, s.repo, opts)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		result = append(result, domain.Issue{
			Number: issue.GetNumber(),
			Title:  issue.GetTitle(),
			Body:   issue.GetBody(),
		})
	}
	return result, nil
}

// Comments returns one issue's comment list in the remote's native order.
func (s *Source) Comments(ctx context.Context, issueNumber int) ([]domain.Comment, error) {
	comments, err := s.client.ListIssueComments(ctx, s.owner, s.repo, issueNumber)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Comment, len(comments))
	for i, c := range comments {
		result[i] = domain.Comment{
			Author: c.GetUser().GetLogin(),
			Body:   c.GetBody(),
		}
	}
	return result, nil
}

// WikiPages lists the wiki's markdown pages without content. The wiki is a
// separate git repository at {owner}/{repo}.wiki; when it does not exist
// the API answers 404 (or 403 for blocked access), reported here as
// domain.ErrNotPresent.
func (s *Source) WikiPages(ctx context.Context) ([]domain.WikiPage, error) {
	tree, err := s.client.GetTree(ctx, s.owner, s.wikiRepo(), wikiRef, true)
	if err != nil {
		if IsNotFound(err) || IsForbidden(err) {
			return nil, domain.ErrNotPresent
		}
		return nil, err
	}

	pages := make([]domain.WikiPage, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		path := entry.GetPath()
		title, ok := strings.CutSuffix(path, ".md")
		if !ok {
			continue
		}
		pages = append(pages, domain.WikiPage{Title: title, SHA: entry.GetSHA()})
	}
	return pages, nil
}

// WikiContent fetches and decodes one wiki page's blob.
func (s *Source) WikiContent(ctx context.Context, page domain.WikiPage) (string, error) {
	content, err := s.blobContent(ctx, s.wikiRepo(), page.SHA)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Readme returns the decoded README for a ref.
func (s *Source) Readme(ctx context.Context, ref string) (string, error) {
	readme, err := s.client.GetReadme(ctx, s.owner, s.repo, ref)
	if err != nil {
		if IsNotFound(err) {
			return "", domain.ErrNotPresent
		}
		return "", err
	}

	content, err := readme.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode readme: %w", err)
	}
	return content, nil
}

// IgnoreFile returns the root ignore-file content for a ref.
func (s *Source) IgnoreFile(ctx context.Context, ref string) (string, error) {
	fileContent, _, err := s.client.GetContents(ctx, s.owner, s.repo, domain.IgnoreFileName, ref)
	if err != nil {
		if IsNotFound(err) {
			return "", domain.ErrNotPresent
		}
		return "", err
	}
	if fileContent == nil {
		return "", domain.ErrNotPresent
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", domain.IgnoreFileName, err)
	}
	return content, nil
}

// Tree returns every entry of the repository at a ref. The recursive
// Trees API yields paths depth-first, which the file-structure renderer
// relies on.
func (s *Source) Tree(ctx context.Context, ref string) ([]domain.Entry, error) {
	tree, err := s.client.GetTree(ctx, s.owner, s.repo, ref, true)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		var kind domain.EntryKind
		switch entry.GetType() {
		case "blob":
			kind = domain.EntryFile
		case "tree":
			kind = domain.EntryDir
		default:
			continue
		}
		entries = append(entries, domain.Entry{
			Path: entry.GetPath(),
			Kind: kind,
			SHA:  entry.GetSHA(),
			Size: int64(entry.GetSize()),
		})
	}
	return entries, nil
}

// blobContent fetches a blob by SHA and decodes its base64 transport
// encoding.
func (s *Source) blobContent(ctx context.Context, repo, sha string) ([]byte, error) {
	blob, err := s.client.GetBlob(ctx, s.owner, repo, sha)
	if err != nil {
		return nil, err
	}
	return decodeBlob(blob)
}

func (s *Source) wikiRepo() string {
	return s.repo + ".wiki"
}

// decodeBlob decodes a blob's content according to its declared encoding.
// Base64 payloads arrive with embedded newlines that must be stripped
// before decoding.
func decodeBlob(blob *gh.Blob) ([]byte, error) {
	if blob.GetEncoding() != "base64" {
		return []byte(blob.GetContent()), nil
	}

	content := strings.ReplaceAll(blob.GetContent(), "\n", "")
	content = strings.ReplaceAll(content, "\r", "")
	decoded, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("decode blob: %w", err)
	}
	return decoded, nil
}
