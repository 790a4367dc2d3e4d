package domain

import (
	"fmt"
	"strings"
)

// EntryKind distinguishes files from directories in a remote tree listing.
type EntryKind int

const (
	// EntryFile is a leaf entry whose content can be fetched.
	EntryFile EntryKind = iota

	// EntryDir is a directory entry that can be listed.
	EntryDir
)

// Entry is one node from a remote tree snapshot.
// Entries are immutable once listed; no entry is mutated after listing.
type Entry struct {
	// Path is the full path within the repository, unique within a ref.
	Path string

	// Kind is file or directory.
	Kind EntryKind

	// SHA is the opaque content handle, present only for files.
	SHA string

	// Size is the file size in bytes as reported by the remote.
	Size int64
}

// Comment is one issue comment in the remote's native order.
type Comment struct {
	// Author is the commenter's login handle.
	Author string

	// Body is the comment text.
	Body string
}

// Issue is one issue discussion: metadata plus its full ordered comment list.
type Issue struct {
	Number   int
	Title    string
	Body     string
	Comments []Comment
}

// WikiPage is one wiki page. Content is empty until fetched; SHA is the
// opaque content handle from the listing.
type WikiPage struct {
	Title   string
	SHA     string
	Content string
}

// delimiter is the block separator line: fifty '=' characters.
var delimiter = strings.Repeat("=", 50)

// ContentBlock is the unit of output: a labelled, decoded text unit.
// Every included block is valid text - never binary, never an ignored path.
type ContentBlock struct {
	// Header is the label line, e.g. "File: src/main.go" or "Issue: #12".
	Header string

	// Body is the decoded text content.
	Body string
}

// Render wraps the block in the stable labelled delimiter format:
// a 50-'=' line, the header, another 50-'=' line, a blank line, the body,
// and two trailing newlines.
func (b ContentBlock) Render() string {
	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n\n", delimiter, b.Header, delimiter, b.Body)
}

// FileBlock builds a rendered block for a repository file.
func FileBlock(path, body string) string {
	return ContentBlock{Header: "File: " + path, Body: body}.Render()
}

// IssueBlock builds a rendered block for an issue discussion.
// The body is the issue body followed by a flattened "Comments:" section
// listing "- <author>: <body>" per comment in the remote's native order.
func IssueBlock(issue Issue) string {
	var body strings.Builder
	fmt.Fprintf(&body, "Issue #%d: %s\n\n%s\n\nComments:\n", issue.Number, issue.Title, issue.Body)
	for _, c := range issue.Comments {
		fmt.Fprintf(&body, "- %s: %s\n\n", c.Author, c.Body)
	}
	return ContentBlock{Header: fmt.Sprintf("Issue: #%d", issue.Number), Body: body.String()}.Render()
}

// WikiBlock builds a rendered block for a wiki page.
func WikiBlock(page WikiPage) string {
	return ContentBlock{Header: "Wiki Page: " + page.Title, Body: page.Content}.Render()
}

// ReadmeBlock builds a rendered block for the repository README.
func ReadmeBlock(content string) string {
	return ContentBlock{Header: "README", Body: content}.Render()
}

// DocumentTitle is the first line of the output document, identifying the
// repository and ref.
func DocumentTitle(owner, repo, branch string) string {
	return fmt.Sprintf("Content of %s/%s (branch: %s)\n\n", owner, repo, branch)
}
