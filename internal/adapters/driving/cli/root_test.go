package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghcontext-cli/internal/core/domain"
	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ghcontext-cli/internal/core/services"
)

// fakeExtractor records the modes it was asked to run.
type fakeExtractor struct {
	doc    string
	err    error
	branch string

	gotModes domain.Modes
	ran      bool
}

func (f *fakeExtractor) Run(_ context.Context, modes domain.Modes) (string, error) {
	f.gotModes = modes
	f.ran = true
	return f.doc, f.err
}

func (f *fakeExtractor) Branch() string {
	return f.branch
}

// fakeSink records the written document.
type fakeSink struct {
	doc  string
	err  error
	dest string
}

func (f *fakeSink) Write(doc string) error {
	f.doc = doc
	return f.err
}

func (f *fakeSink) Destination() string {
	return f.dest
}

type capturedSink struct {
	dir    string
	owner  string
	repo   string
	branch string
}

// setupExtractTest swaps every seam for fakes and restores them with the
// returned cleanup. The config store is pointed at an empty temp home.
func setupExtractTest(t *testing.T, ext *fakeExtractor, sink *fakeSink) *capturedSink {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	captured := &capturedSink{}

	oldExtractor := newExtractor
	oldSink := newSink
	oldToken := lookupToken
	newExtractor = func(
		_ context.Context, _, _, _ string, _ time.Duration, _ ...services.Option,
	) driving.Extractor {
		return ext
	}
	newSink = func(dir, owner, repo, branch string) driven.OutputSink {
		captured.dir = dir
		captured.owner = owner
		captured.repo = repo
		captured.branch = branch
		return sink
	}
	lookupToken = func() string { return "test-token" }

	t.Cleanup(func() {
		newExtractor = oldExtractor
		newSink = oldSink
		lookupToken = oldToken
		resetFlags()
		rootCmd.SetArgs(nil)
	})

	return captured
}

func resetFlags() {
	branchFlag = ""
	issuesOnly = false
	wikiOnly = false
	codeOnly = false
	readmeOnly = false
	noIssues = false
	noWiki = false
	outputDir = ""
	verboseFlag = false
	workersFlag = 0
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "ghcontext <owner/repo>", rootCmd.Use)
}

func TestRootCmd_RequiresRepositoryArgument(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestRootCmd_MissingTokenIsFatal(t *testing.T) {
	ext := &fakeExtractor{doc: "doc", branch: "main"}
	setupExtractTest(t, ext, &fakeSink{dest: "somewhere"})
	lookupToken = func() string { return "" }

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"octocat/hello"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenMissing)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	assert.False(t, ext.ran, "no extraction work may start without a token")
}

func TestRootCmd_RejectsMalformedRepository(t *testing.T) {
	ext := &fakeExtractor{doc: "doc", branch: "main"}
	setupExtractTest(t, ext, &fakeSink{dest: "somewhere"})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"not-a-repo"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRepo)
}

func TestRootCmd_WritesDocumentToFileSink(t *testing.T) {
	ext := &fakeExtractor{doc: "the document", branch: "main"}
	sink := &fakeSink{dest: "/tmp/out/octocat_hello_main_content.txt"}
	captured := setupExtractTest(t, ext, sink)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"octocat/hello", "--output", "/tmp/out"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "the document", sink.doc)
	assert.Equal(t, "/tmp/out", captured.dir)
	assert.Equal(t, "octocat", captured.owner)
	assert.Equal(t, "hello", captured.repo)
	assert.Equal(t, "main", captured.branch)
	assert.Contains(t, buf.String(),
		"Repository content extracted to '/tmp/out/octocat_hello_main_content.txt'")
}

func TestRootCmd_DefaultsToClipboard(t *testing.T) {
	ext := &fakeExtractor{doc: "the document", branch: "main"}
	sink := &fakeSink{dest: "clipboard"}
	captured := setupExtractTest(t, ext, sink)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"octocat/hello"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Empty(t, captured.dir)
	assert.Contains(t, buf.String(), "Repository content copied to clipboard")
}

func TestRootCmd_ModeFlagsReachTheExtractor(t *testing.T) {
	ext := &fakeExtractor{doc: "doc", branch: "main"}
	setupExtractTest(t, ext, &fakeSink{dest: "clipboard"})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"octocat/hello", "--issues-only"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.Modes{Issues: true}, ext.gotModes)
}

func TestRootCmd_NegativeFlagsExcludeCategories(t *testing.T) {
	ext := &fakeExtractor{doc: "doc", branch: "main"}
	setupExtractTest(t, ext, &fakeSink{dest: "clipboard"})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"octocat/hello", "--no-wiki"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.Modes{Code: true, Issues: true}, ext.gotModes)
}

func TestRootCmd_ExtractionFailureAborts(t *testing.T) {
	ext := &fakeExtractor{err: errors.New("repository vanished"), branch: "main"}
	sink := &fakeSink{dest: "clipboard"}
	setupExtractTest(t, ext, sink)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"octocat/hello"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction failed")
	assert.Empty(t, sink.doc, "no partial document may be emitted")
}

func TestRootCmd_UnwritableSinkIsFatal(t *testing.T) {
	ext := &fakeExtractor{doc: "doc", branch: "main"}
	sink := &fakeSink{err: errors.New("read-only filesystem"), dest: "/nope"}
	setupExtractTest(t, ext, sink)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"octocat/hello", "--output", "/nope"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only filesystem")
	assert.NotContains(t, buf.String(), "Repository content extracted")
}
