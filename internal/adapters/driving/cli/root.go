// Package cli implements the ghcontext command-line surface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/ghcontext-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ghcontext-cli/internal/adapters/driven/output"
	"github.com/custodia-labs/ghcontext-cli/internal/adapters/driving/progress"
	"github.com/custodia-labs/ghcontext-cli/internal/connectors/github"
	"github.com/custodia-labs/ghcontext-cli/internal/core/domain"
	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ghcontext-cli/internal/core/services"
	"github.com/custodia-labs/ghcontext-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// tokenEnvVar names the environment variable holding the GitHub token.
const tokenEnvVar = "GITHUB_TOKEN"

var (
	branchFlag  string
	issuesOnly  bool
	wikiOnly    bool
	codeOnly    bool
	readmeOnly  bool
	noIssues    bool
	noWiki      bool
	outputDir   string
	verboseFlag bool
	workersFlag int
)

// Test seams: replaced by tests to keep runs off the network and clipboard.
var (
	newExtractor = buildExtractor
	newSink      = buildSink
	newReporter  = progress.New
	lookupToken  = func() string { return os.Getenv(tokenEnvVar) }
)

var rootCmd = &cobra.Command{
	Use:   "ghcontext <owner/repo>",
	Short: "Extract a GitHub repository's content into one text document",
	Long: `Extracts the full textual content of a GitHub repository - tracked files,
issue discussions, wiki pages, and README - into a single ordered text
document suitable for feeding to a language model.

The result is written to a file when --output is given, and copied to the
system clipboard otherwise. Authentication uses the GITHUB_TOKEN
environment variable.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	rootCmd.Flags().StringVarP(&branchFlag, "branch", "b", "",
		"branch to read (default: the repository's default branch)")
	rootCmd.Flags().BoolVar(&issuesOnly, "issues-only", false, "extract only issues")
	rootCmd.Flags().BoolVar(&wikiOnly, "wiki-only", false, "extract only the wiki")
	rootCmd.Flags().BoolVar(&codeOnly, "code-only", false, "extract only the file tree")
	rootCmd.Flags().BoolVar(&readmeOnly, "readme-only", false, "extract only the README")
	rootCmd.Flags().BoolVar(&noIssues, "no-issues", false, "skip issues")
	rootCmd.Flags().BoolVar(&noWiki, "no-wiki", false, "skip the wiki")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory to write the output file to (default: copy to clipboard)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.Flags().IntVar(&workersFlag, "workers", 0,
		"per-level worker pool cap (default: the configured or built-in value)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verboseFlag)

	token := lookupToken()
	if token == "" {
		return fmt.Errorf("%w: set %s", domain.ErrTokenMissing, tokenEnvVar)
	}

	owner, repo, err := github.ParseRepo(args[0])
	if err != nil {
		return err
	}

	modes := domain.ResolveModes(domain.ModeFlags{
		IssuesOnly: issuesOnly,
		WikiOnly:   wikiOnly,
		CodeOnly:   codeOnly,
		ReadmeOnly: readmeOnly,
		NoIssues:   noIssues,
		NoWiki:     noWiki,
	})

	workers, timeout := runSettings()

	ctx := context.Background()
	reporter := newReporter(verboseFlag)

	ext := newExtractor(ctx, token, owner, repo, timeout,
		services.WithBranch(branchFlag),
		services.WithWorkers(workers),
		services.WithProgress(reporter),
	)

	doc, err := ext.Run(ctx, modes)
	if s, ok := reporter.(progress.Stopper); ok {
		s.Stop()
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	sink := newSink(outputDir, owner, repo, ext.Branch())
	if err := sink.Write(doc); err != nil {
		return err
	}

	if outputDir == "" {
		cmd.Println("Repository content copied to clipboard")
	} else {
		cmd.Printf("Repository content extracted to '%s'\n", sink.Destination())
	}

	return nil
}

// runSettings resolves the worker cap and request timeout: flag first, then
// the persisted config file, then built-in defaults. A broken config store
// degrades to defaults.
func runSettings() (workers int, timeout time.Duration) {
	workers = workersFlag
	timeout = github.DefaultTimeout

	store, err := configfile.NewSettingsStore("")
	if err != nil {
		logger.Debug("settings unavailable: %v", err)
		return workers, timeout
	}
	if workers == 0 {
		workers = store.GetInt(configfile.KeyWorkers)
	}
	if secs := store.GetInt(configfile.KeyTimeoutSeconds); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}
	return workers, timeout
}

func buildExtractor(
	ctx context.Context,
	token, owner, repo string,
	timeout time.Duration,
	opts ...services.Option,
) driving.Extractor {
	client := github.NewClient(ctx, token, timeout)
	source := github.NewSource(client, owner, repo)
	return services.NewExtractor(source, owner, repo, opts...)
}

func buildSink(dir, owner, repo, branch string) driven.OutputSink {
	if dir == "" {
		return output.NewClipboardSink()
	}
	return output.NewFileSink(dir, owner, repo, branch)
}
