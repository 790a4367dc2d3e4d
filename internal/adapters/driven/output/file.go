package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
)

// Ensure FileSink implements the interface.
var _ driven.OutputSink = (*FileSink)(nil)

// FileSink writes the document to <dir>/<owner>_<repo>_<branch>_content.txt.
type FileSink struct {
	path string
}

// NewFileSink creates a sink for one run's output file.
func NewFileSink(dir, owner, repo, branch string) *FileSink {
	name := fmt.Sprintf("%s_%s_%s_content.txt", owner, repo, branch)
	return &FileSink{path: filepath.Join(dir, name)}
}

// Write stores the document. An unwritable destination is fatal to the run.
func (s *FileSink) Write(doc string) error {
	if err := os.WriteFile(s.path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Destination returns the output file path.
func (s *FileSink) Destination() string {
	return s.path
}
