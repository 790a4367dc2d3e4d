package output

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/ghcontext-cli/internal/core/ports/driven"
)

// Ensure ClipboardSink implements the interface.
var _ driven.OutputSink = (*ClipboardSink)(nil)

// ClipboardSink copies the document to the system clipboard.
type ClipboardSink struct{}

// NewClipboardSink creates a clipboard sink.
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{}
}

// Write copies the document. An unavailable clipboard is fatal to the run.
func (s *ClipboardSink) Write(doc string) error {
	if err := clipboard.WriteAll(doc); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Destination describes the sink for the completion message.
func (s *ClipboardSink) Destination() string {
	return "clipboard"
}
