package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ghcontext-cli/internal/core/domain"
	"github.com/custodia-labs/ghcontext-cli/internal/logger"
)

// fileStructure renders the "File Structure" appendix: a recursive
// depth-first name enumeration of the whole tree, not content-bearing and
// not run inside the worker pool. A listing failure is absorbed; the
// appendix is simply omitted.
func (e *Extractor) fileStructure(ctx context.Context) string {
	entries, err := e.source.Tree(ctx, e.branch)
	if err != nil {
		logger.Warn("Error listing file structure: %v", err)
		return ""
	}
	return domain.ContentBlock{Header: "File Structure", Body: RenderTree(entries)}.Render()
}

// RenderTree renders entries as indented "├── " lines, two spaces of indent
// per depth, directories suffixed with "/". Entries arrive depth-first from
// the recursive tree listing; rendering preserves that order.
func RenderTree(entries []domain.Entry) string {
	var out strings.Builder
	for _, entry := range entries {
		depth := strings.Count(entry.Path, "/")
		name := entry.Path
		if i := strings.LastIndex(entry.Path, "/"); i >= 0 {
			name = entry.Path[i+1:]
		}
		if entry.Kind == domain.EntryDir {
			name += "/"
		}
		fmt.Fprintf(&out, "%s├── %s\n", strings.Repeat("  ", depth), name)
	}
	return out.String()
}
