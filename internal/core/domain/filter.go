package domain

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const (
	// IgnoreFileName is the repository ignore file. The file itself is
	// always excluded from extraction.
	IgnoreFileName = ".gitignore"

	// BinarySampleSize is how many leading bytes IsBinary inspects.
	BinarySampleSize = 1024
)

// IgnoreRules is an ordered set of substring patterns derived from the
// repository's ignore file. An empty set excludes nothing beyond the
// ignore file itself.
type IgnoreRules []string

// ParseIgnoreRules extracts one pattern per non-empty, non-comment line
// of ignore-file content.
func ParseIgnoreRules(content string) IgnoreRules {
	var rules IgnoreRules
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}
	return rules
}

// ShouldIgnore reports whether a path is excluded from extraction:
// true iff any rule is a substring of the path, or the path is the
// ignore file itself. Pure and total.
func ShouldIgnore(path string, rules IgnoreRules) bool {
	if path == IgnoreFileName {
		return true
	}
	for _, rule := range rules {
		if strings.Contains(path, rule) {
			return true
		}
	}
	return false
}

// IsBinary reports whether content looks binary, inspecting only the first
// BinarySampleSize bytes: true if the sample contains a NUL byte or is not
// valid UTF-8. Content beyond the sample boundary is not inspected; this is
// an accepted heuristic, not a guarantee.
func IsBinary(content []byte) bool {
	sample := content
	if len(sample) > BinarySampleSize {
		sample = sample[:BinarySampleSize]
	}

	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	return !utf8.Valid(sample)
}
