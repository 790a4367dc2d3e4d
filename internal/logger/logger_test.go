package logger

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

// capture points the logger at a buffer for one test and restores the
// defaults afterwards.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestVerboseToggle(t *testing.T) {
	capture(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("verbose should start disabled")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("verbose should be enabled after SetVerbose(true)")
	}
}

func TestLevels_PrefixAndFormatting(t *testing.T) {
	cases := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] read a/one.txt in 12ms\n"},
		{"info", Info, "[INFO] read a/one.txt in 12ms\n"},
		{"warn", Warn, "[WARN] read a/one.txt in 12ms\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := capture(t)
			SetVerbose(true)

			tc.log("read %s in %dms", "a/one.txt", 12)

			if got := buf.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLevels_SilentWithoutVerbose(t *testing.T) {
	buf := capture(t)
	SetVerbose(false)

	Debug("dropped")
	Info("dropped")
	Warn("dropped")
	Section("dropped")

	if buf.Len() > 0 {
		t.Errorf("expected silence, got %q", buf.String())
	}
}

func TestSection_Header(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)

	Section("Extracting issues")

	if got := buf.String(); got != "\n=== Extracting issues ===\n" {
		t.Errorf("unexpected header: %q", got)
	}
}

func TestConcurrentLogging(t *testing.T) {
	buf := capture(t)
	SetVerbose(true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Warn("worker %d absorbed a failure", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	if lines != 10 {
		t.Errorf("expected 10 complete lines, got %d: %q", lines, buf.String())
	}
}
