package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danieljhkim/extplan/internal/ctxlog"
	"github.com/danieljhkim/extplan/internal/fsops"
	"github.com/danieljhkim/extplan/internal/platform"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newTestFS() *testFS {
	return &testFS{files: make(map[string][]byte)}
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) Glob(root, pattern string) ([]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	prefix := root + "/"
	var matches []string
	for path := range fs.files {
		rel, ok := strings.CutPrefix(path, prefix)
		if !ok {
			continue
		}
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return nil, err
		}
		if matched {
			matches = append(matches, rel)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

func (fs *testFS) ValidateRelPath(relPath string) error {
	return fsops.NewRealFS().ValidateRelPath(relPath)
}

// recordingRunner pretends to run cython, failing for the listed sources.
type recordingRunner struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls []string
}

func newRecordingRunner(failing ...string) *recordingRunner {
	r := &recordingRunner{fail: make(map[string]bool)}
	for _, src := range failing {
		r.fail[src] = true
	}
	return r
}

func (r *recordingRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	src := args[len(args)-1]

	r.mu.Lock()
	r.calls = append(r.calls, src)
	r.mu.Unlock()

	if r.fail[src] {
		return []byte(src + ": syntax error"), fmt.Errorf("exit status 1")
	}
	return nil, nil
}

func (r *recordingRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// staticProber reports fixed interpreter facts.
type staticProber struct {
	facts platform.Facts
}

func (p staticProber) Probe(ctx context.Context) (platform.Facts, error) {
	return p.facts, nil
}

// fakeCythonTool creates an executable the expander can resolve. The
// recordingRunner is what actually gets called.
func fakeCythonTool(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cython tool is a shell script")
	}
	path := filepath.Join(t.TempDir(), "cython")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("failed to write fake cython: %v", err)
	}
	return path
}

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}
