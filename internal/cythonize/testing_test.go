package cythonize

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeRunner records cython invocations and fails for configured sources.
type fakeRunner struct {
	mu       sync.Mutex
	calls    [][]string
	failures map[string]string

	active    atomic.Int32
	maxActive atomic.Int32
}

func (r *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	n := r.active.Add(1)
	defer r.active.Add(-1)
	for {
		cur := r.maxActive.Load()
		if n <= cur || r.maxActive.CompareAndSwap(cur, n) {
			break
		}
	}

	r.mu.Lock()
	r.calls = append(r.calls, append([]string{dir, name}, args...))
	r.mu.Unlock()

	src := args[len(args)-1]
	if msg, ok := r.failures[src]; ok {
		return []byte(msg), errors.New("exit status 1")
	}
	return nil, nil
}

func (r *fakeRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// fakeFS serves fixed glob results.
type fakeFS struct {
	matches map[string][]string
	err     error
}

func (f fakeFS) Glob(root, pattern string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[pattern], nil
}

func (f fakeFS) ValidateRelPath(relPath string) error {
	if relPath == "" || relPath[0] == '/' {
		return errors.New("invalid path")
	}
	return nil
}

// withTools makes lookPath find exactly the given tool names.
func withTools(t *testing.T, names ...string) {
	t.Helper()
	available := map[string]bool{}
	for _, n := range names {
		available[n] = true
	}
	orig := lookPath
	lookPath = func(file string) (string, error) {
		if available[file] {
			return "/usr/bin/" + file, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}
