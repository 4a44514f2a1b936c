package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext_ReturnsEmbeddedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("appending extension", "name", "cassandra.cmurmur3")

	out := buf.String()
	if !strings.Contains(out, "appending extension") || !strings.Contains(out, "cassandra.cmurmur3") {
		t.Errorf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("expected timestamp to be dropped, got %q", out)
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("expected slog.Default() when no logger is embedded")
	}
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	var quiet, verbose bytes.Buffer
	New(&quiet, false).Debug("probe output")
	New(&verbose, true).Debug("probe output")

	if quiet.Len() != 0 {
		t.Errorf("expected debug to be suppressed, got %q", quiet.String())
	}
	if !strings.Contains(verbose.String(), "probe output") {
		t.Errorf("expected debug output, got %q", verbose.String())
	}
}
