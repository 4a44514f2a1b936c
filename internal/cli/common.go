package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/extplan/internal/config"
	"github.com/danieljhkim/extplan/internal/ctxlog"
	"github.com/danieljhkim/extplan/internal/platform"
)

// loadSettings resolves settings for the --project directory and applies
// the --python override when the command defines and sets it.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	s, err := config.Load(projectDir)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("python"); f != nil && f.Changed {
		s.SetPython(f.Value.String())
	}
	return s, nil
}

// commandContext returns the command context carrying the diagnostics logger.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxlog.WithLogger(ctx, ctxlog.New(cmd.ErrOrStderr(), verbose))
}

// newProber returns the interpreter prober for s, or nil when probing is
// disabled so Detect falls back to Go runtime facts.
func newProber(s *config.Settings) platform.Prober {
	if s.Python == "" {
		return nil
	}
	return platform.NewPythonProber(s.Python, s.ProbeTimeout)
}

// formatJSON formats a value as JSON.
func formatJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// outputJSON writes a value as JSON to w.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
