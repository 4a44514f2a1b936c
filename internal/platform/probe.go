package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/danieljhkim/extplan/internal/ctxlog"
)

// DefaultProbeTimeout bounds a single interpreter probe.
const DefaultProbeTimeout = 10 * time.Second

// probeScript prints the interpreter facts as one JSON object.
const probeScript = `import json, os, platform, sys
print(json.dumps({"platform": sys.platform, "implementation": platform.python_implementation(), "version": sys.version, "byteorder": sys.byteorder, "home": os.path.expanduser("~")}))`

// Prober gathers raw facts about the build host.
type Prober interface {
	Probe(ctx context.Context) (Facts, error)
}

// PythonProber asks a Python interpreter for its facts.
type PythonProber struct {
	Interpreter string
	Timeout     time.Duration

	output func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewPythonProber creates a prober for the given interpreter path.
func NewPythonProber(interpreter string, timeout time.Duration) *PythonProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &PythonProber{
		Interpreter: interpreter,
		Timeout:     timeout,
		output:      commandOutput,
	}
}

func commandOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Probe runs the interpreter and decodes the facts it prints.
func (p *PythonProber) Probe(ctx context.Context) (Facts, error) {
	if p.Interpreter == "" {
		return Facts{}, fmt.Errorf("no python interpreter configured")
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	out, err := p.output(ctx, p.Interpreter, "-c", probeScript)
	if err != nil {
		return Facts{}, fmt.Errorf("failed to run %s: %w", p.Interpreter, err)
	}

	var facts Facts
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(out))), &facts); err != nil {
		return Facts{}, fmt.Errorf("failed to decode facts from %s: %w", p.Interpreter, err)
	}
	if facts.Platform == "" {
		return Facts{}, fmt.Errorf("%s reported no platform", p.Interpreter)
	}
	return facts, nil
}

// RuntimeFacts synthesizes facts from the Go runtime, using the names Python
// would report for the same host.
func RuntimeFacts() Facts {
	platformName := runtime.GOOS
	switch runtime.GOOS {
	case "windows":
		platformName = "win32"
	case "darwin", "ios":
		platformName = "darwin"
	}

	order := "little"
	if cpu.IsBigEndian {
		order = "big"
	}

	home, _ := os.UserHomeDir()

	return Facts{
		Platform:       platformName,
		Implementation: "CPython",
		ByteOrder:      order,
		HomeDir:        home,
	}
}

// Detect builds the Profile for this run. A nil prober or a failed probe
// falls back to RuntimeFacts; detection itself never fails.
func Detect(ctx context.Context, prober Prober) Profile {
	logger := ctxlog.FromContext(ctx)

	if prober != nil {
		facts, err := prober.Probe(ctx)
		if err == nil {
			p := Classify(facts)
			p.Source = SourceInterpreter
			logger.Debug("probed interpreter", "platform", facts.Platform, "implementation", facts.Implementation, "byteorder", facts.ByteOrder)
			return p
		}
		logger.Warn("interpreter probe failed, using Go runtime facts", "error", err)
	}

	p := Classify(RuntimeFacts())
	p.Source = SourceRuntime
	return p
}
