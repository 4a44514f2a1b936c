// Package config resolves where extplan finds the project, its
// pyproject.toml and the external tools it runs.
//
// Settings come from environment variables, optionally seeded from a .env
// file in the project directory. Variables already present in the
// environment always win over the .env file; command-line flags are applied
// by the caller on top of the returned Settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvProjectDir   = "EXTPLAN_PROJECT_DIR"
	EnvPyProject    = "EXTPLAN_PYPROJECT"
	EnvPython       = "EXTPLAN_PYTHON"
	EnvCython       = "EXTPLAN_CYTHON"
	EnvProbeTimeout = "EXTPLAN_PROBE_TIMEOUT"
)

const (
	// PyProjectFile is the configuration document name inside the project.
	PyProjectFile = "pyproject.toml"

	// DotEnvFile is loaded from the project directory when present.
	DotEnvFile = ".env"

	// NoInterpreter disables the interpreter probe when set as EXTPLAN_PYTHON.
	NoInterpreter = "none"

	defaultProbeTimeout = 10 * time.Second
)

// DefaultInterpreters are looked up on PATH when EXTPLAN_PYTHON is unset.
var DefaultInterpreters = []string{"python3", "python"}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Settings contains everything extplan needs to locate its inputs.
type Settings struct {
	// ProjectDir is the root of the driver source tree
	ProjectDir string

	// PyProject is the path to the configuration document
	PyProject string

	// Python is the interpreter probed for platform facts ("" = Go runtime facts)
	Python string

	// Cython is the cython tool name or path ("" = look up cython/cython3)
	Cython string

	// ProbeTimeout bounds the interpreter probe
	ProbeTimeout time.Duration
}

// Load resolves settings for projectDir. An empty projectDir falls back to
// EXTPLAN_PROJECT_DIR and then the current directory.
func Load(projectDir string) (*Settings, error) {
	if projectDir == "" {
		projectDir = os.Getenv(EnvProjectDir)
	}
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		projectDir = cwd
	}

	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	if err := loadDotEnv(filepath.Join(absDir, DotEnvFile)); err != nil {
		return nil, err
	}

	s := &Settings{
		ProjectDir:   absDir,
		PyProject:    filepath.Join(absDir, PyProjectFile),
		Cython:       strings.TrimSpace(os.Getenv(EnvCython)),
		ProbeTimeout: defaultProbeTimeout,
	}

	if v := strings.TrimSpace(os.Getenv(EnvPyProject)); v != "" {
		s.PyProject = s.Resolve(v)
	}

	s.Python = resolveInterpreter(strings.TrimSpace(os.Getenv(EnvPython)))

	if v := strings.TrimSpace(os.Getenv(EnvProbeTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive duration", EnvProbeTimeout, v)
		}
		s.ProbeTimeout = d
	}

	return s, nil
}

// Resolve makes path absolute relative to the project directory.
func (s *Settings) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.ProjectDir, path)
}

// SetPython applies an explicit interpreter choice, honoring NoInterpreter.
func (s *Settings) SetPython(python string) {
	if python == NoInterpreter {
		s.Python = ""
		return
	}
	s.Python = python
}

func resolveInterpreter(v string) string {
	switch v {
	case NoInterpreter:
		return ""
	case "":
		for _, name := range DefaultInterpreters {
			if path, err := lookPath(name); err == nil {
				return path
			}
		}
		return ""
	}
	return v
}

// loadDotEnv loads path without overriding variables already set.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
