package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/extplan/internal/config"
)

// execute runs rootCmd with args and returns what it wrote.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default so tests don't leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupProject creates a project directory holding pyproject.toml and pins
// the environment so no interpreter or cython tool is used.
func setupProject(t *testing.T, pyproject string) string {
	t.Helper()
	dir := t.TempDir()
	if pyproject != "" {
		if err := os.WriteFile(filepath.Join(dir, config.PyProjectFile), []byte(pyproject), 0644); err != nil {
			t.Fatalf("failed to write pyproject: %v", err)
		}
	}

	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvPyProject, "")
	t.Setenv(config.EnvPython, config.NoInterpreter)
	t.Setenv(config.EnvCython, "extplan-missing-cython")
	t.Setenv(config.EnvProbeTimeout, "")
	return dir
}

const murmurOnlyPyProject = `[project]
name = "cassandra-driver"

[tool.cassandra-driver]
build-murmur3-extension = true
build-libev-extension = false
build-cython-extensions = false
build-concurrency = 0
libev-includes = []
libev-libs = []
`

const allDisabledPyProject = `[tool.cassandra-driver]
build-murmur3-extension = false
build-libev-extension = false
build-cython-extensions = false
build-concurrency = 0
libev-includes = []
libev-libs = []
`
