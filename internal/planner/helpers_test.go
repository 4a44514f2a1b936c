package planner

import (
	"context"
	"testing"

	"github.com/danieljhkim/extplan/internal/ctxlog"
	"github.com/danieljhkim/extplan/internal/cythonize"
	"github.com/danieljhkim/extplan/internal/extension"
	"github.com/danieljhkim/extplan/internal/platform"
	"github.com/danieljhkim/extplan/internal/pyproject"
)

var (
	linuxProfile  = platform.Profile{OS: platform.OSOther, Interpreter: platform.InterpreterStandard, SupportedPlatform: true, LittleEndian: true, Platform: "linux"}
	macProfile    = platform.Profile{OS: platform.OSMacOS, Interpreter: platform.InterpreterStandard, SupportedPlatform: true, LittleEndian: true, HomeDir: "/Users/dev", Platform: "darwin"}
	winProfile    = platform.Profile{OS: platform.OSWindows, Interpreter: platform.InterpreterStandard, SupportedPlatform: true, LittleEndian: true, Platform: "win32"}
	pypyProfile   = platform.Profile{OS: platform.OSOther, Interpreter: platform.InterpreterAlternative, SupportedPlatform: true, LittleEndian: true, Platform: "linux"}
	bigProfile    = platform.Profile{OS: platform.OSOther, Interpreter: platform.InterpreterStandard, SupportedPlatform: true, LittleEndian: false, Platform: "linux"}
	jythonProfile = platform.Profile{OS: platform.OSOther, Interpreter: platform.InterpreterStandard, SupportedPlatform: false, LittleEndian: true, Platform: "java11"}
)

var allProfiles = map[string]platform.Profile{
	"linux":  linuxProfile,
	"macos":  macProfile,
	"win":    winProfile,
	"pypy":   pypyProfile,
	"big":    bigProfile,
	"jython": jythonProfile,
}

func mustConfig(t *testing.T, values map[string]any) *pyproject.Config {
	t.Helper()
	cfg, err := pyproject.NewConfig(values)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	return cfg
}

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), ctxlog.Discard())
}

// fakeExpander returns the units it is given with .c sources, optionally
// failing or panicking, and records the options it saw.
type fakeExpander struct {
	expandErr  error
	patternErr error
	panicWith  any
	swept      []string
	exclude    map[string]bool

	expandOpts  cythonize.Options
	patternOpts cythonize.Options
	units       []extension.BuildTarget
	tmpl        extension.BuildTarget
}

func (f *fakeExpander) Expand(ctx context.Context, units []extension.BuildTarget, opts cythonize.Options) ([]extension.BuildTarget, error) {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	f.units = units
	f.expandOpts = opts
	if f.expandErr != nil {
		return nil, f.expandErr
	}
	var out []extension.BuildTarget
	for _, u := range units {
		if f.exclude[u.Name] {
			continue
		}
		t := u.Clone()
		t.Sources = []string{cythonize.GeneratedSource(u.Sources[0])}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeExpander) ExpandPattern(ctx context.Context, pattern string, tmpl extension.BuildTarget, opts cythonize.Options) ([]extension.BuildTarget, error) {
	f.patternOpts = opts
	f.tmpl = tmpl
	if f.patternErr != nil {
		return nil, f.patternErr
	}
	var out []extension.BuildTarget
	for _, src := range f.swept {
		t := tmpl.Clone()
		t.Name = cythonize.ModuleName(src)
		t.Sources = []string{cythonize.GeneratedSource(src)}
		out = append(out, t)
	}
	return out, nil
}
