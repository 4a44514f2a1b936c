package cythonize

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/extplan/internal/ctxlog"
	"github.com/danieljhkim/extplan/internal/extension"
)

// DefaultTool is the cython binary looked up on PATH.
const DefaultTool = "cython"

// Options control one expansion call.
type Options struct {
	// Workers is the number of units translated in parallel (<= 0 means 1).
	Workers int

	// ExcludeFailures drops units that fail instead of failing the call.
	ExcludeFailures bool

	// Skip lists module names ExpandPattern must not expand again.
	Skip []string
}

// FS is the subset of fsops.FS the expander uses.
type FS interface {
	Glob(root, pattern string) ([]string, error)
	ValidateRelPath(relPath string) error
}

// CythonExpander translates sources with the cython command-line tool.
type CythonExpander struct {
	// Root is the project directory; sources are relative to it.
	Root string

	// Tool is the cython requirement; cython3 is accepted as an alternative.
	Tool ToolRequirement

	// LanguageLevel is passed as -<level> (default "3").
	LanguageLevel string

	Runner CommandRunner
	FS     FS
}

// NewCythonExpander creates an expander rooted at root. An empty tool uses
// DefaultTool.
func NewCythonExpander(root, tool string, fs FS) *CythonExpander {
	req := ToolRequirement{Name: tool, Purpose: "Cython compiler"}
	if tool == "" {
		req = ToolRequirement{Name: DefaultTool, Alternatives: []string{"cython3"}, Purpose: "Cython compiler"}
	}
	return &CythonExpander{
		Root:          root,
		Tool:          req,
		LanguageLevel: "3",
		Runner:        ExecRunner{},
		FS:            fs,
	}
}

// RequiredTools returns the tools this expander needs.
func (e *CythonExpander) RequiredTools() []ToolRequirement {
	return []ToolRequirement{e.Tool}
}

// CheckTools verifies the cython tool is available.
func (e *CythonExpander) CheckTools() error {
	if err := CheckRequiredTools(e.RequiredTools()); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// Expand translates every unit and returns targets pointing at the generated
// C sources, in input order.
func (e *CythonExpander) Expand(ctx context.Context, units []extension.BuildTarget, opts Options) ([]extension.BuildTarget, error) {
	if len(units) == 0 {
		return nil, nil
	}

	tool, ok := ResolveTool(e.Tool)
	if !ok {
		return nil, e.CheckTools()
	}

	logger := ctxlog.FromContext(ctx)
	results := make([]*extension.BuildTarget, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(opts.Workers))

	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			target, err := e.translate(gctx, tool, unit)
			if err != nil {
				if opts.ExcludeFailures {
					logger.Warn("excluding module that failed to cythonize", "module", unit.Name, "error", err)
					return nil
				}
				return err
			}
			results[i] = &target
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]extension.BuildTarget, 0, len(units))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// ExpandPattern expands every file under Root matching pattern. Each match
// becomes a target named after its path, with tmpl's compiler parameters.
func (e *CythonExpander) ExpandPattern(ctx context.Context, pattern string, tmpl extension.BuildTarget, opts Options) ([]extension.BuildTarget, error) {
	matches, err := e.FS.Glob(e.Root, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpansion, err)
	}

	skip := make(map[string]bool, len(opts.Skip))
	for _, name := range opts.Skip {
		skip[name] = true
	}

	var units []extension.BuildTarget
	for _, match := range matches {
		name := ModuleName(match)
		if skip[name] {
			continue
		}
		unit := tmpl.Clone()
		unit.Name = name
		unit.Sources = []string{match}
		units = append(units, unit)
	}

	return e.Expand(ctx, units, opts)
}

func (e *CythonExpander) translate(ctx context.Context, tool string, unit extension.BuildTarget) (extension.BuildTarget, error) {
	if err := unit.Validate(); err != nil {
		return extension.BuildTarget{}, fmt.Errorf("%w: %w", ErrExpansion, err)
	}

	out := unit.Clone()
	for i, src := range out.Sources {
		if !IsTranslatable(src) {
			continue
		}
		if err := e.FS.ValidateRelPath(src); err != nil {
			return extension.BuildTarget{}, fmt.Errorf("%w: %s: %w", ErrExpansion, unit.Name, err)
		}

		generated := GeneratedSource(src)
		output, err := e.Runner.Run(ctx, e.Root, tool, e.args(src, generated)...)
		if err != nil {
			return extension.BuildTarget{}, fmt.Errorf("%w: %w", ErrExpansion, translateError(unit.Name, output, err))
		}
		out.Sources[i] = generated
	}
	return out, nil
}

func (e *CythonExpander) args(src, generated string) []string {
	var args []string
	if e.LanguageLevel != "" {
		args = append(args, "-"+e.LanguageLevel)
	}
	return append(args, "-o", generated, src)
}

func workerCount(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// translateError formats a failed cython run with its output.
func translateError(module string, output []byte, err error) error {
	prefix := fmt.Sprintf("%s: cython failed: %v", module, err)

	outputStr := strings.TrimSpace(string(output))
	if outputStr != "" {
		return fmt.Errorf("%s\n\nCython output:\n%s", prefix, outputStr)
	}
	return fmt.Errorf("%s", prefix)
}
