package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieljhkim/extplan/internal/ctxlog"
	"github.com/danieljhkim/extplan/internal/cythonize"
	"github.com/danieljhkim/extplan/internal/extension"
	"github.com/danieljhkim/extplan/internal/platform"
	"github.com/danieljhkim/extplan/internal/pyproject"
)

// Fixed extension layout of the driver source tree.
const (
	Murmur3Module = "cassandra.cmurmur3"
	Murmur3Source = "cassandra/cmurmur3.c"

	LibevModule  = "cassandra.io.libevwrapper"
	LibevSource  = "cassandra/io/libevwrapper.c"
	LibevLibrary = "ev"

	// CythonPattern sweeps the precompiled Cython sources.
	CythonPattern = "cassandra/*.pyx"
)

// CythonCandidates are the driver modules compiled with Cython when possible.
var CythonCandidates = []string{
	"cluster", "concurrent", "connection", "cqltypes", "metadata",
	"pool", "protocol", "query", "util",
}

// cythonCompileArgs is used everywhere but Windows (MSVC rejects it).
var cythonCompileArgs = []string{"-Wno-unused-function"}

// Expander translates Cython candidates into buildable targets.
// cythonize.CythonExpander is the production implementation.
type Expander interface {
	Expand(ctx context.Context, units []extension.BuildTarget, opts cythonize.Options) ([]extension.BuildTarget, error)
	ExpandPattern(ctx context.Context, pattern string, tmpl extension.BuildTarget, opts cythonize.Options) ([]extension.BuildTarget, error)
}

// Planner assembles BuildPlans.
type Planner struct {
	expander Expander
}

// New creates a Planner. A nil expander makes every Cython contribution
// absent with an expansion-failed reason.
func New(expander Expander) *Planner {
	return &Planner{expander: expander}
}

// Plan evaluates every feature against profile and cfg and returns the
// ordered plan. Feature failures are absorbed into absences; the only error
// is a missing configuration.
func (p *Planner) Plan(ctx context.Context, profile platform.Profile, cfg *pyproject.Config) (*BuildPlan, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: no configuration provided", pyproject.ErrConfigLoad)
	}

	logger := ctxlog.FromContext(ctx)
	plan := NewBuildPlan(profile)

	for _, advisory := range Advisories(profile) {
		logger.Warn(advisory)
		plan.Advisories = append(plan.Advisories, advisory)
	}

	outcomes := []Outcome{
		p.planMurmur3(profile, cfg),
		p.planLibev(profile, cfg),
		p.planCython(ctx, profile, cfg),
	}

	for _, o := range outcomes {
		if !o.Contributed() {
			logger.Debug("skipping extension", "feature", o.Feature, "kind", o.Absence.Kind, "reason", o.Absence.Reason)
		}
		for _, t := range o.Targets {
			logger.Info(fmt.Sprintf("Appending %s extension %s", o.Feature, t))
		}
		plan.AddOutcome(o)
	}

	return plan, nil
}

func (p *Planner) planMurmur3(profile platform.Profile, cfg *pyproject.Config) Outcome {
	if a := Admit(FeatureMurmur3, profile, cfg); !a.Admitted {
		return absent(FeatureMurmur3, a.Kind, a.Reason, nil)
	}
	return contributed(FeatureMurmur3, extension.BuildTarget{
		Name:    Murmur3Module,
		Sources: []string{Murmur3Source},
	})
}

func (p *Planner) planLibev(profile platform.Profile, cfg *pyproject.Config) Outcome {
	if a := Admit(FeatureLibev, profile, cfg); !a.Admitted {
		return absent(FeatureLibev, a.Kind, a.Reason, nil)
	}

	includes, libs := ResolveLibevLocations(profile, cfg)
	return contributed(FeatureLibev, extension.BuildTarget{
		Name:        LibevModule,
		Sources:     []string{LibevSource},
		IncludeDirs: includes,
		Libraries:   []string{LibevLibrary},
		LibraryDirs: libs,
	})
}

// planCython expands the named candidates (each failure excluded on its
// own) and then the wildcard sweep. Any error from the expander drops the
// whole Cython contribution.
func (p *Planner) planCython(ctx context.Context, profile platform.Profile, cfg *pyproject.Config) Outcome {
	if a := Admit(FeatureCython, profile, cfg); !a.Admitted {
		return absent(FeatureCython, a.Kind, a.Reason, nil)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("Trying Cython builds in order to append Cython extensions")

	targets, err := p.expandCython(ctx, profile, cfg.Concurrency())
	if err != nil {
		logger.Warn("Failed to cythonize one or more modules. These will not be compiled as extensions (optional).")
		logger.Warn(fmt.Sprintf("Cython error: %v", err))
		return absent(FeatureCython, AbsenceExpansionFailed, err.Error(), err)
	}
	return contributed(FeatureCython, targets...)
}

func (p *Planner) expandCython(ctx context.Context, profile platform.Profile, workers int) (targets []extension.BuildTarget, err error) {
	if p.expander == nil {
		return nil, errors.New("no Cython expander configured")
	}

	defer func() {
		if r := recover(); r != nil {
			targets = nil
			err = fmt.Errorf("cython expansion panicked: %v", r)
		}
	}()

	var compileArgs []string
	if !profile.IsWindows() {
		compileArgs = append(compileArgs, cythonCompileArgs...)
	}

	units := make([]extension.BuildTarget, 0, len(CythonCandidates))
	names := make([]string, 0, len(CythonCandidates))
	for _, m := range CythonCandidates {
		name := "cassandra." + m
		names = append(names, name)
		units = append(units, extension.BuildTarget{
			Name:             name,
			Sources:          []string{"cassandra/" + m + ".py"},
			ExtraCompileArgs: append([]string(nil), compileArgs...),
		})
	}

	named, err := p.expander.Expand(ctx, units, cythonize.Options{
		Workers:         workers,
		ExcludeFailures: true,
	})
	if err != nil {
		return nil, err
	}

	swept, err := p.expander.ExpandPattern(ctx, CythonPattern, extension.BuildTarget{ExtraCompileArgs: compileArgs}, cythonize.Options{
		Workers: workers,
		Skip:    names,
	})
	if err != nil {
		return nil, err
	}

	targets = append(named, swept...)
	for _, t := range targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return targets, nil
}
