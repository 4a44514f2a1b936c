package planner

import (
	"github.com/danieljhkim/extplan/internal/extension"
	"github.com/danieljhkim/extplan/internal/platform"
)

// Feature identifies one optional compiled contribution.
type Feature string

// Features in plan order.
const (
	FeatureMurmur3 Feature = "murmur3"
	FeatureLibev   Feature = "libev"
	FeatureCython  Feature = "cython"
)

// Features lists every feature in the order its targets appear in a plan.
var Features = []Feature{FeatureMurmur3, FeatureLibev, FeatureCython}

// AbsenceKind tags why a feature contributed nothing.
type AbsenceKind string

// Absence kind constants
const (
	AbsencePolicyDisabled         AbsenceKind = "policy-disabled"
	AbsencePlatformUnsupported    AbsenceKind = "platform-unsupported"
	AbsenceArchUnsupported        AbsenceKind = "arch-unsupported"
	AbsenceInterpreterUnsupported AbsenceKind = "interpreter-unsupported"
	AbsenceExpansionFailed        AbsenceKind = "expansion-failed"
)

// Absence explains a missing contribution.
type Absence struct {
	Kind   AbsenceKind `json:"kind"`
	Reason string      `json:"reason"`

	// Err is the underlying failure for expansion-failed absences.
	Err error `json:"-"`
}

// Outcome is the result of evaluating one feature: targets, or an absence.
type Outcome struct {
	Feature Feature                 `json:"feature"`
	Targets []extension.BuildTarget `json:"targets,omitempty"`
	Absence *Absence                `json:"absence,omitempty"`
}

// Contributed returns true if the feature was admitted and not dropped.
func (o Outcome) Contributed() bool {
	return o.Absence == nil
}

func contributed(feature Feature, targets ...extension.BuildTarget) Outcome {
	return Outcome{Feature: feature, Targets: targets}
}

func absent(feature Feature, kind AbsenceKind, reason string, err error) Outcome {
	return Outcome{Feature: feature, Absence: &Absence{Kind: kind, Reason: reason, Err: err}}
}

// BuildPlan is the ordered result of one planning run.
type BuildPlan struct {
	// Profile is the platform snapshot every decision was made against
	Profile platform.Profile `json:"profile"`

	// Targets is the ordered list handed to the build collaborator
	Targets []extension.BuildTarget `json:"targets"`

	// Outcomes records one entry per feature, in plan order
	Outcomes []Outcome `json:"outcomes"`

	// Advisories are the platform banners emitted during planning
	Advisories []string `json:"advisories,omitempty"`
}

// NewBuildPlan creates a new empty BuildPlan.
func NewBuildPlan(profile platform.Profile) *BuildPlan {
	return &BuildPlan{
		Profile:  profile,
		Targets:  []extension.BuildTarget{},
		Outcomes: []Outcome{},
	}
}

// AddOutcome records an outcome and appends its targets to the plan.
func (p *BuildPlan) AddOutcome(o Outcome) {
	p.Outcomes = append(p.Outcomes, o)
	p.Targets = append(p.Targets, o.Targets...)
}

// IsEmpty returns true if the plan builds nothing (a pure-Python install).
func (p *BuildPlan) IsEmpty() bool {
	return len(p.Targets) == 0
}

// Outcome returns the recorded outcome for feature.
func (p *BuildPlan) Outcome(feature Feature) (Outcome, bool) {
	for _, o := range p.Outcomes {
		if o.Feature == feature {
			return o, true
		}
	}
	return Outcome{}, false
}

// TargetNames returns the module names of all targets, in order.
func (p *BuildPlan) TargetNames() []string {
	names := make([]string, 0, len(p.Targets))
	for _, t := range p.Targets {
		names = append(names, t.Name)
	}
	return names
}
