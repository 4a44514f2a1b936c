package planner

import (
	"fmt"

	"github.com/danieljhkim/extplan/internal/platform"
	"github.com/danieljhkim/extplan/internal/pyproject"
)

// Advisory banners, worded as the driver's setup script prints them.
const (
	AdvisoryPlatformUnsupported = "The optional C extensions are not supported on this platform."
	AdvisoryArchUnsupported     = "The optional C extensions are not supported on big-endian systems."
	AdvisoryPyPy                = "Some optional C extensions are not supported in PyPy. Only murmur3 will be built."
)

// Admission is the decision for one feature.
type Admission struct {
	Feature  Feature
	Admitted bool

	// Kind and Reason are set when Admitted is false.
	Kind   AbsenceKind
	Reason string
}

// Admit evaluates policy flag AND platform support AND byte order for
// feature; Cython additionally requires the standard interpreter. A toggle
// missing from the configuration denies admission.
func Admit(feature Feature, profile platform.Profile, cfg *pyproject.Config) Admission {
	a := Admission{Feature: feature}

	if !policyFlag(feature, cfg) {
		a.Kind = AbsencePolicyDisabled
		a.Reason = fmt.Sprintf("%s is disabled in configuration", policyKey(feature))
		return a
	}
	if !profile.SupportedPlatform {
		a.Kind = AbsencePlatformUnsupported
		a.Reason = fmt.Sprintf("platform %q does not support C extensions", profile.Platform)
		return a
	}
	if !profile.LittleEndian {
		a.Kind = AbsenceArchUnsupported
		a.Reason = "big-endian hosts are not supported"
		return a
	}
	if feature == FeatureCython && profile.IsAlternativeInterpreter() {
		a.Kind = AbsenceInterpreterUnsupported
		a.Reason = "Cython extensions cannot be loaded by the alternative interpreter"
		return a
	}

	a.Admitted = true
	return a
}

// Advisories returns the banners for profile. The PyPy banner is
// independent; the big-endian banner is only shown on supported platforms.
func Advisories(profile platform.Profile) []string {
	var out []string
	if profile.IsAlternativeInterpreter() {
		out = append(out, AdvisoryPyPy)
	}
	if !profile.SupportedPlatform {
		out = append(out, AdvisoryPlatformUnsupported)
	} else if !profile.LittleEndian {
		out = append(out, AdvisoryArchUnsupported)
	}
	return out
}

func policyFlag(feature Feature, cfg *pyproject.Config) bool {
	switch feature {
	case FeatureMurmur3:
		return cfg.BuildMurmur3()
	case FeatureLibev:
		return cfg.BuildLibev()
	case FeatureCython:
		return cfg.BuildCython()
	}
	return false
}

func policyKey(feature Feature) string {
	switch feature {
	case FeatureMurmur3:
		return pyproject.KeyBuildMurmur3
	case FeatureLibev:
		return pyproject.KeyBuildLibev
	case FeatureCython:
		return pyproject.KeyBuildCython
	}
	return string(feature)
}
