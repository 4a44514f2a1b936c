package cythonize

import (
	"fmt"
	"os/exec"
	"strings"
)

// ToolRequirement describes an external tool the expander depends on.
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "cython").
	Name string

	// Alternatives can satisfy the requirement when Name is missing.
	Alternatives []string

	// Optional tools are checked but never cause an error.
	Optional bool

	// Purpose is a human-readable description of why this tool is needed.
	Purpose string
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// CheckToolAvailable checks if a tool is available in the system PATH.
func CheckToolAvailable(tool string) error {
	if _, err := lookPath(tool); err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// ResolveTool returns the first name of req that is available, trying the
// primary name before alternatives.
func ResolveTool(req ToolRequirement) (string, bool) {
	for _, name := range append([]string{req.Name}, req.Alternatives...) {
		if CheckToolAvailable(name) == nil {
			return name, true
		}
	}
	return "", false
}

// CheckRequiredTools verifies all required tools are available and reports
// every missing one in a single error.
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missingTools []string

	for _, req := range requirements {
		if _, found := ResolveTool(req); found || req.Optional {
			continue
		}
		if req.Purpose != "" {
			missingTools = append(missingTools, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
		} else {
			missingTools = append(missingTools, req.Name)
		}
	}

	switch len(missingTools) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s not found in PATH", missingTools[0])
	default:
		return fmt.Errorf("missing required tools: %s", strings.Join(missingTools, ", "))
	}
}
