package extension

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTarget indicates a BuildTarget that cannot be handed to the
// build collaborator.
var ErrInvalidTarget = errors.New("invalid build target")

// BuildTarget describes one native module to compile.
type BuildTarget struct {
	// Name is the fully-qualified dotted module name (e.g. cassandra.cmurmur3)
	Name string `json:"name"`

	// Sources are the source files, relative to the project root
	Sources []string `json:"sources"`

	IncludeDirs      []string `json:"include_dirs,omitempty"`
	Libraries        []string `json:"libraries,omitempty"`
	LibraryDirs      []string `json:"library_dirs,omitempty"`
	ExtraCompileArgs []string `json:"extra_compile_args,omitempty"`
}

// Validate checks that the target has a module name and at least one source.
func (t BuildTarget) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: empty module name", ErrInvalidTarget)
	}
	if len(t.Sources) == 0 {
		return fmt.Errorf("%w: %s has no sources", ErrInvalidTarget, t.Name)
	}
	for _, src := range t.Sources {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("%w: %s has an empty source path", ErrInvalidTarget, t.Name)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can adjust slices without aliasing.
func (t BuildTarget) Clone() BuildTarget {
	return BuildTarget{
		Name:             t.Name,
		Sources:          cloneStrings(t.Sources),
		IncludeDirs:      cloneStrings(t.IncludeDirs),
		Libraries:        cloneStrings(t.Libraries),
		LibraryDirs:      cloneStrings(t.LibraryDirs),
		ExtraCompileArgs: cloneStrings(t.ExtraCompileArgs),
	}
}

// String renders the target the way diagnostics print it.
func (t BuildTarget) String() string {
	return fmt.Sprintf("<Extension %s %v>", t.Name, t.Sources)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
