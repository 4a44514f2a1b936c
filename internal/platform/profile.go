package platform

import (
	"fmt"
	"strings"
)

// OSFamily is the operating-system family relevant to extension builds.
type OSFamily string

const (
	OSWindows OSFamily = "windows"
	OSMacOS   OSFamily = "macos"
	OSOther   OSFamily = "other"
)

// InterpreterFamily separates CPython from alternative implementations that
// cannot load Cython-compiled modules.
type InterpreterFamily string

const (
	InterpreterStandard    InterpreterFamily = "standard"
	InterpreterAlternative InterpreterFamily = "alternative"
)

// Facts are the raw values reported by the interpreter (or synthesized from
// the Go runtime). Field names follow the Python attributes they come from.
type Facts struct {
	Platform       string `json:"platform"`       // sys.platform
	Implementation string `json:"implementation"` // platform.python_implementation()
	Version        string `json:"version"`        // sys.version
	ByteOrder      string `json:"byteorder"`      // sys.byteorder
	HomeDir        string `json:"home"`           // os.path.expanduser("~")
}

// Profile is the frozen classification of the build host.
type Profile struct {
	OS                OSFamily          `json:"os"`
	Interpreter       InterpreterFamily `json:"interpreter"`
	SupportedPlatform bool              `json:"supported_platform"`
	LittleEndian      bool              `json:"little_endian"`
	HomeDir           string            `json:"home_dir,omitempty"`

	// Platform is the raw sys.platform value, kept for diagnostics.
	Platform string `json:"platform"`

	// Source records where the facts came from: "interpreter" or "runtime".
	Source string `json:"source"`
}

const (
	SourceInterpreter = "interpreter"
	SourceRuntime     = "runtime"
)

// Classify turns raw facts into a Profile. It is total: unknown values fall
// into the "other", "standard", supported and little-endian buckets.
func Classify(f Facts) Profile {
	p := Profile{
		OS:                OSOther,
		Interpreter:       InterpreterStandard,
		SupportedPlatform: f.Platform != "cli" && !strings.HasPrefix(f.Platform, "java"),
		LittleEndian:      f.ByteOrder != "big",
		HomeDir:           f.HomeDir,
		Platform:          f.Platform,
	}

	switch {
	case strings.HasPrefix(f.Platform, "win32"):
		p.OS = OSWindows
	case strings.HasPrefix(f.Platform, "darwin"):
		p.OS = OSMacOS
	}

	if strings.Contains(f.Version, "PyPy") || strings.EqualFold(f.Implementation, "PyPy") {
		p.Interpreter = InterpreterAlternative
	}

	return p
}

// IsWindows reports whether the profile is a Windows host.
func (p Profile) IsWindows() bool { return p.OS == OSWindows }

// IsMacOS reports whether the profile is a macOS host.
func (p Profile) IsMacOS() bool { return p.OS == OSMacOS }

// IsAlternativeInterpreter reports whether the interpreter is PyPy or similar.
func (p Profile) IsAlternativeInterpreter() bool { return p.Interpreter == InterpreterAlternative }

// String renders a one-line summary.
func (p Profile) String() string {
	order := "little-endian"
	if !p.LittleEndian {
		order = "big-endian"
	}
	support := "supported"
	if !p.SupportedPlatform {
		support = "unsupported"
	}
	return fmt.Sprintf("%s (%s), %s interpreter, %s, %s", p.OS, p.Platform, p.Interpreter, order, support)
}
