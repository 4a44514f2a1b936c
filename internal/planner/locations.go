package planner

import (
	"path"

	"github.com/danieljhkim/extplan/internal/platform"
	"github.com/danieljhkim/extplan/internal/pyproject"
)

// Fallback libev locations used when the configuration supplies none.
var (
	DefaultLibevIncludes = []string{"/usr/include/libev", "/usr/local/include", "/opt/local/include", "/usr/include"}
	DefaultLibevLibs     = []string{"/usr/local/lib", "/opt/local/lib", "/usr/lib64"}
)

const (
	homebrewInclude = "/opt/homebrew/include"
	homebrewLib     = "/opt/homebrew/lib"
)

// ResolveLibevLocations returns the include and library directories for the
// libev binding. An empty or absent list falls back to the defaults; macOS
// always gets the Homebrew locations appended. The returned slices are
// fresh copies.
func ResolveLibevLocations(profile platform.Profile, cfg *pyproject.Config) (includes, libs []string) {
	includes = cfg.LibevIncludes()
	if len(includes) == 0 {
		includes = append([]string(nil), DefaultLibevIncludes...)
	}

	libs = cfg.LibevLibs()
	if len(libs) == 0 {
		libs = append([]string(nil), DefaultLibevLibs...)
	}

	if profile.IsMacOS() {
		includes = append(includes, homebrewInclude, userHomebrewInclude(profile.HomeDir))
		libs = append(libs, homebrewLib)
	}

	return includes, libs
}

// userHomebrewInclude expands ~/homebrew/include; an unknown home is left
// unexpanded.
func userHomebrewInclude(home string) string {
	if home == "" {
		return "~/homebrew/include"
	}
	return path.Join(home, "homebrew", "include")
}
