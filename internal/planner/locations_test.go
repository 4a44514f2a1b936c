package planner

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danieljhkim/extplan/internal/platform"
	"github.com/danieljhkim/extplan/internal/pyproject"
)

func TestResolveLibevLocations(t *testing.T) {
	tests := []struct {
		name         string
		profile      platform.Profile
		values       map[string]any
		wantIncludes []string
		wantLibs     []string
	}{
		{
			name:         "fallback on linux",
			profile:      linuxProfile,
			values:       map[string]any{},
			wantIncludes: DefaultLibevIncludes,
			wantLibs:     DefaultLibevLibs,
		},
		{
			name:    "configured on linux",
			profile: linuxProfile,
			values: map[string]any{
				pyproject.KeyLibevIncludes: []string{"/a"},
				pyproject.KeyLibevLibs:     []string{"/b", "/c"},
			},
			wantIncludes: []string{"/a"},
			wantLibs:     []string{"/b", "/c"},
		},
		{
			name:    "explicit empty lists fall back",
			profile: linuxProfile,
			values: map[string]any{
				pyproject.KeyLibevIncludes: []string{},
				pyproject.KeyLibevLibs:     []any{},
			},
			wantIncludes: DefaultLibevIncludes,
			wantLibs:     DefaultLibevLibs,
		},
		{
			name:         "fallback on macos",
			profile:      macProfile,
			values:       map[string]any{},
			wantIncludes: append(slices.Clone(DefaultLibevIncludes), "/opt/homebrew/include", "/Users/dev/homebrew/include"),
			wantLibs:     append(slices.Clone(DefaultLibevLibs), "/opt/homebrew/lib"),
		},
		{
			name:    "configured on macos keeps user entries",
			profile: macProfile,
			values: map[string]any{
				pyproject.KeyLibevIncludes: []string{"/a"},
				pyproject.KeyLibevLibs:     []string{"/b"},
			},
			wantIncludes: []string{"/a", "/opt/homebrew/include", "/Users/dev/homebrew/include"},
			wantLibs:     []string{"/b", "/opt/homebrew/lib"},
		},
		{
			name:         "macos without home",
			profile:      platform.Profile{OS: platform.OSMacOS, SupportedPlatform: true, LittleEndian: true},
			values:       map[string]any{pyproject.KeyLibevIncludes: []string{"/a"}, pyproject.KeyLibevLibs: []string{"/b"}},
			wantIncludes: []string{"/a", "/opt/homebrew/include", "~/homebrew/include"},
			wantLibs:     []string{"/b", "/opt/homebrew/lib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			includes, libs := ResolveLibevLocations(tt.profile, mustConfig(t, tt.values))
			if diff := cmp.Diff(tt.wantIncludes, includes); diff != "" {
				t.Errorf("includes mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantLibs, libs); diff != "" {
				t.Errorf("libs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveLibevLocations_Monotonic(t *testing.T) {
	configs := []map[string]any{
		{},
		{pyproject.KeyLibevIncludes: []string{"/x", "/y"}},
		{pyproject.KeyLibevLibs: []string{"/z"}},
		{pyproject.KeyLibevIncludes: []string{"/x"}, pyproject.KeyLibevLibs: []string{"/z"}},
	}

	for name, profile := range allProfiles {
		for _, values := range configs {
			cfg := mustConfig(t, values)
			includes, libs := ResolveLibevLocations(profile, cfg)

			for _, want := range cfg.LibevIncludes() {
				if !slices.Contains(includes, want) {
					t.Errorf("%s: include %q dropped: %v", name, want, includes)
				}
			}
			for _, want := range cfg.LibevLibs() {
				if !slices.Contains(libs, want) {
					t.Errorf("%s: lib %q dropped: %v", name, want, libs)
				}
			}

			baseIncludes := len(cfg.LibevIncludes())
			if baseIncludes == 0 {
				baseIncludes = len(DefaultLibevIncludes)
			}
			baseLibs := len(cfg.LibevLibs())
			if baseLibs == 0 {
				baseLibs = len(DefaultLibevLibs)
			}
			extraIncludes, extraLibs := 0, 0
			if profile.IsMacOS() {
				extraIncludes, extraLibs = 2, 1
			}
			if len(includes) != baseIncludes+extraIncludes {
				t.Errorf("%s: got %d includes, want %d", name, len(includes), baseIncludes+extraIncludes)
			}
			if len(libs) != baseLibs+extraLibs {
				t.Errorf("%s: got %d libs, want %d", name, len(libs), baseLibs+extraLibs)
			}
		}
	}
}

func TestResolveLibevLocations_DoesNotMutateDefaults(t *testing.T) {
	before := slices.Clone(DefaultLibevIncludes)
	cfg := mustConfig(t, map[string]any{})

	for i := 0; i < 3; i++ {
		includes, _ := ResolveLibevLocations(macProfile, cfg)
		includes[0] = "/mutated"
	}

	if diff := cmp.Diff(before, DefaultLibevIncludes); diff != "" {
		t.Errorf("defaults mutated (-want +got):\n%s", diff)
	}
}
