// Package planner decides which optional compiled extensions are built.
//
// The planner takes a frozen platform.Profile and the build policy from
// pyproject.toml and produces a BuildPlan: the ordered list of
// extension.BuildTarget values handed to the build collaborator. Each
// optional feature (murmur3, libev, Cython) yields an Outcome that either
// contributes targets or records why it is absent. Absences never fail
// planning; optional acceleration must not block installability.
//
// Key responsibilities:
//   - Admit or deny each feature from policy flags and platform facts
//   - Resolve libev include and library directories, with fallbacks
//   - Expand Cython candidates through an Expander, isolating failures
//   - Fold outcomes into a BuildPlan in a fixed order
package planner
