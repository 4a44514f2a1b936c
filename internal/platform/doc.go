// Package platform classifies the host a build runs on.
//
// The planner only ever sees a Profile: an immutable snapshot built once per
// run from raw Facts. Facts are gathered by a Prober, normally by asking the
// target Python interpreter about itself, with the Go runtime as a fallback
// when no interpreter can be run. Classification is a pure function so tests
// can construct synthetic profiles directly.
package platform
