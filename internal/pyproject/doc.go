// Package pyproject reads and rewrites the build policy stored in the
// project's pyproject.toml under [tool.cassandra-driver].
//
// The planner consumes a Config through typed accessors with documented
// defaults: a missing key is never an error. A recognized key holding the
// wrong type, a malformed document, or a missing namespace table is treated
// as document corruption and reported as ErrConfigLoad.
//
// Patch implements the configuration patcher used by CI to point the libev
// binding at environment-specific include and library directories.
package pyproject
