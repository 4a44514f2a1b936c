// Package cythonize turns Python and Cython sources into C extension targets.
//
// CythonExpander is the Go counterpart of Cython.Build.cythonize: given a
// list of BuildTargets whose sources are .py or .pyx files, it runs the
// cython tool on each one (in parallel, bounded by a worker count) and
// returns the same targets pointing at the generated .c files. With
// ExcludeFailures set, units that fail to translate are dropped from the
// result instead of failing the whole call.
//
// # Tool Requirements
//
// The cython binary must be on PATH (or configured explicitly). When it is
// missing, Expand returns ErrUnavailable before running anything.
package cythonize
