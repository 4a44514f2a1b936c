// Package extension describes the compiled units handed to the build
// collaborator.
//
// A BuildTarget mirrors the keyword arguments of a setuptools Extension: a
// dotted module name, its sources, and optional compiler and linker
// parameters. Targets are produced by the planner and serialized as JSON;
// they are never persisted by extplan itself.
package extension
