package pyproject

import "errors"

var (
	// ErrConfigLoad indicates the configuration document could not be loaded
	// for planning. It is fatal.
	ErrConfigLoad = errors.New("failed to load build configuration")

	// ErrParse indicates the patcher could not parse the document or find the
	// namespace it rewrites.
	ErrParse = errors.New("failed to parse configuration document")

	// ErrNamespaceMissing indicates [tool.cassandra-driver] is absent.
	ErrNamespaceMissing = errors.New("namespace tool.cassandra-driver not found")
)
