package cythonize

import "errors"

var (
	// ErrUnavailable indicates the cython tool could not be found.
	ErrUnavailable = errors.New("cython is not available")

	// ErrExpansion indicates a unit failed to translate and failures were
	// not excluded.
	ErrExpansion = errors.New("cython expansion failed")
)
