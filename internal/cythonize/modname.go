package cythonize

import (
	"path"
	"strings"
)

// translatable lists the source suffixes cython is run on.
var translatable = []string{".pyx", ".py"}

// ModuleName derives the dotted module name from a slash-separated source
// path: "cassandra/io/reactor.pyx" becomes "cassandra.io.reactor".
func ModuleName(source string) string {
	clean := path.Clean(strings.ReplaceAll(source, "\\", "/"))
	clean = strings.TrimPrefix(clean, "./")
	clean = strings.TrimSuffix(clean, path.Ext(clean))
	return strings.ReplaceAll(clean, "/", ".")
}

// IsTranslatable reports whether cython should be run on source.
func IsTranslatable(source string) bool {
	ext := path.Ext(source)
	for _, t := range translatable {
		if ext == t {
			return true
		}
	}
	return false
}

// GeneratedSource returns the .c file cython writes for source.
func GeneratedSource(source string) string {
	return strings.TrimSuffix(source, path.Ext(source)) + ".c"
}
