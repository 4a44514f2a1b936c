package pyproject

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Patch replaces libev-includes and libev-libs in the namespace table with
// single-element lists and re-encodes the whole document. The paths are not
// validated.
func Patch(data []byte, include, lib string) ([]byte, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	ns, err := namespace(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	ns[KeyLibevIncludes] = []string{include}
	ns[KeyLibevLibs] = []string{lib}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode configuration document: %w", err)
	}
	return buf.Bytes(), nil
}

// PatchFile reads path and returns the patched document.
func PatchFile(fs FileReader, path, include, lib string) ([]byte, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	out, err := Patch(data, include, lib)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
