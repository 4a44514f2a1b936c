package pyproject

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Namespace is the table holding build policy, nested under [tool].
const Namespace = "cassandra-driver"

const toolTable = "tool"

// Recognized policy keys.
const (
	KeyBuildMurmur3     = "build-murmur3-extension"
	KeyBuildLibev       = "build-libev-extension"
	KeyBuildCython      = "build-cython-extensions"
	KeyBuildConcurrency = "build-concurrency"
	KeyLibevIncludes    = "libev-includes"
	KeyLibevLibs        = "libev-libs"
)

// FileReader is the subset of fsops.FS needed to load a document.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Config is the read-only build policy for one planning run.
type Config struct {
	values map[string]any
}

// NewConfig builds a Config from already-decoded values. Used by tests and
// callers that assemble policy programmatically.
func NewConfig(values map[string]any) (*Config, error) {
	if values == nil {
		values = map[string]any{}
	}
	if err := validate(values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}
	return &Config{values: values}, nil
}

// Load reads and parses the document at path.
func Load(fs FileReader, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigLoad, path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a pyproject.toml document and extracts the namespace table.
func Parse(data []byte) (*Config, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	ns, err := namespace(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	return NewConfig(ns)
}

// BuildMurmur3 reports the build-murmur3-extension toggle (default false).
func (c *Config) BuildMurmur3() bool { return c.Bool(KeyBuildMurmur3) }

// BuildLibev reports the build-libev-extension toggle (default false).
func (c *Config) BuildLibev() bool { return c.Bool(KeyBuildLibev) }

// BuildCython reports the build-cython-extensions toggle (default false).
func (c *Config) BuildCython() bool { return c.Bool(KeyBuildCython) }

// Concurrency returns build-concurrency (default 0).
func (c *Config) Concurrency() int { return c.Int(KeyBuildConcurrency) }

// LibevIncludes returns a copy of libev-includes (default empty).
func (c *Config) LibevIncludes() []string { return c.Strings(KeyLibevIncludes) }

// LibevLibs returns a copy of libev-libs (default empty).
func (c *Config) LibevLibs() []string { return c.Strings(KeyLibevLibs) }

// Bool returns the boolean at key, or false when absent.
func (c *Config) Bool(key string) bool {
	v, _ := c.values[key].(bool)
	return v
}

// Int returns the integer at key, or 0 when absent.
func (c *Config) Int(key string) int {
	switch v := c.values[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Strings returns a fresh copy of the string list at key, or nil when absent.
func (c *Config) Strings(key string) []string {
	switch v := c.values[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, item.(string))
		}
		return out
	}
	return nil
}

// Has reports whether key is present in the namespace.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

func decode(data []byte) (map[string]any, error) {
	doc := map[string]any{}
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// namespace returns the live [tool.cassandra-driver] table of doc.
func namespace(doc map[string]any) (map[string]any, error) {
	tool, ok := doc[toolTable].(map[string]any)
	if !ok {
		return nil, ErrNamespaceMissing
	}
	ns, ok := tool[Namespace].(map[string]any)
	if !ok {
		return nil, ErrNamespaceMissing
	}
	return ns, nil
}

func validate(values map[string]any) error {
	for _, key := range []string{KeyBuildMurmur3, KeyBuildLibev, KeyBuildCython} {
		if v, ok := values[key]; ok {
			if _, isBool := v.(bool); !isBool {
				return fmt.Errorf("%s must be a boolean, got %T", key, v)
			}
		}
	}

	if v, ok := values[KeyBuildConcurrency]; ok {
		switch v.(type) {
		case int64, int:
		default:
			return fmt.Errorf("%s must be an integer, got %T", KeyBuildConcurrency, v)
		}
	}

	for _, key := range []string{KeyLibevIncludes, KeyLibevLibs} {
		v, ok := values[key]
		if !ok {
			continue
		}
		switch list := v.(type) {
		case []string:
		case []any:
			for i, item := range list {
				if _, isString := item.(string); !isString {
					return fmt.Errorf("%s[%d] must be a string, got %T", key, i, item)
				}
			}
		default:
			return fmt.Errorf("%s must be an array of strings, got %T", key, v)
		}
	}

	return nil
}
