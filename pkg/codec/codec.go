// Package codec provides the text encodings a stored value is written in.
package codec

import (
	"sort"
	"strings"

	"github.com/arthur-debert/keepsake/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes values for file storage.
type Codec interface {
	// Marshal serializes v into human-readable text.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
	// Name returns the codec identifier used in settings and diagnostics.
	Name() string
}

type tomlCodec struct{}

// TOML returns the default codec.
func TOML() Codec { return tomlCodec{} }

func (tomlCodec) Marshal(v any) ([]byte, error) { return toml.Marshal(v) }

func (tomlCodec) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

func (tomlCodec) Name() string { return "toml" }

type yamlCodec struct{}

// YAML returns a codec writing YAML documents.
func YAML() Codec { return yamlCodec{} }

func (yamlCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

func (yamlCodec) Name() string { return "yaml" }

var registry = map[string]Codec{
	"toml": TOML(),
	"yaml": YAML(),
	"yml":  YAML(),
}

// ByName looks up a codec by its name.
func ByName(name string) (Codec, error) {
	if c, ok := registry[strings.ToLower(name)]; ok {
		return c, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown codec %q (available: %s)", name, strings.Join(Names(), ", ")).
		WithDetail("codec", name)
}

// Names lists the registered codec names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
