package testutil

import (
	"fmt"

	"github.com/arthur-debert/keepsake/pkg/types"
)

// Counter is a Data value with a zero default.
type Counter struct {
	Count uint32 `toml:"count" yaml:"count"`
}

func (Counter) Category() types.Category { return types.Data }

// Settings is a Config value with non-zero defaults.
type Settings struct {
	Theme    string   `toml:"theme" yaml:"theme"`
	Interval int      `toml:"interval" yaml:"interval"`
	Plugins  []string `toml:"plugins" yaml:"plugins"`
}

func (Settings) Category() types.Category { return types.Config }

// SetDefaults fills Settings with its defaults.
func (s *Settings) SetDefaults() {
	s.Theme = "dark"
	s.Interval = 30
	s.Plugins = []string{"core"}
}

// Snapshot is a Cache value.
type Snapshot struct {
	Entries map[string]string `toml:"entries" yaml:"entries"`
	Hits    int64             `toml:"hits" yaml:"hits"`
}

func (Snapshot) Category() types.Category { return types.Cache }

// CounterCache shares Counter's shape but lives under the cache root.
type CounterCache struct {
	Count uint32 `toml:"count" yaml:"count"`
}

func (CounterCache) Category() types.Category { return types.Cache }

// Broken cannot be encoded: its marshaler always fails.
type Broken struct {
	Name string `toml:"name"`
}

func (Broken) Category() types.Category { return types.Data }

// MarshalText makes every codec reject the value.
func (Broken) MarshalText() ([]byte, error) {
	return nil, fmt.Errorf("broken values cannot be encoded")
}

// Profile is a Config value whose defaults include collections.
type Profile struct {
	Tags  map[string]string `toml:"tags" yaml:"tags"`
	Names []string          `toml:"names" yaml:"names"`
}

func (Profile) Category() types.Category { return types.Config }

// SetDefaults fills Profile with its defaults.
func (p *Profile) SetDefaults() {
	p.Tags = map[string]string{"default": "x"}
	p.Names = []string{"base"}
}
