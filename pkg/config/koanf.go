package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/keepsake/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "KEEPSAKE_"

// LoadOptions selects the optional layers.
type LoadOptions struct {
	// ConfigFile is a TOML or YAML settings file, picked by extension.
	// It must exist when set.
	ConfigFile string
	// Overrides are applied last, typically from explicitly set flags.
	Overrides map[string]interface{}
}

// Load builds Settings from every layer.
func Load(opts LoadOptions) (*Settings, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load settings file if given
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("settings file %s: %w", opts.ConfigFile, err)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), parserFor(opts.ConfigFile)); err != nil {
			return nil, fmt.Errorf("failed to load settings from %s: %w", opts.ConfigFile, err)
		}
		log.Debug().Str("path", opts.ConfigFile).Msg("Loaded settings file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("appID", s.AppID).
		Str("codec", s.Codec).
		Bool("memory", s.Memory).
		Msg("Settings loaded")
	return &s, nil
}

// parserFor picks the YAML parser for .yaml/.yml files and TOML otherwise.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return toml.Parser()
}

// envKey maps KEEPSAKE_DATA_DIR to data_dir.
func envKey(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
}
