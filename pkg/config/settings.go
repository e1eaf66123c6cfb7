package config

import (
	"github.com/arthur-debert/keepsake/pkg/codec"
	"github.com/arthur-debert/keepsake/pkg/datastore"
	"github.com/arthur-debert/keepsake/pkg/errors"
	"github.com/arthur-debert/keepsake/pkg/filesystem"
	"github.com/arthur-debert/keepsake/pkg/paths"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	AppID     string `koanf:"app_id"`
	Codec     string `koanf:"codec"`
	CacheDir  string `koanf:"cache_dir"`
	DataDir   string `koanf:"data_dir"`
	ConfigDir string `koanf:"config_dir"`
	Verbosity int    `koanf:"verbosity"`
	Memory    bool   `koanf:"memory"`
}

// Validate rejects settings no storage can be built from.
func (s *Settings) Validate() error {
	if s.AppID == "" {
		return errors.New(errors.ErrInvalidInput, "app_id must not be empty")
	}
	if _, err := codec.ByName(s.Codec); err != nil {
		return err
	}
	return nil
}

// Roots resolves the category roots: explicit directories win, the rest
// come from the platform defaults for AppID. Explicit directories may start
// with ~ and may be relative.
func (s *Settings) Roots() (paths.Roots, error) {
	roots, err := paths.Default(s.AppID)
	if err != nil {
		return paths.Roots{}, err
	}
	for _, o := range []struct {
		dir  string
		root *string
	}{
		{s.CacheDir, &roots.Cache},
		{s.DataDir, &roots.Data},
		{s.ConfigDir, &roots.Config},
	} {
		if o.dir == "" {
			continue
		}
		if *o.root, err = paths.ResolveDir(o.dir); err != nil {
			return paths.Roots{}, err
		}
	}
	return roots, nil
}

// Storage builds the storage the settings describe. Unlike datastore.New it
// reports a missing platform directory as an error.
func (s *Settings) Storage(opts ...datastore.Option) (datastore.Storage, error) {
	roots, err := s.Roots()
	if err != nil {
		return datastore.Storage{}, err
	}
	c, err := codec.ByName(s.Codec)
	if err != nil {
		return datastore.Storage{}, err
	}

	base := []datastore.Option{datastore.WithCodec(c)}
	if s.Memory {
		base = append(base, datastore.WithFS(filesystem.NewMemory()))
	}
	return datastore.FromRoots(roots, append(base, opts...)...), nil
}
