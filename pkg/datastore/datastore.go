package datastore

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/keepsake/pkg/codec"
	"github.com/arthur-debert/keepsake/pkg/errors"
	"github.com/arthur-debert/keepsake/pkg/filesystem"
	"github.com/arthur-debert/keepsake/pkg/logging"
	"github.com/arthur-debert/keepsake/pkg/paths"
	"github.com/arthur-debert/keepsake/pkg/types"
	"github.com/rs/zerolog"
)

// Storage owns the cache, data and config roots and reads and writes
// handles under them. It is immutable after construction and is passed by
// value; copies share nothing mutable.
type Storage struct {
	roots  paths.Roots
	fs     types.FS
	codec  codec.Codec
	logger *zerolog.Logger
}

// Option configures a Storage at construction.
type Option func(*Storage)

// WithFS replaces the OS filesystem.
func WithFS(fs types.FS) Option {
	return func(s *Storage) {
		s.fs = fs
	}
}

// WithCodec replaces the default TOML codec.
func WithCodec(c codec.Codec) Option {
	return func(s *Storage) {
		s.codec = c
	}
}

// WithLogger replaces the "datastore" component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Storage) {
		s.logger = &logger
	}
}

// New derives the roots from the platform's cache, data and config base
// directories joined with appID.
//
// New panics when the platform cannot report a base directory or appID is
// unusable: there is no fallback location to store anything in.
func New(appID string, opts ...Option) Storage {
	roots, err := paths.Default(appID)
	if err != nil {
		panic(fmt.Sprintf("datastore: cannot determine storage directories for %q: %v", appID, err))
	}
	return FromRoots(roots, opts...)
}

// From builds a Storage over explicit roots without consulting the
// platform. Relative roots are made absolute against the working directory.
func From(cacheRoot, dataRoot, configRoot string, opts ...Option) Storage {
	return FromRoots(paths.Roots{Cache: cacheRoot, Data: dataRoot, Config: configRoot}, opts...)
}

// FromRoots is From for an already assembled paths.Roots.
func FromRoots(roots paths.Roots, opts ...Option) Storage {
	s := Storage{
		roots: paths.Roots{
			Cache:  absRoot(roots.Cache),
			Data:   absRoot(roots.Data),
			Config: absRoot(roots.Config),
		},
		fs:    filesystem.NewOS(),
		codec: codec.TOML(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func absRoot(root string) string {
	if root == "" || filepath.IsAbs(root) {
		return root
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

// Roots returns the category roots.
func (s Storage) Roots() paths.Roots {
	return s.roots
}

// Codec returns the codec files are written with.
func (s Storage) Codec() codec.Codec {
	return s.codec
}

// FS returns the filesystem storage operates on.
func (s Storage) FS() types.FS {
	return s.fs
}

// PathFor resolves the file an identifier maps to under a category. It
// performs no I/O.
func (s Storage) PathFor(c types.Category, identifier string) (string, error) {
	if !c.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid category %s", c).
			WithDetail("identifier", identifier)
	}
	return paths.Join(s.roots.For(c), identifier)
}

// PathOf resolves the file an identifier maps to for value type V.
func PathOf[V Value](s Storage, identifier string) (string, error) {
	return s.PathFor(CategoryOf[V](), identifier)
}

func (s Storage) log() zerolog.Logger {
	if s.logger != nil {
		return *s.logger
	}
	return logging.GetLogger("datastore")
}
