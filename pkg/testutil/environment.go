// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Build storage over isolated roots for tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/keepsake/pkg/codec"
	"github.com/arthur-debert/keepsake/pkg/datastore"
	"github.com/arthur-debert/keepsake/pkg/filesystem"
	"github.com/arthur-debert/keepsake/pkg/paths"
	"github.com/rs/zerolog"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides storage over roots nobody else uses.
type TestEnvironment struct {
	Roots   paths.Roots
	FS      *FaultyFS
	Storage datastore.Storage
	Type    EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment using the TOML codec.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()
	return NewTestEnvironmentWithCodec(t, envType, codec.TOML())
}

// NewTestEnvironmentWithCodec creates a test environment writing with c.
func NewTestEnvironmentWithCodec(t *testing.T, envType EnvType, c codec.Codec) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	var base string
	switch envType {
	case EnvMemoryOnly:
		base = "/keepsake-test"
		env.FS = NewFaultyFS(filesystem.NewMemory())
	case EnvIsolated:
		base = t.TempDir()
		env.FS = NewFaultyFS(filesystem.NewOS())
	}

	env.Roots = paths.Roots{
		Cache:  filepath.Join(base, "cache", "app"),
		Data:   filepath.Join(base, "data", "app"),
		Config: filepath.Join(base, "config", "app"),
	}
	env.Storage = datastore.FromRoots(env.Roots,
		datastore.WithFS(env.FS),
		datastore.WithCodec(c),
		datastore.WithLogger(zerolog.Nop()),
	)
	return env
}

// ReadFile returns a file's contents, failing the test if it cannot.
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// WriteFile writes a file, creating parents, failing the test if it cannot.
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	if err := env.FS.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := env.FS.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// Exists reports whether path exists.
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.FS.Stat(path)
	return err == nil
}
