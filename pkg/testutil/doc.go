// Package testutil provides utilities for testing keepsake components.
//
// Key components:
//   - TestEnvironment: storage over isolated roots, in memory or in a temp dir
//   - FaultyFS: a types.FS wrapper that injects errors per operation and path
//   - Counter, Settings, Snapshot, Broken: value fixtures for each category
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when the OS behaviour matters
//   - Each test builds its own environment; nothing is shared
package testutil
