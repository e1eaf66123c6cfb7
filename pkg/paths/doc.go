// Package paths resolves the three storage roots keepsake routes value types
// into, and joins identifiers onto them.
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - KEEPSAKE_CACHE_DIR: Override the cache root (default: $XDG_CACHE_HOME/<app>)
//   - KEEPSAKE_DATA_DIR: Override the data root (default: $XDG_DATA_HOME/<app>)
//   - KEEPSAKE_CONFIG_DIR: Override the config root (default: $XDG_CONFIG_HOME/<app>)
//
// Base locations come from github.com/adrg/xdg, which also covers macOS and
// Windows conventions.
//
// # Usage
//
//	roots, err := paths.Default("com.example.app")
//	if err != nil {
//		return err
//	}
//	file, err := paths.Join(roots.For(types.Data), "counter")
package paths
