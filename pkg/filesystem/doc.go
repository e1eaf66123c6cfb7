// Package filesystem provides filesystem implementations for keepsake.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used in production, and an afero-backed one used
// for in-memory and read-only filesystems.
package filesystem
