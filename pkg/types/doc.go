// Package types defines the small set of types shared by every keepsake
// package: the storage Category a value type is routed by, and the FS and
// File interfaces storage performs its I/O through.
package types
