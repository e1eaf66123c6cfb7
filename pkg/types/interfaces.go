package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for storage operations
type FS interface {
	// File operations
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Remove(name string) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// File is an open file handle. Both *os.File and afero.File satisfy it.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	Name() string
	Truncate(size int64) error
}
