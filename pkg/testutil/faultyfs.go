package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/keepsake/pkg/types"
)

// Op names a filesystem operation FaultyFS can fail.
type Op string

const (
	OpOpen     Op = "open"
	OpStat     Op = "stat"
	OpRead     Op = "read"
	OpWrite    Op = "write"
	OpRemove   Op = "remove"
	OpMkdirAll Op = "mkdirall"

	// Operations on a file returned by OpenFile, matched by its path.
	OpFileRead  Op = "file.read"
	OpFileWrite Op = "file.write"
	OpTruncate  Op = "file.truncate"
	OpSeek      Op = "file.seek"
	OpClose     Op = "file.close"
)

// FaultyFS wraps a types.FS, failing chosen operations on chosen paths and
// counting calls per operation.
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	errors map[Op]map[string]error
	calls  map[Op]int
}

// NewFaultyFS wraps base.
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{
		FS:     base,
		errors: make(map[Op]map[string]error),
		calls:  make(map[Op]int),
	}
}

// SetError makes op on path fail with err. An empty path matches any path.
func (f *FaultyFS) SetError(op Op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errors[op] == nil {
		f.errors[op] = make(map[string]error)
	}
	if path != "" {
		path = filepath.Clean(path)
	}
	f.errors[op][path] = err
}

// ClearErrors removes all error injections
func (f *FaultyFS) ClearErrors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = make(map[Op]map[string]error)
}

// Calls returns how many times op was invoked.
func (f *FaultyFS) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FaultyFS) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	byPath := f.errors[op]
	if err, ok := byPath[filepath.Clean(path)]; ok {
		return err
	}
	if err, ok := byPath[""]; ok {
		return err
	}
	return nil
}

func (f *FaultyFS) OpenFile(name string, flag int, perm fs.FileMode) (types.File, error) {
	if err := f.check(OpOpen, name); err != nil {
		return nil, &fs.PathError{Op: string(OpOpen), Path: name, Err: err}
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f, path: name}, nil
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, &fs.PathError{Op: string(OpStat), Path: name, Err: err}
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpRead, name); err != nil {
		return nil, &fs.PathError{Op: string(OpRead), Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWrite, name); err != nil {
		return &fs.PathError{Op: string(OpWrite), Path: name, Err: err}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return &fs.PathError{Op: string(OpRemove), Path: name, Err: err}
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return &fs.PathError{Op: string(OpMkdirAll), Path: path, Err: err}
	}
	return f.FS.MkdirAll(path, perm)
}

// faultyFile routes its I/O through the owning FaultyFS.
type faultyFile struct {
	types.File
	fs   *FaultyFS
	path string
}

func (f *faultyFile) fail(op Op) error {
	if err := f.fs.check(op, f.path); err != nil {
		return &fs.PathError{Op: string(op), Path: f.path, Err: err}
	}
	return nil
}

func (f *faultyFile) Read(p []byte) (int, error) {
	if err := f.fail(OpFileRead); err != nil {
		return 0, err
	}
	return f.File.Read(p)
}

func (f *faultyFile) Write(p []byte) (int, error) {
	if err := f.fail(OpFileWrite); err != nil {
		return 0, err
	}
	return f.File.Write(p)
}

func (f *faultyFile) Truncate(size int64) error {
	if err := f.fail(OpTruncate); err != nil {
		return err
	}
	return f.File.Truncate(size)
}

func (f *faultyFile) Seek(offset int64, whence int) (int64, error) {
	if err := f.fail(OpSeek); err != nil {
		return 0, err
	}
	return f.File.Seek(offset, whence)
}

// Close always closes the underlying file, then reports any injected error.
func (f *faultyFile) Close() error {
	closeErr := f.File.Close()
	if err := f.fail(OpClose); err != nil {
		return err
	}
	return closeErr
}
