package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/keepsake/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseFS runs the same contract against every implementation.
func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	// MkdirAll is idempotent
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	path := filepath.Join(dir, "value")

	_, err := fsys.OpenFile(path, os.O_RDWR, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "missing file should report not-exist, got %v", err)

	require.NoError(t, fsys.WriteFile(path, []byte("count = 10\n"), 0644))

	f, err := fsys.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "count = 10\n", string(content))

	require.NoError(t, f.Truncate(0))
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	_, err = f.Write([]byte("count = 1\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	content, err = fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "count = 1\n", string(content))

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "value", info.Name())

	_, err = fsys.ReadFile(dir)
	assert.Error(t, err, "reading a directory should fail")

	require.NoError(t, fsys.Remove(path))
	_, err = fsys.Stat(path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewMemory(t *testing.T) {
	exerciseFS(t, NewMemory(), "/mem")
}

func TestAferoReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/ro/value", []byte("x"), 0644))

	fsys := NewAferoFS(afero.NewReadOnlyFs(base))

	content, err := fsys.ReadFile("/ro/value")
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))

	assert.Error(t, fsys.WriteFile("/ro/other", []byte("y"), 0644))
	assert.Error(t, fsys.MkdirAll("/ro/dir", 0755))

	_, err = fsys.OpenFile("/ro/value", os.O_RDWR, 0)
	assert.Error(t, err)
}
