package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/graft/pkg/types"
	"github.com/stretchr/testify/require"
)

// WriteTree creates every file in files below root. Keys are slash separated
// paths relative to root, values are file contents.
func WriteTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		target := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fsys.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, fsys.WriteFile(target, []byte(content), 0644))
	}
}

// ReadString returns the content of path, failing the test if it cannot be read.
func ReadString(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether path exists in fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// ListFiles returns every regular file below root as sorted slash separated
// relative paths.
func ListFiles(t *testing.T, fsys types.FS, root string) []string {
	t.Helper()

	var files []string
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fsys.ReadDir(dir)
		if os.IsNotExist(err) {
			return
		}
		require.NoError(t, err)
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				walk(full)
				continue
			}
			rel, err := filepath.Rel(root, full)
			require.NoError(t, err)
			files = append(files, filepath.ToSlash(rel))
		}
	}
	walk(root)

	sort.Strings(files)
	return files
}

// FailingFS wraps a types.FS and fails selected operations. It is used to
// exercise partial-failure paths.
type FailingFS struct {
	types.FS

	// WriteErrors maps a path to the error WriteFile returns for it
	WriteErrors map[string]error

	// RemoveErrors maps a path to the error Remove returns for it
	RemoveErrors map[string]error

	// StatErrors maps a path to the error Stat returns for it
	StatErrors map[string]error
}

// NewFailingFS wraps fsys with no failures configured.
func NewFailingFS(fsys types.FS) *FailingFS {
	return &FailingFS{
		FS:           fsys,
		WriteErrors:  map[string]error{},
		RemoveErrors: map[string]error{},
		StatErrors:   map[string]error{},
	}
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := f.WriteErrors[name]; ok {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) Remove(name string) error {
	if err, ok := f.RemoveErrors[name]; ok {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FailingFS) Stat(name string) (fs.FileInfo, error) {
	if err, ok := f.StatErrors[name]; ok {
		return nil, err
	}
	return f.FS.Stat(name)
}
