package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFilesFiltersByExtensionAndSortsResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.clj"), "(a)")
	writeFile(t, filepath.Join(dir, "a.cljc"), "(a)")
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello")

	files, err := Files([]string{dir}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.cljc"),
		filepath.Join(dir, "b.clj"),
	}, files)
}

func TestFilesSkipsDotDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "config.clj"), "(a)")
	writeFile(t, filepath.Join(dir, "src", "core.clj"), "(a)")

	files, err := Files([]string{dir}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "src", "core.clj")}, files)
}

func TestFilesIncludesExplicitFileRegardlessOfExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weird.txt")
	writeFile(t, path, "(a)")

	files, err := Files([]string{path}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFilesCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bb"), "(a)")
	writeFile(t, filepath.Join(dir, "b.clj"), "(a)")

	files, err := Files([]string{dir}, []string{".bb"})
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.bb")}, files)
}
