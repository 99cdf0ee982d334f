package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		fullPath := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
}

func TestProjectScanner(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeTree(t, tempDir, map[string]string{
		"pairs.gym":               "pair(x, y)",
		"notes.txt":               "This is a text file",
		"nested/triples.gym":      "triple(x, y, z)",
		"nested/deeper/b.gym":     "b",
		".gym-cache/stale.gym":    "pair(a, b)",
		"nested/.hidden/skip.gym": "x",
	})

	scannedFiles, err := New(tempDir).Scan()
	require.NoError(t, err)

	var paths []string
	for _, file := range scannedFiles {
		paths = append(paths, file.Path)
		assert.Greater(t, file.Size, int64(0), "File size should be greater than 0")
	}

	assert.Equal(t, []string{
		filepath.Join(tempDir, "nested/deeper/b.gym"),
		filepath.Join(tempDir, "nested/triples.gym"),
		filepath.Join(tempDir, "pairs.gym"),
	}, paths)
}

func TestScannerCustomExtensions(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeTree(t, tempDir, map[string]string{
		"a.gym":   "x",
		"b.rules": "id(a) => a",
		"c.txt":   "text",
	})

	paths, err := New(tempDir, ".gym", ".rules").Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tempDir, "a.gym"),
		filepath.Join(tempDir, "b.rules"),
	}, paths)
}

func TestScannerMissingRoot(t *testing.T) {
	t.Parallel()
	_, err := New(filepath.Join(t.TempDir(), "missing")).Scan()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
