package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScan_FindsNestedEMLFiles tests recursive discovery and relative paths
func TestScan_FindsNestedEMLFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deep"), 0755))

	files := []string{
		filepath.Join(root, "one.eml"),
		filepath.Join(root, "sub", "two.EML"),
		filepath.Join(root, "sub", "deep", "three.eml"),
		filepath.Join(root, "sub", "ignored.txt"),
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(f, []byte("From: a@b.c\n\nx"), 0644))
	}

	s := NewScanner(root)
	found, err := s.Scan()
	require.NoError(t, err)

	assert.Len(t, found, 3, "Should find .eml files case-insensitively, skipping others")
	assert.Contains(t, found, "one.eml")
	assert.Contains(t, found, "sub/two.EML")
	assert.Contains(t, found, "sub/deep/three.eml")
}

// TestScan_EmptyDirectory tests scanning a directory with no .eml files
func TestScan_EmptyDirectory(t *testing.T) {
	s := NewScanner(t.TempDir())

	found, err := s.Scan()
	require.NoError(t, err)
	assert.Empty(t, found)
}

// TestScan_MissingDirectory tests that a missing root is an error
func TestScan_MissingDirectory(t *testing.T) {
	s := NewScanner(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := s.Scan()
	assert.Error(t, err)
}

// TestCount tests counting without collecting paths
func TestCount(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.eml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.eml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "c.md"), []byte("x"), 0644))

	count, err := NewScanner(root).Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
