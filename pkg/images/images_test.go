package images_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir/pkg/images"
)

func TestKeyMatchesNameSubstrings(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Coffee", "Coffee"},
		{"Iced Coffee Grande", "Coffee"},
		{"Energy Drink", "Energy"},
		{"Fruit Snacks", "Fruit"},
		{"Chocolate Bar", "Chocolate"},
		{"Trail Mix", "Trail"},
		{"CANDY", "Candy"},
		{"Mystery Item", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, images.Key(tt.name), "name %q", tt.name)
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Coffee.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.png"), []byte("png"), 0o644))

	// Dedicated asset.
	path, err := images.Locate(dir, "Coffee")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Coffee.png"), path)

	// Known key but no asset on disk falls back to the default.
	path, err = images.Locate(dir, "Tea")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "default.png"), path)

	// Unknown name falls back to the default.
	path, err = images.Locate(dir, "Mystery Item")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "default.png"), path)
}

func TestLocateWithoutAnyAsset(t *testing.T) {
	_, err := images.Locate(t.TempDir(), "Coffee")
	assert.ErrorIs(t, err, images.ErrNoImage)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	require.NoError(t, images.EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	assert.NoError(t, images.EnsureDir(dir))
}
