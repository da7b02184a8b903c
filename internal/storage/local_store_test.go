package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	name, path, err := store.Save("photo.png", pngBytes)
	require.NoError(t, err)
	assert.Equal(t, "photo.png", name)
	assert.Equal(t, filepath.Join(dir, "photo.png"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, written)
}

func TestSaveSanitizesPath(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	name, path, err := store.Save("../../etc/evil.png", pngBytes)
	require.NoError(t, err)
	assert.Equal(t, "evil.png", name)
	assert.Equal(t, filepath.Join(dir, "evil.png"), path)
}

func TestSaveRejectsExtension(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, _, err := store.Save("notes.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)

	_, _, err = store.Save("archive.png.zip", pngBytes)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}

func TestSaveRejectsNonImageContent(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, _, err := store.Save("fake.png", []byte("definitely not a png"))
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}
