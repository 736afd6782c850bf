package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestLocalStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Upload(ctx, "exports/abc.png", ContentTypePNG, pngHeader))

	data, err := store.DownloadFile(ctx, "exports/abc.png")
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	url, err := store.GenerateDownloadURL(ctx, "exports/abc.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "file://"), url)
	assert.True(t, strings.HasSuffix(url, "/exports/abc.png"), url)

	require.NoError(t, store.DeleteFile(ctx, "exports/abc.png"))
	_, err = os.Stat(filepath.Join(dir, "exports", "abc.png"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is not an error
	assert.NoError(t, store.DeleteFile(ctx, "exports/abc.png"))
}

func TestLocalStore_RejectsContentType(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	err = store.Upload(context.Background(), "a.wav", "audio/wav", []byte("RIFF"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
}

func TestLocalStore_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../evil.png", "/etc/passwd", "a/../../b.png"} {
		err := store.Upload(ctx, key, ContentTypePNG, pngHeader)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestLocalStore_MissingFile(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.DownloadFile(ctx, "nope.png")
	assert.Error(t, err)

	_, err = store.GenerateDownloadURL(ctx, "nope.png")
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.png")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files left behind")
	assert.Equal(t, "plot.png", entries[0].Name())
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "plot.png"), pngHeader, 0o644)
	assert.Error(t, err)
}
