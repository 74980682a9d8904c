package media

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))

	return buf.Bytes()
}

func TestSavePlayImage(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir, "/media/", 1<<20)

	url, err := store.SavePlayImage("Hamlet: Prince of Denmark", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/media/plays/hamlet-prince-of-denmark-"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	_, err = os.Stat(filepath.Join(dir, "plays", filepath.Base(url)))
	assert.NoError(t, err)
}

func TestSavePlayImageRejects(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		maxBytes int64
	}{
		{name: "plain text", data: []byte("not image"), maxBytes: 1 << 20},
		{name: "empty", data: nil, maxBytes: 1 << 20},
		{name: "too large", data: pngBytes(t), maxBytes: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store := NewImageStore(dir, "/media", tt.maxBytes)

			url, err := store.SavePlayImage("Hamlet", bytes.NewReader(tt.data))

			assert.ErrorIs(t, err, ErrNotAnImage)
			assert.Empty(t, url)

			entries, _ := os.ReadDir(filepath.Join(dir, "plays"))
			assert.Empty(t, entries)
		})
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir, "/media", 1<<20)

	url, err := store.SavePlayImage("Hamlet", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))

	entries, err := os.ReadDir(filepath.Join(dir, "plays"))
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Error(t, store.Remove(url), "removing twice")
}

func TestRemoveOutsideStore(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o600))

	store := NewImageStore(filepath.Join(dir, "media"), "/media", 1<<20)

	for _, url := range []string{"/elsewhere/plays/a.png", "/media/../secret.txt", "/media/plays/../../secret.txt"} {
		assert.Error(t, store.Remove(url), url)
	}

	assert.FileExists(t, outside)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "the-cherry-orchard", slugify("The Cherry  Orchard!"))
	assert.Equal(t, "play", slugify("???"))
}
