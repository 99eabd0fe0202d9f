package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestDirResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "viz1_timeseries.png"), 160, 90)

	r := NewDirResolver(dir, nil)

	img, ok := r.Resolve("viz1_timeseries.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "viz1_timeseries.png"), img.Path)
	assert.Equal(t, "viz1_timeseries.png", img.Ref)
	assert.Equal(t, "image/png", img.MIME)
	assert.Equal(t, 160, img.PixelWidth)
	assert.Equal(t, 90, img.PixelHeight)
	assert.NotEmpty(t, img.Data)

	abs, ok := NewDirResolver("/somewhere/else", nil).Resolve(img.Path)
	require.True(t, ok)
	assert.Equal(t, img.Data, abs.Data)
}

func TestDirResolver_Missing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0755))
	r := NewDirResolver(dir, nil)

	for _, ref := range []string{"", "viz99_nothing.png", "folder.png"} {
		_, ok := r.Resolve(ref)
		assert.False(t, ok, "ref %q", ref)
	}
}

func TestDirResolver_UndecodableImageStillResolves(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chart.png"), []byte("not really a png"), 0644))

	img, ok := NewDirResolver(dir, nil).Resolve("chart.png")
	require.True(t, ok)
	assert.False(t, img.HasDimensions())
	assert.Equal(t, "image/png", img.MIME)
}

func TestMIMEType(t *testing.T) {
	assert.Equal(t, "image/jpeg", MIMEType("a.JPG", nil))
	assert.Equal(t, "image/webp", MIMEType("a.webp", nil))
	assert.Equal(t, "image/gif", MIMEType("noext", []byte("GIF89a....")))
	assert.Equal(t, "image/png", MIMEType("noext", []byte("plain text")))
}
