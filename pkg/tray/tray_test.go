package tray

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG creates a solid w×h PNG and returns its path
func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	path := filepath.Join(dir, "source.png")
	require.NoError(t, WritePNG(img, path))
	return path
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 128, 128)
	outDir := filepath.Join(dir, "tray")

	written, err := Generate(src, outDir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(outDir, FileName),
		filepath.Join(outDir, FileName2x),
	}, written)

	for i, want := range []int{Size, Size2x} {
		img, err := Decode(written[i])
		require.NoError(t, err)
		assert.Equal(t, want, img.Bounds().Dx())
		assert.Equal(t, want, img.Bounds().Dy())
	}
}

func TestGenerate_UndecodableSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "icon.icns")
	require.NoError(t, os.WriteFile(src, []byte("icns\x00\x00\x00\x08"), 0644))

	_, err := Generate(src, dir)
	assert.ErrorContains(t, err, "failed to decode image")
}

func TestGenerate_MissingSource(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "missing.png"), t.TempDir())
	assert.ErrorContains(t, err, "failed to open image")
}

func TestScale_PreservesAspectRatio(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			src.Set(x, y, color.NRGBA{A: 255})
		}
	}

	dst := Scale(src, 22)

	assert.Equal(t, image.Rect(0, 0, 22, 22), dst.Bounds())
	// Top row stays transparent because the image is letterboxed
	assert.Equal(t, uint8(0), dst.NRGBAAt(11, 0).A)
	assert.Equal(t, uint8(255), dst.NRGBAAt(11, 11).A)
}

func TestDecode_Ico(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 48, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			src.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}

	path := filepath.Join(dir, "app.ico")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, ico.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds())

	// Tray icons can be generated straight from a Windows icon
	written, err := Generate(path, filepath.Join(dir, "tray"))
	require.NoError(t, err)
	assert.Len(t, written, 2)
}
