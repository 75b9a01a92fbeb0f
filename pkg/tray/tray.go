package tray

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Tray icon sizes in pixels. macOS menu bar icons are 22pt tall; the @2x
// variant is picked up automatically on Retina displays.
const (
	Size   = 22
	Size2x = Size * 2
)

// File names written by Generate
const (
	FileName   = "tray-icon.png"
	FileName2x = "tray-icon@2x.png"
)

// Generate decodes the raster image at src and writes the tray icon pair
// into outDir. It returns the written paths, 1x first.
func Generate(src, outDir string) ([]string, error) {
	img, err := Decode(src)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tray icon directory: %w", err)
	}

	outputs := []struct {
		size int
		name string
	}{
		{Size, FileName},
		{Size2x, FileName2x},
	}

	written := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := WritePNG(Scale(img, out.size), path); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	return written, nil
}

// Decode reads .ico files and any registered raster format (png, jpeg, gif, bmp, webp).
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var img image.Image
	if filepath.Ext(path) == ".ico" {
		img, err = ico.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Scale fits src into a size×size square, preserving aspect ratio and
// centring it on a transparent background.
func Scale(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))

	b := src.Bounds()
	w, h := size, size
	if b.Dx() > b.Dy() {
		h = max(1, size*b.Dy()/b.Dx())
	} else if b.Dy() > b.Dx() {
		w = max(1, size*b.Dx()/b.Dy())
	}
	x0 := (size - w) / 2
	y0 := (size - h) / 2

	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, b, draw.Over, nil)
	return dst
}

// WritePNG encodes img as PNG at path
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG %s: %w", path, err)
	}
	return f.Close()
}
