package converter

import (
	"fmt"
	"log/slog"
	"os"

	ico "github.com/sergeymakinen/go-ico"

	"iconprep/pkg/config"
	"iconprep/pkg/tray"
)

// maxIcoSize is the largest dimension an ICO directory entry can describe
const maxIcoSize = 256

// encodeIco is swapped out in tests to simulate encoder failures
var encodeIco = ico.Encode

// NativeConverter implements Converter in pure Go. It reads PNG, JPEG,
// GIF, BMP, WebP and ICO sources. It cannot write .icns.
type NativeConverter struct {
	out    *outputDir
	logger *slog.Logger
}

// NewNativeConverter creates a converter that needs no external tools
func NewNativeConverter(cfg config.ConverterConfig, logger *slog.Logger) *NativeConverter {
	return &NativeConverter{
		out:    &outputDir{configured: cfg.OutputDir},
		logger: logger.With("component", "native"),
	}
}

// ToIco writes src as a square .ico of at most 256px
func (n *NativeConverter) ToIco(src string) (string, error) {
	dir, err := n.out.get()
	if err != nil {
		return "", err
	}
	dest := outputPath(dir, src, FormatIco)

	img, err := tray.Decode(src)
	if err != nil {
		return "", err
	}
	b := img.Bounds()
	size := min(maxIcoSize, max(b.Dx(), b.Dy()))

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if err := encodeIco(f, tray.Scale(img, size)); err != nil {
		f.Close()
		os.Remove(dest)
		return "", fmt.Errorf("failed to encode ico %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}

	n.logger.Info("Converted icon", "format", FormatIco, "output", dest, "size", size)
	return dest, nil
}

// ToPng re-encodes src as .png at its original size
func (n *NativeConverter) ToPng(src string) (string, error) {
	dir, err := n.out.get()
	if err != nil {
		return "", err
	}
	dest := outputPath(dir, src, FormatPng)

	img, err := tray.Decode(src)
	if err != nil {
		return "", err
	}
	if err := tray.WritePNG(img, dest); err != nil {
		return "", err
	}

	n.logger.Info("Converted icon", "format", FormatPng, "output", dest)
	return dest, nil
}

// ToIcns is not available without iconutil
func (n *NativeConverter) ToIcns(src string) (string, error) {
	return "", fmt.Errorf("%w: .icns output needs the shell backend on macOS", ErrUnsupported)
}

// ToTrayIcon writes the tray icon pair into the output directory
func (n *NativeConverter) ToTrayIcon(src string) error {
	dir, err := n.out.get()
	if err != nil {
		return err
	}

	written, err := tray.Generate(src, dir)
	if err != nil {
		return fmt.Errorf("failed to generate tray icon: %w", err)
	}

	n.logger.Info("Generated tray icon", "files", written)
	return nil
}
