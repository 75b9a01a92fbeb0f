package converter

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"iconprep/pkg/config"
	"iconprep/pkg/tray"
)

// icnsSizes are the base sizes of a macOS iconset; each also gets an @2x
var icnsSizes = []int{16, 32, 128, 256, 512}

// ShellConverter implements Converter with external tools:
// ImageMagick for .ico and .png, sips and iconutil for .icns.
type ShellConverter struct {
	imageMagick string
	timeout     time.Duration
	out         *outputDir
	logger      *slog.Logger
}

// NewShellConverter creates a converter driven by command-line tools
func NewShellConverter(cfg config.ConverterConfig, logger *slog.Logger) *ShellConverter {
	return &ShellConverter{
		imageMagick: cfg.ImageMagick,
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		out:         &outputDir{configured: cfg.OutputDir},
		logger:      logger.With("component", "shell"),
	}
}

// magick returns the ImageMagick entry point. ImageMagick 7 ships "magick";
// version 6 only has "convert".
func (s *ShellConverter) magick() string {
	if s.imageMagick != "" {
		return s.imageMagick
	}
	if _, err := exec.LookPath("magick"); err == nil {
		return "magick"
	}
	return "convert"
}

// ToIco converts src to a multi-resolution .ico
func (s *ShellConverter) ToIco(src string) (string, error) {
	dir, err := s.out.get()
	if err != nil {
		return "", err
	}
	dest := outputPath(dir, src, FormatIco)

	if _, err := s.RunTool(s.magick(), src, "-background", "none",
		"-define", "icon:auto-resize=256,128,64,48,32,16", dest); err != nil {
		return "", fmt.Errorf("failed to convert %s to .ico: %w", src, err)
	}

	s.logger.Info("Converted icon", "format", FormatIco, "output", dest)
	return dest, nil
}

// ToPng converts the first frame of src to a .png no larger than 512x512
func (s *ShellConverter) ToPng(src string) (string, error) {
	dir, err := s.out.get()
	if err != nil {
		return "", err
	}
	dest := outputPath(dir, src, FormatPng)

	if _, err := s.RunTool(s.magick(), src+"[0]", "-background", "none",
		"-resize", "512x512>", dest); err != nil {
		return "", fmt.Errorf("failed to convert %s to .png: %w", src, err)
	}

	s.logger.Info("Converted icon", "format", FormatPng, "output", dest)
	return dest, nil
}

// ToIcns builds an iconset with sips and packs it with iconutil (macOS only)
func (s *ShellConverter) ToIcns(src string) (string, error) {
	dir, err := s.out.get()
	if err != nil {
		return "", err
	}
	dest := outputPath(dir, src, FormatIcns)

	iconset, err := os.MkdirTemp(dir, "*.iconset")
	if err != nil {
		return "", fmt.Errorf("failed to create iconset directory: %w", err)
	}
	defer os.RemoveAll(iconset)

	for _, size := range icnsSizes {
		variants := []struct {
			px   int
			name string
		}{
			{size, fmt.Sprintf("icon_%dx%d.png", size, size)},
			{size * 2, fmt.Sprintf("icon_%dx%d@2x.png", size, size)},
		}
		for _, v := range variants {
			if err := s.sipsResize(src, filepath.Join(iconset, v.name), v.px); err != nil {
				return "", fmt.Errorf("failed to convert %s to .icns: %w", src, err)
			}
		}
	}

	if _, err := s.RunTool("iconutil", "-c", "icns", "-o", dest, iconset); err != nil {
		return "", fmt.Errorf("failed to convert %s to .icns: %w", src, err)
	}

	s.logger.Info("Converted icon", "format", FormatIcns, "output", dest)
	return dest, nil
}

// ToTrayIcon writes tray-icon.png and tray-icon@2x.png into the output
// directory. Non-raster sources such as .icns are rasterised with sips first.
func (s *ShellConverter) ToTrayIcon(src string) error {
	dir, err := s.out.get()
	if err != nil {
		return err
	}

	raster := src
	if filepath.Ext(src) == string(FormatIcns) {
		raster = filepath.Join(dir, "tray-source.png")
		if err := s.sipsResize(src, raster, tray.Size2x*4); err != nil {
			return fmt.Errorf("failed to rasterise tray icon source: %w", err)
		}
		defer os.Remove(raster)
	}

	written, err := tray.Generate(raster, dir)
	if err != nil {
		return fmt.Errorf("failed to generate tray icon: %w", err)
	}

	s.logger.Info("Generated tray icon", "files", written)
	return nil
}

func (s *ShellConverter) sipsResize(src, dest string, px int) error {
	size := strconv.Itoa(px)
	_, err := s.RunTool("sips", "-s", "format", "png", "-z", size, size, src, "--out", dest)
	return err
}
