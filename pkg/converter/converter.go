package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"iconprep/pkg/config"
)

// ErrUnsupported is returned when a backend cannot produce a format
var ErrUnsupported = errors.New("conversion not supported by this backend")

// Converter is the interface for icon format conversion.
// Implementations may shell out or encode in-process.
type Converter interface {
	ToIco(src string) (string, error)
	ToPng(src string) (string, error)
	ToIcns(src string) (string, error)
	// ToTrayIcon writes tray icon files next to the other outputs.
	// Callers do not get a path back.
	ToTrayIcon(src string) error
}

// Format is an icon file extension including the dot
type Format string

const (
	FormatIco  Format = ".ico"
	FormatPng  Format = ".png"
	FormatIcns Format = ".icns"
	FormatTray Format = "tray"
)

// New creates the converter selected by cfg.Backend
func New(cfg config.ConverterConfig, logger *slog.Logger) (Converter, error) {
	switch cfg.Backend {
	case config.BackendShell, "":
		return NewShellConverter(cfg, logger), nil
	case config.BackendNative:
		return NewNativeConverter(cfg, logger), nil
	case config.BackendMock:
		return NewMockConverter(cfg.OutputDir, logger), nil
	default:
		return nil, fmt.Errorf("unknown converter backend %q", cfg.Backend)
	}
}

// outputDir lazily resolves the directory converted icons are written to.
// An empty configured directory means a fresh temp directory per run.
type outputDir struct {
	configured string
	once       sync.Once
	path       string
	err        error
}

func (o *outputDir) get() (string, error) {
	o.once.Do(func() {
		if o.configured == "" {
			o.path, o.err = os.MkdirTemp("", "iconprep-*")
			if o.err != nil {
				o.err = fmt.Errorf("failed to create output directory: %w", o.err)
			}
			return
		}
		o.path = o.configured
		if err := os.MkdirAll(o.path, 0755); err != nil {
			o.err = fmt.Errorf("failed to create output directory: %w", err)
		}
	})
	return o.path, o.err
}

// outputPath returns dir/<source name without extension><ext>
func outputPath(dir, src string, ext Format) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+string(ext))
}
