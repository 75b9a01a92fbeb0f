package converter

import (
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

// Call records one converter invocation
type Call struct {
	Format Format
	Src    string
}

// MockConverter implements Converter without touching the filesystem.
// It is used for development and in tests.
type MockConverter struct {
	outDir   string
	failures map[Format]error
	calls    []Call
	mu       sync.Mutex
	logger   *slog.Logger
}

// NewMockConverter creates a new mock converter writing (pretend) output to outDir
func NewMockConverter(outDir string, logger *slog.Logger) *MockConverter {
	if outDir == "" {
		outDir = "/mock/icons"
	}
	return &MockConverter{
		outDir:   outDir,
		failures: make(map[Format]error),
		logger:   logger.With("component", "mock"),
	}
}

// FailWith makes every later conversion to format return err
func (m *MockConverter) FailWith(format Format, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[format] = err
}

// Calls returns a copy of all recorded invocations in order
func (m *MockConverter) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// CallsFor returns the recorded invocations for one format
func (m *MockConverter) CallsFor(format Format) []Call {
	return lo.Filter(m.Calls(), func(c Call, _ int) bool {
		return c.Format == format
	})
}

// ToIco simulates conversion to .ico
func (m *MockConverter) ToIco(src string) (string, error) {
	return m.convert(FormatIco, src)
}

// ToPng simulates conversion to .png
func (m *MockConverter) ToPng(src string) (string, error) {
	return m.convert(FormatPng, src)
}

// ToIcns simulates conversion to .icns
func (m *MockConverter) ToIcns(src string) (string, error) {
	return m.convert(FormatIcns, src)
}

// ToTrayIcon simulates tray icon generation
func (m *MockConverter) ToTrayIcon(src string) error {
	_, err := m.convert(FormatTray, src)
	return err
}

func (m *MockConverter) convert(format Format, src string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{Format: format, Src: src})
	if err, ok := m.failures[format]; ok {
		m.logger.Debug("Conversion failed (simulated)", "format", format, "src", src, "error", err)
		return "", err
	}

	if format == FormatTray {
		m.logger.Debug("Tray icon generated (simulated)", "src", src)
		return "", nil
	}

	out := outputPath(m.outDir, src, format)
	m.logger.Debug("Icon converted (simulated)", "format", format, "src", src, "output", out)
	return out, nil
}
