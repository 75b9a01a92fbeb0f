package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconprep/pkg/platform"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.yaml")
	data := `
packager:
  platform: windows
  icon: assets/icon.png
app:
  tray: "false"
converter:
  backend: native
  output_dir: /tmp/icons
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, platform.Windows, cfg.Packager.Platform)
	assert.Equal(t, SingleIcon("assets/icon.png"), cfg.Packager.Icon)
	assert.False(t, cfg.App.TrayEnabled())
	assert.Equal(t, BackendNative, cfg.Converter.Backend)
	assert.Equal(t, "/tmp/icons", cfg.Converter.OutputDir)
	assert.Equal(t, 60, cfg.Converter.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestParse_IconList(t *testing.T) {
	cfg, err := Parse([]byte("packager:\n  platform: linux\n  icon: [a.icns, b.png]\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Packager.Icon.IsList())
	assert.Equal(t, "a.icns", cfg.Packager.Icon.Primary())
	assert.Equal(t, []string{"a.icns", "b.png"}, cfg.Packager.Icon.Paths)
}

func TestParse_InvalidIcon(t *testing.T) {
	_, err := Parse([]byte("packager:\n  icon: {path: a.png}\n"))
	assert.ErrorContains(t, err, "icon must be a path or a list of paths")
}

func TestParse_UnknownBackend(t *testing.T) {
	_, err := Parse([]byte("converter:\n  backend: gimp\n"))
	assert.ErrorContains(t, err, "converter.backend")
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("ICONPREP_PLATFORM", "osx")
	t.Setenv("ICONPREP_TRAY", "false")
	t.Setenv("ICONPREP_BACKEND", "mock")
	t.Setenv("ICONPREP_LOG_FORMAT", "json")

	cfg, err := Parse([]byte("packager:\n  platform: linux\n  icon: icon.png\n"))
	require.NoError(t, err)

	assert.Equal(t, platform.Darwin, cfg.Packager.Platform)
	assert.False(t, cfg.App.TrayEnabled())
	assert.Equal(t, BackendMock, cfg.Converter.Backend)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "icon.png", cfg.Packager.Icon.Primary())
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, platform.Current(), cfg.Packager.Platform)
	assert.False(t, cfg.Packager.Icon.IsSet())
	assert.True(t, cfg.App.TrayEnabled())
	assert.Equal(t, BackendShell, cfg.Converter.Backend)
}

func TestAppConfig_TrayEnabled(t *testing.T) {
	tests := map[string]bool{
		"":              true,
		"true":          true,
		"start-in-tray": true,
		"False":         true,
		"false":         false,
	}

	for tray, want := range tests {
		app := AppConfig{Tray: tray}
		assert.Equal(t, want, app.TrayEnabled(), "tray %q", tray)
	}
}

func TestConfig_CloneDoesNotShareIconList(t *testing.T) {
	orig := Config{Packager: PackagerConfig{Icon: IconList("a.png", "b.png")}}

	clone := orig.Clone()
	clone.Packager.Icon.Paths[0] = "changed.png"

	assert.Equal(t, "a.png", orig.Packager.Icon.Primary())
}

func TestConfig_MarshalRoundTripsIconShape(t *testing.T) {
	cfg := Config{Packager: PackagerConfig{Platform: platform.Linux, Icon: SingleIcon("out/icon.png")}}

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "icon: out/icon.png\n")

	cfg.Packager.Icon = Icon{}
	data, err = cfg.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "icon:")
}
