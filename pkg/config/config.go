package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"iconprep/pkg/platform"
)

// Backend names accepted in converter.backend
const (
	BackendShell  = "shell"
	BackendNative = "native"
	BackendMock   = "mock"
)

// Config holds the application configuration
type Config struct {
	Packager  PackagerConfig  `yaml:"packager"`
	App       AppConfig       `yaml:"app"`
	Converter ConverterConfig `yaml:"converter"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PackagerConfig holds the settings handed to the packager
type PackagerConfig struct {
	Platform platform.Platform `yaml:"platform" env:"ICONPREP_PLATFORM"`
	Icon     Icon              `yaml:"icon,omitempty"`
}

// AppConfig holds application-level options
type AppConfig struct {
	// Tray is "true", "false" or "start-in-tray"; only "false" disables tray icon generation
	Tray string `yaml:"tray,omitempty" env:"ICONPREP_TRAY"`
}

// TrayEnabled reports whether a tray icon should be generated.
// Only the literal "false" turns it off; empty means enabled.
func (c *AppConfig) TrayEnabled() bool {
	return c.Tray != "false"
}

// ConverterConfig selects and tunes the conversion backend
type ConverterConfig struct {
	// Backend is shell, native or mock (default: shell)
	Backend string `yaml:"backend" env:"ICONPREP_BACKEND"`
	// OutputDir receives converted icons (default: a new temp dir)
	OutputDir string `yaml:"output_dir" env:"ICONPREP_OUTPUT_DIR"`
	// TimeoutSeconds bounds each external tool invocation (default: 60)
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// ImageMagick binary (default: magick, falling back to convert)
	ImageMagick string `yaml:"imagemagick" env:"ICONPREP_IMAGEMAGICK"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level: debug, info, warn, error (default: info)
	Level string `yaml:"level" env:"ICONPREP_LOG_LEVEL"`
	// Format: text, json (default: text)
	Format string `yaml:"format" env:"ICONPREP_LOG_FORMAT"`
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse loads configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Default returns a configuration built from environment and defaults only
func Default() (*Config, error) {
	var config Config
	if err := config.finalize(); err != nil {
		return nil, err
	}
	return &config, nil
}

// finalize applies environment overrides, defaults and validation
func (c *Config) finalize() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	c.ApplyDefaults()

	return c.Validate()
}

// ApplyDefaults fills in unset fields
func (c *Config) ApplyDefaults() {
	if c.Packager.Platform == "" {
		c.Packager.Platform = platform.Current()
	} else {
		c.Packager.Platform = platform.Normalize(string(c.Packager.Platform))
	}
	if c.Converter.Backend == "" {
		c.Converter.Backend = BackendShell
	}
	if c.Converter.TimeoutSeconds == 0 {
		c.Converter.TimeoutSeconds = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks settings that have no sensible default
func (c *Config) Validate() error {
	switch c.Converter.Backend {
	case BackendShell, BackendNative, BackendMock:
	default:
		return fmt.Errorf("converter.backend must be one of shell, native, mock (got %q)", c.Converter.Backend)
	}
	if c.Converter.TimeoutSeconds < 0 {
		return fmt.Errorf("converter.timeout_seconds must not be negative")
	}
	return nil
}

// Clone returns a deep copy of the configuration
func (c Config) Clone() Config {
	c.Packager.Icon = c.Packager.Icon.Clone()
	return c
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render YAML config: %w", err)
	}
	return data, nil
}
