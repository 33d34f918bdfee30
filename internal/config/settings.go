package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the optional run settings. None of them are required: a
// zero-argument run uses Default().
type Settings struct {
	OutputDir string        `yaml:"output_dir"`
	Seed      uint64        `yaml:"seed"`
	Manifest  string        `yaml:"manifest"` // Optional YAML manifest replacing the built-in list
	Logging   LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Overrides carries command-line values. Zero values leave the setting alone.
type Overrides struct {
	OutputDir string
	Seed      *uint64
	Manifest  string
	LogLevel  string
	LogFile   string
}

// Default returns Settings with the built-in defaults.
func Default() *Settings {
	return &Settings{
		OutputDir: DefaultOutputDir,
		Seed:      DefaultSeed,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds settings with priority: defaults < file < overrides.
// An empty path skips the file layer.
func Load(path string, o Overrides) (*Settings, error) {
	s := Default()

	if path != "" {
		if err := loadFromFile(s, path); err != nil {
			return nil, fmt.Errorf("loading settings from %s: %w", path, err)
		}
	}

	s.Apply(o)
	return s, nil
}

// Apply copies every non-zero override onto s.
func (s *Settings) Apply(o Overrides) {
	if o.OutputDir != "" {
		s.OutputDir = o.OutputDir
	}
	if o.Seed != nil {
		s.Seed = *o.Seed
	}
	if o.Manifest != "" {
		s.Manifest = o.Manifest
	}
	if o.LogLevel != "" {
		s.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		s.Logging.LogFile = o.LogFile
	}
}

// SaveTo writes the settings to path as YAML.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// loadFromFile merges a YAML file over the values already in s.
func loadFromFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, s)
}
