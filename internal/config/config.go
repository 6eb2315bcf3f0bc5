package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file name looked up in the working
// directory when no explicit path is given.
const DefaultPath = "mntax.yaml"

// Config represents the top-level mntax.yaml configuration.
type Config struct {
	Schedule ScheduleConfig `yaml:"schedule"`
	Server   ServerConfig   `yaml:"server"`
}

// ScheduleConfig selects the bracket schedule used for computation.
type ScheduleConfig struct {
	File string `yaml:"file,omitempty"` // schedule CSV path; empty = built-in
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	Mode        string   `yaml:"mode"` // gin mode: debug, release, test
	CORSOrigins []string `yaml:"cors_origins,omitempty"`
}

// Load reads an mntax.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads path if it exists and falls back to Default when
// the file is absent.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the zero-config setup: the built-in schedule and a
// release-mode server on :8080 with permissive CORS.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			Mode:        "release",
			CORSOrigins: []string{"*"},
		},
	}
}
