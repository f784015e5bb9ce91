// Package config reads and writes the pennybook.yaml project file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = "pennybook.yaml"

// Config represents the top-level pennybook.yaml configuration.
type Config struct {
	DataDir  string       `yaml:"data_dir"`
	Currency string       `yaml:"currency"`
	Server   ServerConfig `yaml:"server"`
	Git      GitConfig    `yaml:"git"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// GitConfig controls git snapshots of the books.
type GitConfig struct {
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a pennybook.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		DataDir:  "data",
		Currency: "USD",
		Server: ServerConfig{
			Listen: ":8000",
		},
		Git: GitConfig{
			AuthorName:  "Pennybook",
			AuthorEmail: "books@pennybook.dev",
		},
	}
}
