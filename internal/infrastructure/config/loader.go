package config

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file every loader reads
const FileName = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads game.yaml over the defaults and validates the result.
// Fields missing from the file keep their default value.
func (l *Loader) Load() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	log.Printf("[config] loaded %s from %s", FileName, l.basePath)
	return cfg, nil
}

// LoadOrDefault loads the config, falling back to Default when the file
// does not exist. Parse and validation errors are still returned.
func (l *Loader) LoadOrDefault() (*GameConfig, error) {
	cfg, err := l.Load()
	if err == nil {
		return cfg, nil
	}
	if _, statErr := fs.Stat(l.fsys, FileName); statErr != nil {
		log.Printf("[config] %s not found in %s, using defaults", FileName, l.basePath)
		return Default(), nil
	}
	return nil, err
}
