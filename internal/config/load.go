package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound reports that no config file exists.
var ErrConfigNotFound = errors.New("no " + ConfigDirName + "/" + ConfigFileName + " found")

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg, "")
	return cfg
}

// Load reads, parses, normalizes, and validates a config file. Environment
// overrides are applied before validation.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	ApplyEnv(&cfg)
	Normalize(&cfg, RootFromConfigPath(path))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or the nearest one above the working
// directory when path is empty. The .env next to the project root is loaded
// first. A missing config yields Default with environment overrides.
func Resolve(path string) (Config, error) {
	if path == "" {
		found, err := FindConfigPath("")
		if errors.Is(err, ErrConfigNotFound) {
			LoadDotEnv("")
			cfg := Config{Version: 1}
			ApplyEnv(&cfg)
			Normalize(&cfg, "")
			if err := Validate(cfg); err != nil {
				return Config{}, err
			}
			return cfg, nil
		}
		if err != nil {
			return Config{}, err
		}
		path = found
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	LoadDotEnv(RootFromConfigPath(abs))
	return Load(abs)
}

// Parse decodes a single YAML config document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config: empty document")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
