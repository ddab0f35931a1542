package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrConfigExists reports that Scaffold would overwrite a config file.
var ErrConfigExists = errors.New("config already exists")

const defaultConfig = `version: 1
quiz:
  shuffle_questions: true
  shuffle_answers: false
  keep_empty_blocks: false
  limit: 0
ui:
  mode: auto
  no_color: false
history:
  enabled: true
  path: .quizdown/history.duckdb
log:
  level: warn
  format: console
serve:
  addr: 127.0.0.1:8080
`

// DefaultConfigYAML returns the config written by Scaffold.
func DefaultConfigYAML() string {
	return defaultConfig
}

// Scaffold writes the default config under root and returns its path.
func Scaffold(root string) (string, error) {
	path := ConfigPath(root)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
