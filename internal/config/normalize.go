package config

import (
	"path/filepath"
	"strings"
)

// Normalize fills defaults and resolves relative paths against root.
func Normalize(cfg *Config, root string) {
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if strings.TrimSpace(cfg.Serve.Addr) == "" {
		cfg.Serve.Addr = "127.0.0.1:8080"
	}
	cfg.History.Path = strings.TrimSpace(cfg.History.Path)
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if root != "" && !filepath.IsAbs(cfg.History.Path) {
		cfg.History.Path = filepath.Join(root, cfg.History.Path)
	}
}
