package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values.
const (
	EnvLogLevel       = "QUIZDOWN_LOG_LEVEL"
	EnvUIMode         = "QUIZDOWN_UI_MODE"
	EnvHistoryPath    = "QUIZDOWN_HISTORY_PATH"
	EnvHistoryEnabled = "QUIZDOWN_HISTORY"
	EnvAddr           = "QUIZDOWN_ADDR"
)

// LoadDotEnv loads a .env file from dir when present. A missing file is not
// an error; variables already set in the environment win.
func LoadDotEnv(dir string) {
	path := ".env"
	if dir != "" {
		path = dir + string(os.PathSeparator) + ".env"
	}
	_ = godotenv.Load(path)
}

// ApplyEnv overrides config fields from QUIZDOWN_* variables.
func ApplyEnv(cfg *Config) {
	if v := getEnv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getEnv(EnvUIMode); v != "" {
		cfg.UI.Mode = v
	}
	if v := getEnv(EnvHistoryPath); v != "" {
		cfg.History.Path = v
	}
	if v := getEnv(EnvHistoryEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.History.Enabled = &enabled
		}
	}
	if v := getEnv(EnvAddr); v != "" {
		cfg.Serve.Addr = v
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
