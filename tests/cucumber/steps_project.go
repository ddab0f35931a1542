//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"

	"quizdown/internal/config"
)

// aQuizdownProject creates a temp project with the default config and
// makes it the working directory.
func (s *featureState) aQuizdownProject() error {
	if s.projectDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "quizdown-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	if _, err := config.Scaffold(dir); err != nil {
		return err
	}
	if err := s.setEnv(config.EnvLogLevel, "error"); err != nil {
		return err
	}
	if err := s.setEnv(config.EnvUIMode, "plain"); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// theConfigIsInvalid replaces the config with an unsupported version.
func (s *featureState) theConfigIsInvalid() error {
	if err := s.aQuizdownProject(); err != nil {
		return err
	}
	return os.WriteFile(config.ConfigPath(s.projectDir), []byte("version: 2\n"), 0o644)
}

// aQuizFileContaining writes a quiz file into the project.
func (s *featureState) aQuizFileContaining(name string, content *godog.DocString) error {
	if err := s.aQuizdownProject(); err != nil {
		return err
	}
	path := filepath.Join(s.projectDir, name)
	if err := os.WriteFile(path, []byte(content.Content), 0o644); err != nil {
		return fmt.Errorf("write quiz: %w", err)
	}
	return nil
}
