//go:build cucumber
// +build cucumber

package cucumber

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theOutputContains asserts stdout contains text.
func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q (stderr %q)", text, s.stdout.String(), s.stderr.String())
	}
	return nil
}

// theExitCodeIs asserts the exact exit code.
func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theErrorMessagePointsToInvalidField checks the error output for hints.
func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

// theHistoryListsAttempts counts recorded attempts through the CLI.
func (s *featureState) theHistoryListsAttempts(count int) error {
	if err := s.run("quizdown history --json --limit 100", ""); err != nil {
		return err
	}
	if s.exitCode != 0 {
		return fmt.Errorf("history failed: %s", s.stderr.String())
	}
	var attempts []json.RawMessage
	if err := json.Unmarshal(s.stdout.Bytes(), &attempts); err != nil {
		return fmt.Errorf("decode history: %w", err)
	}
	if len(attempts) != count {
		return fmt.Errorf("expected %d attempts, got %d", count, len(attempts))
	}
	return nil
}
