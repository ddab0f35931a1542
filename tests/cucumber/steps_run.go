//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"quizdown/internal/cli"
)

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	return s.run(command, "")
}

// iRunCommandAnswering executes a CLI command with the doc string as stdin.
func (s *featureState) iRunCommandAnswering(command string, answers *godog.DocString) error {
	input := answers.Content
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	return s.run(command, input)
}

func (s *featureState) run(command, input string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quizdown" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.RunWithInput(args, strings.NewReader(input), &s.stdout, &s.stderr)
	return nil
}
