// Package cli implements the quizdown command line.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

// RunWithInput runs a command reading interactive input from in instead of
// the process stdin.
func RunWithInput(args []string, in io.Reader, stdout, stderr io.Writer) int {
	original := stdin
	stdin = in
	defer func() { stdin = original }()
	return Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizdown <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizdown <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .quizdown/config.yml", []string{
		"quizdown init [--dir <path>] [--yes]",
	}, runInit),
	command("validate", "Validate .quizdown/config.yml", []string{
		"quizdown validate [--config <path>]",
	}, runValidate),
	command("play", "Convert text to a quiz and play it", []string{
		"quizdown play [--ui auto|live|plain] [--seed <n>] [--keep-order] [--shuffle-answers] [--limit <n>] [--no-history] [file|-]",
	}, runPlay),
	command("check", "Summarize how text parses into questions", []string{
		"quizdown check [--json] [--strict] [file|-]",
	}, runCheck),
	command("export", "Write a quiz as text, YAML, JSON or xlsx", []string{
		"quizdown export [--format text|yaml|json|xlsx] [-o <path>] [file|-]",
	}, runExport),
	command("import", "Print a structured quiz as plain text", []string{
		"quizdown import [-o <path>] <file.yml|file.json|file.xlsx>",
	}, runImport),
	command("history", "List recent attempts", []string{
		"quizdown history [--limit <n>] [--json]",
	}, runHistory),
	command("serve", "Serve the quiz over a JSON HTTP API", []string{
		"quizdown serve [--addr <host:port>] [--origin <url>]...",
	}, runServe),
}
