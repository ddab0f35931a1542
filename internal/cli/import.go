package cli

import (
	"flag"
	"fmt"
	"io"

	"quizdown/internal/quiz"
)

// runImport builds the handler for the import command.
func runImport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		output := fs.String("o", "", "Output file (default: stdout)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() != 1 || fs.Arg(0) == "-" {
			fmt.Fprintln(stderr, "Missing <file.yml|file.json|file.xlsx>")
			return ExitUsage
		}

		in, err := readQuizInput(fs.Arg(0), quiz.ParseOptions{})
		if err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		if err := writeOutput(*output, []byte(in.Text), stdout); err != nil {
			fmt.Fprintf(stderr, "Import failed: %v\n", err)
			return ExitError
		}
		if *output != "" {
			fmt.Fprintf(stdout, "Wrote %s\n", *output)
		}
		return ExitOK
	}
}
