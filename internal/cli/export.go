package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizdown/internal/question"
	"quizdown/internal/quiz"
	"quizdown/internal/sheet"
)

// Export formats.
const (
	formatText = "text"
	formatXLSX = "xlsx"
)

// formatFromPath infers an export format from an output file name.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return question.FormatJSON
	case ".xlsx":
		return formatXLSX
	case ".txt", ".md", ".quiz":
		return formatText
	default:
		return question.FormatYAML
	}
}

// errUnsupportedFormat reports an export format outside text|yaml|json|xlsx.
var errUnsupportedFormat = errors.New("unsupported format")

// encodeQuestions renders questions in one of the export formats. Structured
// output is validated first so that it can be imported again.
func encodeQuestions(questions []quiz.Question, format string) ([]byte, error) {
	switch format {
	case formatText:
		return []byte(quiz.Format(questions)), nil
	case formatXLSX:
		return sheet.Export(questions)
	case question.FormatYAML, question.FormatJSON:
		spec, err := question.NormalizeSpec(question.FromQuiz(questions))
		if err != nil {
			return nil, err
		}
		return question.Encode(spec, format)
	default:
		return nil, fmt.Errorf("%w %q (expected text|yaml|json|xlsx)", errUnsupportedFormat, format)
	}
}

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		format := fs.String("format", "", "Output format: text|yaml|json|xlsx (default from -o, else yaml)")
		output := fs.String("o", "", "Output file (default: stdout)")
		keepEmpty := fs.Bool("keep-empty-blocks", false, "Keep empty blocks as empty questions")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		source, err := singleSource(fs.Args())
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		chosen := strings.ToLower(strings.TrimSpace(*format))
		if chosen == "" {
			chosen = formatFromPath(*output)
		}
		if chosen == formatXLSX && *output == "" && isTerminal(stdout) {
			fmt.Fprintln(stderr, "Refusing to write a spreadsheet to a terminal; use -o")
			return ExitUsage
		}

		in, err := readQuizInput(source, quiz.ParseOptions{KeepEmptyBlocks: *keepEmpty})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read quiz: %v\n", err)
			return ExitError
		}
		data, err := encodeQuestions(in.Questions, chosen)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			if errors.Is(err, errUnsupportedFormat) {
				return ExitUsage
			}
			return ExitError
		}
		if err := writeOutput(*output, data, stdout); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		if *output != "" {
			fmt.Fprintf(stdout, "Wrote %s\n", *output)
		}
		return ExitOK
	}
}
