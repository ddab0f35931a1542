package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"quizdown/internal/quiz"
)

// checkReport summarizes how a quiz parses.
type checkReport struct {
	Source      string      `json:"source"`
	Fingerprint string      `json:"fingerprint"`
	Questions   int         `json:"questions"`
	Options     int         `json:"options"`
	Correct     int         `json:"correct"`
	Items       []checkItem `json:"items"`
	Warnings    int         `json:"warnings"`
}

type checkItem struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Options  int      `json:"options"`
	Correct  int      `json:"correct"`
	Warnings []string `json:"warnings,omitempty"`
}

// buildCheckReport inspects parsed questions. Warnings flag questions that
// parse fine but cannot be answered meaningfully.
func buildCheckReport(in quizInput) checkReport {
	report := checkReport{
		Source:      in.Label,
		Fingerprint: in.Fingerprint(),
		Questions:   len(in.Questions),
		Items:       make([]checkItem, 0, len(in.Questions)),
	}
	for _, q := range in.Questions {
		item := checkItem{ID: q.ID, Text: q.Text, Options: len(q.Options), Correct: q.CorrectCount()}
		if q.Text == "" {
			item.Warnings = append(item.Warnings, "empty question text")
		}
		switch {
		case len(q.Options) == 0:
			item.Warnings = append(item.Warnings, "no answers")
		case item.Correct == 0:
			item.Warnings = append(item.Warnings, "no correct answer; only an empty selection scores")
		}
		report.Options += item.Options
		report.Correct += item.Correct
		report.Warnings += len(item.Warnings)
		report.Items = append(report.Items, item)
	}
	return report
}

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		asJSON := fs.Bool("json", false, "Print the report as JSON")
		strict := fs.Bool("strict", false, "Exit non-zero when warnings are found")
		keepEmpty := fs.Bool("keep-empty-blocks", false, "Keep empty blocks as empty questions")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		source, err := singleSource(fs.Args())
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		in, err := readQuizInput(source, quiz.ParseOptions{KeepEmptyBlocks: *keepEmpty})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read quiz: %v\n", err)
			return ExitError
		}
		report := buildCheckReport(in)

		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
				return ExitError
			}
		} else {
			printCheckReport(stdout, report)
		}

		if *strict && report.Warnings > 0 {
			return ExitError
		}
		return ExitOK
	}
}

func printCheckReport(w io.Writer, report checkReport) {
	fmt.Fprintf(w, "%d questions, %d options, %d correct\n", report.Questions, report.Options, report.Correct)
	for i, item := range report.Items {
		fmt.Fprintf(w, "  %d. %s (%d options, %d correct)\n", i+1, item.Text, item.Options, item.Correct)
		for _, warning := range item.Warnings {
			fmt.Fprintf(w, "     warning: %s\n", warning)
		}
	}
}
