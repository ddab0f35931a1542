// Package plain plays a quiz over line-based input and output.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizdown/internal/quiz"
)

// ErrInputClosed reports that input ended before the quiz finished.
var ErrInputClosed = errors.New("input closed before the quiz finished")

// Run plays session by printing each question and reading one answer line
// per question. A line lists option numbers separated by spaces or commas;
// an empty line submits no selection. It returns the session as far as it
// got, which is finished unless an error is returned.
func Run(ctx context.Context, in io.Reader, out io.Writer, session quiz.Session) (quiz.Session, error) {
	scanner := bufio.NewScanner(in)
	for !session.Finished() {
		if err := ctx.Err(); err != nil {
			return session, err
		}
		question, _ := session.Current()
		printQuestion(out, session, question)

		var picks []int
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				if err := scanner.Err(); err != nil {
					return session, fmt.Errorf("read answer: %w", err)
				}
				return session, ErrInputClosed
			}
			var err error
			picks, err = ParseSelection(scanner.Text(), len(question.Options))
			if err == nil {
				break
			}
			fmt.Fprintf(out, "%v\n", err)
		}

		for _, pick := range picks {
			session = session.Toggle(question.Options[pick-1].ID, true)
		}
		var outcome quiz.Outcome
		session, outcome, _ = session.Advance()
		printOutcome(out, outcome)
	}
	fmt.Fprintf(out, "You scored %d out of %d\n", session.Score(), session.Total())
	return session, nil
}

// ParseSelection parses a line of 1-based option numbers. Repeated numbers
// count once.
func ParseSelection(line string, options int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	seen := make(map[int]struct{}, len(fields))
	picks := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("not an option number: %q", field)
		}
		if n < 1 || n > options {
			return nil, fmt.Errorf("option %d out of range 1-%d", n, options)
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		picks = append(picks, n)
	}
	return picks, nil
}

func printQuestion(out io.Writer, session quiz.Session, question quiz.Question) {
	fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", session.Index()+1, session.Total(), question.Text)
	if len(question.Options) == 0 {
		fmt.Fprintln(out, "  (no answers, press enter)")
		return
	}
	for i, option := range question.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, option.Text)
	}
}

func printOutcome(out io.Writer, outcome quiz.Outcome) {
	if outcome.Correct {
		fmt.Fprintln(out, "Correct")
		return
	}
	answer := strings.Join(quiz.CorrectTexts(outcome.Question), ", ")
	if answer == "" {
		answer = "(none)"
	}
	fmt.Fprintf(out, "Incorrect, correct: %s\n", answer)
}
