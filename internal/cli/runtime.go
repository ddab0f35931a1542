package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"quizdown/internal/config"
	"quizdown/internal/logging"
	"quizdown/internal/question"
	"quizdown/internal/quiz"
	"quizdown/internal/sheet"
)

// stdin feeds "-" sources and the plain player; tests override it.
var stdin io.Reader = os.Stdin

// signalContext is cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// loadRuntime resolves the config and builds the logger. Verbose forces
// debug logging.
func loadRuntime(configPath string, verbose bool, stderr io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log, err := logging.New(stderr, level, cfg.Log.Format)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, log, nil
}

// quizInput is a quiz read from a file or stdin.
type quizInput struct {
	// Label names the input in history and messages.
	Label string
	// Text is the plain-text form, used for the editor and fingerprints.
	Text      string
	Questions []quiz.Question
}

// Fingerprint identifies the quiz content.
func (in quizInput) Fingerprint() string {
	return quiz.Fingerprint(in.Text)
}

// readQuizInput loads a quiz from path. Empty or "-" reads plain text from
// stdin; .yml, .yaml and .json files are structured quizzes; .xlsx files are
// spreadsheets; anything else is plain text.
func readQuizInput(path string, parse quiz.ParseOptions) (quizInput, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return quizInput{}, fmt.Errorf("read stdin: %w", err)
		}
		return plainInput("stdin", string(data), parse), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
		spec, err := question.LoadSpec(path)
		if err != nil {
			return quizInput{}, err
		}
		return structuredInput(path, spec.QuizQuestions()), nil
	case ".xlsx":
		file, err := os.Open(path)
		if err != nil {
			return quizInput{}, fmt.Errorf("open spreadsheet: %w", err)
		}
		defer file.Close()
		questions, err := sheet.Import(file)
		if err != nil {
			return quizInput{}, fmt.Errorf("import %s: %w", path, err)
		}
		return structuredInput(path, questions), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return quizInput{}, fmt.Errorf("read quiz: %w", err)
	}
	return plainInput(path, string(data), parse), nil
}

func plainInput(label, text string, parse quiz.ParseOptions) quizInput {
	return quizInput{Label: label, Text: text, Questions: parse.Parse(text)}
}

func structuredInput(label string, questions []quiz.Question) quizInput {
	return quizInput{Label: label, Text: quiz.Format(questions), Questions: questions}
}

// singleSource returns the optional positional quiz argument.
func singleSource(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
