package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sync"

	"quizdown/internal/quiz"
	"quizdown/internal/ui/plain"
	"quizdown/internal/ui/play"
)

// runPlayer is a test seam for the interactive player.
var runPlayer = play.Run

// playFlags are the quiz-shaping flags of the play command.
type playFlags struct {
	keepOrder      bool
	shuffleAnswers bool
	limit          int
	seed           uint64
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizdown/config.yml)")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (default from config)")
		verbose := fs.Bool("verbose", false, "Debug logging; implies plain output")
		noHistory := fs.Bool("no-history", false, "Do not record the attempt")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		var flags playFlags
		fs.BoolVar(&flags.keepOrder, "keep-order", false, "Keep the question order of the input")
		fs.BoolVar(&flags.shuffleAnswers, "shuffle-answers", false, "Shuffle answer options too")
		fs.IntVar(&flags.limit, "limit", -1, "Play at most n questions (0 plays all)")
		fs.Uint64Var(&flags.seed, "seed", 0, "Seed for a reproducible order")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		source, err := singleSource(fs.Args())
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		cfg, log, err := loadRuntime(*configPath, *verbose, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *noHistory {
			disabled := false
			cfg.History.Enabled = &disabled
		}
		mode := cfg.UI.Mode
		if *uiMode != "" {
			mode = *uiMode
		}
		decision, err := resolveUIMode(mode, *verbose, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		opts := convertOptions(cfg, flags)

		ctx, stop := signalContext()
		defer stop()

		if decision.useLive {
			var in quizInput
			if source != "" {
				in, err = readQuizInput(source, opts.Parse)
				if err != nil {
					fmt.Fprintf(stderr, "Failed to read quiz: %v\n", err)
					return ExitError
				}
			}
			label := in.Label
			if label == "" {
				label = "editor"
			}
			var mu sync.Mutex
			var finished []finishedAttempt
			state, err := runPlayer(ctx, stdin, stdout, play.Options{
				Text:      in.Text,
				AutoStart: in.Text != "",
				Convert:   opts,
				NoColor:   cfg.UI.NoColor || *noColor,
				OnFinish: func(text string, session quiz.Session) {
					mu.Lock()
					finished = append(finished, finishedAttempt{Text: text, Session: session})
					mu.Unlock()
				},
			})
			if err != nil {
				fmt.Fprintf(stderr, "Player failed: %v\n", err)
				return ExitError
			}
			if state.Conversions > 0 && state.Session.Finished() {
				fmt.Fprintf(stdout, "You scored %d out of %d\n", state.Session.Score(), state.Session.Total())
			}
			mu.Lock()
			defer mu.Unlock()
			recordAttempts(ctx, cfg, log, label, finished, stdout)
			return ExitOK
		}

		if source == "" || source == "-" {
			fmt.Fprintln(stderr, "Plain mode reads answers from stdin; pass the quiz as a file")
			return ExitUsage
		}
		in, err := readQuizInput(source, opts.Parse)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read quiz: %v\n", err)
			return ExitError
		}
		session := quiz.NewSession(quiz.Arrange(in.Questions, opts))
		log.Debug().Str("source", in.Label).Int("questions", session.Total()).Msg("starting quiz")
		session, err = plain.Run(ctx, stdin, stdout, session)
		if err != nil {
			if errors.Is(err, plain.ErrInputClosed) {
				fmt.Fprintf(stderr, "Quiz abandoned after %d of %d questions\n", session.Index(), session.Total())
				return ExitError
			}
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		recordAttempts(ctx, cfg, log, in.Label, []finishedAttempt{{Text: in.Text, Session: session}}, stdout)
		return ExitOK
	}
}
