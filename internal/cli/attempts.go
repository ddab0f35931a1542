package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"quizdown/internal/config"
	"quizdown/internal/history"
	"quizdown/internal/quiz"
)

// openHistory is a test seam for the attempt store.
var openHistory = history.Open

// finishedAttempt is a session that reached the score screen together with
// the text it was converted from.
type finishedAttempt struct {
	Text    string
	Session quiz.Session
}

// recordAttempts stores finished sessions under label and prints the best
// score for the last quiz. Failures are logged but never change the exit
// code.
func recordAttempts(ctx context.Context, cfg config.Config, log zerolog.Logger, label string, attempts []finishedAttempt, stdout io.Writer) {
	if !cfg.HistoryEnabled() || len(attempts) == 0 {
		return
	}
	store, err := openHistory(ctx, cfg.History.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.History.Path).Msg("history unavailable")
		return
	}
	defer store.Close()

	var fingerprint string
	for _, finished := range attempts {
		fingerprint = quiz.Fingerprint(finished.Text)
		attempt, err := store.Record(ctx, fingerprint, label, finished.Session.Score(), finished.Session.Total())
		if err != nil {
			log.Warn().Err(err).Msg("record attempt")
			return
		}
		log.Debug().Str("attempt", attempt.ID).Int("score", attempt.Score).Msg("recorded attempt")
	}
	best, ok, err := store.Best(ctx, fingerprint)
	if err != nil {
		log.Warn().Err(err).Msg("read best attempt")
		return
	}
	if ok {
		fmt.Fprintf(stdout, "Best so far: %d out of %d\n", best.Score, best.Total)
	}
}

// convertOptions merges config defaults with command flags.
func convertOptions(cfg config.Config, flags playFlags) quiz.ConvertOptions {
	opts := quiz.ConvertOptions{
		Parse:          quiz.ParseOptions{KeepEmptyBlocks: cfg.Quiz.KeepEmptyBlocks},
		KeepOrder:      !cfg.ShouldShuffleQuestions() || flags.keepOrder,
		ShuffleAnswers: cfg.Quiz.ShuffleAnswers || flags.shuffleAnswers,
		Limit:          cfg.Quiz.Limit,
	}
	if flags.limit >= 0 {
		opts.Limit = flags.limit
	}
	if flags.seed != 0 {
		opts.Source = quiz.NewSource(flags.seed)
	}
	return opts
}
