package quiz

import (
	"crypto/sha256"
	"encoding/hex"
)

// ConvertOptions controls how raw text becomes a playable session.
type ConvertOptions struct {
	Parse ParseOptions
	// KeepOrder disables question shuffling.
	KeepOrder bool
	// ShuffleAnswers also permutes the options of every question.
	ShuffleAnswers bool
	// Limit keeps only the first Limit questions after shuffling; <= 0 keeps all.
	Limit int
	// Source drives shuffling; nil uses the process-wide source.
	Source Source
}

// Prepare parses raw text and orders the questions for play.
func Prepare(raw string, opts ConvertOptions) []Question {
	return Arrange(opts.Parse.Parse(raw), opts)
}

// Arrange applies shuffling and the question limit to already parsed
// questions. The argument is not modified.
func Arrange(questions []Question, opts ConvertOptions) []Question {
	if !opts.KeepOrder {
		questions = Shuffle(questions, opts.Source)
	}
	if opts.ShuffleAnswers {
		questions = ShuffleAnswers(questions, opts.Source)
	}
	if opts.Limit > 0 && opts.Limit < len(questions) {
		questions = questions[:opts.Limit]
	}
	return questions
}

// Convert builds a fresh session from raw text. Any previous session is
// simply replaced by the returned value.
func Convert(raw string, opts ConvertOptions) Session {
	return NewSession(Prepare(raw, opts))
}

// Fingerprint returns a stable digest of the quiz text.
func Fingerprint(raw string) string {
	hash := sha256.Sum256([]byte(normalizeNewlines(raw)))
	return hex.EncodeToString(hash[:])
}
