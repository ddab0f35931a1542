package play

import "quizdown/internal/quiz"

// Screen identifies which view the player shows.
type Screen int

const (
	// ScreenEditor shows the text editor used to write a quiz.
	ScreenEditor Screen = iota
	// ScreenQuestion shows the current question and its options.
	ScreenQuestion
	// ScreenScore shows the final score and a per-question review.
	ScreenScore
)

// State is everything the player renders besides the editor widget.
type State struct {
	Screen  Screen
	Session quiz.Session
	// Cursor is the highlighted option of the current question.
	Cursor int
	// Source is the text the current session was converted from.
	Source string
	// Conversions counts how many sessions were created.
	Conversions int
	LastEvent   string
}
