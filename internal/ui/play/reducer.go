package play

import (
	"fmt"
	"strings"

	"quizdown/internal/quiz"
)

// ActionKind identifies a player action.
type ActionKind int

const (
	// ActionConvert replaces the session with one built from Text.
	ActionConvert ActionKind = iota
	// ActionMove moves the option cursor by Delta.
	ActionMove
	// ActionToggle flips the option under the cursor.
	ActionToggle
	// ActionNext scores the current question and advances.
	ActionNext
	// ActionEdit returns to the editor; the session is kept until the next convert.
	ActionEdit
)

// Action is a user intent applied by Reduce.
type Action struct {
	Kind  ActionKind
	Text  string
	Delta int
}

// Reduce applies an action to the player state. Convert builds the session
// with opts.
func Reduce(state State, action Action, opts quiz.ConvertOptions) State {
	switch action.Kind {
	case ActionConvert:
		return convert(state, action.Text, opts)
	case ActionMove:
		return moveCursor(state, action.Delta)
	case ActionToggle:
		return toggle(state)
	case ActionNext:
		return next(state)
	case ActionEdit:
		state.Screen = ScreenEditor
		state.LastEvent = ""
		return state
	}
	return state
}

func convert(state State, text string, opts quiz.ConvertOptions) State {
	if strings.TrimSpace(text) == "" {
		state.LastEvent = "Nothing to convert"
		return state
	}
	state.Session = quiz.Convert(text, opts)
	state.Source = text
	state.Cursor = 0
	state.Conversions++
	state.LastEvent = fmt.Sprintf("Converted %d questions", state.Session.Total())
	if state.Session.Finished() {
		state.Screen = ScreenScore
		return state
	}
	state.Screen = ScreenQuestion
	return state
}

func moveCursor(state State, delta int) State {
	question, ok := state.Session.Current()
	if !ok || state.Screen != ScreenQuestion || len(question.Options) == 0 {
		return state
	}
	cursor := state.Cursor + delta
	switch {
	case cursor < 0:
		cursor = 0
	case cursor >= len(question.Options):
		cursor = len(question.Options) - 1
	}
	state.Cursor = cursor
	return state
}

func toggle(state State) State {
	question, ok := state.Session.Current()
	if !ok || state.Screen != ScreenQuestion {
		return state
	}
	if state.Cursor < 0 || state.Cursor >= len(question.Options) {
		return state
	}
	id := question.Options[state.Cursor].ID
	state.Session = state.Session.Toggle(id, !state.Session.IsSelected(id))
	return state
}

func next(state State) State {
	if state.Screen != ScreenQuestion {
		return state
	}
	session, outcome, ok := state.Session.Advance()
	if !ok {
		return state
	}
	state.Session = session
	state.Cursor = 0
	state.LastEvent = formatOutcome(session.Index(), outcome)
	if session.Finished() {
		state.Screen = ScreenScore
	}
	return state
}

func formatOutcome(number int, outcome quiz.Outcome) string {
	if outcome.Correct {
		return fmt.Sprintf("Q%d correct", number)
	}
	return fmt.Sprintf("Q%d incorrect", number)
}
