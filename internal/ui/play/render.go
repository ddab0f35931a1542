package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdown/internal/quiz"
)

// Palette colors.
var (
	colorTitle   = lipgloss.Color("33")
	colorCursor  = lipgloss.Color("201")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("244")
)

// renderEditor renders the editor screen.
func renderEditor(editorView string, noColor bool) string {
	title := stylize("Quiz time!", noColor, lipgloss.NewStyle().Bold(true).Foreground(colorTitle))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", editorView)
}

// renderQuestion renders the current question with its options.
func renderQuestion(state State, noColor bool) string {
	session := state.Session
	question, ok := session.Current()
	if !ok {
		return ""
	}
	header := fmt.Sprintf("Question %d/%d", session.Index()+1, session.Total())
	lines := []string{
		stylize(header, noColor, lipgloss.NewStyle().Foreground(colorTitle)),
		"",
		stylize(question.Text, noColor, lipgloss.NewStyle().Bold(true)),
		"",
	}
	if len(question.Options) == 0 {
		lines = append(lines, stylize("(no answers)", noColor, lipgloss.NewStyle().Foreground(colorMuted)))
	}
	for i, option := range question.Options {
		lines = append(lines, renderOption(option, session.IsSelected(option.ID), i == state.Cursor, noColor))
	}
	return strings.Join(lines, "\n")
}

// renderOption renders one checkbox line.
func renderOption(option quiz.AnswerOption, selected, focused bool, noColor bool) string {
	box := "[ ]"
	if selected {
		box = "[x]"
	}
	pointer := "  "
	if focused {
		pointer = "> "
	}
	line := pointer + box + " " + option.Text
	if focused {
		return stylize(line, noColor, lipgloss.NewStyle().Foreground(colorCursor))
	}
	return line
}

// renderScore renders the final score with a review of every question.
func renderScore(session quiz.Session, noColor bool) string {
	lines := []string{
		stylize(fmt.Sprintf("You scored %d out of %d", session.Score(), session.Total()), noColor, lipgloss.NewStyle().Bold(true)),
		"",
	}
	for i, outcome := range session.Outcomes() {
		mark := stylize("✗", noColor, lipgloss.NewStyle().Foreground(colorWrong))
		if outcome.Correct {
			mark = stylize("✓", noColor, lipgloss.NewStyle().Foreground(colorCorrect))
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s", mark, i+1, outcome.Question.Text))
		if !outcome.Correct {
			answer := strings.Join(quiz.CorrectTexts(outcome.Question), ", ")
			if answer == "" {
				answer = "(none)"
			}
			lines = append(lines, stylize("    correct: "+answer, noColor, lipgloss.NewStyle().Foreground(colorMuted)))
		}
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the last event line.
func renderFooter(lastEvent string, noColor bool) string {
	if lastEvent == "" {
		return ""
	}
	return stylize(lastEvent, noColor, lipgloss.NewStyle().Foreground(colorMuted))
}

// stylize applies optional styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
