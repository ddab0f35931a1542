package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = "Capital of France?\nParis##\nLondon\n\n2+2?\n3\n4##"

// optionID finds an option id by its text on the current question.
func optionID(t *testing.T, s Session, text string) string {
	t.Helper()
	question, ok := s.Current()
	require.True(t, ok, "session finished")
	for _, option := range question.Options {
		if option.Text == text {
			return option.ID
		}
	}
	t.Fatalf("option %q not found in %q", text, question.Text)
	return ""
}

func TestNewSession(t *testing.T) {
	s := NewSession(Parse(scenario))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 2, s.Total())
	assert.False(t, s.Finished())
	assert.Empty(t, s.Selected())
}

func TestEmptySessionIsFinished(t *testing.T) {
	s := NewSession(nil)
	assert.True(t, s.Finished())
	_, _, ok := s.Advance()
	assert.False(t, ok)
}

func TestEndToEndScenario(t *testing.T) {
	s := Convert(scenario, ConvertOptions{Source: NewSource(11)})
	require.Equal(t, 2, s.Total())

	for !s.Finished() {
		question, _ := s.Current()
		answer := "Paris"
		if question.Text == "2+2?" {
			answer = "4"
		}
		s = s.Toggle(optionID(t, s, answer), true)
		var ok bool
		s, _, ok = s.Advance()
		require.True(t, ok)
	}
	assert.Equal(t, 2, s.Score())
	assert.True(t, s.Finished())
	assert.Equal(t, 2, s.Index())
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewSession(Parse("Q\nA##\nB\nC##"))
	a := optionID(t, s, "A")
	c := optionID(t, s, "C")

	s = s.Toggle(a, true).Toggle(c, true)
	assert.Equal(t, []string{"A", "C"}, s.SelectedTexts())
	s = s.Toggle(a, false)
	assert.Equal(t, []string{c}, s.Selected())
	assert.False(t, s.IsSelected(a))
}

func TestToggleIgnoresUnknownIDs(t *testing.T) {
	s := NewSession(Parse("Q\nA##"))
	s = s.Toggle("nope", true)
	assert.Empty(t, s.Selected())
}

func TestToggleDoesNotAffectPreviousValue(t *testing.T) {
	before := NewSession(Parse("Q\nA##\nB"))
	after := before.Toggle(optionID(t, before, "A"), true)
	assert.Empty(t, before.Selected())
	assert.Len(t, after.Selected(), 1)
}

func TestAdvanceScoresAndClearsSelection(t *testing.T) {
	s := NewSession(Parse("Q1\nA##\nB\n\nQ2\nC\nD##"))
	s = s.Toggle(optionID(t, s, "A"), true)
	s, outcome, ok := s.Advance()
	require.True(t, ok)
	assert.True(t, outcome.Correct)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, s.Index())
	assert.Empty(t, s.Selected())

	s = s.Toggle(optionID(t, s, "C"), true)
	s, outcome, _ = s.Advance()
	assert.False(t, outcome.Correct)
	assert.Equal(t, 1, s.Score())
	assert.True(t, s.Finished())
	assert.Len(t, s.Outcomes(), 2)
}

func TestFinishedSessionIgnoresTransitions(t *testing.T) {
	s := NewSession(Parse("Q\nA##"))
	s, _, _ = s.Advance()
	require.True(t, s.Finished())

	toggled := s.Toggle("q1a1", true)
	assert.Empty(t, toggled.Selected())
	next, _, ok := s.Advance()
	assert.False(t, ok)
	assert.Equal(t, s.Index(), next.Index())
	assert.Equal(t, s.Score(), next.Score())
}

func TestScoreNeverExceedsIndex(t *testing.T) {
	s := Convert("Q1\nA##\n\nQ2\nB##\n\nQ3\nC\n\nQ4\nD##\nE##", ConvertOptions{Source: NewSource(5)})
	for !s.Finished() {
		question, _ := s.Current()
		for _, option := range question.Options {
			s = s.Toggle(option.ID, option.Correct)
		}
		s, _, _ = s.Advance()
		assert.LessOrEqual(t, s.Score(), s.Index())
	}
	assert.Equal(t, 4, s.Score())
}

func TestConvertLimitAndOrder(t *testing.T) {
	raw := "Q1\nA\n\nQ2\nB\n\nQ3\nC"
	s := Convert(raw, ConvertOptions{KeepOrder: true, Limit: 2})
	questions := s.Questions()
	require.Len(t, questions, 2)
	assert.Equal(t, "Q1", questions[0].Text)
	assert.Equal(t, "Q2", questions[1].Text)
}

func TestFingerprintIgnoresLineEndings(t *testing.T) {
	assert.Equal(t, Fingerprint("Q\nA##"), Fingerprint("Q\r\nA##"))
	assert.NotEqual(t, Fingerprint("Q\nA##"), Fingerprint("Q\nA"))
}

func TestArrangeLeavesInputUntouched(t *testing.T) {
	questions := Parse("Q1\nA##\nB\n\nQ2\nC\nD##\n\nQ3\nE##")
	before := Format(questions)

	arranged := Arrange(questions, ConvertOptions{ShuffleAnswers: true, Limit: 2, Source: NewSource(11)})
	require.Len(t, arranged, 2)
	assert.Equal(t, before, Format(questions))
	for _, question := range arranged {
		assert.Equal(t, 1, question.CorrectCount())
	}
}
