package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParseSingleQuestion(t *testing.T) {
	questions := Parse("Q1\nA##\nB")
	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, "Q1", q.Text)
	require.Len(t, q.Options, 2)
	assert.Equal(t, AnswerOption{ID: "q1a1", Text: "A", Correct: true}, q.Options[0])
	assert.Equal(t, AnswerOption{ID: "q1a2", Text: "B", Correct: false}, q.Options[1])
}

func TestParsePreservesAnswerOrder(t *testing.T) {
	questions := Parse("Pick\nd\nc##\nb\na##")
	require.Len(t, questions, 1)
	var texts []string
	for _, option := range questions[0].Options {
		texts = append(texts, option.Text)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, texts)
}

func TestParseMarkerSuffix(t *testing.T) {
	questions := Parse("Q\nyes## because\nno\n##")
	require.Len(t, questions, 1)
	opts := questions[0].Options
	require.Len(t, opts, 3)
	assert.Equal(t, "yes", opts[0].Text)
	assert.True(t, opts[0].Correct)
	assert.False(t, opts[1].Correct)
	assert.Equal(t, "", opts[2].Text)
	assert.True(t, opts[2].Correct)
}

func TestParseNoTrimming(t *testing.T) {
	questions := Parse(" Q \n  A ##")
	require.Len(t, questions, 1)
	assert.Equal(t, " Q ", questions[0].Text)
	assert.Equal(t, "  A ", questions[0].Options[0].Text)
}

func TestParseDropsEmptyBlocks(t *testing.T) {
	questions := Parse("Q1\nA##\n\nQ2\nB##\n\n")
	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "q2", questions[1].ID)
}

func TestParseKeepEmptyBlocks(t *testing.T) {
	questions := ParseOptions{KeepEmptyBlocks: true}.Parse("Q1\nA##\n\n")
	require.Len(t, questions, 2)
	assert.Equal(t, "", questions[1].Text)
	assert.Empty(t, questions[1].Options)

	assert.Len(t, ParseOptions{KeepEmptyBlocks: true}.Parse(""), 1)
}

func TestParseQuestionWithoutAnswers(t *testing.T) {
	questions := Parse("Lonely question")
	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].Options)
	assert.Zero(t, questions[0].CorrectCount())
}

func TestParseCRLF(t *testing.T) {
	questions := Parse("Q1\r\nA##\r\n\r\nQ2\r\nB")
	require.Len(t, questions, 2)
	assert.Equal(t, "A", questions[0].Options[0].Text)
	assert.Equal(t, "B", questions[1].Options[0].Text)
}

func TestParseDuplicateAnswerTextsGetDistinctIDs(t *testing.T) {
	questions := Parse("Q\nsame##\nsame")
	require.Len(t, questions[0].Options, 2)
	assert.NotEqual(t, questions[0].Options[0].ID, questions[0].Options[1].ID)
}

func TestFormatRoundTrip(t *testing.T) {
	raw := "Capital of France?\nParis##\nLondon\n\n2+2?\n3\n4##"
	assert.Equal(t, raw, Format(Parse(raw)))
}
