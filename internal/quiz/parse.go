package quiz

import (
	"strconv"
	"strings"
)

// Input format separators.
const (
	BlockSeparator = "\n\n"
	LineSeparator  = "\n"
	CorrectMarker  = "##"
)

// ParseOptions tunes how raw text is split into questions.
type ParseOptions struct {
	// KeepEmptyBlocks keeps empty blocks (a trailing blank line, doubled
	// blank lines) as questions with empty text and no options.
	KeepEmptyBlocks bool
}

// Parse converts raw text into questions using the default options.
func Parse(raw string) []Question {
	return ParseOptions{}.Parse(raw)
}

// Parse converts raw text into questions. It never fails: malformed blocks
// degrade into questions that cannot be answered correctly.
func (opts ParseOptions) Parse(raw string) []Question {
	raw = normalizeNewlines(raw)
	blocks := strings.Split(raw, BlockSeparator)
	questions := make([]Question, 0, len(blocks))
	for i, block := range blocks {
		if block == "" && !opts.KeepEmptyBlocks {
			continue
		}
		questions = append(questions, parseBlock(i+1, block))
	}
	return questions
}

// parseBlock turns one block into a question; ids use the 1-based block number.
func parseBlock(number int, block string) Question {
	lines := strings.Split(block, LineSeparator)
	id := "q" + strconv.Itoa(number)
	question := Question{
		ID:      id,
		Text:    lines[0],
		Options: make([]AnswerOption, 0, len(lines)-1),
	}
	for j, line := range lines[1:] {
		question.Options = append(question.Options, parseAnswerLine(id+"a"+strconv.Itoa(j+1), line))
	}
	return question
}

// parseAnswerLine splits an answer line on the correctness marker.
func parseAnswerLine(id, line string) AnswerOption {
	text, _, marked := strings.Cut(line, CorrectMarker)
	return AnswerOption{ID: id, Text: text, Correct: marked}
}

func normalizeNewlines(raw string) string {
	return strings.ReplaceAll(raw, "\r\n", "\n")
}
