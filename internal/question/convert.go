package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"quizdown/internal/quiz"
)

// Encoding formats supported by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// CurrentVersion is the schema version written by FromQuiz.
const CurrentVersion = 1

// QuizQuestions converts a normalized spec into playable questions. Options
// are correct when their normalized text matches a correct answer.
func (spec Spec) QuizQuestions() []quiz.Question {
	out := make([]quiz.Question, 0, len(spec.Questions))
	for i, q := range spec.Questions {
		id := q.ID
		if id == "" {
			id = "q" + strconv.Itoa(i+1)
		}
		correct := map[string]struct{}{}
		for _, answer := range q.CorrectAnswers {
			correct[NormalizeAnswerText(answer)] = struct{}{}
		}
		converted := quiz.Question{
			ID:      id,
			Text:    q.Prompt,
			Options: make([]quiz.AnswerOption, 0, len(q.Answers)),
		}
		for j, answer := range q.Answers {
			_, ok := correct[NormalizeAnswerText(answer)]
			converted.Options = append(converted.Options, quiz.AnswerOption{
				ID:      id + "a" + strconv.Itoa(j+1),
				Text:    answer,
				Correct: ok,
			})
		}
		out = append(out, converted)
	}
	return out
}

// FromQuiz builds a spec from parsed questions. Options with blank text, such
// as the one a trailing newline produces, are dropped.
func FromQuiz(questions []quiz.Question) Spec {
	spec := Spec{Version: CurrentVersion, Questions: make([]Question, 0, len(questions))}
	for _, q := range questions {
		item := Question{
			ID:             q.ID,
			Prompt:         q.Text,
			Answers:        make([]string, 0, len(q.Options)),
			CorrectAnswers: quiz.CorrectTexts(q),
		}
		for _, option := range q.Options {
			if strings.TrimSpace(option.Text) == "" {
				continue
			}
			item.Answers = append(item.Answers, option.Text)
		}
		spec.Questions = append(spec.Questions, item)
	}
	return spec
}

// Encode serializes a spec as YAML or JSON.
func Encode(spec Spec, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(spec); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
