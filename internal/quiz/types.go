package quiz

// AnswerOption is a single selectable choice of a question.
type AnswerOption struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Question holds a prompt and its ordered answer options.
type Question struct {
	ID      string         `json:"id" yaml:"id"`
	Text    string         `json:"text" yaml:"text"`
	Options []AnswerOption `json:"options" yaml:"options"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (AnswerOption, bool) {
	for _, option := range q.Options {
		if option.ID == id {
			return option, true
		}
	}
	return AnswerOption{}, false
}

// CorrectCount returns how many options are marked correct.
func (q Question) CorrectCount() int {
	count := 0
	for _, option := range q.Options {
		if option.Correct {
			count++
		}
	}
	return count
}

// Outcome records how a question was answered when the session advanced past it.
type Outcome struct {
	Question Question `json:"question"`
	Selected []string `json:"selected"`
	Correct  bool     `json:"correct"`
}
