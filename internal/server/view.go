package server

import "quizdown/internal/quiz"

// sessionView is the JSON shape of a session. Correctness of the current
// question's options is withheld until it is answered.
type sessionView struct {
	Fingerprint string        `json:"fingerprint,omitempty"`
	Index       int           `json:"index"`
	Total       int           `json:"total"`
	Score       int           `json:"score"`
	Finished    bool          `json:"finished"`
	Question    *questionView `json:"question,omitempty"`
	Outcomes    []outcomeView `json:"outcomes"`
}

type questionView struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []optionView `json:"options"`
}

type optionView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

type outcomeView struct {
	QuestionID     string   `json:"question_id"`
	Question       string   `json:"question"`
	Selected       []string `json:"selected"`
	Correct        bool     `json:"correct"`
	CorrectAnswers []string `json:"correct_answers"`
}

func newSessionView(session quiz.Session, source string) sessionView {
	view := sessionView{
		Index:    session.Index(),
		Total:    session.Total(),
		Score:    session.Score(),
		Finished: session.Finished(),
		Outcomes: []outcomeView{},
	}
	if source != "" {
		view.Fingerprint = quiz.Fingerprint(source)
	}
	if question, ok := session.Current(); ok {
		qv := &questionView{ID: question.ID, Text: question.Text, Options: make([]optionView, 0, len(question.Options))}
		for _, option := range question.Options {
			qv.Options = append(qv.Options, optionView{
				ID:       option.ID,
				Text:     option.Text,
				Selected: session.IsSelected(option.ID),
			})
		}
		view.Question = qv
	}
	for _, outcome := range session.Outcomes() {
		view.Outcomes = append(view.Outcomes, outcomeView{
			QuestionID:     outcome.Question.ID,
			Question:       outcome.Question.Text,
			Selected:       nonNil(outcome.Selected),
			Correct:        outcome.Correct,
			CorrectAnswers: nonNil(quiz.CorrectTexts(outcome.Question)),
		})
	}
	return view
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
