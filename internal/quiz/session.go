package quiz

import "sort"

// Session is the state of one quiz run. Transitions return a new Session
// and never modify the receiver.
type Session struct {
	questions []Question
	index     int
	score     int
	selected  map[string]struct{}
	outcomes  []Outcome
}

// NewSession starts a session at the first question with a zero score.
// A session without questions is finished from the start.
func NewSession(questions []Question) Session {
	return Session{
		questions: questions,
		selected:  map[string]struct{}{},
	}
}

// Questions returns the questions of the session in play order.
func (s Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Index returns the zero-based index of the current question. It equals
// Total once the session is finished.
func (s Session) Index() int {
	return s.index
}

// Score returns the number of questions answered exactly right so far.
func (s Session) Score() int {
	return s.score
}

// Total returns the number of questions in the session.
func (s Session) Total() int {
	return len(s.questions)
}

// Finished reports whether every question has been answered.
func (s Session) Finished() bool {
	return s.index >= len(s.questions)
}

// Current returns the question being answered.
func (s Session) Current() (Question, bool) {
	if s.Finished() {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// IsSelected reports whether the option id is selected for the current question.
func (s Session) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Selected returns the selected option ids in sorted order.
func (s Session) Selected() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectedTexts returns the texts of the selected options in display order.
func (s Session) SelectedTexts() []string {
	question, ok := s.Current()
	if !ok {
		return nil
	}
	texts := make([]string, 0, len(s.selected))
	for _, option := range question.Options {
		if s.IsSelected(option.ID) {
			texts = append(texts, option.Text)
		}
	}
	return texts
}

// Outcomes returns the recorded result of every question advanced past.
func (s Session) Outcomes() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}

// Toggle selects (checked) or deselects an option of the current question.
// Unknown ids and finished sessions are left unchanged.
func (s Session) Toggle(id string, checked bool) Session {
	question, ok := s.Current()
	if !ok {
		return s
	}
	if _, known := question.Option(id); !known {
		return s
	}
	selected := make(map[string]struct{}, len(s.selected)+1)
	for existing := range s.selected {
		selected[existing] = struct{}{}
	}
	if checked {
		selected[id] = struct{}{}
	} else {
		delete(selected, id)
	}
	s.selected = selected
	return s
}

// Advance scores the current question and moves to the next one, or to the
// finished state after the last question. It returns false when the session
// was already finished.
func (s Session) Advance() (Session, Outcome, bool) {
	question, ok := s.Current()
	if !ok {
		return s, Outcome{}, false
	}
	outcome := Outcome{
		Question: question,
		Selected: s.Selected(),
		Correct:  IsCorrect(question, s.selected),
	}
	if outcome.Correct {
		s.score++
	}
	outcomes := make([]Outcome, len(s.outcomes), len(s.outcomes)+1)
	copy(outcomes, s.outcomes)
	s.outcomes = append(outcomes, outcome)
	s.selected = map[string]struct{}{}
	s.index++
	return s, outcome, true
}
