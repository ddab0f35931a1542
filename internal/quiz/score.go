package quiz

// IsCorrect reports whether selected exactly matches the ids of the
// question's correct options. There is no partial credit.
func IsCorrect(question Question, selected map[string]struct{}) bool {
	correct := 0
	for _, option := range question.Options {
		if !option.Correct {
			continue
		}
		correct++
		if _, ok := selected[option.ID]; !ok {
			return false
		}
	}
	return len(selected) == correct
}

// CorrectTexts lists the texts of the correct options in display order.
func CorrectTexts(question Question) []string {
	texts := make([]string, 0, len(question.Options))
	for _, option := range question.Options {
		if option.Correct {
			texts = append(texts, option.Text)
		}
	}
	return texts
}
