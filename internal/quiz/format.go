package quiz

import "strings"

// Format renders questions back into the plain-text input format.
func Format(questions []Question) string {
	blocks := make([]string, 0, len(questions))
	for _, question := range questions {
		var b strings.Builder
		b.WriteString(question.Text)
		for _, option := range question.Options {
			b.WriteString(LineSeparator)
			b.WriteString(option.Text)
			if option.Correct {
				b.WriteString(CorrectMarker)
			}
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, BlockSeparator)
}
