package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a structured quiz file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("quiz file validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims whitespace and validates a structured quiz.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	switch {
	case spec.Version == 0:
		collector.add("version", "is required")
	case spec.Version != CurrentVersion:
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}
	if len(spec.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.ID = strings.TrimSpace(question.ID)
		if question.ID != "" {
			if _, exists := seenIDs[question.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
			}
			seenIDs[question.ID] = struct{}{}
		}
		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}
		question.Answers = normalizeStringSlice(question.Answers)
		question.CorrectAnswers = normalizeStringSlice(question.CorrectAnswers)
		validateAnswers(collector, prefix, question)
		spec.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// validateAnswers checks answer texts are present and unique, and that every
// correct answer names one of them.
func validateAnswers(collector *issueCollector, prefix string, question Question) {
	if len(question.Answers) == 0 {
		collector.add(prefix+".answers", "must include at least one entry")
	}
	answerSet := map[string]struct{}{}
	for answerIndex, answer := range question.Answers {
		field := fmt.Sprintf("%s.answers[%d]", prefix, answerIndex)
		if answer == "" {
			collector.add(field, "is required")
			continue
		}
		key := NormalizeAnswerText(answer)
		if _, exists := answerSet[key]; exists {
			collector.add(field, fmt.Sprintf("duplicate answer %q", answer))
		}
		answerSet[key] = struct{}{}
	}

	if len(question.CorrectAnswers) == 0 {
		collector.add(prefix+".correct_answers", "must include at least one entry")
		return
	}
	for correctIndex, correct := range question.CorrectAnswers {
		field := fmt.Sprintf("%s.correct_answers[%d]", prefix, correctIndex)
		if correct == "" {
			collector.add(field, "is required")
			continue
		}
		if _, ok := answerSet[NormalizeAnswerText(correct)]; !ok {
			collector.add(field, fmt.Sprintf("unknown answer %q", correct))
		}
	}
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
