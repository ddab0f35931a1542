package question

// Spec is a structured quiz file stored as YAML or JSON.
type Spec struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is one entry of a structured quiz file. CorrectAnswers refer to
// Answers by text, compared after NormalizeAnswerText.
type Question struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt         string   `json:"question" yaml:"question"`
	Answers        []string `json:"answers" yaml:"answers"`
	CorrectAnswers []string `json:"correct_answers" yaml:"correct_answers"`
}
