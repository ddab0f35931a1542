package config

// Config is the quizdown configuration file schema.
type Config struct {
	Version int           `yaml:"version" validate:"eq=1"`
	Quiz    QuizConfig    `yaml:"quiz"`
	UI      UIConfig      `yaml:"ui"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
	Serve   ServeConfig   `yaml:"serve"`
}

// QuizConfig controls how text becomes a playable quiz.
type QuizConfig struct {
	ShuffleQuestions *bool `yaml:"shuffle_questions"`
	ShuffleAnswers   bool  `yaml:"shuffle_answers"`
	KeepEmptyBlocks  bool  `yaml:"keep_empty_blocks"`
	Limit            int   `yaml:"limit" validate:"gte=0"`
}

// UIConfig selects the terminal player.
type UIConfig struct {
	Mode    string `yaml:"mode" validate:"oneof=auto live plain"`
	NoColor bool   `yaml:"no_color"`
}

// HistoryConfig points at the attempt history database.
type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	Addr string `yaml:"addr" validate:"hostname_port"`
}

// ShouldShuffleQuestions reports whether question order is randomized.
func (c Config) ShouldShuffleQuestions() bool {
	return c.Quiz.ShuffleQuestions == nil || *c.Quiz.ShuffleQuestions
}

// HistoryEnabled reports whether finished attempts are recorded.
func (c Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}
