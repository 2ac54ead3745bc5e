package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	OpenTDB   OpenTDBConfig   `mapstructure:"opentdb"`
	Questions QuestionsConfig `mapstructure:"questions"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Output    OutputConfig    `mapstructure:"output"`
	Counts    CountsConfig    `mapstructure:"counts"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Update    UpdateConfig    `mapstructure:"update"`
}

// OpenTDBConfig holds Open Trivia Database connection details
type OpenTDBConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// QuestionsConfig holds the defaults for the questions command
type QuestionsConfig struct {
	Amount     int    `mapstructure:"amount"`
	Category   string `mapstructure:"category"`
	Difficulty string `mapstructure:"difficulty"`
	Type       string `mapstructure:"type"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	DefaultExpression string                  `mapstructure:"default_expression"`
	Presets           map[string]FilterPreset `mapstructure:"presets"`
}

// FilterPreset is a named filter expression
type FilterPreset struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// CountsConfig controls the counts command
type CountsConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig holds the release source for self-update
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
