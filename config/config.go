package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/trivia/opentdb"
)

// Load loads the configuration from file. Without an explicit path a missing
// config file is not an error; defaults and TRIVIA_* environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix("trivia")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".trivia"))
		}

		// Check /etc
		v.AddConfigPath("/etc/trivia/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Open Trivia DB defaults
	v.SetDefault("opentdb.url", "https://opentdb.com")
	v.SetDefault("opentdb.timeout", "30s")
	v.SetDefault("opentdb.user_agent", "")

	// Question defaults
	v.SetDefault("questions.amount", 10)
	v.SetDefault("questions.category", "")
	v.SetDefault("questions.difficulty", "")
	v.SetDefault("questions.type", "")

	v.SetDefault("filter.default_expression", "")

	v.SetDefault("output.format", "text")
	v.SetDefault("counts.concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("update.repository", "s0up4200/trivia")
}

var (
	validLevels       = []string{"debug", "info", "warn", "error"}
	validFormats      = []string{"console", "json"}
	validOutputs      = []string{"text", "json", "yaml"}
	validDifficulties = []string{opentdb.DifficultyEasy, opentdb.DifficultyMedium, opentdb.DifficultyHard}
	validTypes        = []string{opentdb.TypeMultiple, opentdb.TypeBoolean}
)

// ValidOutputFormat reports whether format is a supported output format
func ValidOutputFormat(format string) bool {
	return slices.Contains(validOutputs, format)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.OpenTDB.URL == "" {
		return fmt.Errorf("opentdb.url is required")
	}

	if cfg.OpenTDB.Timeout <= 0 {
		return fmt.Errorf("opentdb.timeout must be positive")
	}

	if cfg.Questions.Amount < 1 || cfg.Questions.Amount > 50 {
		return fmt.Errorf("invalid questions.amount: %d (must be between 1 and 50)", cfg.Questions.Amount)
	}

	if cfg.Questions.Difficulty != "" && !slices.Contains(validDifficulties, cfg.Questions.Difficulty) {
		return fmt.Errorf("invalid questions.difficulty: %s (must be one of %s)",
			cfg.Questions.Difficulty, strings.Join(validDifficulties, ", "))
	}

	if cfg.Questions.Type != "" && !slices.Contains(validTypes, cfg.Questions.Type) {
		return fmt.Errorf("invalid questions.type: %s (must be one of %s)",
			cfg.Questions.Type, strings.Join(validTypes, ", "))
	}

	for name, preset := range cfg.Filter.Presets {
		if strings.TrimSpace(preset.Expression) == "" {
			return fmt.Errorf("filter preset '%s' has no expression", name)
		}
	}

	if !ValidOutputFormat(cfg.Output.Format) {
		return fmt.Errorf("invalid output.format: %s", cfg.Output.Format)
	}

	if cfg.Counts.Concurrency < 1 {
		return fmt.Errorf("counts.concurrency must be at least 1")
	}

	// Validate logging level
	if !slices.Contains(validLevels, cfg.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	if !slices.Contains(validFormats, cfg.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
