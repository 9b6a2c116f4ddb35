// Package config loads application configuration from an optional YAML file
// and environment variables. All variables use the QUIZ_ prefix and take
// precedence over the file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Quiz QuizConfig `yaml:"quiz"`
	UI   UIConfig   `yaml:"ui"`
	Log  LogConfig  `yaml:"log"`
}

// QuizConfig holds question source settings.
type QuizConfig struct {
	File          string `yaml:"file"`
	Sheet         string `yaml:"sheet"`          // worksheet for .xlsx files, first sheet if empty
	CommentPrefix string `yaml:"comment_prefix"` // empty: only blank lines are skipped
}

// UIConfig holds console settings.
type UIConfig struct {
	Mode       string `yaml:"mode"` // "auto", "color" or "plain"
	ShowAnswer *bool  `yaml:"show_answer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration. When path is empty QUIZ_CONFIG is consulted; when
// both are empty only environment variables and defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("QUIZ_CONFIG")
	}

	file := &Config{}
	if path != "" {
		var err error
		if file, err = readFile(path); err != nil {
			return nil, err
		}
	}

	showAnswer := true
	if file.UI.ShowAnswer != nil {
		showAnswer = *file.UI.ShowAnswer
	}
	showAnswer = envBool("QUIZ_SHOW_ANSWER", showAnswer)

	cfg := &Config{
		Quiz: QuizConfig{
			File:          envStr("QUIZ_FILE", or(file.Quiz.File, "questions.txt")),
			Sheet:         envStr("QUIZ_SHEET", file.Quiz.Sheet),
			CommentPrefix: envStr("QUIZ_COMMENT_PREFIX", file.Quiz.CommentPrefix),
		},
		UI: UIConfig{
			Mode:       envStr("QUIZ_UI_MODE", or(file.UI.Mode, "auto")),
			ShowAnswer: &showAnswer,
		},
		Log: LogConfig{
			Level:  envStr("QUIZ_LOG_LEVEL", or(file.Log.Level, "warn")),
			Format: envStr("QUIZ_LOG_FORMAT", or(file.Log.Format, "json")),
		},
	}

	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that settings hold supported values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Quiz.File) == "" {
		return fmt.Errorf("QUIZ_FILE is required")
	}

	switch c.UI.Mode {
	case "auto", "color", "plain":
	default:
		return fmt.Errorf("QUIZ_UI_MODE must be 'auto', 'color' or 'plain', got %q", c.UI.Mode)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("QUIZ_LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("QUIZ_LOG_FORMAT must be 'json' or 'text', got %q", c.Log.Format)
	}

	return nil
}

// AnswerShown reports whether the correct answer is printed after each question.
func (c *Config) AnswerShown() bool {
	return c.UI.ShowAnswer == nil || *c.UI.ShowAnswer
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
