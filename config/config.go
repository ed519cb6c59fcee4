// Package config provides configuration loading and management for Ouvroir.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atelierink/ouvroir/ai"
	"github.com/atelierink/ouvroir/export"
)

// Config represents the complete Ouvroir configuration
type Config struct {
	AI      AIConfig      `yaml:"ai"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// AIConfig configures the AI provider defaults
type AIConfig struct {
	// Provider selects the AI backend ("openai", "anthropic", "local")
	Provider string `yaml:"provider"`
	// APIKey authenticates against the selected provider
	APIKey string `yaml:"api_key"`
	// Model names the provider model to use
	Model string `yaml:"model"`
	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `yaml:"temperature"`
	// MaxTokens caps the response length
	MaxTokens int `yaml:"max_tokens"`
	// TimeoutSeconds is the per-request timeout
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ExportConfig configures export defaults
type ExportConfig struct {
	// DefaultFormat is used when no format is requested
	DefaultFormat string `yaml:"default_format"`
	// OutputDir is the directory exports are written to (empty = cwd)
	OutputDir string `yaml:"output_dir"`
	// IncludeMetadata toggles the project metadata section by default
	IncludeMetadata bool `yaml:"include_metadata"`
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	defaults := ai.DefaultSettings()
	return &Config{
		AI: AIConfig{
			Provider:       defaults.Provider,
			Model:          defaults.Model,
			Temperature:    defaults.Temperature,
			MaxTokens:      defaults.MaxTokens,
			TimeoutSeconds: defaults.TimeoutSeconds,
		},
		Export: ExportConfig{
			DefaultFormat:   string(export.FormatMarkdown),
			IncludeMetadata: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// AISettings converts the AI section to provider settings.
func (c *Config) AISettings() ai.Settings {
	return ai.Settings{
		Provider:       c.AI.Provider,
		APIKey:         c.AI.APIKey,
		Model:          c.AI.Model,
		Temperature:    c.AI.Temperature,
		MaxTokens:      c.AI.MaxTokens,
		TimeoutSeconds: c.AI.TimeoutSeconds,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.AI.Provider == "" {
		return fmt.Errorf("ai.provider is required")
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 1 {
		return fmt.Errorf("ai.temperature must be between 0 and 1")
	}
	if c.AI.MaxTokens < 0 {
		return fmt.Errorf("ai.max_tokens must not be negative")
	}
	if c.Export.DefaultFormat != "" {
		if _, ok := export.GetFormatInfo(export.Format(c.Export.DefaultFormat)); !ok {
			return fmt.Errorf("export.default_format %q is not a supported format", c.Export.DefaultFormat)
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// AI
	if other.AI.Provider != "" {
		c.AI.Provider = other.AI.Provider
	}
	if other.AI.APIKey != "" {
		c.AI.APIKey = other.AI.APIKey
	}
	if other.AI.Model != "" {
		c.AI.Model = other.AI.Model
	}
	if other.AI.Temperature != 0 {
		c.AI.Temperature = other.AI.Temperature
	}
	if other.AI.MaxTokens != 0 {
		c.AI.MaxTokens = other.AI.MaxTokens
	}
	if other.AI.TimeoutSeconds != 0 {
		c.AI.TimeoutSeconds = other.AI.TimeoutSeconds
	}

	// Export
	if other.Export.DefaultFormat != "" {
		c.Export.DefaultFormat = other.Export.DefaultFormat
	}
	if other.Export.OutputDir != "" {
		c.Export.OutputDir = other.Export.OutputDir
	}
	if other.Export.IncludeMetadata {
		c.Export.IncludeMetadata = true
	}

	// Logging
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
}
