package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.AI.Provider != "openai" {
		t.Errorf("expected default provider openai, got %s", cfg.AI.Provider)
	}
	if cfg.AI.Model != "gpt-4" {
		t.Errorf("expected default model gpt-4, got %s", cfg.AI.Model)
	}
	if cfg.AI.Temperature != 0.7 {
		t.Errorf("expected default temperature 0.7, got %f", cfg.AI.Temperature)
	}
	if cfg.Export.DefaultFormat != "markdown" {
		t.Errorf("expected default export format markdown, got %s", cfg.Export.DefaultFormat)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing provider",
			modify:  func(c *Config) { c.AI.Provider = "" },
			wantErr: true,
		},
		{
			name:    "temperature too low",
			modify:  func(c *Config) { c.AI.Temperature = -0.1 },
			wantErr: true,
		},
		{
			name:    "temperature too high",
			modify:  func(c *Config) { c.AI.Temperature = 1.1 },
			wantErr: true,
		},
		{
			name:    "negative max tokens",
			modify:  func(c *Config) { c.AI.MaxTokens = -1 },
			wantErr: true,
		},
		{
			name:    "unknown export format",
			modify:  func(c *Config) { c.Export.DefaultFormat = "docx" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
ai:
  provider: "anthropic"
  api_key: "sk-test"
  model: "claude-3-sonnet-20240229"
  temperature: 0.5
  max_tokens: 1000
export:
  default_format: "html"
  output_dir: "/tmp/exports"
logging:
  level: "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.AI.Provider != "anthropic" {
		t.Errorf("expected provider anthropic, got %s", cfg.AI.Provider)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Errorf("expected api key sk-test, got %s", cfg.AI.APIKey)
	}
	if cfg.AI.Temperature != 0.5 {
		t.Errorf("expected temperature 0.5, got %f", cfg.AI.Temperature)
	}
	if cfg.AI.MaxTokens != 1000 {
		t.Errorf("expected max tokens 1000, got %d", cfg.AI.MaxTokens)
	}
	// Fields absent from the file keep their defaults.
	if cfg.AI.TimeoutSeconds != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.AI.TimeoutSeconds)
	}
	if cfg.Export.DefaultFormat != "html" {
		t.Errorf("expected export format html, got %s", cfg.Export.DefaultFormat)
	}
	if cfg.Export.OutputDir != "/tmp/exports" {
		t.Errorf("expected output dir /tmp/exports, got %s", cfg.Export.OutputDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		AI: AIConfig{
			Provider: "local",
			APIKey:   "override-key",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}

	base.Merge(override)

	if base.AI.Provider != "local" {
		t.Errorf("expected provider local, got %s", base.AI.Provider)
	}
	if base.AI.APIKey != "override-key" {
		t.Errorf("expected api key override-key, got %s", base.AI.APIKey)
	}
	// Model should remain from base since override didn't set it
	if base.AI.Model != "gpt-4" {
		t.Errorf("expected model to remain default, got %s", base.AI.Model)
	}
	if base.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", base.Logging.Level)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.AI.Provider = "local"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.AI.Provider != "local" {
		t.Errorf("expected provider local, got %s", loaded.AI.Provider)
	}
}

func TestAISettingsConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AI.Provider = "anthropic"
	cfg.AI.APIKey = "sk-test"

	settings := cfg.AISettings()
	if settings.Provider != "anthropic" {
		t.Errorf("expected provider anthropic, got %s", settings.Provider)
	}
	if settings.APIKey != "sk-test" {
		t.Errorf("expected api key sk-test, got %s", settings.APIKey)
	}
	if settings.Temperature != cfg.AI.Temperature {
		t.Errorf("expected temperature %f, got %f", cfg.AI.Temperature, settings.Temperature)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	initial := DefaultConfig()
	if err := initial.SaveToFile(configPath); err != nil {
		t.Fatalf("failed to write initial config: %v", err)
	}

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(configPath, nil, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	updated := DefaultConfig()
	updated.AI.Provider = "local"
	if err := updated.SaveToFile(configPath); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.AI.Provider != "local" {
			t.Errorf("expected reloaded provider local, got %s", cfg.AI.Provider)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("config reload was not observed")
	}
}

func TestWatcherIgnoresInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := DefaultConfig().SaveToFile(configPath); err != nil {
		t.Fatalf("failed to write initial config: %v", err)
	}

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(configPath, nil, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	bad := DefaultConfig()
	bad.Logging.Level = "verbose"
	if err := bad.SaveToFile(configPath); err != nil {
		t.Fatalf("failed to write invalid config: %v", err)
	}

	select {
	case <-reloaded:
		t.Fatal("invalid config should not trigger the reload callback")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNewWatcherRequiresCallback(t *testing.T) {
	if _, err := NewWatcher("config.yaml", nil, nil); err == nil {
		t.Error("expected error for nil callback")
	}
}
