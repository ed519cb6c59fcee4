package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/atelierink/ouvroir/config"
)

func TestNewAppAppliesConfigSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AI.Provider = "local"

	app := NewApp(cfg, "")
	if app.state == nil {
		t.Fatal("state not initialized")
	}
	if got := app.state.AI.ProviderName(); got != "local" {
		t.Errorf("expected provider local, got %s", got)
	}
}

func TestAppStartWithoutConfigFile(t *testing.T) {
	app := NewApp(config.DefaultConfig(), "")
	if err := app.Start(); err != nil {
		t.Fatalf("Start() without config file error = %v", err)
	}
	if app.watcher != nil {
		t.Error("no watcher expected without a config file")
	}
	app.Shutdown(time.Second)
}

func TestAppStartWatchesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "ouvroir.yaml")

	cfg := config.DefaultConfig()
	if err := cfg.SaveToFile(cfgPath); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	app := NewApp(cfg, cfgPath)
	if err := app.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer app.Shutdown(time.Second)

	if app.watcher == nil {
		t.Fatal("watcher not started")
	}

	// A settings change in the file reaches the running AI service.
	updated := config.DefaultConfig()
	updated.AI.Provider = "anthropic"
	updated.AI.APIKey = "sk-test"
	if err := updated.SaveToFile(cfgPath); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if app.state.AI.ProviderName() == "anthropic" {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Errorf("provider did not switch, still %s", app.state.AI.ProviderName())
}

func TestRootCmdSubcommands(t *testing.T) {
	cmd := rootCmd()

	expected := []string{"version", "check", "transform", "preset", "constraints", "generate", "analyze", "export"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %s", name)
		}
	}
}
