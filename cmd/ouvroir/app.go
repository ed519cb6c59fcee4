package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atelierink/ouvroir/commands"
	"github.com/atelierink/ouvroir/config"
)

// App wires the command services to the interactive session and keeps the
// AI settings in sync with the config file.
type App struct {
	cfg     *config.Config
	cfgPath string
	state   *commands.AppState
	watcher *config.Watcher
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, cfgPath string) *App {
	state := commands.NewAppState()
	state.AI.UpdateSettings(cfg.AISettings())
	return &App{
		cfg:     cfg,
		cfgPath: cfgPath,
		state:   state,
	}
}

// Start begins watching the config file, if one is in use. Settings changes
// take effect on the running session without a restart.
func (a *App) Start() error {
	if a.cfgPath == "" {
		return nil
	}
	watcher, err := config.NewWatcher(a.cfgPath, nil, func(cfg *config.Config) {
		a.cfg = cfg
		a.state.AI.UpdateSettings(cfg.AISettings())
	})
	if err != nil {
		return fmt.Errorf("start config watcher: %w", err)
	}
	a.watcher = watcher
	return nil
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown(timeout time.Duration) {
	fmt.Println("\nShutting down...")
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	fmt.Println("Goodbye!")
}

// RunREPL runs the interactive REPL loop. Plain input is checked against
// the minimal constraint preset; /-prefixed input runs a built-in command.
func (a *App) RunREPL() error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("ouvroir> ")

		if !scanner.Scan() {
			// EOF (Ctrl+D)
			return nil
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" {
			return nil
		}

		if strings.HasPrefix(input, "/") {
			a.handleCommand(input)
			continue
		}

		resp := a.state.CheckWithPreset(input, "minimal")
		if !resp.OK() {
			fmt.Fprintf(os.Stderr, "Error: %s\n", resp.Content)
			continue
		}
		fmt.Println(resp.Content)
		fmt.Println()
	}
}

func (a *App) handleCommand(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	cmd := parts[0]
	switch cmd {
	case "/help":
		fmt.Println("Available commands:")
		fmt.Println("  /help               - Show this help")
		fmt.Println("  /status             - Show current status")
		fmt.Println("  /constraints        - List available constraints")
		fmt.Println("  /preset <name> <text> - Check text against a preset")
		fmt.Println("  /config             - Show current configuration")
		fmt.Println("  /credits            - Show remaining AI credits")
		fmt.Println("  quit/exit           - Exit the REPL")
		fmt.Println()
		fmt.Println("Or type any text to check it against the minimal preset.")

	case "/status":
		fmt.Printf("AI provider: %s\n", a.state.AI.ProviderName())
		fmt.Printf("Credits: %d\n", a.state.Credits())
		if a.cfgPath != "" {
			fmt.Printf("Config: %s (watched)\n", a.cfgPath)
		} else {
			fmt.Println("Config: defaults")
		}

	case "/constraints":
		resp := a.state.ListConstraints()
		fmt.Println(resp.Content)

	case "/preset":
		if len(parts) < 3 {
			fmt.Println("Usage: /preset <name> <text>")
			return
		}
		resp := a.state.CheckWithPreset(strings.Join(parts[2:], " "), parts[1])
		if !resp.OK() {
			fmt.Fprintf(os.Stderr, "Error: %s\n", resp.Content)
			return
		}
		fmt.Println(resp.Content)

	case "/config":
		fmt.Printf("AI:\n")
		fmt.Printf("  Provider: %s\n", a.cfg.AI.Provider)
		fmt.Printf("  Model: %s\n", a.cfg.AI.Model)
		fmt.Printf("  Temperature: %.1f\n", a.cfg.AI.Temperature)
		fmt.Printf("\nExport:\n")
		fmt.Printf("  Default format: %s\n", a.cfg.Export.DefaultFormat)
		fmt.Printf("\nLogging:\n")
		fmt.Printf("  Level: %s\n", a.cfg.Logging.Level)

	case "/credits":
		fmt.Printf("%d credits remaining\n", a.state.Credits())

	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		fmt.Println("Type /help for available commands.")
	}
}
