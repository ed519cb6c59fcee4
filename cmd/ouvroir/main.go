// Package main provides the ouvroir binary entry point.
// Ouvroir is a creative-writing workbench backend with an Oulipo
// constraint-checking engine, narrative analytics, and project export.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/atelierink/ouvroir/commands"
	"github.com/atelierink/ouvroir/config"
	"github.com/atelierink/ouvroir/export"
	"github.com/atelierink/ouvroir/oulipo"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ouvroir"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "ouvroir",
		Short: "Constrained-writing workbench",
		Long: `Ouvroir is a creative-writing workbench backend built around an
Oulipo constraint engine.

It provides:
- Constraint checking (lipogram, palindrome, snowball, and more)
- Text transforms and generators (N+7, haiku, anagrams)
- Narrative analytics and multi-format project export

Run with no arguments to start the interactive session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgPath, err := setup(configPath, logLevel)
			if err != nil {
				return err
			}
			return runInteractive(cfg, cfgPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(checkCmd(&configPath, &logLevel))
	cmd.AddCommand(transformCmd(&configPath, &logLevel))
	cmd.AddCommand(presetCmd(&configPath, &logLevel))
	cmd.AddCommand(constraintsCmd(&configPath, &logLevel))
	cmd.AddCommand(generateCmd(&configPath, &logLevel))
	cmd.AddCommand(analyzeCmd(&configPath, &logLevel))
	cmd.AddCommand(exportCmd(&configPath, &logLevel))

	return cmd
}

// setup loads configuration and installs the default logger. It returns the
// path of the config file in use, empty when running on pure defaults.
func setup(configPath, logLevel string) (*config.Config, string, error) {
	var cfg *config.Config
	cfgPath := configPath

	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, "", fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
	} else {
		loader := config.NewLoader(nil)
		loaded, err := loader.Load()
		if err != nil {
			return nil, "", fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		cfgPath = loader.FindProjectConfig()
	}

	// The flag wins over the config file.
	effectiveLevel := cfg.Logging.Level
	if logLevel != "" {
		effectiveLevel = logLevel
	}
	level := slog.LevelInfo
	switch strings.ToLower(effectiveLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return cfg, cfgPath, nil
}

func runInteractive(cfg *config.Config, cfgPath string) error {
	printBanner()

	app := NewApp(cfg, cfgPath)
	if err := app.Start(); err != nil {
		return err
	}
	defer app.Shutdown(5 * time.Second)

	return app.RunREPL()
}

func printBanner() {
	fmt.Println("╔═══════════════════════════════════════════════╗")
	fmt.Println("║             Ouvroir v" + Version + "                     ║")
	fmt.Println("║      Constrained-Writing Workbench            ║")
	fmt.Println("╚═══════════════════════════════════════════════╝")
}

// newState builds an AppState configured from the loaded config.
func newState(configPath, logLevel string) (*commands.AppState, *config.Config, error) {
	cfg, _, err := setup(configPath, logLevel)
	if err != nil {
		return nil, nil, err
	}
	state := commands.NewAppState()
	state.AI.UpdateSettings(cfg.AISettings())
	return state, cfg, nil
}

// printResponse writes a command response to stdout, or returns its error.
func printResponse(resp *commands.Response) error {
	if !resp.OK() {
		return fmt.Errorf("%s", resp.Content)
	}
	fmt.Println(resp.Content)
	return nil
}

func checkCmd(configPath, logLevel *string) *cobra.Command {
	var (
		letter   string
		vowel    string
		endWords []string
	)

	cmd := &cobra.Command{
		Use:   "check <constraint> <text>",
		Short: "Check text against a named constraint",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _, err := newState(*configPath, *logLevel)
			if err != nil {
				return err
			}

			name := args[0]
			text := strings.Join(args[1:], " ")
			cfg := map[string]any{}
			if letter != "" {
				cfg["forbidden_letter"] = letter
			}
			if vowel != "" {
				cfg["allowed_vowel"] = vowel
			}
			if len(endWords) > 0 {
				cfg["end_words"] = endWords
			}

			resp := state.CheckConstraint(name, text, cfg)
			if err := printResponse(resp); err != nil {
				return err
			}
			printViolations(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&letter, "letter", "", "Forbidden letter (lipogram)")
	cmd.Flags().StringVar(&vowel, "vowel", "", "Allowed vowel (univocalic)")
	cmd.Flags().StringSliceVar(&endWords, "end-words", nil, "Line end words (sestina)")
	return cmd
}

// printViolations lists each violation of a constraint result on stdout.
func printViolations(resp *commands.Response) {
	result, ok := resp.Data.(*oulipo.ConstraintResult)
	if !ok {
		return
	}
	for _, v := range result.Violations {
		fmt.Printf("  [%d+%d] %s\n", v.Position, v.Length, v.Issue)
	}
}

func transformCmd(configPath, logLevel *string) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "transform <text>",
		Short: "Apply the N+7 dictionary transform to text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _, err := newState(*configPath, *logLevel)
			if err != nil {
				return err
			}
			return printResponse(state.NPlusTransform(strings.Join(args, " "), offset))
		},
	}

	cmd.Flags().IntVarP(&offset, "offset", "n", 7, "Dictionary offset")
	return cmd
}

func presetCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "preset <name> <text>",
		Short: "Check text against a preset constraint workflow",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _, err := newState(*configPath, *logLevel)
			if err != nil {
				return err
			}
			return printResponse(state.CheckWithPreset(strings.Join(args[1:], " "), args[0]))
		},
	}
}

func constraintsCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "constraints",
		Short: "List available constraints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _, err := newState(*configPath, *logLevel)
			if err != nil {
				return err
			}
			return printResponse(state.ListConstraints())
		},
	}
}

func generateCmd(configPath, logLevel *string) *cobra.Command {
	var (
		theme      string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "generate <haiku|anagrams> [word]",
		Short: "Generate constrained text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _, err := newState(*configPath, *logLevel)
			if err != nil {
				return err
			}

			switch args[0] {
			case "haiku":
				return printResponse(state.GenerateHaiku(theme))
			case "anagrams":
				if len(args) < 2 {
					return fmt.Errorf("anagrams requires a word")
				}
				resp := state.GenerateAnagrams(args[1], maxResults)
				if !resp.OK() {
					return fmt.Errorf("%s", resp.Content)
				}
				anagrams, _ := resp.Data.([]string)
				for _, a := range anagrams {
					fmt.Println(a)
				}
				return nil
			default:
				return fmt.Errorf("unknown generator: %s", args[0])
			}
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "nature", "Haiku theme")
	cmd.Flags().IntVar(&maxResults, "max", 10, "Maximum anagram results")
	return cmd
}

func analyzeCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <text or file>",
		Short: "Analyze prose metrics for text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _, err := newState(*configPath, *logLevel)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if data, err := os.ReadFile(args[0]); err == nil && len(args) == 1 {
				text = string(data)
			}

			resp := state.AnalyzeText(text)
			if !resp.OK() {
				return fmt.Errorf("%s", resp.Content)
			}
			out, err := json.MarshalIndent(resp.Data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func exportCmd(configPath, logLevel *string) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <project.json>",
		Short: "Export a project file to a document format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, cfg, err := newState(*configPath, *logLevel)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read project file: %w", err)
			}
			var project export.ProjectData
			if err := json.Unmarshal(data, &project); err != nil {
				return fmt.Errorf("parse project file: %w", err)
			}

			effectiveFormat := cfg.Export.DefaultFormat
			if format != "" {
				effectiveFormat = format
			}

			opts := export.Options{
				Format:               export.Format(effectiveFormat),
				IncludeMetadata:      cfg.Export.IncludeMetadata,
				IncludePlotStructure: true,
				IncludeCharacters:    true,
				IncludeNotes:         true,
				OutputPath:           output,
			}
			return printResponse(state.ExportProject(&project, opts))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (markdown, html, json, plaintext)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	return cmd
}
