package ai

import (
	"context"
	"sync"
)

// Provider defines the interface for writing-assistance backends.
type Provider interface {
	// Name returns the provider identifier (e.g., "openai", "local").
	Name() string

	// SuggestBeatContent suggests content for a story beat given the
	// surrounding context.
	SuggestBeatContent(ctx context.Context, beat *Beat, characters []Character,
		themes []Theme, previousBeats []Beat) (*Response[BeatSuggestion], error)

	// AnalyzeCharacterArc analyzes a character's development across beats.
	AnalyzeCharacterArc(ctx context.Context, character *Character,
		beats []Beat, themes []Theme) (*Response[CharacterArcSuggestion], error)

	// AnalyzeThemeCoherence scores how consistently themes run through the story.
	AnalyzeThemeCoherence(ctx context.Context, themes []Theme, beats []Beat,
		characters []Character) (*Response[ThemeAnalysis], error)

	// GenerateCharacterSuggestions proposes characters fitting the story context.
	GenerateCharacterSuggestions(ctx context.Context, storyContext string,
		existing []Character) (*Response[[]CharacterSuggestion], error)

	// GeneratePlotSuggestions proposes plot development for upcoming beats.
	GeneratePlotSuggestions(ctx context.Context, currentBeats []Beat,
		characters []Character, themes []Theme) (*Response[[]PlotSuggestion], error)

	// AnalyzeWritingStyle reports on prose style. targetStyle is empty to
	// skip comparative analysis.
	AnalyzeWritingStyle(ctx context.Context, text, targetStyle string) (*Response[StyleAnalysis], error)
}

// providerRegistry holds registered provider constructors.
var (
	providerRegistry = make(map[string]func(settings Settings) Provider)
	providerMu       sync.RWMutex
)

// RegisterProvider adds a provider constructor to the registry.
func RegisterProvider(name string, construct func(settings Settings) Provider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	providerRegistry[name] = construct
}

// NewProvider constructs a provider by name, or nil if unregistered.
func NewProvider(name string, settings Settings) Provider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	construct, ok := providerRegistry[name]
	if !ok {
		return nil
	}
	return construct(settings)
}

// ListProviders returns all registered provider names.
func ListProviders() []string {
	providerMu.RLock()
	defer providerMu.RUnlock()

	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	return names
}
