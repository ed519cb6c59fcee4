package ai

import (
	"context"
	"log/slog"
	"sync"
)

// Service manages the active provider and its settings. Settings are the one
// piece of mutable state in the application and are guarded by a single
// mutex; all operations dispatch to the provider resolved at update time.
type Service struct {
	mu       sync.RWMutex
	provider Provider
	settings Settings
}

// NewService creates a service with default settings backed by the local
// provider.
func NewService() *Service {
	return &Service{
		provider: NewLocalProvider(),
		settings: DefaultSettings(),
	}
}

// UpdateSettings replaces the settings and switches providers. OpenAI and
// Anthropic require an API key; without one the service falls back to the
// local provider.
func (s *Service) UpdateSettings(settings Settings) {
	provider := resolveProvider(settings)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.provider = provider

	slog.Debug("AI settings updated",
		"provider", provider.Name(),
		"model", settings.Model)
}

func resolveProvider(settings Settings) Provider {
	switch settings.Provider {
	case ProviderOpenAI, ProviderAnthropic:
		if settings.APIKey == "" {
			return NewLocalProvider()
		}
	}
	if p := NewProvider(settings.Provider, settings); p != nil {
		return p
	}
	return NewLocalProvider()
}

// Settings returns a copy of the current settings.
func (s *Service) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ProviderName returns the name of the active provider.
func (s *Service) ProviderName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider.Name()
}

// IsConfigured reports whether the configured provider can actually serve
// requests. The local provider always can; hosted providers need a key.
func (s *Service) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.settings.Provider {
	case ProviderOpenAI, ProviderAnthropic:
		return s.settings.APIKey != ""
	}
	return true
}

// EstimateCredits estimates the credit cost of an operation for the current
// provider and input size.
func (s *Service) EstimateCredits(operation string, inputSize int) int {
	baseCost := 5
	switch operation {
	case OpSuggestBeatContent:
		baseCost = 10
	case OpAnalyzeCharacterArc:
		baseCost = 15
	case OpAnalyzeThemeCoherence:
		baseCost = 12
	case OpGenerateCharacterSuggestions:
		baseCost = 8
	case OpGeneratePlotSuggestions:
		baseCost = 10
	case OpAnalyzeWritingStyle:
		baseCost = 5
	}

	s.mu.RLock()
	provider := s.settings.Provider
	s.mu.RUnlock()

	providerMultiplier := 1.0
	switch provider {
	case ProviderOpenAI:
		providerMultiplier = 2.0
	case ProviderAnthropic:
		providerMultiplier = 1.8
	case ProviderLocal:
		providerMultiplier = 0.1
	}

	sizeMultiplier := float64(inputSize) / 1000.0
	if sizeMultiplier < 1.0 {
		sizeMultiplier = 1.0
	}

	return int(float64(baseCost) * providerMultiplier * sizeMultiplier)
}

func (s *Service) activeProvider() Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider
}

// SuggestBeatContent delegates to the active provider.
func (s *Service) SuggestBeatContent(ctx context.Context, beat *Beat, characters []Character,
	themes []Theme, previousBeats []Beat) (*Response[BeatSuggestion], error) {
	return s.activeProvider().SuggestBeatContent(ctx, beat, characters, themes, previousBeats)
}

// AnalyzeCharacterArc delegates to the active provider.
func (s *Service) AnalyzeCharacterArc(ctx context.Context, character *Character,
	beats []Beat, themes []Theme) (*Response[CharacterArcSuggestion], error) {
	return s.activeProvider().AnalyzeCharacterArc(ctx, character, beats, themes)
}

// AnalyzeThemeCoherence delegates to the active provider.
func (s *Service) AnalyzeThemeCoherence(ctx context.Context, themes []Theme, beats []Beat,
	characters []Character) (*Response[ThemeAnalysis], error) {
	return s.activeProvider().AnalyzeThemeCoherence(ctx, themes, beats, characters)
}

// GenerateCharacterSuggestions delegates to the active provider.
func (s *Service) GenerateCharacterSuggestions(ctx context.Context, storyContext string,
	existing []Character) (*Response[[]CharacterSuggestion], error) {
	return s.activeProvider().GenerateCharacterSuggestions(ctx, storyContext, existing)
}

// GeneratePlotSuggestions delegates to the active provider.
func (s *Service) GeneratePlotSuggestions(ctx context.Context, currentBeats []Beat,
	characters []Character, themes []Theme) (*Response[[]PlotSuggestion], error) {
	return s.activeProvider().GeneratePlotSuggestions(ctx, currentBeats, characters, themes)
}

// AnalyzeWritingStyle delegates to the active provider.
func (s *Service) AnalyzeWritingStyle(ctx context.Context, text, targetStyle string) (*Response[StyleAnalysis], error) {
	return s.activeProvider().AnalyzeWritingStyle(ctx, text, targetStyle)
}
