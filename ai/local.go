package ai

import (
	"context"
	"errors"
	"fmt"
)

func init() {
	RegisterProvider(ProviderLocal, func(_ Settings) Provider {
		return NewLocalProvider()
	})
}

// LocalProvider is the offline fallback. It needs no credentials and answers
// from fixed heuristics.
type LocalProvider struct{}

// NewLocalProvider creates a local provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// Name implements Provider.
func (p *LocalProvider) Name() string { return ProviderLocal }

func (p *LocalProvider) SuggestBeatContent(ctx context.Context, beat *Beat, _ []Character,
	_ []Theme, _ []Beat) (*Response[BeatSuggestion], error) {
	if err := checkRequest(ctx, ProviderLocal, OpSuggestBeatContent, beat); err != nil {
		return nil, err
	}
	suggestion := BeatSuggestion{
		Content:          fmt.Sprintf("Local AI suggestion for %s", beat.Name),
		SceneIdeas:       []string{"Local scene idea"},
		Conflicts:        []string{"Local conflict"},
		CharacterMoments: map[string]string{},
		Themes:           []string{"Local theme"},
	}
	return NewResponse(suggestion, 5, 0), nil
}

func (p *LocalProvider) AnalyzeCharacterArc(ctx context.Context, character *Character,
	_ []Beat, _ []Theme) (*Response[CharacterArcSuggestion], error) {
	if err := checkCharacterRequest(ctx, ProviderLocal, OpAnalyzeCharacterArc, character); err != nil {
		return nil, err
	}
	suggestion := CharacterArcSuggestion{
		CharacterName:   character.Name,
		BeatSuggestions: []BeatArcPoint{},
		OverallArc: ArcOverall{
			Want:           "Local want",
			Need:           "Local need",
			LieTheyBelieve: "Local lie",
			TruthTheyNeed:  "Local truth",
			Ghost:          "Local ghost",
			ArcType:        ArcFlat,
		},
	}
	return NewResponse(suggestion, 3, 0), nil
}

func (p *LocalProvider) AnalyzeThemeCoherence(ctx context.Context, _ []Theme, _ []Beat,
	_ []Character) (*Response[ThemeAnalysis], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderLocal, OpAnalyzeThemeCoherence, err)
	}
	analysis := ThemeAnalysis{
		ThemeConsistency: map[string]float64{},
		WeakPoints:       []ThemeWeakPoint{},
		Suggestions:      []string{"Local theme analysis"},
		OverallScore:     0.6,
	}
	return NewResponse(analysis, 2, 0), nil
}

func (p *LocalProvider) GenerateCharacterSuggestions(ctx context.Context, _ string,
	_ []Character) (*Response[[]CharacterSuggestion], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderLocal, OpGenerateCharacterSuggestions, err)
	}
	return NewResponse([]CharacterSuggestion{}, 1, 0), nil
}

func (p *LocalProvider) GeneratePlotSuggestions(ctx context.Context, _ []Beat,
	_ []Character, _ []Theme) (*Response[[]PlotSuggestion], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderLocal, OpGeneratePlotSuggestions, err)
	}
	return NewResponse([]PlotSuggestion{}, 1, 0), nil
}

func (p *LocalProvider) AnalyzeWritingStyle(ctx context.Context, text, _ string) (*Response[StyleAnalysis], error) {
	if err := checkTextRequest(ctx, ProviderLocal, OpAnalyzeWritingStyle, text); err != nil {
		return nil, err
	}
	analysis := StyleAnalysis{
		Tone:             "Local",
		Pace:             "Local",
		VoiceStrength:    0.5,
		ReadabilityScore: 0.7,
		Suggestions:      []StyleSuggestion{},
	}
	return NewResponse(analysis, 1, 0), nil
}

// checkRequest validates the common preconditions shared by beat operations.
// Context cancellation is transient; a missing beat is fatal.
func checkRequest(ctx context.Context, provider, operation string, beat *Beat) error {
	if err := ctx.Err(); err != nil {
		return NewTransientError(provider, operation, err)
	}
	if beat == nil {
		return NewFatalError(provider, operation, errors.New("beat is required"))
	}
	return nil
}

func checkCharacterRequest(ctx context.Context, provider, operation string, character *Character) error {
	if err := ctx.Err(); err != nil {
		return NewTransientError(provider, operation, err)
	}
	if character == nil {
		return NewFatalError(provider, operation, errors.New("character is required"))
	}
	return nil
}

func checkTextRequest(ctx context.Context, provider, operation string, text string) error {
	if err := ctx.Err(); err != nil {
		return NewTransientError(provider, operation, err)
	}
	if text == "" {
		return NewFatalError(provider, operation, errors.New("text is required"))
	}
	return nil
}
