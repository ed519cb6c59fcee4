package ai

import (
	"context"
	"fmt"
)

func init() {
	RegisterProvider(ProviderAnthropic, func(settings Settings) Provider {
		return NewAnthropicProvider(settings.APIKey)
	})
}

// AnthropicProvider targets the Anthropic messages API. Responses are mocked.
type AnthropicProvider struct {
	apiKey string
	model  string
}

// NewAnthropicProvider creates an Anthropic provider with the given API key.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  "claude-3-sonnet-20240229",
	}
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return ProviderAnthropic }

func (p *AnthropicProvider) SuggestBeatContent(ctx context.Context, beat *Beat, _ []Character,
	_ []Theme, _ []Beat) (*Response[BeatSuggestion], error) {
	if err := checkRequest(ctx, ProviderAnthropic, OpSuggestBeatContent, beat); err != nil {
		return nil, err
	}
	suggestion := BeatSuggestion{
		Content:          fmt.Sprintf("Anthropic suggestion for %s", beat.Name),
		SceneIdeas:       []string{"Anthropic scene idea"},
		Conflicts:        []string{"Anthropic conflict"},
		CharacterMoments: map[string]string{},
		Themes:           []string{"Anthropic theme"},
	}
	return NewResponse(suggestion, 12, 0), nil
}

func (p *AnthropicProvider) AnalyzeCharacterArc(ctx context.Context, character *Character,
	_ []Beat, _ []Theme) (*Response[CharacterArcSuggestion], error) {
	if err := checkCharacterRequest(ctx, ProviderAnthropic, OpAnalyzeCharacterArc, character); err != nil {
		return nil, err
	}
	suggestion := CharacterArcSuggestion{
		CharacterName:   character.Name,
		BeatSuggestions: []BeatArcPoint{},
		OverallArc: ArcOverall{
			Want:           "Anthropic want analysis",
			Need:           "Anthropic need analysis",
			LieTheyBelieve: "Anthropic lie analysis",
			TruthTheyNeed:  "Anthropic truth analysis",
			Ghost:          "Anthropic ghost analysis",
			ArcType:        ArcPositive,
		},
	}
	return NewResponse(suggestion, 18, 0), nil
}

func (p *AnthropicProvider) AnalyzeThemeCoherence(ctx context.Context, _ []Theme, _ []Beat,
	_ []Character) (*Response[ThemeAnalysis], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderAnthropic, OpAnalyzeThemeCoherence, err)
	}
	analysis := ThemeAnalysis{
		ThemeConsistency: map[string]float64{},
		WeakPoints:       []ThemeWeakPoint{},
		Suggestions:      []string{"Anthropic theme suggestion"},
		OverallScore:     0.8,
	}
	return NewResponse(analysis, 15, 0), nil
}

func (p *AnthropicProvider) GenerateCharacterSuggestions(ctx context.Context, _ string,
	_ []Character) (*Response[[]CharacterSuggestion], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderAnthropic, OpGenerateCharacterSuggestions, err)
	}
	return NewResponse([]CharacterSuggestion{}, 10, 0), nil
}

func (p *AnthropicProvider) GeneratePlotSuggestions(ctx context.Context, _ []Beat,
	_ []Character, _ []Theme) (*Response[[]PlotSuggestion], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderAnthropic, OpGeneratePlotSuggestions, err)
	}
	return NewResponse([]PlotSuggestion{}, 12, 0), nil
}

func (p *AnthropicProvider) AnalyzeWritingStyle(ctx context.Context, text, _ string) (*Response[StyleAnalysis], error) {
	if err := checkTextRequest(ctx, ProviderAnthropic, OpAnalyzeWritingStyle, text); err != nil {
		return nil, err
	}
	analysis := StyleAnalysis{
		Tone:             "Anthropic tone",
		Pace:             "Anthropic pace",
		VoiceStrength:    0.75,
		ReadabilityScore: 0.85,
		Suggestions:      []StyleSuggestion{},
	}
	return NewResponse(analysis, 8, 0), nil
}
