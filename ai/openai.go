package ai

import (
	"context"
	"fmt"
)

func init() {
	RegisterProvider(ProviderOpenAI, func(settings Settings) Provider {
		p := NewOpenAIProvider(settings.APIKey)
		if settings.Model != "" {
			p = p.WithModel(settings.Model)
		}
		return p
	})
}

// OpenAIProvider targets the OpenAI chat API. Responses are currently mocked;
// the credential and model plumbing is real so the provider can be wired to
// the live endpoint without interface changes.
type OpenAIProvider struct {
	apiKey string
	model  string
}

// NewOpenAIProvider creates an OpenAI provider with the given API key.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  "gpt-4",
	}
}

// WithModel overrides the default model.
func (p *OpenAIProvider) WithModel(model string) *OpenAIProvider {
	p.model = model
	return p
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

func (p *OpenAIProvider) SuggestBeatContent(ctx context.Context, beat *Beat, characters []Character,
	themes []Theme, _ []Beat) (*Response[BeatSuggestion], error) {
	if err := checkRequest(ctx, ProviderOpenAI, OpSuggestBeatContent, beat); err != nil {
		return nil, err
	}

	themeNames := make([]string, len(themes))
	for i, t := range themes {
		themeNames[i] = t.Name
	}

	suggestion := BeatSuggestion{
		Content:          fmt.Sprintf("Suggested content for %s", beat.Name),
		SceneIdeas:       []string{"Scene idea 1", "Scene idea 2"},
		Conflicts:        []string{"Internal conflict", "External conflict"},
		CharacterMoments: map[string]string{},
		Themes:           themeNames,
	}
	return NewResponse(suggestion, 10, 0), nil
}

func (p *OpenAIProvider) AnalyzeCharacterArc(ctx context.Context, character *Character,
	_ []Beat, _ []Theme) (*Response[CharacterArcSuggestion], error) {
	if err := checkCharacterRequest(ctx, ProviderOpenAI, OpAnalyzeCharacterArc, character); err != nil {
		return nil, err
	}
	suggestion := CharacterArcSuggestion{
		CharacterName:   character.Name,
		BeatSuggestions: []BeatArcPoint{},
		OverallArc: ArcOverall{
			Want:           "Surface goal",
			Need:           "Deep need",
			LieTheyBelieve: "Character's false belief",
			TruthTheyNeed:  "Truth they must learn",
			Ghost:          "Past trauma or event",
			ArcType:        ArcPositive,
		},
	}
	return NewResponse(suggestion, 15, 0), nil
}

func (p *OpenAIProvider) AnalyzeThemeCoherence(ctx context.Context, _ []Theme, _ []Beat,
	_ []Character) (*Response[ThemeAnalysis], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderOpenAI, OpAnalyzeThemeCoherence, err)
	}
	analysis := ThemeAnalysis{
		ThemeConsistency: map[string]float64{},
		WeakPoints:       []ThemeWeakPoint{},
		Suggestions:      []string{"Strengthen theme presence in middle acts"},
		OverallScore:     0.75,
	}
	return NewResponse(analysis, 12, 0), nil
}

func (p *OpenAIProvider) GenerateCharacterSuggestions(ctx context.Context, _ string,
	_ []Character) (*Response[[]CharacterSuggestion], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderOpenAI, OpGenerateCharacterSuggestions, err)
	}
	suggestions := []CharacterSuggestion{
		{
			Name:               "Suggested Character",
			Archetype:          "The Mentor",
			Role:               "Supporting character",
			Traits:             []string{"Wise", "Patient"},
			BackstoryElements:  []string{"Former adventurer"},
			Relationships:      []string{"Mentor to protagonist"},
			PotentialConflicts: []string{"Past mistakes haunt them"},
		},
	}
	return NewResponse(suggestions, 8, 0), nil
}

func (p *OpenAIProvider) GeneratePlotSuggestions(ctx context.Context, _ []Beat,
	_ []Character, _ []Theme) (*Response[[]PlotSuggestion], error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTransientError(ProviderOpenAI, OpGeneratePlotSuggestions, err)
	}
	suggestions := []PlotSuggestion{
		{
			BeatName:            "Crisis Point",
			Description:         "The moment when all seems lost",
			PlotPoints:          []string{"Hero loses key ally", "Revelation of betrayal"},
			CharacterActions:    map[string]string{},
			ThemesExplored:      []string{"Trust", "Sacrifice"},
			ConflictsIntroduced: []string{"Internal doubt"},
			PacingNotes:         "Increase tension rapidly",
		},
	}
	return NewResponse(suggestions, 10, 0), nil
}

func (p *OpenAIProvider) AnalyzeWritingStyle(ctx context.Context, text, _ string) (*Response[StyleAnalysis], error) {
	if err := checkTextRequest(ctx, ProviderOpenAI, OpAnalyzeWritingStyle, text); err != nil {
		return nil, err
	}
	analysis := StyleAnalysis{
		Tone:             "Neutral",
		Pace:             "Moderate",
		VoiceStrength:    0.7,
		ReadabilityScore: 0.8,
		Suggestions: []StyleSuggestion{
			{
				Category:   "Voice",
				Issue:      "Inconsistent perspective",
				Suggestion: "Maintain consistent POV throughout",
			},
		},
	}
	return NewResponse(analysis, 5, 0), nil
}
