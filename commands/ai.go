package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atelierink/ouvroir/ai"
)

// GetAISettings returns the current AI provider settings.
func (s *AppState) GetAISettings() *Response {
	settings := s.AI.Settings()
	return resultResponse(fmt.Sprintf("Provider: %s", settings.Provider), settings)
}

// UpdateAISettings replaces the AI provider settings. The active provider
// switches to match.
func (s *AppState) UpdateAISettings(settings ai.Settings) *Response {
	s.AI.UpdateSettings(settings)
	slog.Info("AI settings updated",
		"provider", settings.Provider,
		"active", s.AI.ProviderName())
	return resultResponse(fmt.Sprintf("Active provider: %s", s.AI.ProviderName()), s.AI.Settings())
}

// GetUserCredits returns the remaining credit balance.
func (s *AppState) GetUserCredits() *Response {
	credits := s.Credits()
	return resultResponse(fmt.Sprintf("%d credits remaining", credits), credits)
}

// EstimateOperationCredits estimates the credit cost of an AI operation for
// the active provider.
func (s *AppState) EstimateOperationCredits(operation string, inputSize int) *Response {
	cost := s.AI.EstimateCredits(operation, inputSize)
	return resultResponse(fmt.Sprintf("Estimated cost: %d credits", cost), cost)
}

// SuggestBeatContent asks the active provider for beat content, deducting the
// provider's reported credit cost on success.
func (s *AppState) SuggestBeatContent(ctx context.Context, beat *ai.Beat, characters []ai.Character,
	themes []ai.Theme, previousBeats []ai.Beat) *Response {
	resp, err := s.AI.SuggestBeatContent(ctx, beat, characters, themes, previousBeats)
	if err != nil {
		return errorResponse("Beat suggestion failed: %v", err)
	}
	return s.aiResponse(resp.CreditsUsed, "Beat suggestion ready", resp)
}

// AnalyzeCharacterArc asks the active provider for a character-arc analysis.
func (s *AppState) AnalyzeCharacterArc(ctx context.Context, character *ai.Character,
	beats []ai.Beat, themes []ai.Theme) *Response {
	resp, err := s.AI.AnalyzeCharacterArc(ctx, character, beats, themes)
	if err != nil {
		return errorResponse("Character arc analysis failed: %v", err)
	}
	return s.aiResponse(resp.CreditsUsed, fmt.Sprintf("Arc analysis for %s", character.Name), resp)
}

// AnalyzeThemeCoherence asks the active provider to evaluate theme coherence.
func (s *AppState) AnalyzeThemeCoherence(ctx context.Context, themes []ai.Theme, beats []ai.Beat,
	characters []ai.Character) *Response {
	resp, err := s.AI.AnalyzeThemeCoherence(ctx, themes, beats, characters)
	if err != nil {
		return errorResponse("Theme analysis failed: %v", err)
	}
	return s.aiResponse(resp.CreditsUsed, "Theme analysis ready", resp)
}

// GenerateCharacterSuggestions asks the active provider for new character
// ideas.
func (s *AppState) GenerateCharacterSuggestions(ctx context.Context, storyContext string,
	existing []ai.Character) *Response {
	resp, err := s.AI.GenerateCharacterSuggestions(ctx, storyContext, existing)
	if err != nil {
		return errorResponse("Character suggestions failed: %v", err)
	}
	return s.aiResponse(resp.CreditsUsed, "Character suggestions ready", resp)
}

// GeneratePlotSuggestions asks the active provider for plot development
// ideas.
func (s *AppState) GeneratePlotSuggestions(ctx context.Context, currentBeats []ai.Beat,
	characters []ai.Character, themes []ai.Theme) *Response {
	resp, err := s.AI.GeneratePlotSuggestions(ctx, currentBeats, characters, themes)
	if err != nil {
		return errorResponse("Plot suggestions failed: %v", err)
	}
	return s.aiResponse(resp.CreditsUsed, "Plot suggestions ready", resp)
}

// AnalyzeWritingStyle asks the active provider for a style analysis.
func (s *AppState) AnalyzeWritingStyle(ctx context.Context, text, targetStyle string) *Response {
	resp, err := s.AI.AnalyzeWritingStyle(ctx, text, targetStyle)
	if err != nil {
		return errorResponse("Style analysis failed: %v", err)
	}
	return s.aiResponse(resp.CreditsUsed, "Style analysis ready", resp)
}

// aiResponse deducts the credits an AI call consumed and wraps its payload.
// A call that would overdraw the balance fails without deducting.
func (s *AppState) aiResponse(creditsUsed int, content string, data any) *Response {
	remaining, ok := s.DeductCredits(creditsUsed)
	if !ok {
		err := &ai.InsufficientCreditsError{Required: creditsUsed, Remaining: remaining}
		return errorResponse("%v", err)
	}
	slog.Debug("AI operation completed", "credits_used", creditsUsed, "credits_remaining", remaining)
	return resultResponse(content, data)
}
