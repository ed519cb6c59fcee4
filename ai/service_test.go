package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService()

	assert.Equal(t, ProviderLocal, svc.ProviderName(), "no API key means local fallback")
	assert.False(t, svc.IsConfigured(), "default settings name openai without a key")

	settings := svc.Settings()
	assert.Equal(t, ProviderOpenAI, settings.Provider)
	assert.Equal(t, "gpt-4", settings.Model)
	assert.Equal(t, 0.7, settings.Temperature)
}

func TestUpdateSettingsSwitchesProvider(t *testing.T) {
	svc := NewService()

	settings := DefaultSettings()
	settings.Provider = ProviderOpenAI
	settings.APIKey = "test-key"
	svc.UpdateSettings(settings)

	assert.Equal(t, ProviderOpenAI, svc.ProviderName())
	assert.True(t, svc.IsConfigured())

	settings.Provider = ProviderAnthropic
	svc.UpdateSettings(settings)
	assert.Equal(t, ProviderAnthropic, svc.ProviderName())

	// Dropping the key falls back to local, but the settings still record
	// the requested provider.
	settings.APIKey = ""
	svc.UpdateSettings(settings)
	assert.Equal(t, ProviderLocal, svc.ProviderName())
	assert.Equal(t, ProviderAnthropic, svc.Settings().Provider)
	assert.False(t, svc.IsConfigured())
}

func TestUpdateSettingsUnknownProviderFallsBack(t *testing.T) {
	svc := NewService()

	settings := DefaultSettings()
	settings.Provider = "mistral"
	svc.UpdateSettings(settings)

	assert.Equal(t, ProviderLocal, svc.ProviderName())
}

func TestEstimateCredits(t *testing.T) {
	svc := NewService()

	settings := DefaultSettings()
	settings.Provider = ProviderOpenAI
	settings.APIKey = "test-key"
	svc.UpdateSettings(settings)

	credits := svc.EstimateCredits("suggest_beat_content", 1000)
	assert.Equal(t, 20, credits, "base 10 at the 2.0 openai multiplier")

	largeInput := svc.EstimateCredits("suggest_beat_content", 5000)
	assert.Greater(t, largeInput, credits)

	settings.Provider = ProviderLocal
	svc.UpdateSettings(settings)
	assert.Equal(t, 1, svc.EstimateCredits("suggest_beat_content", 1000))
}

func TestSuggestBeatContentDelegates(t *testing.T) {
	svc := NewService()
	beat := &Beat{ID: "b1", Name: "Opening Image", Percentage: 1}

	resp, err := svc.SuggestBeatContent(context.Background(), beat, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, resp.IsOK())
	assert.Contains(t, resp.Data.Content, "Opening Image")
	assert.Equal(t, 5, resp.CreditsUsed, "local provider pricing")
}

func TestSuggestBeatContentNilBeatIsFatal(t *testing.T) {
	svc := NewService()

	_, err := svc.SuggestBeatContent(context.Background(), nil, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.False(t, IsTransient(err))
}

func TestCancelledContextIsTransient(t *testing.T) {
	svc := NewService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AnalyzeWritingStyle(ctx, "some prose", "")
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestAnalyzeWritingStyleEmptyTextIsFatal(t *testing.T) {
	svc := NewService()

	_, err := svc.AnalyzeWritingStyle(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, IsFatal(err))
}

func TestAnalyzeCharacterArcPerProvider(t *testing.T) {
	ctx := context.Background()
	character := &Character{ID: "c1", Name: "Ursule"}

	tests := []struct {
		provider Provider
		wantArc  ArcType
		wantWant string
	}{
		{NewLocalProvider(), ArcFlat, "Local want"},
		{NewOpenAIProvider("key"), ArcPositive, "Surface goal"},
		{NewAnthropicProvider("key"), ArcPositive, "Anthropic want analysis"},
	}

	for _, tt := range tests {
		resp, err := tt.provider.AnalyzeCharacterArc(ctx, character, nil, nil)
		require.NoError(t, err, tt.provider.Name())
		require.True(t, resp.IsOK())
		assert.Equal(t, "Ursule", resp.Data.CharacterName)
		assert.Equal(t, tt.wantArc, resp.Data.OverallArc.ArcType)
		assert.Equal(t, tt.wantWant, resp.Data.OverallArc.Want)
	}
}

func TestProviderRegistry(t *testing.T) {
	names := ListProviders()
	assert.Contains(t, names, ProviderLocal)
	assert.Contains(t, names, ProviderOpenAI)
	assert.Contains(t, names, ProviderAnthropic)

	p := NewProvider(ProviderOpenAI, Settings{APIKey: "k", Model: "gpt-4o"})
	require.NotNil(t, p)
	assert.Equal(t, ProviderOpenAI, p.Name())

	assert.Nil(t, NewProvider("nonexistent", Settings{}))
}
