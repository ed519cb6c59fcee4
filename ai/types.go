// Package ai provides writing-assistance services backed by pluggable
// providers. Providers are mock implementations producing deterministic
// suggestions; the service layer owns settings and provider switching.
package ai

// Character is a story character as seen by the AI subsystem.
type Character struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Traits      map[string]any `json:"traits,omitempty"`
	Description string         `json:"description,omitempty"`
	Want        string         `json:"want,omitempty"`
	Need        string         `json:"need,omitempty"`
}

// Beat is one structural story beat.
type Beat struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Percentage  int      `json:"percentage"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	WordCount   int      `json:"word_count,omitempty"`
	SceneIDs    []string `json:"scene_ids,omitempty"`
	IsCompleted bool     `json:"is_completed"`
}

// Theme is a narrative theme tracked across scenes.
type Theme struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	SceneIDs    []string       `json:"scene_ids,omitempty"`
	Intensity   map[string]int `json:"intensity,omitempty"`
}

// Conflict is a story conflict, internal or external.
type Conflict struct {
	ID           string   `json:"id"`
	ConflictType string   `json:"conflict_type"`
	Description  string   `json:"description"`
	Intensity    int      `json:"intensity"`
	SceneIDs     []string `json:"scene_ids,omitempty"`
}

// Provider name constants.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderLocal     = "local"
)

// Settings selects and configures the active provider.
type Settings struct {
	Provider       string  `json:"provider" yaml:"provider"`
	APIKey         string  `json:"api_key,omitempty" yaml:"api_key"`
	Model          string  `json:"model,omitempty" yaml:"model"`
	Temperature    float64 `json:"temperature" yaml:"temperature"`
	MaxTokens      int     `json:"max_tokens" yaml:"max_tokens"`
	TimeoutSeconds int     `json:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultSettings returns the defaults: OpenAI targeting gpt-4 without a key,
// which the service resolves to the local provider until a key is supplied.
func DefaultSettings() Settings {
	return Settings{
		Provider:       ProviderOpenAI,
		Model:          "gpt-4",
		Temperature:    0.7,
		MaxTokens:      2000,
		TimeoutSeconds: 30,
	}
}

// BeatSuggestion is suggested content for one story beat.
type BeatSuggestion struct {
	Content          string            `json:"content"`
	SceneIdeas       []string          `json:"scene_ideas"`
	Conflicts        []string          `json:"conflicts"`
	CharacterMoments map[string]string `json:"character_moments"`
	Themes           []string          `json:"themes"`
}

// ArcType classifies the overall shape of a character arc.
type ArcType string

const (
	ArcPositive   ArcType = "positive"
	ArcNegative   ArcType = "negative"
	ArcFlat       ArcType = "flat"
	ArcCorruption ArcType = "corruption"
)

// BeatArcPoint describes a character's development at one beat.
type BeatArcPoint struct {
	BeatID             string         `json:"beat_id"`
	BeatName           string         `json:"beat_name"`
	EmotionalState     map[string]int `json:"emotional_state"`
	KeyMoment          string         `json:"key_moment"`
	GrowthOpportunity  string         `json:"growth_opportunity"`
	ThematicConnection string         `json:"thematic_connection"`
}

// ArcOverall is the high-level structure of a character arc.
type ArcOverall struct {
	Want           string  `json:"want"`
	Need           string  `json:"need"`
	LieTheyBelieve string  `json:"lie_they_believe"`
	TruthTheyNeed  string  `json:"truth_they_need"`
	Ghost          string  `json:"ghost"`
	ArcType        ArcType `json:"arc_type"`
}

// CharacterArcSuggestion is a full character-arc analysis.
type CharacterArcSuggestion struct {
	CharacterName   string         `json:"character_name"`
	BeatSuggestions []BeatArcPoint `json:"beat_suggestions"`
	OverallArc      ArcOverall     `json:"overall_arc"`
}

// ThemeWeakPoint marks an underdeveloped theme at a specific beat.
type ThemeWeakPoint struct {
	ThemeID    string `json:"theme_id"`
	BeatID     string `json:"beat_id"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// ThemeAnalysis reports theme coherence across the story.
type ThemeAnalysis struct {
	ThemeConsistency map[string]float64 `json:"theme_consistency"`
	WeakPoints       []ThemeWeakPoint   `json:"weak_points"`
	Suggestions      []string           `json:"suggestions"`
	OverallScore     float64            `json:"overall_score"`
}

// CharacterSuggestion proposes a new character to add.
type CharacterSuggestion struct {
	Name               string   `json:"name"`
	Archetype          string   `json:"archetype"`
	Role               string   `json:"role"`
	Traits             []string `json:"traits"`
	BackstoryElements  []string `json:"backstory_elements"`
	Relationships      []string `json:"relationships"`
	PotentialConflicts []string `json:"potential_conflicts"`
}

// PlotSuggestion proposes story development for an upcoming beat.
type PlotSuggestion struct {
	BeatName            string            `json:"beat_name"`
	Description         string            `json:"description"`
	PlotPoints          []string          `json:"plot_points"`
	CharacterActions    map[string]string `json:"character_actions"`
	ThemesExplored      []string          `json:"themes_explored"`
	ConflictsIntroduced []string          `json:"conflicts_introduced"`
	PacingNotes         string            `json:"pacing_notes"`
}

// StyleSuggestion is a single prose-style improvement.
type StyleSuggestion struct {
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example,omitempty"`
}

// ComparativeStyleAnalysis compares text against a target style.
type ComparativeStyleAnalysis struct {
	TargetStyle     string   `json:"target_style"`
	SimilarityScore float64  `json:"similarity_score"`
	Differences     []string `json:"differences"`
	Improvements    []string `json:"improvements"`
}

// StyleAnalysis reports on the prose style of a text.
type StyleAnalysis struct {
	Tone                string                    `json:"tone"`
	Pace                string                    `json:"pace"`
	VoiceStrength       float64                   `json:"voice_strength"`
	ReadabilityScore    float64                   `json:"readability_score"`
	Suggestions         []StyleSuggestion         `json:"suggestions"`
	ComparativeAnalysis *ComparativeStyleAnalysis `json:"comparative_analysis,omitempty"`
}
