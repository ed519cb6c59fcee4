// Package analytics computes statistics over manuscript and story-structure
// data: prose metrics, character network analysis, world-building coverage,
// and plot pacing. All analyses are pure functions over their inputs.
package analytics

// Character is a story character in the analytics views.
type Character struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Traits      []string `json:"traits,omitempty"`
	Color       string   `json:"color,omitempty"`
}

// Relationship links two characters with a type and a 0-100 strength.
type Relationship struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
}

// WorldEvent is a dated world-building event.
type WorldEvent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	Type         string   `json:"type"`
	Importance   int      `json:"importance"`
	LocationIDs  []string `json:"location_ids,omitempty"`
	CharacterIDs []string `json:"character_ids,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Beat is a plot beat with completion tracking.
type Beat struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	WordCount   int     `json:"word_count"`
	IsCompleted bool    `json:"is_completed"`
}

// CentralCharacter is a high-connectivity node in the character network.
type CentralCharacter struct {
	CharacterID     string  `json:"character_id"`
	Name            string  `json:"name"`
	CentralityScore float64 `json:"centrality_score"`
	ConnectionCount int     `json:"connection_count"`
}

// CharacterAnalytics summarizes the character relationship network.
type CharacterAnalytics struct {
	TotalCharacters    int                `json:"total_characters"`
	RelationshipsCount int                `json:"relationships_count"`
	NetworkDensity     float64            `json:"network_density"`
	CentralCharacters  []CentralCharacter `json:"central_characters"`
	IsolatedCharacters []string           `json:"isolated_characters"`
	RelationshipTypes  map[string]int     `json:"relationship_types"`
}

// WorldAnalytics summarizes world-building event distribution.
type WorldAnalytics struct {
	TotalEvents            int            `json:"total_events"`
	TimelineSpan           string         `json:"timeline_span"`
	EventDensity           float64        `json:"event_density"`
	EventTypes             map[string]int `json:"event_types"`
	ImportanceDistribution []int          `json:"importance_distribution"`
}

// PacingAnalysis describes the manuscript's pacing.
type PacingAnalysis struct {
	OverallPace            string   `json:"overall_pace"`
	SlowSections           []string `json:"slow_sections"`
	FastSections           []string `json:"fast_sections"`
	RecommendedAdjustments []string `json:"recommended_adjustments"`
}

// PlotAnalytics summarizes beat structure and completion.
type PlotAnalytics struct {
	TotalBeats            int                `json:"total_beats"`
	CompletionPercentage  float64            `json:"completion_percentage"`
	WordCountDistribution []int              `json:"word_count_distribution"`
	PacingAnalysis        PacingAnalysis     `json:"pacing_analysis"`
	ActProgress           map[string]float64 `json:"act_progress"`
}

// WordFrequency counts occurrences of one word.
type WordFrequency struct {
	Word      string  `json:"word"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// TextAnalytics summarizes prose metrics for a text.
type TextAnalytics struct {
	WordCount        int             `json:"word_count"`
	CharacterCount   int             `json:"character_count"`
	SentenceCount    int             `json:"sentence_count"`
	ParagraphCount   int             `json:"paragraph_count"`
	ReadabilityScore float64         `json:"readability_score"`
	ComplexityScore  float64         `json:"complexity_score"`
	TopWords         []WordFrequency `json:"top_words"`
}

// GraphNode is a node in a force-directed network visualization.
type GraphNode struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Group      int            `json:"group"`
	Size       float64        `json:"size"`
	Color      string         `json:"color,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphLink is an edge in the network visualization.
type GraphLink struct {
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Weight     float64        `json:"weight"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphMetadata carries whole-graph statistics.
type GraphMetadata struct {
	TotalNodes    int     `json:"total_nodes"`
	TotalLinks    int     `json:"total_links"`
	Density       float64 `json:"density"`
	AverageDegree float64 `json:"average_degree"`
}

// ForceGraphData is the full payload for a force-directed graph view.
type ForceGraphData struct {
	Nodes    []GraphNode   `json:"nodes"`
	Links    []GraphLink   `json:"links"`
	Metadata GraphMetadata `json:"metadata"`
}

// ResearchItem is a piece of background research with a 0-1 credibility.
type ResearchItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags,omitempty"`
	Source      string   `json:"source,omitempty"`
	Credibility float64  `json:"credibility"`
}

// FactCheck records the verification status of a single claim.
type FactCheck struct {
	ID                 string   `json:"id"`
	Claim              string   `json:"claim"`
	VerificationStatus string   `json:"verification_status"`
	Confidence         float64  `json:"confidence"`
	Sources            []string `json:"sources,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// ResearchAnalytics summarizes research coverage and source reliability.
type ResearchAnalytics struct {
	TotalItems              int            `json:"total_items"`
	VerifiedItems           int            `json:"verified_items"`
	FactVerificationRate    float64        `json:"fact_verification_rate"`
	AverageCredibility      float64        `json:"average_credibility"`
	CredibilityDistribution []float64      `json:"credibility_distribution"`
	SourceBreakdown         map[string]int `json:"source_breakdown"`
	TagFrequency            map[string]int `json:"tag_frequency"`
	SourceDiversity         float64        `json:"source_diversity"`
	ResearchGaps            []string       `json:"research_gaps"`
}

// EditEvent is a single edit by a collaborator on a document.
type EditEvent struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	DocumentID string `json:"document_id"`
	Action     string `json:"action"`
	Timestamp  string `json:"timestamp"`
	Changes    string `json:"changes,omitempty"`
}

// EditedSection aggregates edit activity on one document.
type EditedSection struct {
	SectionID string   `json:"section_id"`
	EditCount int      `json:"edit_count"`
	Editors   []string `json:"editors"`
	LastEdit  string   `json:"last_edit"`
}

// UserContribution estimates one collaborator's share of the work.
type UserContribution struct {
	UserID           string  `json:"user_id"`
	TotalEdits       int     `json:"total_edits"`
	WordsContributed int     `json:"words_contributed"`
	AvgSessionLength float64 `json:"avg_session_length"`
}

// CollaborationMetrics summarizes edit activity across collaborators.
type CollaborationMetrics struct {
	TotalCollaborators  int                `json:"total_collaborators"`
	ActiveCollaborators int                `json:"active_collaborators"`
	EditFrequency       map[string]int     `json:"edit_frequency"`
	ContributionBalance []UserContribution `json:"contribution_balance"`
	MostEditedSections  []EditedSection    `json:"most_edited_sections"`
	Efficiency          float64            `json:"efficiency"`
}

// StyleConsistency reports stylistic variation across multiple texts.
type StyleConsistency struct {
	ConsistencyScore       float64   `json:"consistency_score"`
	AvgSentenceLengths     []float64 `json:"avg_sentence_lengths"`
	VocabularySizes        []int     `json:"vocabulary_sizes"`
	SentenceLengthVariance float64   `json:"sentence_length_variance"`
	VocabularyVariance     float64   `json:"vocabulary_variance"`
}
