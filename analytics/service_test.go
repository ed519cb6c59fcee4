package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeText(t *testing.T) {
	svc := NewService()

	text := "The fox ran. The fox jumped! Was it the fox?\n\nA new paragraph here."
	result := svc.AnalyzeText(text)

	assert.Equal(t, 14, result.WordCount)
	assert.Equal(t, 4, result.SentenceCount)
	assert.Equal(t, 2, result.ParagraphCount)
	assert.Greater(t, result.ReadabilityScore, 0.0)

	// "fox" and "the" both appear three times; the tie breaks alphabetically.
	require.NotEmpty(t, result.TopWords)
	assert.Equal(t, "fox", result.TopWords[0].Word)
	assert.Equal(t, 3, result.TopWords[0].Count)
}

func TestAnalyzeTextEmpty(t *testing.T) {
	svc := NewService()

	result := svc.AnalyzeText("")
	assert.Zero(t, result.WordCount)
	assert.Zero(t, result.SentenceCount)
	assert.Empty(t, result.TopWords)
}

func TestAnalyzeCharacters(t *testing.T) {
	svc := NewService()

	characters := []Character{
		{ID: "a", Name: "Anna"},
		{ID: "b", Name: "Boris"},
		{ID: "c", Name: "Clea"},
		{ID: "d", Name: "Dmitri"},
	}
	relationships := []Relationship{
		{From: "a", To: "b", Type: "ally", Strength: 80},
		{From: "a", To: "c", Type: "rival", Strength: 60},
	}

	result := svc.AnalyzeCharacters(characters, relationships)

	assert.Equal(t, 4, result.TotalCharacters)
	assert.Equal(t, 2, result.RelationshipsCount)
	// 2 relationships out of C(4,2)=6 possible.
	assert.InDelta(t, 33.33, result.NetworkDensity, 0.01)

	require.NotEmpty(t, result.CentralCharacters)
	assert.Equal(t, "Anna", result.CentralCharacters[0].Name)
	assert.Equal(t, 2, result.CentralCharacters[0].ConnectionCount)

	assert.Equal(t, []string{"Dmitri"}, result.IsolatedCharacters)
	assert.Equal(t, map[string]int{"ally": 1, "rival": 1}, result.RelationshipTypes)
}

func TestAnalyzeCharactersEmpty(t *testing.T) {
	svc := NewService()

	result := svc.AnalyzeCharacters(nil, nil)
	assert.Zero(t, result.TotalCharacters)
	assert.Zero(t, result.NetworkDensity)
	assert.Empty(t, result.IsolatedCharacters)
}

func TestAnalyzePlot(t *testing.T) {
	svc := NewService()

	beats := []Beat{
		{Name: "Opening", Percentage: 1, WordCount: 500, IsCompleted: true},
		{Name: "Catalyst", Percentage: 10, WordCount: 800, IsCompleted: true},
		{Name: "Midpoint", Percentage: 50, WordCount: 1200, IsCompleted: true},
		{Name: "Finale", Percentage: 99, WordCount: 0, IsCompleted: false},
	}

	result := svc.AnalyzePlot(beats)

	assert.Equal(t, 4, result.TotalBeats)
	assert.Equal(t, 75.0, result.CompletionPercentage)
	assert.Equal(t, "Good Progress", result.PacingAnalysis.OverallPace)
	assert.Equal(t, []int{500, 800, 1200, 0}, result.WordCountDistribution)

	assert.Equal(t, 100.0, result.ActProgress["Act I"])
	assert.Equal(t, 100.0, result.ActProgress["Act II"])
	assert.Equal(t, 0.0, result.ActProgress["Act III"])
}

func TestAnalyzeWorld(t *testing.T) {
	svc := NewService()

	events := []WorldEvent{
		{Name: "Founding", Type: "political", Importance: 9},
		{Name: "Flood", Type: "natural", Importance: 7},
		{Name: "Coronation", Type: "political", Importance: 5},
	}

	result := svc.AnalyzeWorld(events)

	assert.Equal(t, 3, result.TotalEvents)
	assert.Equal(t, "3 events spanning timeline", result.TimelineSpan)
	assert.Equal(t, map[string]int{"political": 2, "natural": 1}, result.EventTypes)
	assert.Equal(t, []int{9, 7, 5}, result.ImportanceDistribution)

	empty := svc.AnalyzeWorld(nil)
	assert.Equal(t, "No events", empty.TimelineSpan)
}

func TestForceGraph(t *testing.T) {
	svc := NewService()

	characters := []Character{
		{ID: "a", Name: "Anna", Color: "#112233"},
		{ID: "b", Name: "Boris"},
	}
	relationships := []Relationship{
		{From: "a", To: "b", Type: "enemy", Strength: 50},
	}

	graph := svc.ForceGraph(characters, relationships)

	require.Len(t, graph.Nodes, 2)
	assert.Equal(t, "#112233", graph.Nodes[0].Color, "explicit color wins over palette")
	assert.NotEmpty(t, graph.Nodes[1].Color)
	assert.Equal(t, 23.0, graph.Nodes[0].Size, "base 20 plus 3 per connection")
	assert.Equal(t, 1, graph.Nodes[0].Properties["connections"])

	require.Len(t, graph.Links, 1)
	assert.Equal(t, 0.5, graph.Links[0].Weight)
	assert.Equal(t, "#ef4444", graph.Links[0].Properties["color"])

	assert.Equal(t, 2, graph.Metadata.TotalNodes)
	assert.Equal(t, 1.0, graph.Metadata.Density)
	assert.Equal(t, 1.0, graph.Metadata.AverageDegree)
}

func TestFilterAndSortEvents(t *testing.T) {
	svc := NewService()

	events := []WorldEvent{
		{Name: "b", Date: "1920", Type: "war", Importance: 3},
		{Name: "a", Date: "1900", Type: "treaty", Importance: 9},
		{Name: "c", Date: "1910", Type: "war", Importance: 6},
	}

	byDate := svc.FilterAndSortEvents(events, "date", "")
	assert.Equal(t, "1900", byDate[0].Date)
	assert.Equal(t, "1920", byDate[2].Date)

	byImportance := svc.FilterAndSortEvents(events, "importance", "")
	assert.Equal(t, 9, byImportance[0].Importance)

	wars := svc.FilterAndSortEvents(events, "", "war")
	require.Len(t, wars, 2)
	for _, e := range wars {
		assert.Equal(t, "war", e.Type)
	}
}

func TestAnalyzeStyleConsistency(t *testing.T) {
	svc := NewService()

	uniform := svc.AnalyzeStyleConsistency([]string{
		"The cat sat on the mat.",
		"The dog lay on the rug.",
	})
	assert.Greater(t, uniform.ConsistencyScore, 90.0)
	assert.Len(t, uniform.AvgSentenceLengths, 2)

	empty := svc.AnalyzeStyleConsistency(nil)
	assert.Zero(t, empty.ConsistencyScore)
}

func TestWritingSuggestions(t *testing.T) {
	svc := NewService()

	short := "He ran. She hid. It fell. They won. We lost. You saw."
	suggestions := svc.WritingSuggestions(short, []string{"sentence_variety"})
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "quite short")

	unknown := svc.WritingSuggestions("text", []string{"alliteration"})
	require.Len(t, unknown, 1)
	assert.Contains(t, unknown[0], "alliteration")

	clean := svc.WritingSuggestions("A perfectly balanced sentence flows with confidence and precision here.", []string{"sentence_variety"})
	require.Len(t, clean, 1)
	assert.Contains(t, clean[0], "looks good")
}

func TestAnalyzeResearch(t *testing.T) {
	svc := NewService()

	items := []ResearchItem{
		{ID: "r1", Title: "Siege of Vienna", Tags: []string{"historical"}, Source: "archive", Credibility: 0.9},
		{ID: "r2", Title: "Printing press mechanics", Tags: []string{"technical", "historical"}, Source: "journal", Credibility: 0.7},
		{ID: "r3", Title: "Period clothing", Tags: []string{"historical"}, Source: "archive", Credibility: 0.8},
	}
	factChecks := []FactCheck{
		{ID: "f1", Claim: "The siege ended in 1683", VerificationStatus: "verified", Confidence: 0.95},
		{ID: "f2", Claim: "Presses used oak frames", VerificationStatus: "unverified", Confidence: 0.4},
	}

	result := svc.AnalyzeResearch(items, factChecks)

	assert.Equal(t, 3, result.TotalItems)
	assert.Equal(t, 1, result.VerifiedItems)
	assert.InDelta(t, 50.0, result.FactVerificationRate, 0.01)
	assert.InDelta(t, 0.8, result.AverageCredibility, 0.001)
	assert.Equal(t, []float64{0.9, 0.7, 0.8}, result.CredibilityDistribution)
	assert.Equal(t, map[string]int{"archive": 2, "journal": 1}, result.SourceBreakdown)
	assert.Equal(t, map[string]int{"historical": 3, "technical": 1}, result.TagFrequency)
	// 2 distinct sources across 3 items.
	assert.InDelta(t, 66.67, result.SourceDiversity, 0.01)
	// Historical coverage meets the threshold; technical does not.
	assert.NotContains(t, result.ResearchGaps, "Need more historical research")
	assert.Contains(t, result.ResearchGaps, "Technical details need more sources")
}

func TestAnalyzeResearchFlagsThinCoverage(t *testing.T) {
	svc := NewService()

	items := []ResearchItem{
		{ID: "r1", Title: "Untagged note", Credibility: 0.5},
	}
	factChecks := []FactCheck{
		{ID: "f1", Claim: "one", VerificationStatus: "disputed"},
		{ID: "f2", Claim: "two", VerificationStatus: "false"},
		{ID: "f3", Claim: "three", VerificationStatus: "unverified"},
	}

	result := svc.AnalyzeResearch(items, factChecks)

	assert.Zero(t, result.VerifiedItems)
	assert.Zero(t, result.FactVerificationRate)
	assert.Empty(t, result.SourceBreakdown)
	assert.Zero(t, result.SourceDiversity)
	assert.Contains(t, result.ResearchGaps, "Need more historical research")
	assert.Contains(t, result.ResearchGaps, "Many facts need verification")
}

func TestAnalyzeResearchEmpty(t *testing.T) {
	svc := NewService()

	result := svc.AnalyzeResearch(nil, nil)
	assert.Zero(t, result.TotalItems)
	assert.Zero(t, result.AverageCredibility)
	assert.Empty(t, result.CredibilityDistribution)
	// No fact checks means nothing is flagged as unverified.
	assert.NotContains(t, result.ResearchGaps, "Many facts need verification")
}

func TestAnalyzeCollaboration(t *testing.T) {
	svc := NewService()

	edits := []EditEvent{
		{ID: "e1", UserID: "ada", DocumentID: "ch1", Action: "insert", Timestamp: "2026-08-01T10:00:00Z"},
		{ID: "e2", UserID: "ada", DocumentID: "ch1", Action: "delete", Timestamp: "2026-08-01T11:00:00Z"},
		{ID: "e3", UserID: "ada", DocumentID: "ch2", Action: "insert", Timestamp: "2026-08-02T09:00:00Z"},
		{ID: "e4", UserID: "ben", DocumentID: "ch1", Action: "insert", Timestamp: "2026-08-03T08:00:00Z"},
	}

	result := svc.AnalyzeCollaboration(edits)

	assert.Equal(t, 2, result.TotalCollaborators)
	assert.Equal(t, 2, result.ActiveCollaborators)
	assert.Equal(t, map[string]int{"ada": 3, "ben": 1}, result.EditFrequency)

	require.Len(t, result.ContributionBalance, 2)
	assert.Equal(t, "ada", result.ContributionBalance[0].UserID)
	assert.Equal(t, 3, result.ContributionBalance[0].TotalEdits)
	assert.Equal(t, 150, result.ContributionBalance[0].WordsContributed)
	assert.InDelta(t, 30.0, result.ContributionBalance[0].AvgSessionLength, 0.001)

	require.Len(t, result.MostEditedSections, 2)
	assert.Equal(t, "ch1", result.MostEditedSections[0].SectionID)
	assert.Equal(t, 3, result.MostEditedSections[0].EditCount)
	assert.Equal(t, []string{"ada", "ben"}, result.MostEditedSections[0].Editors)
	assert.Equal(t, "2026-08-03T08:00:00Z", result.MostEditedSections[0].LastEdit)

	// 4 edits / 2 collaborators / 10.
	assert.InDelta(t, 0.2, result.Efficiency, 0.001)
}

func TestAnalyzeCollaborationSingleEditor(t *testing.T) {
	svc := NewService()

	edits := []EditEvent{
		{ID: "e1", UserID: "ada", DocumentID: "ch1", Action: "insert", Timestamp: "2026-08-01T10:00:00Z"},
	}

	result := svc.AnalyzeCollaboration(edits)
	assert.Equal(t, 1, result.TotalCollaborators)
	assert.InDelta(t, 1.0, result.Efficiency, 0.001)
}
