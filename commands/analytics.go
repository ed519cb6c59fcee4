package commands

import (
	"fmt"

	"github.com/atelierink/ouvroir/analytics"
)

// AnalyzeText computes word counts, readability, and top-word frequencies.
func (s *AppState) AnalyzeText(text string) *Response {
	result := s.Analytics.AnalyzeText(text)
	return resultResponse(fmt.Sprintf("%d words, %d sentences", result.WordCount, result.SentenceCount), result)
}

// AnalyzeCharacterNetwork computes relationship density and centrality over
// the character graph.
func (s *AppState) AnalyzeCharacterNetwork(characters []analytics.Character,
	relationships []analytics.Relationship) *Response {
	result := s.Analytics.AnalyzeCharacters(characters, relationships)
	return resultResponse(
		fmt.Sprintf("%d characters, %.1f%% network density", result.TotalCharacters, result.NetworkDensity),
		result)
}

// AnalyzeWorld summarizes world-building events.
func (s *AppState) AnalyzeWorld(events []analytics.WorldEvent) *Response {
	result := s.Analytics.AnalyzeWorld(events)
	return resultResponse(result.TimelineSpan, result)
}

// AnalyzePlot computes completion and pacing over story beats.
func (s *AppState) AnalyzePlot(beats []analytics.Beat) *Response {
	result := s.Analytics.AnalyzePlot(beats)
	return resultResponse(
		fmt.Sprintf("%.0f%% complete, pacing: %s", result.CompletionPercentage, result.PacingAnalysis.OverallPace),
		result)
}

// CharacterForceGraph builds force-directed graph data for the character
// network.
func (s *AppState) CharacterForceGraph(characters []analytics.Character,
	relationships []analytics.Relationship) *Response {
	result := s.Analytics.ForceGraph(characters, relationships)
	return resultResponse(
		fmt.Sprintf("%d nodes, %d links", len(result.Nodes), len(result.Links)),
		result)
}

// FilterWorldEvents filters and sorts world events.
func (s *AppState) FilterWorldEvents(events []analytics.WorldEvent, sortBy, filterBy string) *Response {
	result := s.Analytics.FilterAndSortEvents(events, sortBy, filterBy)
	return resultResponse(fmt.Sprintf("%d events", len(result)), result)
}

// AnalyzeResearch summarizes research coverage and fact verification.
func (s *AppState) AnalyzeResearch(items []analytics.ResearchItem, factChecks []analytics.FactCheck) *Response {
	result := s.Analytics.AnalyzeResearch(items, factChecks)
	return resultResponse(
		fmt.Sprintf("%d items, %.0f%% verified", result.TotalItems, result.FactVerificationRate),
		result)
}

// AnalyzeCollaboration summarizes edit activity across collaborators.
func (s *AppState) AnalyzeCollaboration(edits []analytics.EditEvent) *Response {
	result := s.Analytics.AnalyzeCollaboration(edits)
	return resultResponse(fmt.Sprintf("%d collaborators", result.TotalCollaborators), result)
}

// AnalyzeStyleConsistency scores how consistent the writing style is across
// texts.
func (s *AppState) AnalyzeStyleConsistency(texts []string) *Response {
	result := s.Analytics.AnalyzeStyleConsistency(texts)
	return resultResponse(fmt.Sprintf("Consistency score: %.0f", result.ConsistencyScore), result)
}

// WritingSuggestions produces rule-based improvement suggestions for text.
func (s *AppState) WritingSuggestions(text string, suggestionTypes []string) *Response {
	result := s.Analytics.WritingSuggestions(text, suggestionTypes)
	return resultResponse(fmt.Sprintf("%d suggestions", len(result)), result)
}
