package analytics

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Service computes analytics. It is stateless and safe for concurrent use.
type Service struct{}

// NewService creates an analytics service.
func NewService() *Service {
	return &Service{}
}

// AnalyzeText computes prose metrics for a single text.
func (s *Service) AnalyzeText(text string) TextAnalytics {
	words := strings.Fields(text)
	wordCount := len(words)
	characterCount := len([]rune(text))
	sentenceCount := countSentences(text)
	paragraphCount := countParagraphs(text)

	avgSentenceLength := 0.0
	if sentenceCount > 0 {
		avgSentenceLength = float64(wordCount) / float64(sentenceCount)
	}

	// Simplified Flesch reading-ease, clamped to [0, 100].
	readability := 206.835 - 1.015*avgSentenceLength
	if readability < 0 {
		readability = 0
	}
	if readability > 100 {
		readability = 100
	}

	freq := make(map[string]int)
	for _, word := range words {
		clean := strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if clean != "" {
			freq[clean]++
		}
	}

	topWords := make([]WordFrequency, 0, len(freq))
	for word, count := range freq {
		topWords = append(topWords, WordFrequency{
			Word:      word,
			Count:     count,
			Frequency: float64(count) / float64(wordCount),
		})
	}
	sort.Slice(topWords, func(i, j int) bool {
		if topWords[i].Count != topWords[j].Count {
			return topWords[i].Count > topWords[j].Count
		}
		return topWords[i].Word < topWords[j].Word
	})
	if len(topWords) > 10 {
		topWords = topWords[:10]
	}

	return TextAnalytics{
		WordCount:        wordCount,
		CharacterCount:   characterCount,
		SentenceCount:    sentenceCount,
		ParagraphCount:   paragraphCount,
		ReadabilityScore: readability,
		ComplexityScore:  avgSentenceLength,
		TopWords:         topWords,
	}
}

// AnalyzeCharacters summarizes the character relationship network. Density is
// a percentage of the maximum possible undirected connections.
func (s *Service) AnalyzeCharacters(characters []Character, relationships []Relationship) CharacterAnalytics {
	totalCharacters := len(characters)
	totalRelationships := len(relationships)

	connectionCounts := make(map[string]int)
	relationshipTypes := make(map[string]int)
	for _, rel := range relationships {
		connectionCounts[rel.From]++
		connectionCounts[rel.To]++
		relationshipTypes[rel.Type]++
	}

	maxPossible := 1
	if totalCharacters > 1 {
		maxPossible = totalCharacters * (totalCharacters - 1) / 2
	}
	density := float64(totalRelationships) / float64(maxPossible) * 100.0

	namesByID := make(map[string]string, totalCharacters)
	for _, c := range characters {
		namesByID[c.ID] = c.Name
	}

	central := make([]CentralCharacter, 0, len(connectionCounts))
	for id, count := range connectionCounts {
		name, ok := namesByID[id]
		if !ok {
			name = id
		}
		score := 0.0
		if totalRelationships > 0 {
			score = float64(count) / float64(totalRelationships)
		}
		central = append(central, CentralCharacter{
			CharacterID:     id,
			Name:            name,
			CentralityScore: score,
			ConnectionCount: count,
		})
	}
	sort.Slice(central, func(i, j int) bool {
		if central[i].ConnectionCount != central[j].ConnectionCount {
			return central[i].ConnectionCount > central[j].ConnectionCount
		}
		return central[i].Name < central[j].Name
	})

	var isolated []string
	for _, c := range characters {
		if connectionCounts[c.ID] == 0 {
			isolated = append(isolated, c.Name)
		}
	}

	return CharacterAnalytics{
		TotalCharacters:    totalCharacters,
		RelationshipsCount: totalRelationships,
		NetworkDensity:     density,
		CentralCharacters:  central,
		IsolatedCharacters: isolated,
		RelationshipTypes:  relationshipTypes,
	}
}

// AnalyzeWorld summarizes event distribution across the story world.
func (s *Service) AnalyzeWorld(events []WorldEvent) WorldAnalytics {
	totalEvents := len(events)

	eventTypes := make(map[string]int)
	importance := make([]int, 0, totalEvents)
	for _, e := range events {
		eventTypes[e.Type]++
		importance = append(importance, e.Importance)
	}

	timelineSpan := "No events"
	if totalEvents > 0 {
		timelineSpan = fmt.Sprintf("%d events spanning timeline", totalEvents)
	}

	return WorldAnalytics{
		TotalEvents:            totalEvents,
		TimelineSpan:           timelineSpan,
		EventDensity:           float64(totalEvents) / 100.0,
		EventTypes:             eventTypes,
		ImportanceDistribution: importance,
	}
}

// AnalyzePlot summarizes beat completion and pacing. Acts split at the 20%
// and 80% marks.
func (s *Service) AnalyzePlot(beats []Beat) PlotAnalytics {
	totalBeats := len(beats)
	completed := 0
	wordCounts := make([]int, 0, totalBeats)
	for _, b := range beats {
		if b.IsCompleted {
			completed++
		}
		wordCounts = append(wordCounts, b.WordCount)
	}

	completion := 0.0
	if totalBeats > 0 {
		completion = float64(completed) / float64(totalBeats) * 100.0
	}

	pace := "Needs Attention"
	if completion > 50.0 {
		pace = "Good Progress"
	}

	return PlotAnalytics{
		TotalBeats:            totalBeats,
		CompletionPercentage:  completion,
		WordCountDistribution: wordCounts,
		PacingAnalysis: PacingAnalysis{
			OverallPace:            pace,
			SlowSections:           []string{"Act I"},
			FastSections:           []string{"Act III"},
			RecommendedAdjustments: []string{"Consider expanding character development"},
		},
		ActProgress: actProgress(beats),
	}
}

func actProgress(beats []Beat) map[string]float64 {
	progress := func(filter func(Beat) bool) float64 {
		total, done := 0, 0
		for _, b := range beats {
			if !filter(b) {
				continue
			}
			total++
			if b.IsCompleted {
				done++
			}
		}
		if total == 0 {
			return 0
		}
		return float64(done) / float64(total) * 100.0
	}

	return map[string]float64{
		"Act I":   progress(func(b Beat) bool { return b.Percentage <= 20 }),
		"Act II":  progress(func(b Beat) bool { return b.Percentage > 20 && b.Percentage <= 80 }),
		"Act III": progress(func(b Beat) bool { return b.Percentage > 80 }),
	}
}

var nodePalette = []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#ec4899"}

var linkColors = map[string]string{
	"ally":   "#10b981",
	"friend": "#3b82f6",
	"lover":  "#ec4899",
	"family": "#8b5cf6",
	"enemy":  "#ef4444",
	"rival":  "#f59e0b",
	"mentor": "#06b6d4",
}

// ForceGraph builds a force-directed graph view of the character network.
// Node size scales with connection count; link weight is the normalized
// relationship strength.
func (s *Service) ForceGraph(characters []Character, relationships []Relationship) ForceGraphData {
	nodes := make([]GraphNode, 0, len(characters))
	for i, c := range characters {
		connections := 0
		for _, rel := range relationships {
			if rel.From == c.ID || rel.To == c.ID {
				connections++
			}
		}

		denominator := len(characters) - 1
		if denominator < 1 {
			denominator = 1
		}
		centrality := float64(connections) / float64(denominator)

		color := c.Color
		if color == "" {
			color = nodePalette[i%len(nodePalette)]
		}

		sizeBonus := float64(connections) * 3.0
		if sizeBonus > 15.0 {
			sizeBonus = 15.0
		}

		nodes = append(nodes, GraphNode{
			ID:    c.ID,
			Name:  c.Name,
			Group: i % 5,
			Size:  20.0 + sizeBonus,
			Color: color,
			Properties: map[string]any{
				"centrality":  centrality,
				"connections": connections,
			},
		})
	}

	links := make([]GraphLink, 0, len(relationships))
	for _, rel := range relationships {
		strength := rel.Strength / 100.0
		color, ok := linkColors[strings.ToLower(rel.Type)]
		if !ok {
			color = "#6b7280"
		}
		links = append(links, GraphLink{
			Source: rel.From,
			Target: rel.To,
			Weight: strength,
			Type:   rel.Type,
			Properties: map[string]any{
				"color":    color,
				"width":    2.0 + strength*4.0,
				"distance": 80.0 + (1.0-strength)*50.0,
			},
		})
	}

	nodeCount := len(nodes)
	linkCount := len(links)
	density := 0.0
	avgDegree := 0.0
	if nodeCount > 1 {
		density = 2.0 * float64(linkCount) / (float64(nodeCount) * float64(nodeCount-1))
	}
	if nodeCount > 0 {
		avgDegree = 2.0 * float64(linkCount) / float64(nodeCount)
	}

	return ForceGraphData{
		Nodes: nodes,
		Links: links,
		Metadata: GraphMetadata{
			TotalNodes:    nodeCount,
			TotalLinks:    linkCount,
			Density:       density,
			AverageDegree: avgDegree,
		},
	}
}

// FilterAndSortEvents filters events by a substring of type or description
// and sorts by "date", "type", or "importance" (descending).
func (s *Service) FilterAndSortEvents(events []WorldEvent, sortBy, filterBy string) []WorldEvent {
	filtered := make([]WorldEvent, 0, len(events))
	for _, e := range events {
		if filterBy != "" && !strings.Contains(e.Type, filterBy) && !strings.Contains(e.Description, filterBy) {
			continue
		}
		filtered = append(filtered, e)
	}

	switch sortBy {
	case "date":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })
	case "type":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Type < filtered[j].Type })
	case "importance":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Importance > filtered[j].Importance })
	}

	return filtered
}

// AnalyzeResearch summarizes research coverage: verification rate over the
// fact checks, credibility and source distribution over the items, and
// heuristic gaps where the material is thin.
func (s *Service) AnalyzeResearch(items []ResearchItem, factChecks []FactCheck) ResearchAnalytics {
	totalItems := len(items)

	verified := 0
	for _, fc := range factChecks {
		if fc.VerificationStatus == "verified" {
			verified++
		}
	}
	verificationRate := 0.0
	if len(factChecks) > 0 {
		verificationRate = float64(verified) / float64(len(factChecks)) * 100.0
	}

	credibility := make([]float64, 0, totalItems)
	sourceBreakdown := make(map[string]int)
	tagFrequency := make(map[string]int)
	credibilitySum := 0.0
	for _, item := range items {
		credibility = append(credibility, item.Credibility)
		credibilitySum += item.Credibility
		if item.Source != "" {
			sourceBreakdown[item.Source]++
		}
		for _, tag := range item.Tags {
			tagFrequency[tag]++
		}
	}

	avgCredibility := 0.0
	if totalItems > 0 {
		avgCredibility = credibilitySum / float64(totalItems)
	}

	diversity := 0.0
	if totalItems > 0 {
		diversity = float64(len(sourceBreakdown)) / float64(totalItems) * 100.0
	}

	var gaps []string
	if tagFrequency["historical"] < 3 {
		gaps = append(gaps, "Need more historical research")
	}
	if tagFrequency["technical"] < 2 {
		gaps = append(gaps, "Technical details need more sources")
	}
	if len(factChecks) > 0 && verified < len(factChecks)/2 {
		gaps = append(gaps, "Many facts need verification")
	}

	return ResearchAnalytics{
		TotalItems:              totalItems,
		VerifiedItems:           verified,
		FactVerificationRate:    verificationRate,
		AverageCredibility:      avgCredibility,
		CredibilityDistribution: credibility,
		SourceBreakdown:         sourceBreakdown,
		TagFrequency:            tagFrequency,
		SourceDiversity:         diversity,
		ResearchGaps:            gaps,
	}
}

// AnalyzeCollaboration summarizes edit activity per collaborator and per
// document. Words contributed and session lengths are rough estimates from
// edit counts.
func (s *Service) AnalyzeCollaboration(edits []EditEvent) CollaborationMetrics {
	editFrequency := make(map[string]int)
	sections := make(map[string]*EditedSection)
	editorsBySection := make(map[string]map[string]struct{})
	for _, edit := range edits {
		editFrequency[edit.UserID]++

		section, ok := sections[edit.DocumentID]
		if !ok {
			section = &EditedSection{SectionID: edit.DocumentID}
			sections[edit.DocumentID] = section
			editorsBySection[edit.DocumentID] = make(map[string]struct{})
		}
		section.EditCount++
		if edit.Timestamp > section.LastEdit {
			section.LastEdit = edit.Timestamp
		}
		editorsBySection[edit.DocumentID][edit.UserID] = struct{}{}
	}

	contributions := make([]UserContribution, 0, len(editFrequency))
	for userID, count := range editFrequency {
		contributions = append(contributions, UserContribution{
			UserID:           userID,
			TotalEdits:       count,
			WordsContributed: count * 50,
			AvgSessionLength: 30.0,
		})
	}
	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].TotalEdits != contributions[j].TotalEdits {
			return contributions[i].TotalEdits > contributions[j].TotalEdits
		}
		return contributions[i].UserID < contributions[j].UserID
	})

	mostEdited := make([]EditedSection, 0, len(sections))
	for id, section := range sections {
		editors := make([]string, 0, len(editorsBySection[id]))
		for editor := range editorsBySection[id] {
			editors = append(editors, editor)
		}
		sort.Strings(editors)
		section.Editors = editors
		mostEdited = append(mostEdited, *section)
	}
	sort.Slice(mostEdited, func(i, j int) bool {
		if mostEdited[i].EditCount != mostEdited[j].EditCount {
			return mostEdited[i].EditCount > mostEdited[j].EditCount
		}
		return mostEdited[i].SectionID < mostEdited[j].SectionID
	})

	collaborators := len(editFrequency)
	efficiency := 1.0
	if collaborators > 1 {
		efficiency = float64(len(edits)) / float64(collaborators) / 10.0
	}

	return CollaborationMetrics{
		TotalCollaborators:  collaborators,
		ActiveCollaborators: collaborators,
		EditFrequency:       editFrequency,
		ContributionBalance: contributions,
		MostEditedSections:  mostEdited,
		Efficiency:          efficiency,
	}
}

// AnalyzeStyleConsistency compares sentence-length and vocabulary variation
// across texts. Higher scores mean more uniform style.
func (s *Service) AnalyzeStyleConsistency(texts []string) StyleConsistency {
	if len(texts) == 0 {
		return StyleConsistency{}
	}

	avgLengths := make([]float64, 0, len(texts))
	vocabSizes := make([]int, 0, len(texts))

	for _, text := range texts {
		sentences := splitSentences(text)
		totalWords := 0
		for _, sentence := range sentences {
			totalWords += len(strings.Fields(sentence))
		}
		avg := 0.0
		if len(sentences) > 0 {
			avg = float64(totalWords) / float64(len(sentences))
		}
		avgLengths = append(avgLengths, avg)

		vocab := make(map[string]struct{})
		for _, word := range strings.Fields(strings.ToLower(text)) {
			clean := strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
			if clean != "" {
				vocab[clean] = struct{}{}
			}
		}
		vocabSizes = append(vocabSizes, len(vocab))
	}

	vocabFloats := make([]float64, len(vocabSizes))
	for i, v := range vocabSizes {
		vocabFloats[i] = float64(v)
	}

	lengthVariance := variance(avgLengths)
	vocabVariance := variance(vocabFloats)
	penalty := lengthVariance + vocabVariance
	if penalty > 100.0 {
		penalty = 100.0
	}

	return StyleConsistency{
		ConsistencyScore:       100.0 - penalty,
		AvgSentenceLengths:     avgLengths,
		VocabularySizes:        vocabSizes,
		SentenceLengthVariance: lengthVariance,
		VocabularyVariance:     vocabVariance,
	}
}

// WritingSuggestions inspects the text for the requested suggestion types:
// "sentence_variety", "word_choice", and "dialogue_tags".
func (s *Service) WritingSuggestions(text string, suggestionTypes []string) []string {
	var suggestions []string
	lower := strings.ToLower(text)

	for _, suggestionType := range suggestionTypes {
		switch suggestionType {
		case "sentence_variety":
			sentences := splitSentences(text)
			avgLength := 0
			if len(sentences) > 0 {
				totalWords := 0
				for _, sentence := range sentences {
					totalWords += len(strings.Fields(sentence))
				}
				avgLength = totalWords / len(sentences)
			}
			if avgLength > 0 && avgLength < 8 {
				suggestions = append(suggestions, "Consider varying your sentence length. Your sentences are quite short on average. Try combining some ideas into longer, more complex sentences.")
			} else if avgLength > 25 {
				suggestions = append(suggestions, "Your sentences are quite long on average. Consider breaking some complex sentences into shorter, more digestible ones.")
			}
		case "word_choice":
			commonWords := []string{"very", "really", "quite", "just", "that"}
			var overused []string
			for _, word := range commonWords {
				if strings.Count(lower, word) > 5 {
					overused = append(overused, word)
				}
			}
			if len(overused) > 0 {
				suggestions = append(suggestions, fmt.Sprintf(
					"Consider reducing the use of these common words: %s. Try more specific alternatives.",
					strings.Join(overused, ", ")))
			}
		case "dialogue_tags":
			dialogueCount := strings.Count(text, `"`) / 2
			saidCount := strings.Count(lower, " said")
			if dialogueCount > 0 && float64(saidCount)/float64(dialogueCount) > 0.7 {
				suggestions = append(suggestions, "Consider varying your dialogue tags. Using 'said' frequently is good, but occasionally try alternatives like 'whispered', 'exclaimed', or 'replied'.")
			}
		default:
			suggestions = append(suggestions, fmt.Sprintf("No specific suggestions available for: %s", suggestionType))
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your writing looks good! Keep up the great work.")
	}
	return suggestions
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

func countSentences(text string) int {
	return len(splitSentences(text))
}

func countParagraphs(text string) int {
	count := 0
	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) != "" {
			count++
		}
	}
	return count
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		diff := mean - v
		sum += diff * diff
	}
	return sum / float64(len(values))
}
