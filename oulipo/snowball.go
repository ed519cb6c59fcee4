package oulipo

import (
	"fmt"
	"strings"
)

// SnowballConstraint requires each word to be one letter longer than the
// previous, starting from a single-letter word.
type SnowballConstraint struct{}

// NewSnowballConstraint creates a snowball constraint.
func NewSnowballConstraint() *SnowballConstraint {
	return &SnowballConstraint{}
}

// Check implements Constraint.
func (c *SnowballConstraint) Check(text string) (*ConstraintResult, error) {
	return CheckSnowball(text)
}

// Name implements Constraint.
func (c *SnowballConstraint) Name() string { return "snowball" }

// Description implements Constraint.
func (c *SnowballConstraint) Description() string {
	return "Each word must be one letter longer than the previous"
}

// CheckSnowball verifies that word i (0-based) has exactly i+1 characters.
// Violation positions are cumulative rune offsets assuming single-space
// separation.
func CheckSnowball(text string) (*ConstraintResult, error) {
	words := strings.Fields(text)

	var violations []Violation
	actualLengths := make([]int, len(words))
	position := 0
	for i, word := range words {
		wordLen := CharCount(word)
		actualLengths[i] = wordLen
		expected := i + 1
		if wordLen != expected {
			violations = append(violations, Violation{
				Position:   position,
				Length:     wordLen,
				Issue:      fmt.Sprintf("Word %d should be %d letters, but is %d", i+1, expected, wordLen),
				Suggestion: fmt.Sprintf("Replace with a %d-letter word", expected),
			})
		}
		position += wordLen + 1
	}

	expectedPattern := make([]int, len(words))
	for i := range expectedPattern {
		expectedPattern[i] = i + 1
	}
	metadata := map[string]any{
		"word_count":       len(words),
		"violation_count":  len(violations),
		"expected_pattern": expectedPattern,
		"actual_lengths":   actualLengths,
	}

	if len(violations) == 0 {
		return successResult("Valid snowball pattern", []string{"Perfect snowball pattern!"}, metadata), nil
	}
	summary := fmt.Sprintf("%d violations found", len(violations))
	return failureResult(summary, violations, snowballSuggestions(), metadata), nil
}

func snowballSuggestions() []string {
	return []string{
		"Start with single-letter words (I, a)",
		"Use progressively longer synonyms",
		"Consider compound words for longer positions",
		"Plan the sentence structure in advance",
	}
}
