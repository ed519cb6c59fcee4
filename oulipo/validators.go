package oulipo

import (
	"fmt"
	"unicode"
)

// ValidateTextLength checks character-count bounds. maxLength nil means no
// upper bound; both bounds are inclusive on the satisfying side.
func ValidateTextLength(text string, minLength int, maxLength *int) (*ConstraintResult, error) {
	length := CharCount(text)

	var violations []Violation
	if length < minLength {
		violations = append(violations, Violation{
			Position:   0,
			Length:     length,
			Issue:      fmt.Sprintf("Text too short: %d characters (minimum %d)", length, minLength),
			Suggestion: fmt.Sprintf("Add %d more characters", minLength-length),
		})
	}
	if maxLength != nil && length > *maxLength {
		violations = append(violations, Violation{
			Position:   *maxLength,
			Length:     length - *maxLength,
			Issue:      fmt.Sprintf("Text too long: %d characters (maximum %d)", length, *maxLength),
			Suggestion: fmt.Sprintf("Remove %d characters", length-*maxLength),
		})
	}

	metadata := map[string]any{
		"constraint_type": "length_validation",
		"current_length":  length,
		"min_length":      minLength,
	}
	if maxLength != nil {
		metadata["max_length"] = *maxLength
	}

	summary := fmt.Sprintf("Text length: %d characters", length)
	if len(violations) == 0 {
		return successResult(summary, []string{"Text length is within bounds"}, metadata), nil
	}
	return failureResult(summary, violations,
		[]string{"Adjust text length to meet requirements"}, metadata), nil
}

// ValidateWordCount checks word-count bounds. maxWords nil means no upper
// bound.
func ValidateWordCount(text string, minWords int, maxWords *int) (*ConstraintResult, error) {
	count := WordCount(text)

	var violations []Violation
	if count < minWords {
		violations = append(violations, Violation{
			Position:   0,
			Length:     CharCount(text),
			Issue:      fmt.Sprintf("Too few words: %d (minimum %d)", count, minWords),
			Suggestion: fmt.Sprintf("Add %d more words", minWords-count),
		})
	}
	if maxWords != nil && count > *maxWords {
		violations = append(violations, Violation{
			Position:   0,
			Length:     CharCount(text),
			Issue:      fmt.Sprintf("Too many words: %d (maximum %d)", count, *maxWords),
			Suggestion: fmt.Sprintf("Remove %d words", count-*maxWords),
		})
	}

	metadata := map[string]any{
		"constraint_type": "word_count_validation",
		"current_words":   count,
		"min_words":       minWords,
	}
	if maxWords != nil {
		metadata["max_words"] = *maxWords
	}

	summary := fmt.Sprintf("Word count: %d", count)
	if len(violations) == 0 {
		return successResult(summary, []string{"Word count is within bounds"}, metadata), nil
	}
	return failureResult(summary, violations,
		[]string{"Adjust word count to meet requirements"}, metadata), nil
}

// CheckCharacterFrequency verifies that target occurs at most maxFrequency
// times in text, case-insensitively.
func CheckCharacterFrequency(text string, target rune, maxFrequency int) (*ConstraintResult, error) {
	targetLower := unicode.ToLower(target)
	count := 0
	for _, ch := range text {
		if unicode.ToLower(ch) == targetLower {
			count++
		}
	}

	var violations []Violation
	if count > maxFrequency {
		violations = append(violations, Violation{
			Position:   0,
			Length:     CharCount(text),
			Issue:      fmt.Sprintf("Character %q appears %d times (maximum %d)", target, count, maxFrequency),
			Suggestion: fmt.Sprintf("Remove %d occurrences of %q", count-maxFrequency, target),
		})
	}

	metadata := map[string]any{
		"constraint_type":  "character_frequency",
		"target_character": string(target),
		"frequency":        count,
		"max_frequency":    maxFrequency,
	}

	summary := fmt.Sprintf("Character %q appears %d times", target, count)
	if len(violations) == 0 {
		return successResult(summary,
			[]string{fmt.Sprintf("Character frequency for %q is within limits", target)}, metadata), nil
	}
	return failureResult(summary, violations,
		[]string{fmt.Sprintf("Reduce usage of character %q", target)}, metadata), nil
}
