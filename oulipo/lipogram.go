package oulipo

import (
	"fmt"
	"unicode"
)

// LipogramConstraint forbids one letter throughout the text.
type LipogramConstraint struct {
	forbidden rune
}

// NewLipogramConstraint creates a lipogram constraint forbidding letter,
// case-insensitively.
func NewLipogramConstraint(letter rune) *LipogramConstraint {
	return &LipogramConstraint{forbidden: unicode.ToLower(letter)}
}

// Check implements Constraint.
func (c *LipogramConstraint) Check(text string) (*ConstraintResult, error) {
	return CheckLipogram(text, c.forbidden)
}

// Name implements Constraint.
func (c *LipogramConstraint) Name() string { return "lipogram" }

// Description implements Constraint.
func (c *LipogramConstraint) Description() string {
	return "Text must not contain the forbidden letter"
}

// CheckLipogram scans text for occurrences of the forbidden letter,
// case-insensitively, and reports a length-1 violation at each occurrence.
func CheckLipogram(text string, forbidden rune) (*ConstraintResult, error) {
	forbidden = unicode.ToLower(forbidden)

	var violations []Violation
	pos := 0
	for _, ch := range text {
		if unicode.ToLower(ch) == forbidden {
			violations = append(violations, Violation{
				Position:   pos,
				Length:     1,
				Issue:      fmt.Sprintf("Forbidden letter %q found", forbidden),
				Suggestion: "Replace with alternative word",
			})
		}
		pos++
	}

	metadata := map[string]any{
		"forbidden_letter": string(forbidden),
		"violation_count":  len(violations),
		"text_length":      CharCount(text),
	}

	if len(violations) == 0 {
		return successResult("Valid lipogram", []string{"Perfect lipogram!"}, metadata), nil
	}
	return failureResult("Violations found", violations, lipogramSuggestions(forbidden), metadata), nil
}

func lipogramSuggestions(forbidden rune) []string {
	return []string{
		fmt.Sprintf("Avoid words containing %q", forbidden),
		"Use synonyms without the forbidden letter",
		"Restructure sentences to eliminate problematic words",
		"Consider alternative phrasings",
	}
}
