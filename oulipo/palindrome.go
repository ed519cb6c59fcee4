package oulipo

import (
	"fmt"
	"unicode"
)

// PalindromeConstraint requires text to read the same forwards and backwards
// after removing non-alphanumeric characters and lowercasing.
type PalindromeConstraint struct{}

// NewPalindromeConstraint creates a palindrome constraint.
func NewPalindromeConstraint() *PalindromeConstraint {
	return &PalindromeConstraint{}
}

// Check implements Constraint.
func (c *PalindromeConstraint) Check(text string) (*ConstraintResult, error) {
	return CheckPalindrome(text)
}

// Name implements Constraint.
func (c *PalindromeConstraint) Name() string { return "palindrome" }

// Description implements Constraint.
func (c *PalindromeConstraint) Description() string {
	return "Text must read the same forwards and backwards"
}

// CheckPalindrome normalizes text to lowercase alphanumerics and tests it
// against its own reverse. Violation positions are mapped back to rune
// offsets in the original text; the normalized form is available in metadata.
func CheckPalindrome(text string) (*ConstraintResult, error) {
	// Normalized runes plus, per normalized index, the rune offset of the
	// character in the original text.
	var normalized []rune
	var origOffsets []int
	pos := 0
	for _, ch := range text {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			normalized = append(normalized, unicode.ToLower(ch))
			origOffsets = append(origOffsets, pos)
		}
		pos++
	}

	var violations []Violation
	n := len(normalized)
	for i := 0; i < n; i++ {
		mirror := normalized[n-1-i]
		if normalized[i] != mirror {
			violations = append(violations, Violation{
				Position:   origOffsets[i],
				Length:     1,
				Issue:      fmt.Sprintf("Character %q doesn't match its mirror %q", normalized[i], mirror),
				Suggestion: fmt.Sprintf("Consider changing to %q", mirror),
			})
		}
	}

	isPalindrome := len(violations) == 0
	metadata := map[string]any{
		"original_length": CharCount(text),
		"cleaned_length":  n,
		"is_palindrome":   isPalindrome,
		"cleaned_text":    string(normalized),
	}

	if isPalindrome {
		return successResult("Valid palindrome", []string{"Perfect palindrome!"}, metadata), nil
	}
	return failureResult("Not a palindrome", violations, palindromeSuggestions(), metadata), nil
}

func palindromeSuggestions() []string {
	return []string{
		"Add mirroring words at the end",
		"Remove or modify middle words",
		"Try single-word palindromes first",
		"Consider phrase-level palindromes",
	}
}
