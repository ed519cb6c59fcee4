package oulipo

import (
	"fmt"
	"strings"
	"unicode"
)

// UnivocalicConstraint permits only one vowel throughout the text.
type UnivocalicConstraint struct {
	allowed rune
}

// NewUnivocalicConstraint creates a univocalic constraint allowing only the
// given vowel. It returns a ConfigError if vowel is not one of a, e, i, o, u.
func NewUnivocalicConstraint(vowel rune) (*UnivocalicConstraint, error) {
	if !IsVowel(vowel) {
		return nil, NewConfigError("%q is not a valid vowel", vowel)
	}
	return &UnivocalicConstraint{allowed: unicode.ToLower(vowel)}, nil
}

// Check implements Constraint.
func (c *UnivocalicConstraint) Check(text string) (*ConstraintResult, error) {
	return CheckUnivocalic(text, c.allowed)
}

// Name implements Constraint.
func (c *UnivocalicConstraint) Name() string { return "univocalic" }

// Description implements Constraint.
func (c *UnivocalicConstraint) Description() string {
	return "Text must use only one vowel throughout"
}

// CheckUnivocalic reports a length-1 violation for every vowel in text that
// is not the allowed vowel, case-insensitively. Consonants and non-alphabetic
// characters are unconstrained.
func CheckUnivocalic(text string, allowedVowel rune) (*ConstraintResult, error) {
	allowed := unicode.ToLower(allowedVowel)

	var violations []Violation
	pos := 0
	for _, ch := range text {
		if IsVowel(ch) && unicode.ToLower(ch) != allowed {
			violations = append(violations, Violation{
				Position:   pos,
				Length:     1,
				Issue:      fmt.Sprintf("Vowel %q is not allowed (only %q permitted)", ch, allowed),
				Suggestion: fmt.Sprintf("Replace with word containing only %q", allowed),
			})
		}
		pos++
	}

	metadata := map[string]any{
		"allowed_vowel":    string(allowed),
		"forbidden_vowels": strings.ReplaceAll(Vowels, string(allowed), ""),
		"violation_count":  len(violations),
		"text_length":      CharCount(text),
	}

	if len(violations) == 0 {
		summary := fmt.Sprintf("Valid univocalic using %q", allowed)
		return successResult(summary,
			[]string{fmt.Sprintf("Perfect univocalic using %q!", allowed)}, metadata), nil
	}
	summary := fmt.Sprintf("%d forbidden vowels found", len(violations))
	return failureResult(summary, violations, univocalicSuggestions(allowed), metadata), nil
}

func univocalicSuggestions(allowed rune) []string {
	switch allowed {
	case 'a':
		return []string{
			"Use words like: at, and, has, that, man, can",
			"A constraint that can make grand narratives",
		}
	case 'e':
		return []string{
			"Use words like: the, when, then, these, never",
			"Create sentences where every letter helps",
		}
	case 'i':
		return []string{
			"Use words like: in, is, it, this, with, kind",
			"Think minimal - it is tricky writing",
		}
	case 'o':
		return []string{
			"Use words like: on, do, go, of, from, long",
			"Conform to strong word contortions",
		}
	case 'u':
		return []string{
			"Use words like: up, but, just, much, run",
			"Construct full turns - unusually fun",
		}
	default:
		return []string{
			fmt.Sprintf("Focus on words containing only %q", allowed),
			"Use a dictionary to find suitable words",
		}
	}
}
