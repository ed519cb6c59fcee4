package oulipo

import (
	"fmt"
	"strings"
	"unicode"
)

// Letters permitted and forbidden by the prisoner's constraint. The allowed
// set contains only letters without ascenders, descenders, or loops.
const (
	prisonersAllowed   = "cfhijklmnstuvwxyz"
	prisonersForbidden = "abdegopqr"
)

// PrisonersConstraint permits only loop-free letters.
type PrisonersConstraint struct{}

// NewPrisonersConstraint creates a prisoner's constraint.
func NewPrisonersConstraint() *PrisonersConstraint {
	return &PrisonersConstraint{}
}

// Check implements Constraint.
func (c *PrisonersConstraint) Check(text string) (*ConstraintResult, error) {
	return CheckPrisoners(text)
}

// Name implements Constraint.
func (c *PrisonersConstraint) Name() string { return "prisoners" }

// Description implements Constraint.
func (c *PrisonersConstraint) Description() string {
	return "Only letters without loops are permitted"
}

// CheckPrisoners reports a length-1 violation for every alphabetic character
// outside the loop-free set, case-insensitively. Non-alphabetic characters
// are unconstrained.
func CheckPrisoners(text string) (*ConstraintResult, error) {
	var violations []Violation
	pos := 0
	for _, ch := range text {
		if unicode.IsLetter(ch) && !strings.ContainsRune(prisonersAllowed, unicode.ToLower(ch)) {
			violations = append(violations, Violation{
				Position:   pos,
				Length:     1,
				Issue:      fmt.Sprintf("Letter %q contains loops and is forbidden", ch),
				Suggestion: "Replace with a letter without loops",
			})
		}
		pos++
	}

	metadata := map[string]any{
		"allowed_letters":   prisonersAllowed,
		"forbidden_letters": prisonersForbidden,
		"violation_count":   len(violations),
		"text_length":       CharCount(text),
	}

	if len(violations) == 0 {
		return successResult("Valid prisoner's constraint text",
			[]string{"Perfect prisoner's constraint text!"}, metadata), nil
	}
	summary := fmt.Sprintf("%d forbidden letters found", len(violations))
	return failureResult(summary, violations, prisonersSuggestions(), metadata), nil
}

func prisonersSuggestions() []string {
	return []string{
		"Use only letters without loops: c, f, h, i, j, k, l, m, n, s, t, u, v, w, x, y, z",
		"Avoid letters: a, b, d, e, g, o, p, q, r",
		"Focus on words with straight lines and simple curves",
		"Think of letters that could be drawn with sticks",
	}
}
