// Package oulipo implements constraint checking, text transformation, and
// generation for constrained-writing ("Oulipo") techniques. Constraints are
// small rule engines that scan text and report position-accurate violations;
// a factory registry provides name-keyed dynamic dispatch, and a workflow
// builder composes constraints with validation bounds into reusable
// configurations.
package oulipo

// ConstraintResult is the outcome of a single constraint check, transform, or
// generation. A result with Success=false is a normal response describing why
// the text does not satisfy the rule; it is never an error.
type ConstraintResult struct {
	// Success reports whether the constraint held (or generation succeeded).
	Success bool `json:"success"`

	// Result is a human-readable summary, or the transformed/generated text.
	Result string `json:"result,omitempty"`

	// Violations lists infractions in first-to-last order of occurrence.
	Violations []Violation `json:"violations"`

	// Suggestions holds free-text guidance; success results carry an
	// affirmation message.
	Suggestions []string `json:"suggestions"`

	// Metadata carries constraint-specific facts (counts, echoed parameters).
	// Generic code never interprets it.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Violation is a single located infraction of a constraint.
type Violation struct {
	// Position is the rune offset into the original input text where the
	// infraction starts.
	Position int `json:"position"`

	// Length is the rune span of the infraction. Whole-text violations use
	// the full text length (or zero) as a sentinel.
	Length int `json:"length"`

	// Issue names the rule and the offending value.
	Issue string `json:"issue"`

	// Suggestion is an optional fix hint.
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidationConfig holds optional length and word-count bounds.
// A nil field means no bound; all bounds are inclusive on the satisfying side.
type ValidationConfig struct {
	MinLength *int `json:"min_length,omitempty"`
	MaxLength *int `json:"max_length,omitempty"`
	MinWords  *int `json:"min_words,omitempty"`
	MaxWords  *int `json:"max_words,omitempty"`
}

// Constraint is a rule that text either satisfies or violates.
// Implementations are pure: Check is deterministic in the text and the
// configuration fixed at construction, and never mutates shared state.
// Any string is valid input; non-conforming text produces violations in the
// result, not an error.
type Constraint interface {
	// Check evaluates the constraint against text.
	Check(text string) (*ConstraintResult, error)

	// Name returns the stable identifier for this rule.
	Name() string

	// Description returns a human-readable explanation of the rule.
	Description() string
}

// Generator produces text following a fixed pattern.
type Generator interface {
	Generate(input string) (*ConstraintResult, error)
	Name() string
	Description() string
}

// Transformer rewrites text according to a fixed procedure (like N+7).
type Transformer interface {
	Transform(text string) (*ConstraintResult, error)
	Name() string
	Description() string
}

// successResult builds a passing result with an affirmation suggestion.
func successResult(summary string, suggestions []string, metadata map[string]any) *ConstraintResult {
	return &ConstraintResult{
		Success:     true,
		Result:      summary,
		Violations:  nil,
		Suggestions: suggestions,
		Metadata:    metadata,
	}
}

// failureResult builds a failing result carrying violations.
func failureResult(summary string, violations []Violation, suggestions []string, metadata map[string]any) *ConstraintResult {
	return &ConstraintResult{
		Success:     false,
		Result:      summary,
		Violations:  violations,
		Suggestions: suggestions,
		Metadata:    metadata,
	}
}
