package oulipo

import (
	"fmt"
	"strings"
)

// Sestina structure: 6 stanzas of 6 lines plus a 3-line envoi.
const (
	sestinaEndWords = 6
	sestinaLines    = 39
)

// sestinaPattern gives, per stanza, the index into the end-word list that
// each line must end with. Each stanza is the classical retrogradatio
// cruciata rotation of the previous one.
var sestinaPattern = [6][6]int{
	{0, 1, 2, 3, 4, 5},
	{5, 0, 4, 1, 3, 2},
	{2, 5, 3, 0, 1, 4},
	{4, 2, 1, 5, 0, 3},
	{3, 4, 0, 2, 5, 1},
	{1, 3, 5, 4, 2, 0},
}

// SestinaConstraint requires the fixed 39-line sestina form with a specific
// end-word rotation across six stanzas.
type SestinaConstraint struct {
	endWords []string
}

// NewSestinaConstraint creates a sestina constraint over the given end words.
// Structural problems (wrong word count, wrong line count) are reported as
// failing results at check time, not construction errors.
func NewSestinaConstraint(endWords []string) *SestinaConstraint {
	words := make([]string, len(endWords))
	copy(words, endWords)
	return &SestinaConstraint{endWords: words}
}

// Check implements Constraint.
func (c *SestinaConstraint) Check(text string) (*ConstraintResult, error) {
	return CheckSestina(text, c.endWords)
}

// Name implements Constraint.
func (c *SestinaConstraint) Name() string { return "sestina" }

// Description implements Constraint.
func (c *SestinaConstraint) Description() string {
	return "Text must follow the 39-line sestina end-word rotation"
}

// CheckSestina validates the sestina structure. Texts with the wrong number
// of end words or lines get a single whole-text violation; structurally valid
// texts are checked line by line against the rotation pattern, each mismatch
// keyed by line index.
func CheckSestina(text string, endWords []string) (*ConstraintResult, error) {
	if len(endWords) != sestinaEndWords {
		return failureResult("",
			[]Violation{{
				Position:   0,
				Length:     CharCount(text),
				Issue:      "Sestina requires exactly 6 end words",
				Suggestion: "Provide exactly 6 end words for the sestina pattern",
			}},
			[]string{"A sestina uses 6 specific words that end each line in a rotating pattern"},
			map[string]any{
				"constraint_type":    "sestina",
				"provided_end_words": len(endWords),
				"required_end_words": sestinaEndWords,
			}), nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != sestinaLines {
		return failureResult("",
			[]Violation{{
				Position:   0,
				Length:     CharCount(text),
				Issue:      fmt.Sprintf("Sestina should have 39 lines (6 stanzas + 3-line envoi), found %d", len(lines)),
				Suggestion: "Structure: 6 stanzas of 6 lines each, plus 3-line concluding envoi",
			}},
			[]string{
				"Each stanza should have 6 lines",
				"End with a 3-line envoi (concluding tercet)",
				"Each line should end with one of the 6 designated words",
			},
			map[string]any{
				"constraint_type": "sestina",
				"line_count":      len(lines),
				"expected_lines":  sestinaLines,
			}), nil
	}

	var violations []Violation
	for stanza, pattern := range sestinaPattern {
		for lineInStanza, wordIdx := range pattern {
			lineIdx := stanza*6 + lineInStanza
			line := strings.TrimSpace(lines[lineIdx])
			want := endWords[wordIdx]
			if !strings.HasSuffix(strings.ToLower(line), strings.ToLower(want)) {
				fields := strings.Fields(line)
				got := ""
				if len(fields) > 0 {
					got = fields[len(fields)-1]
				}
				violations = append(violations, Violation{
					Position:   lineIdx,
					Length:     CharCount(line),
					Issue:      fmt.Sprintf("Line %d should end with %q, but ends with %q", lineIdx+1, want, got),
					Suggestion: fmt.Sprintf("Rewrite line to end with %q", want),
				})
			}
		}
	}

	metadata := map[string]any{
		"constraint_type": "sestina",
		"end_words":       endWords,
		"violation_count": len(violations),
		"line_count":      len(lines),
	}

	if len(violations) == 0 {
		return successResult("Valid sestina structure",
			[]string{"Perfect sestina structure!"}, metadata), nil
	}
	summary := fmt.Sprintf("Sestina structure has %d violations", len(violations))
	return failureResult(summary, violations, []string{
		"Check line endings match the sestina pattern",
		"Ensure each stanza follows the word rotation",
		"Verify the 3-line envoi uses all 6 words",
	}, metadata), nil
}
