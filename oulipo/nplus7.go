package oulipo

import "strings"

// NPlusTransformer applies the N+7 method: every word found in the
// dictionary is replaced by the word offset positions later in the
// vocabulary; unmatched words pass through verbatim.
type NPlusTransformer struct {
	offset int
	dict   *Dictionary
}

// NewNPlusTransformer creates an N+offset transformer over dict.
func NewNPlusTransformer(offset int, dict *Dictionary) *NPlusTransformer {
	return &NPlusTransformer{offset: offset, dict: dict}
}

// Transform implements Transformer.
func (t *NPlusTransformer) Transform(text string) (*ConstraintResult, error) {
	return NPlusTransform(text, t.offset, t.dict)
}

// Name implements Transformer.
func (t *NPlusTransformer) Name() string { return "n_plus_7" }

// Description implements Transformer.
func (t *NPlusTransformer) Description() string {
	return "Replace each word with the word N positions later in the dictionary"
}

// NPlusTransform rewrites text word by word using the dictionary. The
// transform always succeeds; the result carries the transformed text and a
// replacement-rate statistic in metadata.
func NPlusTransform(text string, offset int, dict *Dictionary) (*ConstraintResult, error) {
	words := strings.Fields(text)
	transformed := make([]string, len(words))
	replacements := 0
	for i, word := range words {
		if replacement, ok := dict.NPlusWord(word, offset); ok {
			transformed[i] = replacement
			replacements++
		} else {
			transformed[i] = word
		}
	}

	rate := 0.0
	if len(words) > 0 {
		rate = float64(replacements) / float64(len(words))
	}

	return &ConstraintResult{
		Success:    true,
		Result:     strings.Join(transformed, " "),
		Violations: nil,
		Suggestions: []string{
			"Try different offset values for varied results",
			"Focus on noun-heavy text for better transformation",
		},
		Metadata: map[string]any{
			"offset":            offset,
			"original_words":    len(words),
			"replacements_made": replacements,
			"replacement_rate":  rate,
		},
	}, nil
}

// ensure interface compliance for the concrete rule types.
var (
	_ Constraint  = (*LipogramConstraint)(nil)
	_ Constraint  = (*PalindromeConstraint)(nil)
	_ Constraint  = (*SnowballConstraint)(nil)
	_ Constraint  = (*PrisonersConstraint)(nil)
	_ Constraint  = (*UnivocalicConstraint)(nil)
	_ Constraint  = (*SestinaConstraint)(nil)
	_ Transformer = (*NPlusTransformer)(nil)
)
