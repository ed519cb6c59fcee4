package oulipo

import (
	"fmt"
	"strings"
)

// Service is the facade over the constraint engine. It owns the dictionary
// and the registry, both immutable after construction, so a single Service
// shared by reference is safe for concurrent read-only use.
type Service struct {
	dict     *Dictionary
	registry *Registry
}

// NewService creates a service with the built-in dictionary and registry.
func NewService() *Service {
	return &Service{
		dict:     NewDictionary(),
		registry: NewRegistry(),
	}
}

// Dictionary returns the service's dictionary.
func (s *Service) Dictionary() *Dictionary {
	return s.dict
}

// Registry returns the constraint registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// CheckLipogram checks text against a lipogram forbidding forbiddenLetter.
// An empty letter parameter yields a failing result, not an error.
func (s *Service) CheckLipogram(text, forbiddenLetter string) (*ConstraintResult, error) {
	letter, ok := firstRune(forbiddenLetter)
	if !ok {
		return invalidParameterResult("Provide a single letter to forbid"), nil
	}
	return CheckLipogram(text, letter)
}

// CheckPalindrome checks whether text is a palindrome.
func (s *Service) CheckPalindrome(text string) (*ConstraintResult, error) {
	return CheckPalindrome(text)
}

// CheckSnowball checks the snowball word-length progression.
func (s *Service) CheckSnowball(text string) (*ConstraintResult, error) {
	return CheckSnowball(text)
}

// CheckPrisoners checks the prisoner's loop-free letter constraint.
func (s *Service) CheckPrisoners(text string) (*ConstraintResult, error) {
	return CheckPrisoners(text)
}

// CheckUnivocalic checks that text uses only the given vowel. An empty vowel
// parameter yields a failing result, not an error.
func (s *Service) CheckUnivocalic(text, vowel string) (*ConstraintResult, error) {
	v, ok := firstRune(vowel)
	if !ok {
		return invalidParameterResult("Provide a single vowel character"), nil
	}
	return CheckUnivocalic(text, v)
}

// CheckSestina checks the 39-line sestina end-word rotation.
func (s *Service) CheckSestina(text string, endWords []string) (*ConstraintResult, error) {
	return CheckSestina(text, endWords)
}

// NPlusTransform applies the N+offset transform using the service dictionary.
func (s *Service) NPlusTransform(text string, offset int) (*ConstraintResult, error) {
	return NPlusTransform(text, offset, s.dict)
}

// GenerateHaiku produces a themed haiku.
func (s *Service) GenerateHaiku(theme string) (string, error) {
	if theme == "" {
		theme = "nature"
	}
	result, err := GenerateHaiku(theme)
	if err != nil {
		return "", err
	}
	return result.Result, nil
}

// GenerateAnagrams produces up to maxResults anagrams of word.
func (s *Service) GenerateAnagrams(word string, maxResults int) ([]string, error) {
	result, err := GenerateAnagrams(word)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		// No letters to rearrange; fall back to the reversal.
		return []string{reverseString(word)}, nil
	}
	anagrams := strings.Split(result.Result, ", ")
	if maxResults > 0 && len(anagrams) > maxResults {
		anagrams = anagrams[:maxResults]
	}
	return anagrams, nil
}

// CheckAnagram reports whether two words are anagrams of each other.
func (s *Service) CheckAnagram(word1, word2 string) (bool, error) {
	result, err := CheckAnagram(word1, word2)
	if err != nil {
		return false, err
	}
	return result.Success, nil
}

// GenerateCombinatorialPoem flattens the word sets and arranges them using
// the named pattern.
func (s *Service) GenerateCombinatorialPoem(wordSets [][]string, pattern string) (string, error) {
	if pattern == "" {
		pattern = "random"
	}
	var words []string
	for _, set := range wordSets {
		words = append(words, set...)
	}
	result, err := GenerateCombinatorialPoem(words, pattern)
	if err != nil {
		return "", err
	}
	if !result.Success {
		return "", NewConfigError("no words provided for combinatorial poem")
	}
	return result.Result, nil
}

// ValidateTextLength checks character-count bounds.
func (s *Service) ValidateTextLength(text string, minLength int, maxLength *int) (*ConstraintResult, error) {
	return ValidateTextLength(text, minLength, maxLength)
}

// ValidateWordCount checks word-count bounds.
func (s *Service) ValidateWordCount(text string, minWords int, maxWords *int) (*ConstraintResult, error) {
	return ValidateWordCount(text, minWords, maxWords)
}

// CheckCharacterFrequency checks a per-character occurrence cap.
func (s *Service) CheckCharacterFrequency(text string, target rune, maxFrequency int) (*ConstraintResult, error) {
	return CheckCharacterFrequency(text, target, maxFrequency)
}

// GenerateLipogramSuggestions lists words in text containing the forbidden
// letter, each with a replacement hint.
func (s *Service) GenerateLipogramSuggestions(text, forbiddenLetter string) ([]string, error) {
	letter, ok := firstRune(forbiddenLetter)
	if !ok {
		letter = 'e'
	}
	lower := strings.ToLower(string(letter))

	var suggestions []string
	for _, word := range strings.Fields(text) {
		if strings.Contains(strings.ToLower(word), lower) {
			suggestions = append(suggestions,
				fmt.Sprintf("Replace %q with a word that doesn't contain %q", word, letter))
		}
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Text already follows lipogram constraint")
	}
	return suggestions, nil
}

// GeneratePalindromeSuggestions returns guidance for turning text into a
// palindrome.
func (s *Service) GeneratePalindromeSuggestions(text string) ([]string, error) {
	return []string{
		"Try rearranging words to create symmetry",
		"Consider using palindromic words like 'level', 'radar', 'civic'",
		"Build from the center outward for sentence palindromes",
		fmt.Sprintf("Current text: %q - work on making it read the same forwards and backwards", text),
	}, nil
}

// ValidateWithConfig runs the active bounds in config against text, in
// length-then-words order. Absent bounds produce no result.
func (s *Service) ValidateWithConfig(text string, config ValidationConfig) ([]*ConstraintResult, error) {
	var results []*ConstraintResult

	if config.MinLength != nil || config.MaxLength != nil {
		minLength := 0
		if config.MinLength != nil {
			minLength = *config.MinLength
		}
		result, err := ValidateTextLength(text, minLength, config.MaxLength)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if config.MinWords != nil || config.MaxWords != nil {
		minWords := 0
		if config.MinWords != nil {
			minWords = *config.MinWords
		}
		result, err := ValidateWordCount(text, minWords, config.MaxWords)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// CreateWorkflow returns a fresh workflow builder.
func (s *Service) CreateWorkflow() *WorkflowBuilder {
	return NewWorkflowBuilder()
}

// CreateGenerationWorkflow returns a fresh generation builder.
func (s *Service) CreateGenerationWorkflow() *GenerationBuilder {
	return NewGenerationBuilder()
}

// CreateConstraint constructs a constraint through the registry.
func (s *Service) CreateConstraint(name string, config map[string]any) (Constraint, error) {
	return s.registry.Create(name, config)
}

// ListAvailableConstraints returns introspection records for every
// registered constraint type.
func (s *Service) ListAvailableConstraints() []ConstraintInfo {
	return s.registry.ListConstraints()
}

// CheckWithWorkflow evaluates every configured constraint against text in
// declaration order, appends validation results, and aggregates. Constraint
// dispatch goes through the registry; an unregistered name degrades to one
// failing sub-result instead of aborting the workflow, while malformed
// configuration for a known constraint is a genuine error.
func (s *Service) CheckWithWorkflow(text string, config WorkflowConfig) (*WorkflowResult, error) {
	var results []*ConstraintResult

	for _, spec := range config.Constraints {
		if !s.registry.Has(spec.Name) {
			results = append(results, failureResult(
				fmt.Sprintf("Unknown constraint: %s", spec.Name),
				nil,
				[]string{"Check constraint name"},
				map[string]any{"error": "unknown_constraint"},
			))
			continue
		}
		constraint, err := s.registry.Create(spec.Name, spec.Config)
		if err != nil {
			return nil, err
		}
		result, err := constraint.Check(text)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	validationResults, err := s.ValidateWithConfig(text, config.Validation)
	if err != nil {
		return nil, err
	}
	results = append(results, validationResults...)

	success := true
	for _, r := range results {
		if !r.Success {
			success = false
			break
		}
	}

	return &WorkflowResult{
		Success:           success,
		ConstraintResults: results,
		Summary:           workflowSummary(results),
	}, nil
}

// CheckWithPreset resolves a named preset and runs its workflow. Unknown
// preset names fail immediately; there is no default fallback.
func (s *Service) CheckWithPreset(text, presetName string) (*WorkflowResult, error) {
	var builder *WorkflowBuilder
	switch presetName {
	case "strict":
		builder = StrictWritingPreset()
	case "minimal":
		builder = MinimalPreset()
	case "experimental":
		builder = ExperimentalPreset()
	default:
		return nil, fmt.Errorf("unknown preset: %s", presetName)
	}
	return s.CheckWithWorkflow(text, builder.Build())
}

func workflowSummary(results []*ConstraintResult) string {
	total := len(results)
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	if failed == 0 {
		return fmt.Sprintf("✅ All %d constraints satisfied", total)
	}
	return fmt.Sprintf("❌ %d/%d constraints failed", failed, total)
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func invalidParameterResult(hint string) *ConstraintResult {
	return &ConstraintResult{
		Success: false,
		Violations: []Violation{{
			Position:   0,
			Length:     0,
			Issue:      "Invalid parameter",
			Suggestion: hint,
		}},
		Suggestions: []string{hint},
	}
}
