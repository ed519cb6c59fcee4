package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atelierink/ouvroir/oulipo"
)

// CheckConstraint builds a constraint by name from the registry and runs it
// against text.
func (s *AppState) CheckConstraint(name, text string, config map[string]any) *Response {
	constraint, err := s.Oulipo.CreateConstraint(name, config)
	if err != nil {
		return errorResponse("Failed to create constraint %q: %v", name, err)
	}
	result, err := constraint.Check(text)
	if err != nil {
		return errorResponse("Constraint check failed: %v", err)
	}
	return resultResponse(result.Result, result)
}

// CheckLipogram checks that text avoids the forbidden letter.
func (s *AppState) CheckLipogram(text, forbiddenLetter string) *Response {
	return constraintResponse(s.Oulipo.CheckLipogram(text, forbiddenLetter))
}

// CheckPalindrome checks whether text reads the same in both directions.
func (s *AppState) CheckPalindrome(text string) *Response {
	return constraintResponse(s.Oulipo.CheckPalindrome(text))
}

// CheckSnowball checks that each word is one letter longer than the last.
func (s *AppState) CheckSnowball(text string) *Response {
	return constraintResponse(s.Oulipo.CheckSnowball(text))
}

// CheckPrisoners checks that text avoids ascenders and descenders.
func (s *AppState) CheckPrisoners(text string) *Response {
	return constraintResponse(s.Oulipo.CheckPrisoners(text))
}

// CheckUnivocalic checks that text uses only the given vowel.
func (s *AppState) CheckUnivocalic(text, vowel string) *Response {
	return constraintResponse(s.Oulipo.CheckUnivocalic(text, vowel))
}

// CheckSestina checks line endings against the sestina rotation pattern.
func (s *AppState) CheckSestina(text string, endWords []string) *Response {
	return constraintResponse(s.Oulipo.CheckSestina(text, endWords))
}

// NPlusTransform replaces every noun-like word with the word offset positions
// later in the dictionary.
func (s *AppState) NPlusTransform(text string, offset int) *Response {
	return constraintResponse(s.Oulipo.NPlusTransform(text, offset))
}

// CheckWithWorkflow runs a prebuilt workflow configuration against text.
func (s *AppState) CheckWithWorkflow(text string, config oulipo.WorkflowConfig) *Response {
	result, err := s.Oulipo.CheckWithWorkflow(text, config)
	if err != nil {
		return errorResponse("Workflow check failed: %v", err)
	}
	slog.Debug("Workflow check completed",
		"constraints", len(config.Constraints),
		"success", result.Success)
	return resultResponse(result.Summary, result)
}

// CheckWithPreset runs one of the named preset workflows against text.
func (s *AppState) CheckWithPreset(text, presetName string) *Response {
	result, err := s.Oulipo.CheckWithPreset(text, presetName)
	if err != nil {
		return errorResponse("Preset check failed: %v", err)
	}
	return resultResponse(result.Summary, result)
}

// ListConstraints returns registry metadata for every available constraint.
func (s *AppState) ListConstraints() *Response {
	infos := s.Oulipo.ListAvailableConstraints()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return resultResponse(fmt.Sprintf("Available constraints: %s", strings.Join(names, ", ")), infos)
}

// GenerateHaiku produces a themed haiku.
func (s *AppState) GenerateHaiku(theme string) *Response {
	haiku, err := s.Oulipo.GenerateHaiku(theme)
	if err != nil {
		return errorResponse("Haiku generation failed: %v", err)
	}
	return resultResponse(haiku, haiku)
}

// GenerateAnagrams returns up to maxResults rearrangements of word.
func (s *AppState) GenerateAnagrams(word string, maxResults int) *Response {
	anagrams, err := s.Oulipo.GenerateAnagrams(word, maxResults)
	if err != nil {
		return errorResponse("Anagram generation failed: %v", err)
	}
	return resultResponse(fmt.Sprintf("Found %d anagrams", len(anagrams)), anagrams)
}

// CheckAnagram reports whether two words are anagrams of each other.
func (s *AppState) CheckAnagram(word1, word2 string) *Response {
	ok, err := s.Oulipo.CheckAnagram(word1, word2)
	if err != nil {
		return errorResponse("Anagram check failed: %v", err)
	}
	content := fmt.Sprintf("%q and %q are not anagrams", word1, word2)
	if ok {
		content = fmt.Sprintf("%q and %q are anagrams", word1, word2)
	}
	return resultResponse(content, ok)
}

// GenerateCombinatorialPoem arranges word sets into a poem using the named
// pattern.
func (s *AppState) GenerateCombinatorialPoem(wordSets [][]string, pattern string) *Response {
	poem, err := s.Oulipo.GenerateCombinatorialPoem(wordSets, pattern)
	if err != nil {
		return errorResponse("Poem generation failed: %v", err)
	}
	return resultResponse(poem, poem)
}

func constraintResponse(result *oulipo.ConstraintResult, err error) *Response {
	if err != nil {
		return errorResponse("Constraint check failed: %v", err)
	}
	return resultResponse(result.Result, result)
}
