package oulipo

import (
	"strings"
	"unicode"
)

// GenerateAnagrams produces letter rearrangements of text by rotation and
// reversal. Text with no alphabetic characters yields a failing result.
func GenerateAnagrams(text string) (*ConstraintResult, error) {
	clean := cleanLetters(text)
	if clean == "" {
		return failureResult("",
			[]Violation{{
				Position:   0,
				Length:     CharCount(text),
				Issue:      "No alphabetic characters found",
				Suggestion: "Enter text with letters",
			}},
			[]string{"Try entering some words with letters"},
			map[string]any{
				"constraint_type": "anagram_generation",
				"original_length": CharCount(text),
				"clean_length":    0,
			}), nil
	}

	anagrams := rotationAnagrams(clean)

	return &ConstraintResult{
		Success: true,
		Result:  strings.Join(anagrams, ", "),
		Suggestions: []string{
			"Try different letter combinations",
			"Look for meaningful words in the anagrams",
		},
		Metadata: map[string]any{
			"constraint_type":  "anagram_generation",
			"anagram_count":    len(anagrams),
			"original_text":    text,
			"letter_frequency": letterFrequency(clean),
		},
	}, nil
}

// CheckAnagram reports whether two texts use exactly the same letters,
// ignoring case and non-alphabetic characters.
func CheckAnagram(text1, text2 string) (*ConstraintResult, error) {
	freq1 := letterFrequency(cleanLetters(text1))
	freq2 := letterFrequency(cleanLetters(text2))

	isAnagram := len(freq1) == len(freq2)
	if isAnagram {
		for ch, n := range freq1 {
			if freq2[ch] != n {
				isAnagram = false
				break
			}
		}
	}

	metadata := map[string]any{
		"constraint_type": "anagram_check",
		"text1_freq":      freq1,
		"text2_freq":      freq2,
		"is_anagram":      isAnagram,
	}

	if isAnagram {
		return successResult("Valid anagram", []string{"Perfect anagram!"}, metadata), nil
	}
	return failureResult("Not an anagram",
		[]Violation{{
			Position:   0,
			Length:     CharCount(text2),
			Issue:      "Letter frequencies don't match",
			Suggestion: "Rearrange letters to match the first text",
		}},
		[]string{"Check letter frequencies", "Try rearranging"}, metadata), nil
}

func cleanLetters(text string) string {
	var sb strings.Builder
	for _, ch := range text {
		if unicode.IsLetter(ch) {
			sb.WriteRune(unicode.ToLower(ch))
		}
	}
	return sb.String()
}

// rotationAnagrams generates a handful of distinct permutations by rotating
// the letters, plus the reversal.
func rotationAnagrams(text string) []string {
	runes := []rune(text)
	var anagrams []string
	seen := map[string]bool{text: true}

	limit := len(runes)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		first := runes[0]
		copy(runes, runes[1:])
		runes[len(runes)-1] = first
		candidate := string(runes)
		if !seen[candidate] {
			seen[candidate] = true
			anagrams = append(anagrams, candidate)
		}
	}

	reversed := reverseString(text)
	if !seen[reversed] {
		anagrams = append(anagrams, reversed)
	}
	return anagrams
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func letterFrequency(text string) map[string]int {
	freq := make(map[string]int)
	for _, ch := range text {
		freq[string(ch)]++
	}
	return freq
}
