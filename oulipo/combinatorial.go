package oulipo

import (
	"math/rand"
	"sort"
	"strings"
)

// GenerateCombinatorialPoem arranges words into short poem lines using the
// named structure: "random", "ascending", "chiasmus", or "spiral". Unknown
// structures fall back to random. An empty word list yields a failing result.
func GenerateCombinatorialPoem(words []string, structure string) (*ConstraintResult, error) {
	if len(words) == 0 {
		return failureResult("",
			[]Violation{{
				Position:   0,
				Length:     0,
				Issue:      "No words provided",
				Suggestion: "Provide a list of words to combine",
			}},
			[]string{"Enter at least 3-5 words"},
			map[string]any{
				"constraint_type": "combinatorial_poem",
				"word_count":      0,
			}), nil
	}

	var poem string
	switch structure {
	case "ascending":
		poem = ascendingCombination(words)
	case "chiasmus":
		poem = chiasmusCombination(words)
	case "spiral":
		poem = spiralCombination(words)
	default:
		poem = randomCombination(words)
	}

	return &ConstraintResult{
		Success: true,
		Result:  poem,
		Suggestions: []string{
			"Try different structures",
			"Experiment with word order",
			"Add more words for variety",
		},
		Metadata: map[string]any{
			"constraint_type": "combinatorial_poem",
			"structure":       structure,
			"word_count":      len(words),
			"input_words":     words,
		},
	}, nil
}

// randomCombination shuffles the words and groups them three per line.
func randomCombination(words []string) string {
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var lines []string
	for i := 0; i < len(shuffled); i += 3 {
		end := i + 3
		if end > len(shuffled) {
			end = len(shuffled)
		}
		lines = append(lines, strings.Join(shuffled[i:end], " "))
	}
	return strings.Join(lines, "\n")
}

// ascendingCombination sorts words by length and wraps lines at roughly 50
// characters or four words.
func ascendingCombination(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) < len(sorted[j])
	})

	var lines []string
	var current []string
	currentLen := 0
	for _, word := range sorted {
		if currentLen+len(word) > 50 || len(current) >= 4 {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
				current = nil
				currentLen = 0
			}
		}
		current = append(current, word)
		currentLen += len(word) + 1
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}

// chiasmusCombination mirrors the second half of the words against the first.
func chiasmusCombination(words []string) string {
	if len(words) < 4 {
		return strings.Join(words, " ")
	}
	mid := len(words) / 2
	first := words[:mid]
	second := make([]string, 0, len(words)-mid)
	for i := len(words) - 1; i >= mid; i-- {
		second = append(second, words[i])
	}
	return strings.Join(first, " ") + "\n" + strings.Join(second, " ")
}

// spiralCombination walks the word list with a stride of a third of its
// length, collecting up to four lines of three words.
func spiralCombination(words []string) string {
	used := make([]bool, len(words))
	idx := 0
	step := len(words) / 3
	if step < 1 {
		step = 1
	}

	anyUnused := func() bool {
		for _, u := range used {
			if !u {
				return true
			}
		}
		return false
	}

	var lines []string
	for len(lines) < 4 && anyUnused() {
		var lineWords []string
		for i := 0; i < 3; i++ {
			if !used[idx] {
				lineWords = append(lineWords, words[idx])
				used[idx] = true
			}
			idx = (idx + step) % len(words)
			for used[idx] && anyUnused() {
				idx = (idx + 1) % len(words)
			}
		}
		if len(lineWords) > 0 {
			lines = append(lines, strings.Join(lineWords, " "))
		}
	}
	return strings.Join(lines, "\n")
}
