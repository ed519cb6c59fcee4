package oulipo

import (
	"strings"
	"unicode"
)

// Vowels are the characters treated as vowels by vowel-sensitive constraints.
const Vowels = "aeiou"

// IsVowel reports whether ch is a vowel, case-insensitively.
func IsVowel(ch rune) bool {
	return strings.ContainsRune(Vowels, unicode.ToLower(ch))
}

// ExtractVowels returns all vowel characters in text, in order.
func ExtractVowels(text string) []rune {
	var vowels []rune
	for _, ch := range text {
		if IsVowel(ch) {
			vowels = append(vowels, ch)
		}
	}
	return vowels
}

// NormalizeText lowercases text and strips everything except letters and
// whitespace.
func NormalizeText(text string) string {
	var sb strings.Builder
	for _, ch := range text {
		if unicode.IsLetter(ch) || unicode.IsSpace(ch) {
			sb.WriteRune(unicode.ToLower(ch))
		}
	}
	return sb.String()
}

// WordCount counts whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount counts characters (runes) in text.
func CharCount(text string) int {
	n := 0
	for range text {
		n++
	}
	return n
}

// CharFrequency returns a character occurrence map for text.
func CharFrequency(text string) map[rune]int {
	freq := make(map[rune]int)
	for _, ch := range text {
		freq[ch]++
	}
	return freq
}

// SplitSentences splits text on sentence-ending punctuation, trimming
// whitespace and dropping empty fragments.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var sentences []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// IsPalindrome reports whether text reads the same forwards and backwards,
// ignoring case and non-letter characters.
func IsPalindrome(text string) bool {
	var letters []rune
	for _, ch := range text {
		if unicode.IsLetter(ch) {
			letters = append(letters, unicode.ToLower(ch))
		}
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		if letters[i] != letters[j] {
			return false
		}
	}
	return true
}
