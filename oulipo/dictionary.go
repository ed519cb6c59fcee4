package oulipo

import "strings"

// Dictionary is a fixed, ordered vocabulary supporting "word N positions
// away" lookups for the N+7 transform. It is built once and never mutated,
// so concurrent read-only use is safe.
type Dictionary struct {
	words []string
	index map[string]int
}

// defaultVocabulary is the built-in word list, treated as a cyclic sequence.
var defaultVocabulary = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"and", "runs", "through", "forest", "with", "great", "speed",
	"while", "birds", "sing", "in", "trees", "above", "ground",
	"where", "flowers", "bloom", "during", "spring", "season",
	"creating", "beautiful", "scenes", "that", "inspire", "writers",
	"to", "craft", "poems", "using", "various", "techniques",
}

// NewDictionary creates a dictionary over the built-in vocabulary.
func NewDictionary() *Dictionary {
	return NewDictionaryWithWords(defaultVocabulary)
}

// NewDictionaryWithWords creates a dictionary over the given ordered word
// list. The list is copied; later mutation of words does not affect the
// dictionary.
func NewDictionaryWithWords(words []string) *Dictionary {
	d := &Dictionary{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	copy(d.words, words)
	for i, w := range d.words {
		d.index[strings.ToLower(w)] = i
	}
	return d
}

// NPlusWord returns the word offset positions after word in the vocabulary,
// wrapping around the list in either direction. The lookup is
// case-insensitive. It returns false when word is not in the vocabulary;
// callers should pass such words through unchanged.
func (d *Dictionary) NPlusWord(word string, offset int) (string, bool) {
	i, ok := d.index[strings.ToLower(word)]
	if !ok {
		return "", false
	}
	n := len(d.words)
	j := ((i+offset)%n + n) % n
	return d.words[j], true
}

// Contains reports whether word is in the vocabulary, case-insensitively.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[strings.ToLower(word)]
	return ok
}

// Len returns the vocabulary size.
func (d *Dictionary) Len() int {
	return len(d.words)
}
