package oulipo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTextLength(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		min     int
		max     *int
		success bool
	}{
		{"within bounds", "hello", 1, intPtr(10), true},
		{"at minimum", "hello", 5, nil, true},
		{"at maximum", "hello", 0, intPtr(5), true},
		{"too short", "hi", 5, nil, false},
		{"too long", "hello world", 0, intPtr(5), false},
		{"no bounds", "", 0, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateTextLength(tt.text, tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.success, result.Success)
		})
	}
}

func TestValidateTextLengthViolationSpans(t *testing.T) {
	result, err := ValidateTextLength("hello world", 0, intPtr(5))
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, 5, result.Violations[0].Position)
	assert.Equal(t, 6, result.Violations[0].Length)
}

func TestValidateWordCount(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		min     int
		max     *int
		success bool
	}{
		{"within bounds", "one two three", 1, intPtr(5), true},
		{"at minimum", "one two", 2, nil, true},
		{"at maximum", "one two", 0, intPtr(2), true},
		{"too few", "one", 3, nil, false},
		{"too many", "one two three four", 0, intPtr(2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWordCount(tt.text, tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.success, result.Success)
		})
	}
}

func TestCheckCharacterFrequency(t *testing.T) {
	result, err := CheckCharacterFrequency("banana", 'a', 3)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Metadata["frequency"])

	result, err = CheckCharacterFrequency("banana", 'a', 2)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Issue, "appears 3 times (maximum 2)")
}

func TestCheckCharacterFrequencyCaseInsensitive(t *testing.T) {
	result, err := CheckCharacterFrequency("Aaa", 'A', 2)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
