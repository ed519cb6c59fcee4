package oulipo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLipogramSuccess(t *testing.T) {
	result, err := CheckLipogram("a quick brown fox", 'e')
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Violations)
	assert.Equal(t, "Valid lipogram", result.Result)
	assert.Equal(t, []string{"Perfect lipogram!"}, result.Suggestions)
	assert.Equal(t, 0, result.Metadata["violation_count"])
}

func TestCheckLipogramViolationPositions(t *testing.T) {
	result, err := CheckLipogram("Hello", 'l')
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, 2, result.Violations[0].Position)
	assert.Equal(t, 3, result.Violations[1].Position)
	for _, v := range result.Violations {
		assert.Equal(t, 1, v.Length)
	}
}

func TestCheckLipogramCaseInsensitive(t *testing.T) {
	result, err := CheckLipogram("Eve sees", 'E')
	require.NoError(t, err)

	assert.False(t, result.Success)
	// E, e, e, e at positions 0, 2, 5, 6
	assert.Len(t, result.Violations, 4)
	assert.Equal(t, strings.Count(strings.ToLower("Eve sees"), "e"), len(result.Violations))
}

func TestCheckLipogramEmptyText(t *testing.T) {
	result, err := CheckLipogram("", 'e')
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestCheckLipogramViolationCountMatchesOccurrences(t *testing.T) {
	tests := []struct {
		text      string
		forbidden rune
	}{
		{"the quick brown fox jumps over the lazy dog", 'o'},
		{"aaa", 'a'},
		{"no forbidden letters here", 'z'},
	}
	for _, tt := range tests {
		result, err := CheckLipogram(tt.text, tt.forbidden)
		require.NoError(t, err)
		want := strings.Count(strings.ToLower(tt.text), string(tt.forbidden))
		assert.Len(t, result.Violations, want, "text %q", tt.text)
		assert.Equal(t, want == 0, result.Success, "text %q", tt.text)
	}
}
