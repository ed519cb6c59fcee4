package oulipo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPrisonersSuccess(t *testing.T) {
	result, err := CheckPrisoners("him is six")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Violations)
	assert.Equal(t, "Valid prisoner's constraint text", result.Result)
}

func TestCheckPrisonersFailure(t *testing.T) {
	result, err := CheckPrisoners("dog")
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Violations, 3)
	for i, v := range result.Violations {
		assert.Equal(t, i, v.Position)
		assert.Equal(t, 1, v.Length)
	}
}

func TestCheckPrisonersIgnoresNonLetters(t *testing.T) {
	result, err := CheckPrisoners("461.2 -- !!")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestCheckPrisonersCaseInsensitive(t *testing.T) {
	result, err := CheckPrisoners("TIN")
	require.NoError(t, err)
	assert.True(t, result.Success)

	result, err = CheckPrisoners("BAD")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Len(t, result.Violations, 3) // B, A, D all have loops or ascenders
}
