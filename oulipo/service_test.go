package oulipo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCheckLipogramEmptyLetter(t *testing.T) {
	svc := NewService()

	result, err := svc.CheckLipogram("some text", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "Invalid parameter", result.Violations[0].Issue)
}

func TestServiceCheckUnivocalicEmptyVowel(t *testing.T) {
	svc := NewService()

	result, err := svc.CheckUnivocalic("some text", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestServiceGenerateAnagramsCapsResults(t *testing.T) {
	svc := NewService()

	anagrams, err := svc.GenerateAnagrams("strange", 2)
	require.NoError(t, err)
	assert.Len(t, anagrams, 2)

	uncapped, err := svc.GenerateAnagrams("strange", 0)
	require.NoError(t, err)
	assert.Greater(t, len(uncapped), 2)
}

func TestServiceGenerateLipogramSuggestions(t *testing.T) {
	svc := NewService()

	suggestions, err := svc.GenerateLipogramSuggestions("the quick brown fox", "o")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Contains(t, suggestions[0], `"brown"`)
	assert.Contains(t, suggestions[1], `"fox"`)

	clean, err := svc.GenerateLipogramSuggestions("quick myth", "o")
	require.NoError(t, err)
	require.Len(t, clean, 1)
	assert.Equal(t, "Text already follows lipogram constraint", clean[0])
}

func TestServiceValidateWithConfigOrder(t *testing.T) {
	svc := NewService()

	config := ValidationConfig{
		MinLength: intPtr(1),
		MinWords:  intPtr(1),
	}
	results, err := svc.ValidateWithConfig("hello world", config)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "length_validation", results[0].Metadata["constraint_type"])
	assert.Equal(t, "word_count_validation", results[1].Metadata["constraint_type"])
}

func TestServiceValidateWithConfigAbsentBounds(t *testing.T) {
	svc := NewService()

	results, err := svc.ValidateWithConfig("anything at all", ValidationConfig{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestServiceCheckWithWorkflowAllPass(t *testing.T) {
	svc := NewService()

	config := svc.CreateWorkflow().
		WithLipogram('z').
		WithConstraint("prisoners", nil).
		WithWordLimits(intPtr(1), intPtr(5)).
		Build()

	result, err := svc.CheckWithWorkflow("tit", config)
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.ConstraintResults, 3)
	assert.Equal(t, "✅ All 3 constraints satisfied", result.Summary)
}

func TestServiceCheckWithWorkflowAggregatesFailures(t *testing.T) {
	svc := NewService()

	config := svc.CreateWorkflow().
		WithLipogram('o').
		WithConstraint("palindrome", nil).
		Build()

	// Fails the lipogram, passes the palindrome.
	result, err := svc.CheckWithWorkflow("toot", config)
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.ConstraintResults, 2)
	assert.False(t, result.ConstraintResults[0].Success)
	assert.True(t, result.ConstraintResults[1].Success)
	assert.Equal(t, "❌ 1/2 constraints failed", result.Summary)
}

func TestServiceCheckWithWorkflowUnknownConstraint(t *testing.T) {
	svc := NewService()

	config := svc.CreateWorkflow().
		WithConstraint("oulipean-sonnet", nil).
		WithConstraint("palindrome", nil).
		Build()

	result, err := svc.CheckWithWorkflow("racecar", config)
	require.NoError(t, err, "unknown names degrade, they do not abort")

	assert.False(t, result.Success)
	require.Len(t, result.ConstraintResults, 2)

	unknown := result.ConstraintResults[0]
	assert.False(t, unknown.Success)
	assert.Equal(t, "Unknown constraint: oulipean-sonnet", unknown.Result)
	assert.Equal(t, "unknown_constraint", unknown.Metadata["error"])

	assert.True(t, result.ConstraintResults[1].Success)
}

func TestServiceCheckWithWorkflowMalformedConfig(t *testing.T) {
	svc := NewService()

	config := svc.CreateWorkflow().
		WithConstraint("univocalic", map[string]any{"allowed_vowel": "x"}).
		Build()

	_, err := svc.CheckWithWorkflow("text", config)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestServiceCheckWithWorkflowDeterministic(t *testing.T) {
	svc := NewService()

	config := svc.CreateWorkflow().
		WithLipogram('e').
		WithConstraint("snowball", nil).
		WithLengthLimits(intPtr(1), intPtr(100)).
		Build()

	first, err := svc.CheckWithWorkflow("o at his kind", config)
	require.NoError(t, err)
	second, err := svc.CheckWithWorkflow("o at his kind", config)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestServiceCheckWithPreset(t *testing.T) {
	svc := NewService()

	short := "a few words"
	result, err := svc.CheckWithPreset(short, "strict")
	require.NoError(t, err)
	assert.False(t, result.Success, "11 chars is under the strict minimum of 100")
	require.Len(t, result.ConstraintResults, 2)

	result, err = svc.CheckWithPreset("just enough words here", "minimal")
	require.NoError(t, err)
	assert.True(t, result.Success)

	// Experimental runs univocalic 'e' through the registry plus a length floor.
	eText := "these sleek geese seek the green bees between the trees"
	result, err = svc.CheckWithPreset(eText, "experimental")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.ConstraintResults, 2)
}

func TestServiceCheckWithPresetUnknown(t *testing.T) {
	svc := NewService()

	_, err := svc.CheckWithPreset("text", "draconian")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestServiceNPlusTransformUsesBuiltinDictionary(t *testing.T) {
	svc := NewService()

	result, err := svc.NPlusTransform("the quick brown fox", 7)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "dog and runs through", result.Result)
}

func TestServiceListAvailableConstraints(t *testing.T) {
	svc := NewService()

	infos := svc.ListAvailableConstraints()
	require.Len(t, infos, 6)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []string{"lipogram", "palindrome", "prisoners", "sestina", "snowball", "univocalic"}, names)
}

func TestServiceGenerateCombinatorialPoemFlattensSets(t *testing.T) {
	svc := NewService()

	poem, err := svc.GenerateCombinatorialPoem([][]string{{"a", "b"}, {"c", "d"}}, "chiasmus")
	require.NoError(t, err)
	assert.Equal(t, "a b\nd c", poem)

	_, err = svc.GenerateCombinatorialPoem(nil, "random")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}
