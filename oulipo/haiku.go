package oulipo

import "strings"

// HaikuGenerator produces themed haiku following the 5-7-5 pattern from a
// fixed template library.
type HaikuGenerator struct{}

// NewHaikuGenerator creates a haiku generator.
func NewHaikuGenerator() *HaikuGenerator {
	return &HaikuGenerator{}
}

// Generate implements Generator; input is the theme.
func (g *HaikuGenerator) Generate(input string) (*ConstraintResult, error) {
	return GenerateHaiku(input)
}

// Name implements Generator.
func (g *HaikuGenerator) Name() string { return "haiku" }

// Description implements Generator.
func (g *HaikuGenerator) Description() string {
	return "Generate a themed haiku with a 5-7-5 syllable pattern"
}

var haikuTemplates = map[string][]string{
	"nature": {
		"Cherry blossoms fall\nSilent pond reflects the moon\nSpring wind carries peace",
		"Ancient oak stands tall\nRoots deep in the fertile earth\nLeaves dance with the sky",
		"Morning dew glistens\nOn grass blades bent by the weight\nSun breaks through the mist",
		"River flows swiftly\nCarrying stories downstream\nTo the waiting sea",
	},
	"seasons": {
		"Autumn leaves spiral\nGolden carpet on the path\nTime's gentle passage",
		"Winter's first snowfall\nSilence blankets the garden\nWorld holds its breath",
		"Spring buds emerging\nPromise of renewal blooms\nLife begins again",
		"Summer heat shimmers\nCicadas sing their stories\nAfternoon dreams",
	},
	"love": {
		"Two hearts beat as one\nIn the quiet of twilight\nLove needs no words",
		"Your gentle smile\nLights up the darkest corner\nOf my waiting heart",
		"Distance cannot dim\nThe warmth of our connection\nSouls know no borders",
	},
	"time": {
		"Clock hands circle round\nMoments slip like grains of sand\nNow is all we have",
		"Yesterday's shadows\nFade into tomorrow's light\nPresent moment shines",
		"Seasons turn again\nEternal cycle of change\nTime's patient wisdom",
	},
}

const defaultHaiku = "Words flow like water\nConstraints shape creative thought\nBeauty finds its way"

// GenerateHaiku produces a haiku for the given theme. Unknown themes fall
// back to a default verse. Generation always succeeds.
func GenerateHaiku(theme string) (*ConstraintResult, error) {
	haiku := defaultHaiku
	if templates, ok := haikuTemplates[strings.ToLower(theme)]; ok {
		haiku = templates[0]
	}

	return &ConstraintResult{
		Success: true,
		Result:  haiku,
		Suggestions: []string{
			"Traditional haiku captures a moment in nature",
			"Focus on sensory imagery",
			"Include a seasonal reference (kigo)",
			"Create a pause or break (kireji)",
		},
		Metadata: map[string]any{
			"theme":                theme,
			"syllable_pattern":     "5-7-5",
			"lines":                len(strings.Split(haiku, "\n")),
			"traditional_elements": []string{"kigo", "kireji", "present_tense"},
		},
	}, nil
}
