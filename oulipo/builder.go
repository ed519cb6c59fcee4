package oulipo

// ConstraintSpec names a constraint type together with the configuration
// value to construct it from. Name resolution is deferred to execution time;
// the builder has no registry access.
type ConstraintSpec struct {
	Name   string         `json:"name"`
	Config map[string]any `json:"config"`
}

// WorkflowConfig is an immutable bundle of constraint specs plus validation
// bounds, built once and reusable across many check calls.
type WorkflowConfig struct {
	Constraints []ConstraintSpec `json:"constraints"`
	Validation  ValidationConfig `json:"validation"`
}

// WorkflowResult aggregates one check run: per-constraint results in
// configuration order (validation results appended last) and an overall
// pass/fail summary.
type WorkflowResult struct {
	Success           bool                `json:"success"`
	ConstraintResults []*ConstraintResult `json:"constraint_results"`
	Summary           string              `json:"summary"`
}

// WorkflowBuilder accumulates constraint specs and validation bounds in call
// order. Build freezes the accumulated state into a WorkflowConfig; it never
// fails, because constraint names and configs are validated at execution
// time, not declaration time.
type WorkflowBuilder struct {
	constraints []ConstraintSpec
	validation  ValidationConfig
}

// NewWorkflowBuilder creates an empty workflow builder.
func NewWorkflowBuilder() *WorkflowBuilder {
	return &WorkflowBuilder{}
}

// WithConstraint adds a constraint by name and configuration.
func (b *WorkflowBuilder) WithConstraint(name string, config map[string]any) *WorkflowBuilder {
	b.constraints = append(b.constraints, ConstraintSpec{Name: name, Config: config})
	return b
}

// WithUnivocalic adds a univocalic constraint on the given vowel.
func (b *WorkflowBuilder) WithUnivocalic(vowel rune) *WorkflowBuilder {
	return b.WithConstraint("univocalic", map[string]any{"allowed_vowel": string(vowel)})
}

// WithLipogram adds a lipogram constraint forbidding the given letter.
func (b *WorkflowBuilder) WithLipogram(letter rune) *WorkflowBuilder {
	return b.WithConstraint("lipogram", map[string]any{"forbidden_letter": string(letter)})
}

// WithLengthLimits sets text length bounds. Nil means no bound.
func (b *WorkflowBuilder) WithLengthLimits(min, max *int) *WorkflowBuilder {
	b.validation.MinLength = min
	b.validation.MaxLength = max
	return b
}

// WithWordLimits sets word count bounds. Nil means no bound.
func (b *WorkflowBuilder) WithWordLimits(min, max *int) *WorkflowBuilder {
	b.validation.MinWords = min
	b.validation.MaxWords = max
	return b
}

// Build finalizes the accumulated state into an immutable WorkflowConfig.
func (b *WorkflowBuilder) Build() WorkflowConfig {
	constraints := make([]ConstraintSpec, len(b.constraints))
	copy(constraints, b.constraints)
	return WorkflowConfig{
		Constraints: constraints,
		Validation:  b.validation,
	}
}

// GenerationConfig parameterizes constrained text generation: a theme prompt,
// the constraint names to satisfy, and a retry budget.
type GenerationConfig struct {
	Theme       string   `json:"theme"`
	Constraints []string `json:"constraints"`
	MaxAttempts int      `json:"max_attempts"`
}

// GenerationBuilder accumulates generation parameters. Build fills in the
// defaults: a "creative writing" theme and 10 attempts.
type GenerationBuilder struct {
	theme       string
	constraints []string
	maxAttempts int
}

// NewGenerationBuilder creates an empty generation builder.
func NewGenerationBuilder() *GenerationBuilder {
	return &GenerationBuilder{}
}

// WithTheme sets the theme prompt.
func (b *GenerationBuilder) WithTheme(theme string) *GenerationBuilder {
	b.theme = theme
	return b
}

// WithConstraint adds a constraint by name.
func (b *GenerationBuilder) WithConstraint(name string) *GenerationBuilder {
	b.constraints = append(b.constraints, name)
	return b
}

// MaxAttempts sets the retry budget.
func (b *GenerationBuilder) MaxAttempts(n int) *GenerationBuilder {
	b.maxAttempts = n
	return b
}

// Build finalizes the accumulated state into a GenerationConfig.
func (b *GenerationBuilder) Build() GenerationConfig {
	theme := b.theme
	if theme == "" {
		theme = "creative writing"
	}
	attempts := b.maxAttempts
	if attempts <= 0 {
		attempts = 10
	}
	constraints := make([]string, len(b.constraints))
	copy(constraints, b.constraints)
	return GenerationConfig{
		Theme:       theme,
		Constraints: constraints,
		MaxAttempts: attempts,
	}
}

func intPtr(n int) *int { return &n }

// StrictWritingPreset bounds length to 100-1000 characters and 10-200 words.
func StrictWritingPreset() *WorkflowBuilder {
	return NewWorkflowBuilder().
		WithLengthLimits(intPtr(100), intPtr(1000)).
		WithWordLimits(intPtr(10), intPtr(200))
}

// MinimalPreset bounds length to 10-100 characters and 3-20 words.
func MinimalPreset() *WorkflowBuilder {
	return NewWorkflowBuilder().
		WithLengthLimits(intPtr(10), intPtr(100)).
		WithWordLimits(intPtr(3), intPtr(20))
}

// ExperimentalPreset combines a univocalic constraint on 'e' with a minimum
// length of 50 characters.
func ExperimentalPreset() *WorkflowBuilder {
	return NewWorkflowBuilder().
		WithUnivocalic('e').
		WithLengthLimits(intPtr(50), nil)
}
