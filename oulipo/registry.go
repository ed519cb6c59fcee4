package oulipo

import "sort"

// ConstraintFactory constructs Constraint instances from a JSON-shaped
// configuration value. Factories are the registration unit of the registry:
// adding a rule means implementing this interface, not editing a switch.
type ConstraintFactory interface {
	// Create builds a constraint from config. It fails with a ConfigError
	// when required fields are missing or a field value is rejected by the
	// constraint's own constructor.
	Create(config map[string]any) (Constraint, error)

	// Name returns the registry key for this constraint type.
	Name() string

	// Description returns a human-readable explanation of the rule.
	Description() string

	// ConfigSchema returns a JSON-shaped description of the configuration
	// fields this factory accepts.
	ConfigSchema() map[string]any
}

// ConstraintInfo is the registry's introspection record for one constraint
// type, derived from its factory at query time.
type ConstraintInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema"`
}

// Registry is a name-keyed collection of constraint factories. It is built
// once with all built-in factories pre-registered and is read-only afterwards
// from the perspective of callers; it does not support unregistration.
type Registry struct {
	factories map[string]ConstraintFactory
}

// NewRegistry creates a registry with all built-in constraint factories.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]ConstraintFactory)}
	r.Register(&univocalicFactory{})
	r.Register(&lipogramFactory{})
	r.Register(&palindromeFactory{})
	r.Register(&snowballFactory{})
	r.Register(&prisonersFactory{})
	r.Register(&sestinaFactory{})
	return r
}

// Register adds a factory under its own name, replacing any previous entry.
func (r *Registry) Register(f ConstraintFactory) {
	r.factories[f.Name()] = f
}

// Has reports whether a constraint type is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Create constructs a constraint by name. It fails with a ConfigError when
// name is unregistered, and with the factory's own error when config is
// malformed for that constraint.
func (r *Registry) Create(name string, config map[string]any) (Constraint, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, NewConfigError("unknown constraint: %s", name)
	}
	return f.Create(config)
}

// AvailableConstraints returns the registered constraint names, sorted.
func (r *Registry) AvailableConstraints() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfigSchema returns the configuration schema for a constraint type.
func (r *Registry) ConfigSchema(name string) (map[string]any, bool) {
	f, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return f.ConfigSchema(), true
}

// ConstraintInfo returns the introspection record for one constraint type.
func (r *Registry) ConstraintInfo(name string) (ConstraintInfo, bool) {
	f, ok := r.factories[name]
	if !ok {
		return ConstraintInfo{}, false
	}
	return ConstraintInfo{Name: f.Name(), Description: f.Description(), Schema: f.ConfigSchema()}, true
}

// ListConstraints returns introspection records for every registered
// constraint type, sorted by name.
func (r *Registry) ListConstraints() []ConstraintInfo {
	infos := make([]ConstraintInfo, 0, len(r.factories))
	for _, name := range r.AvailableConstraints() {
		info, _ := r.ConstraintInfo(name)
		infos = append(infos, info)
	}
	return infos
}

// configString extracts a required string field from a config value.
func configString(config map[string]any, key string) (string, error) {
	v, ok := config[key]
	if !ok {
		return "", NewConfigError("missing %q in config", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", NewConfigError("%q must be a non-empty string", key)
	}
	return s, nil
}

// configRune extracts the first character of a required string field.
func configRune(config map[string]any, key string) (rune, error) {
	s, err := configString(config, key)
	if err != nil {
		return 0, err
	}
	return []rune(s)[0], nil
}

type univocalicFactory struct{}

func (f *univocalicFactory) Name() string { return "univocalic" }
func (f *univocalicFactory) Description() string {
	return "Text must use only one vowel throughout"
}

func (f *univocalicFactory) Create(config map[string]any) (Constraint, error) {
	vowel, err := configRune(config, "allowed_vowel")
	if err != nil {
		return nil, err
	}
	return NewUnivocalicConstraint(vowel)
}

func (f *univocalicFactory) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"allowed_vowel": map[string]any{
				"type":        "string",
				"pattern":     "^[aeiouAEIOU]$",
				"description": "The only vowel allowed in the text",
			},
		},
		"required": []string{"allowed_vowel"},
	}
}

type lipogramFactory struct{}

func (f *lipogramFactory) Name() string { return "lipogram" }
func (f *lipogramFactory) Description() string {
	return "Text must not contain the forbidden letter"
}

func (f *lipogramFactory) Create(config map[string]any) (Constraint, error) {
	letter, err := configRune(config, "forbidden_letter")
	if err != nil {
		return nil, err
	}
	return NewLipogramConstraint(letter), nil
}

func (f *lipogramFactory) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"forbidden_letter": map[string]any{
				"type":        "string",
				"description": "The letter the text must avoid",
			},
		},
		"required": []string{"forbidden_letter"},
	}
}

type palindromeFactory struct{}

func (f *palindromeFactory) Name() string { return "palindrome" }
func (f *palindromeFactory) Description() string {
	return "Text must read the same forwards and backwards"
}

func (f *palindromeFactory) Create(_ map[string]any) (Constraint, error) {
	return NewPalindromeConstraint(), nil
}

func (f *palindromeFactory) ConfigSchema() map[string]any {
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

type snowballFactory struct{}

func (f *snowballFactory) Name() string { return "snowball" }
func (f *snowballFactory) Description() string {
	return "Each word must be one letter longer than the previous"
}

func (f *snowballFactory) Create(_ map[string]any) (Constraint, error) {
	return NewSnowballConstraint(), nil
}

func (f *snowballFactory) ConfigSchema() map[string]any {
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

type prisonersFactory struct{}

func (f *prisonersFactory) Name() string { return "prisoners" }
func (f *prisonersFactory) Description() string {
	return "Only letters without loops are permitted"
}

func (f *prisonersFactory) Create(_ map[string]any) (Constraint, error) {
	return NewPrisonersConstraint(), nil
}

func (f *prisonersFactory) ConfigSchema() map[string]any {
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

type sestinaFactory struct{}

func (f *sestinaFactory) Name() string { return "sestina" }
func (f *sestinaFactory) Description() string {
	return "Text must follow the 39-line sestina end-word rotation"
}

func (f *sestinaFactory) Create(config map[string]any) (Constraint, error) {
	v, ok := config["end_words"]
	if !ok {
		return nil, NewConfigError("missing %q in config", "end_words")
	}
	var words []string
	switch list := v.(type) {
	case []string:
		words = list
	case []any:
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, NewConfigError("%q must be a list of strings", "end_words")
			}
			words = append(words, s)
		}
	default:
		return nil, NewConfigError("%q must be a list of strings", "end_words")
	}
	return NewSestinaConstraint(words), nil
}

func (f *sestinaFactory) ConfigSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"end_words": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The six end words rotated across stanzas",
			},
		},
		"required": []string{"end_words"},
	}
}
