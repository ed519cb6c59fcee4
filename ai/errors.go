package ai

import (
	"errors"
	"fmt"
)

// Operation names, as used in credit estimation and provider errors.
const (
	OpSuggestBeatContent           = "suggest_beat_content"
	OpAnalyzeCharacterArc          = "analyze_character_arc"
	OpAnalyzeThemeCoherence        = "analyze_theme_coherence"
	OpGenerateCharacterSuggestions = "generate_character_suggestions"
	OpGeneratePlotSuggestions      = "generate_plot_suggestions"
	OpAnalyzeWritingStyle          = "analyze_writing_style"
)

// ProviderError describes a failed provider call. Retryable errors (context
// cancellation, provider hiccups) may succeed on a later attempt; the rest
// are malformed requests that never will.
type ProviderError struct {
	// Provider is the provider that rejected the call.
	Provider string

	// Operation is the operation name, matching the credit-estimation keys.
	Operation string

	// Retryable reports whether a retry could succeed.
	Retryable bool

	// Err is the underlying cause.
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Operation, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as a retryable failure of operation on provider.
func NewTransientError(provider, operation string, err error) error {
	return &ProviderError{Provider: provider, Operation: operation, Retryable: true, Err: err}
}

// NewFatalError wraps err as a non-retryable failure of operation on provider.
func NewFatalError(provider, operation string, err error) error {
	return &ProviderError{Provider: provider, Operation: operation, Err: err}
}

// IsTransient returns true if the error is a provider failure worth retrying.
func IsTransient(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr) && providerErr.Retryable
}

// IsFatal returns true if the error is a provider failure that no retry can
// fix.
func IsFatal(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr) && !providerErr.Retryable
}

// InsufficientCreditsError is returned when an operation costs more credits
// than the session has left. The balance is untouched.
type InsufficientCreditsError struct {
	Required  int
	Remaining int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: %d required, %d remaining", e.Required, e.Remaining)
}

// IsInsufficientCredits returns true if the error is a credit shortfall.
func IsInsufficientCredits(err error) bool {
	var creditsErr *InsufficientCreditsError
	return errors.As(err, &creditsErr)
}
