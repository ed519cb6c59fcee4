package ai

// Response wraps the output of any provider operation with cost accounting.
type Response[T any] struct {
	Success          bool           `json:"success"`
	Data             *T             `json:"data,omitempty"`
	Error            string         `json:"error,omitempty"`
	CreditsUsed      int            `json:"credits_used"`
	ProcessingTimeMS int64          `json:"processing_time_ms"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// NewResponse creates a successful response.
func NewResponse[T any](data T, creditsUsed int, processingTimeMS int64) *Response[T] {
	return &Response[T]{
		Success:          true,
		Data:             &data,
		CreditsUsed:      creditsUsed,
		ProcessingTimeMS: processingTimeMS,
	}
}

// NewErrorResponse creates a failed response carrying an error message.
func NewErrorResponse[T any](errMsg string, creditsUsed int, processingTimeMS int64) *Response[T] {
	return &Response[T]{
		Success:          false,
		Error:            errMsg,
		CreditsUsed:      creditsUsed,
		ProcessingTimeMS: processingTimeMS,
	}
}

// IsOK reports whether the response succeeded and carries data.
func (r *Response[T]) IsOK() bool {
	return r.Success && r.Data != nil
}
