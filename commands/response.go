// Package commands is the application-facing command surface. Each handler
// wraps a service call in a typed response envelope so callers get a uniform
// shape regardless of which subsystem answered.
package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResponseType classifies a command response.
type ResponseType string

const (
	ResponseTypeResult ResponseType = "result"
	ResponseTypeError  ResponseType = "error"
)

// Response is the envelope returned by every command handler.
type Response struct {
	ResponseID string       `json:"response_id"`
	Type       ResponseType `json:"type"`
	Content    string       `json:"content,omitempty"`
	Data       any          `json:"data,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

// OK reports whether the response carries a result.
func (r *Response) OK() bool {
	return r.Type == ResponseTypeResult
}

func resultResponse(content string, data any) *Response {
	return &Response{
		ResponseID: uuid.New().String(),
		Type:       ResponseTypeResult,
		Content:    content,
		Data:       data,
		Timestamp:  time.Now(),
	}
}

func errorResponse(format string, args ...any) *Response {
	return &Response{
		ResponseID: uuid.New().String(),
		Type:       ResponseTypeError,
		Content:    fmt.Sprintf(format, args...),
		Timestamp:  time.Now(),
	}
}
