// Package completion wraps the remote chat-completion APIs behind a single
// Gateway so callers never touch an SDK directly.
package completion

import (
	"context"
	"fmt"
)

// Gateway sends one system/user prompt pair to a chat-completion API.
// A nil error means the returned text is the model's answer, trimmed.
type Gateway interface {
	Complete(ctx context.Context, req Request) (string, error)
	// Provider names the backend ("openai", "anthropic", "gemini").
	Provider() string
	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request is a single-turn completion call.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// UpstreamError reports any failure talking to the completion API:
// transport errors, authentication failures, non-success responses and
// responses with no usable content.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s upstream error (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
