// Package llm wraps the completion API behind a narrow interface so the
// generation service can be tested without network calls.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrTimeout marks a completion call that ran past the configured
	// deadline. Timed-out generations are never charged.
	ErrTimeout = errors.New("completion request timed out")

	// ErrEmptyCompletion marks a response with no usable text.
	ErrEmptyCompletion = errors.New("completion returned no content")
)

// CompletionRequest is one prompt pair plus sampling options.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Completer produces text for a prompt. Implementations perform no retries
// beyond whatever their SDK does internally; callers treat the call as an
// opaque remote operation.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
