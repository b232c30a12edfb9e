package ai

import (
	"context"
	"fmt"
)

// Provider is the interface for generative-text backends.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string  // "gemini", "openai"
	Model() string // model identifier for logs
}

// StatusError is a non-2xx answer from a provider.
type StatusError struct {
	Provider string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.Status, e.Body)
}
