package services

import (
	"context"
	"fmt"
)

// GenerationOptions are the sampling parameters sent with every upstream call.
type GenerationOptions struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
	TopK        int
}

// DefaultGenerationOptions is used for every chat reply. It is not tunable per request.
var DefaultGenerationOptions = GenerationOptions{
	MaxTokens:   200,
	Temperature: 0.7,
	TopP:        0.8,
	TopK:        40,
}

// Generator turns a flattened prompt into text. Implementations return *UpstreamError on any failure.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
	Model() string
}

// guardPanic converts a panic inside an SDK call into an UpstreamError.
func guardPanic(provider string, err *error) {
	if r := recover(); r != nil {
		*err = &UpstreamError{Provider: provider, Err: fmt.Errorf("panic: %v", r)}
	}
}
