package services

import (
	"errors"
	"fmt"
)

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// ErrEmptyResponse is returned when the upstream call succeeds but carries no usable text.
var ErrEmptyResponse = errors.New("upstream returned no usable content")

// UpstreamError wraps any failure of the generation call.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
