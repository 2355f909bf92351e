package reasoner

import "errors"

// Sentinel errors for reasoning service operations.
var (
	// ErrServiceFailure wraps the final error after all completion attempts
	// are exhausted. Callers downgrade the affected batch to fallback
	// classification rather than propagating it.
	ErrServiceFailure = errors.New("reasoning service failure")

	// ErrEmptyResponse indicates the service returned no usable candidate
	// content. Treated as a failed attempt and retried.
	ErrEmptyResponse = errors.New("empty response from reasoning service")
)
