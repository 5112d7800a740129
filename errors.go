package genvid

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrEndpointRequired   = errors.New("generation endpoint is required")
	ErrBusy               = errors.New("a submission is already in flight")
	ErrPollTimeout        = errors.New("poll attempts exhausted without a terminal status")
	ErrUnexpectedResponse = errors.New("unexpected response format")
)

// ValidationError represents a request validation error. It is returned
// before any network call is made.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// APIError represents a non-success HTTP status returned by the generation API
type APIError struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Status)
}

// NetworkError represents a transport-level failure where no response was
// received. It is deliberately distinct from APIError so that callers can
// apply a network-only fallback policy without ever masking a remote refusal.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network unavailable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// GenerationFailedError means the remote service explicitly reported that the
// job failed. It is terminal; polling stops on the attempt that observed it.
type GenerationFailedError struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

func (e *GenerationFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generation failed for job %s", e.JobID)
	}
	return fmt.Sprintf("generation failed for job %s: %s", e.JobID, e.Message)
}

// IsNetworkError reports whether err is a transport-level failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsValidationError reports whether err was rejected before submission
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
