package genvid

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors(t *testing.T) {
	// Test ValidationError
	validationErr := &ValidationError{
		Field:   "prompt",
		Message: "prompt cannot be empty",
	}

	expected := "validation error for field 'prompt': prompt cannot be empty"
	if validationErr.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, validationErr.Error())
	}

	// Test APIError
	apiErr := &APIError{
		StatusCode: 500,
		Status:     "500 Internal Server Error",
	}

	expected = "API error: 500 Internal Server Error"
	if apiErr.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, apiErr.Error())
	}

	// Test GenerationFailedError with and without a message
	genErr := &GenerationFailedError{JobID: "job-1", Message: "bad prompt"}
	expected = "generation failed for job job-1: bad prompt"
	if genErr.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, genErr.Error())
	}

	genErr = &GenerationFailedError{JobID: "job-1"}
	expected = "generation failed for job job-1"
	if genErr.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, genErr.Error())
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	netErr := &NetworkError{Err: cause}

	if !errors.Is(netErr, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}

	wrapped := fmt.Errorf("submit: %w", netErr)
	if !IsNetworkError(wrapped) {
		t.Error("IsNetworkError should see through wrapping")
	}

	if IsNetworkError(&APIError{StatusCode: 500, Status: "500 Internal Server Error"}) {
		t.Error("an API error is not a network error")
	}
}

func TestIsValidationError(t *testing.T) {
	req := &GenerationRequest{Prompt: "   ", Duration: 5}
	err := req.Validate()
	if !IsValidationError(err) {
		t.Error("whitespace-only prompt should yield a validation error")
	}

	if IsValidationError(ErrPollTimeout) {
		t.Error("ErrPollTimeout is not a validation error")
	}
}

func TestResultVariants(t *testing.T) {
	pending := Pending("job-1")
	if pending.Terminal() {
		t.Error("pending result should not be terminal")
	}
	if pending.JobID != "job-1" {
		t.Errorf("expected job ID 'job-1', got '%s'", pending.JobID)
	}

	succeeded := Succeeded("https://cdn.example.com/v.mp4")
	if !succeeded.Terminal() {
		t.Error("succeeded result should be terminal")
	}

	failed := Failed("boom")
	if !failed.Terminal() {
		t.Error("failed result should be terminal")
	}
	if failed.Message != "boom" {
		t.Errorf("expected message 'boom', got '%s'", failed.Message)
	}
}
