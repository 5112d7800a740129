package genvid

import (
	"strings"
	"time"
)

// ResultState represents the state of a generation outcome
type ResultState string

const (
	StatePending   ResultState = "pending"
	StateSucceeded ResultState = "succeeded"
	StateFailed    ResultState = "failed"
)

// Resolution represents the output resolution of the generated video
type Resolution string

const (
	Resolution480p  Resolution = "480p"
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
)

// DefaultResolution is used when a request leaves the resolution empty
const DefaultResolution = Resolution720p

var supportedResolutions = []Resolution{
	Resolution480p,
	Resolution720p,
	Resolution1080p,
}

// GenerationRequest represents a video generation request
type GenerationRequest struct {
	Prompt     string     `json:"prompt"`
	Duration   int        `json:"duration"`
	Resolution Resolution `json:"resolution"`
}

// Validate checks the request before any network call is made
func (r *GenerationRequest) Validate() error {
	if r == nil {
		return &ValidationError{Field: "request", Message: "request cannot be nil"}
	}

	if strings.TrimSpace(r.Prompt) == "" {
		return &ValidationError{Field: "prompt", Message: "prompt cannot be empty"}
	}

	if r.Duration <= 0 {
		return &ValidationError{Field: "duration", Message: "duration must be positive"}
	}

	if r.Resolution != "" {
		found := false
		for _, res := range supportedResolutions {
			if res == r.Resolution {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{Field: "resolution", Message: "unsupported resolution: " + string(r.Resolution)}
		}
	}
	return nil
}

// GenerationResult is the tagged outcome of a generation attempt. Exactly one
// variant is active: Pending carries a job ID, Succeeded a video URL, Failed a
// message. Succeeded and Failed are terminal. Demo marks a placeholder result
// substituted by a caller-level fallback policy, never by the client itself.
type GenerationResult struct {
	State    ResultState `json:"state"`
	JobID    string      `json:"job_id,omitempty"`
	VideoURL string      `json:"video_url,omitempty"`
	Message  string      `json:"message,omitempty"`
	Demo     bool        `json:"demo,omitempty"`
}

// Pending returns a result for a job still being processed remotely
func Pending(jobID string) *GenerationResult {
	return &GenerationResult{State: StatePending, JobID: jobID}
}

// Succeeded returns a terminal result carrying the generated video URL
func Succeeded(videoURL string) *GenerationResult {
	return &GenerationResult{State: StateSucceeded, VideoURL: videoURL}
}

// Failed returns a terminal result carrying the remote failure message
func Failed(message string) *GenerationResult {
	return &GenerationResult{State: StateFailed, Message: message}
}

// Terminal reports whether no further transitions can occur
func (r *GenerationResult) Terminal() bool {
	return r.State == StateSucceeded || r.State == StateFailed
}

// Remote status vocabulary observed on the status endpoint
const (
	remoteStatusCompleted = "completed"
	remoteStatusFailed    = "failed"
)

// pollState tracks one polling loop. It is owned exclusively by the loop that
// created it and dies with it on any terminal transition or cancellation.
type pollState struct {
	jobID        string
	attemptsMade int
	maxAttempts  int
	interval     time.Duration
}

func newPollState(jobID string, cfg *ClientConfig) *pollState {
	return &pollState{
		jobID:       jobID,
		maxAttempts: cfg.MaxPollAttempts,
		interval:    cfg.PollInterval,
	}
}

func (s *pollState) exhausted() bool {
	return s.attemptsMade >= s.maxAttempts
}
