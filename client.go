package genvid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Client drives one video generation attempt from submission to a terminal
// outcome: validate, POST the request, interpret the immediate response, and
// fall back to polling the status endpoint when the provider answers with a
// job ID instead of a direct video URL.
type Client struct {
	endpoint string
	cred     Credential
	config   *ClientConfig
	client   *http.Client
	inFlight atomic.Bool
}

// ClientConfig holds configuration for the client
type ClientConfig struct {
	// Timeout bounds each HTTP round trip, not the whole lifecycle; the
	// polling ceiling is PollInterval * MaxPollAttempts.
	Timeout         time.Duration
	PollInterval    time.Duration
	MaxPollAttempts int
	UserAgent       string
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// DefaultClientConfig returns default client configuration
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:         30 * time.Second,
		PollInterval:    2 * time.Second,
		MaxPollAttempts: 30,
		UserAgent:       "genvid-sdk/1.0",
	}
}

// NewClient creates a new generation client for the given endpoint. The
// credential may be nil, in which case requests carry no Authorization header.
func NewClient(endpoint string, cred Credential, config ...*ClientConfig) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, ErrEndpointRequired
	}

	cfg := DefaultClientConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxPollAttempts <= 0 {
		cfg.MaxPollAttempts = 30
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "genvid-sdk/1.0"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		cred:     cred,
		config:   cfg,
		client:   httpClient,
	}, nil
}

// Submit runs one generation attempt to its terminal outcome. On success the
// returned result is Succeeded with the video URL; every failure kind is
// returned as an error (ValidationError, NetworkError, APIError,
// ErrUnexpectedResponse, GenerationFailedError, ErrPollTimeout). A second
// Submit on the same client while one is still in flight is rejected with
// ErrBusy. Cancelling ctx abandons the attempt and surfaces ctx.Err().
func (c *Client) Submit(ctx context.Context, req *GenerationRequest) (*GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.inFlight.Store(false)

	body, err := c.postGeneration(ctx, req)
	if err != nil {
		return nil, err
	}

	if videoURL, ok := extractFirst(videoURLRules, body); ok {
		return Succeeded(videoURL), nil
	}

	jobID, ok := extractFirst(jobIDRules, body)
	if !ok {
		return nil, errors.Wrap(ErrUnexpectedResponse, "no video URL or job ID in response")
	}

	return c.pollJob(ctx, newPollState(jobID, c.config))
}

func (c *Client) postGeneration(ctx context.Context, req *GenerationRequest) (map[string]any, error) {
	payload := *req
	if payload.Resolution == "" {
		payload.Resolution = DefaultResolution
	}

	jsonBody, err := json.Marshal(&payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request body")
	}

	return c.doJSON(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
}

// pollJob queries the status endpoint once per interval until the job reaches
// a terminal status or attempts run out. Any network, HTTP, or parse error
// terminates the loop immediately; an attempt is never retried.
func (c *Client) pollJob(ctx context.Context, state *pollState) (*GenerationResult, error) {
	ticker := time.NewTicker(state.interval)
	defer ticker.Stop()

	statusURL := fmt.Sprintf("%s/status/%s", c.endpoint, state.jobID)

	for !state.exhausted() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		state.attemptsMade++

		body, err := c.doJSON(ctx, http.MethodGet, statusURL, nil)
		if err != nil {
			return nil, err
		}

		status, _ := body["status"].(string)
		switch status {
		case remoteStatusFailed:
			message, _ := body["error"].(string)
			return nil, &GenerationFailedError{JobID: state.jobID, Message: message}
		case remoteStatusCompleted:
			if videoURL, ok := extractFirst(videoURLRules, body); ok {
				return Succeeded(videoURL), nil
			}
			// completed without a URL is not terminal yet; the URL can
			// lag the status by an attempt
		}
	}

	return nil, ErrPollTimeout
}

// doJSON performs one HTTP request and decodes the JSON response body
func (c *Client) doJSON(ctx context.Context, method, url string, body io.Reader) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.cred != nil {
		token, err := c.cred.Token()
		if err != nil {
			return nil, errors.Wrap(err, "failed to build credential token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Wrapf(ErrUnexpectedResponse, "body: %s", bodySnippet(raw))
	}
	return decoded, nil
}

func bodySnippet(raw []byte) string {
	const max = 200
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
