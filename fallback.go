package genvid

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPlaceholderURL is the demonstration video substituted by
// FallbackRunner when no placeholder is configured.
const DefaultPlaceholderURL = "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"

// FallbackRunner wraps a Client with an opt-in demonstration policy: when the
// generation endpoint is unreachable, it substitutes a placeholder result
// after a short delay instead of surfacing the transport failure. The
// substituted result is marked Demo and logged at warn level, so it is always
// distinguishable from a genuine generation. Every other failure kind passes
// through untouched.
type FallbackRunner struct {
	Client         *Client
	Delay          time.Duration
	PlaceholderURL string
	Logger         zerolog.Logger
}

// Submit runs the wrapped client's Submit and applies the fallback policy
// on transport-level failures only.
func (f *FallbackRunner) Submit(ctx context.Context, req *GenerationRequest) (*GenerationResult, error) {
	result, err := f.Client.Submit(ctx, req)
	if err == nil || !IsNetworkError(err) {
		return result, err
	}

	delay := f.Delay
	if delay <= 0 {
		delay = 2 * time.Second
	}
	placeholder := f.PlaceholderURL
	if placeholder == "" {
		placeholder = DefaultPlaceholderURL
	}

	f.Logger.Warn().
		Err(err).
		Str("placeholder_url", placeholder).
		Msg("generation endpoint unreachable, substituting demo result")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(delay):
	}

	result = Succeeded(placeholder)
	result.Demo = true
	return result, nil
}
