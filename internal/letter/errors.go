package letter

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey reports an absent service credential. It is a deployment
// fault detected before any outbound request is made.
var ErrMissingAPIKey = errors.New("completion API key is not configured")

// RateLimitError reports upstream throttling. It is surfaced to callers as
// HTTP 429 rather than retried.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "API rate limit exceeded. Please try again later."
}

// UpstreamError reports any other completion service failure: a network
// fault, a malformed response, or a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("completion service error (%d): %s", e.StatusCode, e.Message)
	}
	return e.Message
}
