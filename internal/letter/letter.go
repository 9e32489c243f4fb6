// Package letter turns a filled-out contact form into a drafted letter by
// issuing a single request to an external completion service.
package letter

import (
	"context"
	"time"

	"civicletter/internal/types"
)

// Completion is the raw outcome of one provider round trip.
type Completion struct {
	Content   string
	Citations []string
}

// Provider issues exactly one completion request for a prepared prompt pair.
// Implementations map upstream throttling to *RateLimitError, everything
// else to *UpstreamError, and a missing credential to ErrMissingAPIKey.
type Provider interface {
	Complete(ctx context.Context, system, user string, style Style) (Completion, error)
}

// Service builds the prompt pair and delegates to a provider. No retries:
// one attempt, one round trip.
type Service struct {
	provider Provider
	spec     PromptSpec
	timeout  time.Duration
}

func NewService(provider Provider, spec PromptSpec, timeout time.Duration) *Service {
	return &Service{provider: provider, spec: spec, timeout: timeout}
}

func (s *Service) Generate(ctx context.Context, form types.SimpleFormData) (types.LetterResponse, error) {
	system, user := BuildPrompts(s.spec, form)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	out, err := s.provider.Complete(ctx, system, user, s.spec.Style)
	if err != nil {
		return types.LetterResponse{}, err
	}
	if out.Citations == nil {
		out.Citations = []string{}
	}
	return types.LetterResponse{Content: out.Content, Citations: out.Citations}, nil
}
