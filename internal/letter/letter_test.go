package letter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicletter/internal/types"
)

type stubProvider struct {
	out  Completion
	err  error
	sys  string
	user string
}

func (s *stubProvider) Complete(_ context.Context, system, user string, _ Style) (Completion, error) {
	s.sys = system
	s.user = user
	return s.out, s.err
}

func TestServiceGenerateNilCitationsBecomeEmpty(t *testing.T) {
	p := &stubProvider{out: Completion{Content: "Dear Senator..."}}
	svc := NewService(p, DefaultPromptSpec(), 0)

	res, err := svc.Generate(context.Background(), types.SimpleFormData{UserInfo: "a", RepresentativeInfo: "b", IssueDetails: "c"})
	require.NoError(t, err)
	assert.Equal(t, "Dear Senator...", res.Content)
	require.NotNil(t, res.Citations)
	assert.Empty(t, res.Citations)
}

func TestServiceGeneratePassesPromptPair(t *testing.T) {
	p := &stubProvider{out: Completion{Content: "ok"}}
	svc := NewService(p, DefaultPromptSpec(), 0)

	_, err := svc.Generate(context.Background(), types.SimpleFormData{UserInfo: "me", RepresentativeInfo: "rep", IssueDetails: "issue"})
	require.NoError(t, err)
	assert.Contains(t, p.sys, "professional letter writer")
	assert.Contains(t, p.user, "me")
	assert.Contains(t, p.user, "rep")
	assert.Contains(t, p.user, "issue")
}

func TestServiceGeneratePropagatesProviderError(t *testing.T) {
	p := &stubProvider{err: &RateLimitError{}}
	svc := NewService(p, DefaultPromptSpec(), 0)

	_, err := svc.Generate(context.Background(), types.SimpleFormData{UserInfo: "a", RepresentativeInfo: "b", IssueDetails: "c"})
	var rate *RateLimitError
	assert.ErrorAs(t, err, &rate)
}
