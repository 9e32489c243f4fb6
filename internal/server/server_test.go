package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicletter/internal/config"
	"civicletter/internal/letter"
	"civicletter/internal/types"
)

type fakeGenerator struct {
	calls  int
	result types.LetterResponse
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, _ types.SimpleFormData) (types.LetterResponse, error) {
	f.calls++
	return f.result, f.err
}

func newTestServer(gen Generator) *Server {
	return NewServer(config.Config{AllowedOrigin: "*"}, gen, nil)
}

func postLetter(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-letter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestGenerateLetterSuccess(t *testing.T) {
	gen := &fakeGenerator{result: types.LetterResponse{Content: "Dear Senator...", Citations: []string{}}}
	s := newTestServer(gen)

	rec := postLetter(t, s, `{"formData":{"userInfo":"a","representativeInfo":"b","issueDetails":"c","customInstructions":""}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.LetterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Dear Senator...", resp.Content)
	assert.NotNil(t, resp.Citations)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateLetterValidation(t *testing.T) {
	cases := map[string]string{
		"missing formData":       `{}`,
		"missing userInfo":       `{"formData":{"representativeInfo":"b","issueDetails":"c"}}`,
		"missing representative": `{"formData":{"userInfo":"a","issueDetails":"c"}}`,
		"missing issueDetails":   `{"formData":{"userInfo":"a","representativeInfo":"b"}}`,
		"whitespace-only field":  `{"formData":{"userInfo":"   ","representativeInfo":"b","issueDetails":"c"}}`,
		"empty string field":     `{"formData":{"userInfo":"","representativeInfo":"b","issueDetails":"c"}}`,
		"null required field":    `{"formData":{"userInfo":null,"representativeInfo":"b","issueDetails":"c"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			gen := &fakeGenerator{}
			s := newTestServer(gen)

			rec := postLetter(t, s, body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp types.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Please fill out all required fields", resp.Message)
			assert.Zero(t, resp.StatusCode)
			assert.Zero(t, gen.calls, "generator must not run on validation failure")
		})
	}
}

func TestGenerateLetterEmptyCustomInstructionsAllowed(t *testing.T) {
	gen := &fakeGenerator{result: types.LetterResponse{Content: "ok", Citations: []string{}}}
	s := newTestServer(gen)

	rec := postLetter(t, s, `{"formData":{"userInfo":"a","representativeInfo":"b","issueDetails":"c"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateLetterInvalidJSON(t *testing.T) {
	gen := &fakeGenerator{}
	s := newTestServer(gen)

	rec := postLetter(t, s, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, gen.calls)
}

func TestGenerateLetterRateLimited(t *testing.T) {
	gen := &fakeGenerator{err: &letter.RateLimitError{}}
	s := newTestServer(gen)

	rec := postLetter(t, s, `{"formData":{"userInfo":"a","representativeInfo":"b","issueDetails":"c"}}`)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var resp types.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, resp.Message, "rate limit")
}

func TestGenerateLetterUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: &letter.UpstreamError{StatusCode: http.StatusBadGateway, Message: "boom"}}
	s := newTestServer(gen)

	rec := postLetter(t, s, `{"formData":{"userInfo":"a","representativeInfo":"b","issueDetails":"c"}}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp types.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Message, "boom")
}

func TestGenerateLetterMissingCredential(t *testing.T) {
	gen := &fakeGenerator{err: letter.ErrMissingAPIKey}
	s := newTestServer(gen)

	rec := postLetter(t, s, `{"formData":{"userInfo":"a","representativeInfo":"b","issueDetails":"c"}}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp types.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "not configured")
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeGenerator{})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
