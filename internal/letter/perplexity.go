package letter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultPerplexityBaseURL = "https://api.perplexity.ai"

// PerplexityClient calls the Perplexity chat completions API directly. The
// typed OpenAI client cannot express the search parameters or the top-level
// citations field, so this uses net/http.
type PerplexityClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewPerplexityClient(apiKey, baseURL, model string) *PerplexityClient {
	if baseURL == "" {
		baseURL = defaultPerplexityBaseURL
	}
	return &PerplexityClient{
		httpClient: &http.Client{Timeout: 90 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type perplexityRequest struct {
	Model                  string        `json:"model"`
	Messages               []chatMessage `json:"messages"`
	Temperature            float32       `json:"temperature"`
	MaxTokens              int           `json:"max_tokens"`
	TopP                   float32       `json:"top_p"`
	SearchDomainFilter     []string      `json:"search_domain_filter"`
	ReturnImages           bool          `json:"return_images"`
	ReturnRelatedQuestions bool          `json:"return_related_questions"`
	SearchRecencyFilter    string        `json:"search_recency_filter,omitempty"`
	TopK                   int           `json:"top_k"`
	Stream                 bool          `json:"stream"`
	PresencePenalty        float32       `json:"presence_penalty"`
	FrequencyPenalty       float32       `json:"frequency_penalty"`
}

type perplexityResponse struct {
	Citations []string `json:"citations"`
	Choices   []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *PerplexityClient) Complete(ctx context.Context, system, user string, style Style) (Completion, error) {
	if c.apiKey == "" {
		return Completion{}, ErrMissingAPIKey
	}
	payload := perplexityRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:         style.Temperature,
		MaxTokens:           style.MaxTokens,
		TopP:                style.TopP,
		SearchDomainFilter:  []string{},
		SearchRecencyFilter: style.RecencyFilter,
		Stream:              false,
		PresencePenalty:     style.PresencePenalty,
		FrequencyPenalty:    style.FrequencyPenalty,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Completion{}, fmt.Errorf("marshal completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Completion{}, &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return Completion{}, &RateLimitError{}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return Completion{}, &UpstreamError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
	}

	var out perplexityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Completion{}, &UpstreamError{StatusCode: resp.StatusCode, Message: "malformed completion response: " + err.Error()}
	}
	if len(out.Choices) == 0 {
		return Completion{}, &UpstreamError{StatusCode: resp.StatusCode, Message: "completion response contained no choices"}
	}
	return Completion{Content: out.Choices[0].Message.Content, Citations: out.Citations}, nil
}
