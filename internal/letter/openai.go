package letter

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider drafts letters through the OpenAI chat completions API.
// OpenAI has no search grounding, so the recency filter is ignored and
// citations are always empty.
type OpenAIProvider struct {
	client *openai.Client
	apiKey string
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(apiKey), apiKey: apiKey, model: model}
}

func (p *OpenAIProvider) Complete(ctx context.Context, system, user string, style Style) (Completion, error) {
	if p.apiKey == "" {
		return Completion{}, ErrMissingAPIKey
	}
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            p.model,
		Temperature:      style.Temperature,
		MaxTokens:        style.MaxTokens,
		TopP:             style.TopP,
		FrequencyPenalty: style.FrequencyPenalty,
		PresencePenalty:  style.PresencePenalty,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
				return Completion{}, &RateLimitError{}
			}
			return Completion{}, &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		return Completion{}, &UpstreamError{Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return Completion{}, &UpstreamError{Message: "completion response contained no choices"}
	}
	return Completion{Content: resp.Choices[0].Message.Content}, nil
}
