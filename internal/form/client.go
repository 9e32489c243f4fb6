package form

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"civicletter/internal/types"
)

// Client calls the letter generation endpoint over HTTP. Failure responses
// are decoded into *types.APIError so the controller can render them.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) Generate(ctx context.Context, form types.SimpleFormData) (types.LetterResponse, error) {
	body, err := json.Marshal(types.LetterRequest{FormData: &form})
	if err != nil {
		return types.LetterResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-letter", bytes.NewReader(body))
	if err != nil {
		return types.LetterResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.LetterResponse{}, &types.APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr types.APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		return types.LetterResponse{}, &apiErr
	}

	var out types.LetterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.LetterResponse{}, &types.APIError{Message: "malformed response from server"}
	}
	if out.Citations == nil {
		out.Citations = []string{}
	}
	return out, nil
}
