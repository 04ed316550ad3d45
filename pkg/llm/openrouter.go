package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultOpenRouterBaseURL is the hosted multi-model gateway endpoint.
const DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter implements Client against OpenRouter's OpenAI-compatible
// Chat Completions API with JSON-mode output.
type OpenRouter struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenRouter returns a Client for the OpenRouter gateway. An empty baseURL
// selects DefaultOpenRouterBaseURL.
func NewOpenRouter(baseURL, apiKey, model string) *OpenRouter {
	u := strings.TrimSuffix(baseURL, "/")
	if u == "" {
		u = DefaultOpenRouterBaseURL
	}
	return &OpenRouter{
		baseURL: u,
		apiKey:  apiKey,
		model:   model,
		client:  http.DefaultClient,
	}
}

func (c *OpenRouter) Name() string { return "openrouter" }

type openRouterRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type openRouterResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the system and user messages and returns the assistant reply.
// Non-2xx statuses are returned as *APIError so callers can distinguish
// credit exhaustion (402) and rate limiting (429).
func (c *OpenRouter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openrouter: API key not set")
	}
	reqBody := openRouterRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{Provider: c.Name(), StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}
	var out openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("openrouter: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openrouter: no choices in response")
	}
	return out.Choices[0].Message.Content, nil
}
