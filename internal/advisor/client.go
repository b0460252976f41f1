// Package advisor talks to an OpenAI-compatible chat completion API to turn
// a user's derived financial picture into conversational advice. The client
// makes a single attempt per request; callers fall back to template advice
// when the API is unreachable or not configured.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "kwarta/internal/errors"
)

const maxResponseBytes = 64 * 1024

// Client is an HTTP client for an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClient creates an advisor client. An empty apiKey produces an
// unconfigured client; Complete will return ErrAdvisorUnavailable.
func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    httpClient,
	}
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a system and user prompt and returns the model's reply.
// A single request is made; there are no retries.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.Configured() {
		return "", apperrors.ErrAdvisorUnavailable
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
		MaxTokens:   500,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable,
			fmt.Errorf("completion API returned status %d", resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", apperrors.Wrap(apperrors.ErrAdvisorUnavailable,
			fmt.Errorf("completion API returned no choices"))
	}

	return parsed.Choices[0].Message.Content, nil
}
