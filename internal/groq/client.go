// Package groq is a minimal client for the Groq chat completions endpoint,
// which is wire-compatible with the OpenAI chat/completions API.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/puresoul/puresoul-go/internal/model"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"

	// Model is the completion model used for every request.
	Model = "llama-3.3-70b-versatile"
)

type chatCompletionRequest struct {
	Model    string                `json:"model"`
	Messages []model.PromptMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Client calls the Groq API.
type Client struct {
	// BaseURL may be overridden in tests.
	BaseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new Client with the production endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// CreateChatCompletion sends the prompt and returns the first generated
// reply. An empty reply with nil error means the upstream produced no
// usable content; the caller decides what to substitute.
func (c *Client) CreateChatCompletion(ctx context.Context, messages []model.PromptMessage) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{Model: Model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode, detail)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
