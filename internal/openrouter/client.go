// Package openrouter implements the chat-completions client used by the
// generation pipeline. It speaks the OpenAI-compatible wire format
// against OpenRouter.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/config"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
)

// GenerationError is the single failure type for the upstream call:
// transport failures, non-2xx statuses, and malformed response bodies
// all end up here. Status is zero when the request never got a response.
type GenerationError struct {
	Status int
	Detail string
}

func (e *GenerationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generation failed (status %d): %s", e.Status, e.Detail)
	}
	return "generation failed: " + e.Detail
}

// Client issues chat-completion requests to OpenRouter.
type Client struct {
	cfg    config.OpenRouterConfig
	client *http.Client
	logger logger.Logger
}

// NewClient creates a new OpenRouter client.
func NewClient(cfg config.OpenRouterConfig, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// MockEnabled reports whether the client will serve canned completions
// instead of calling upstream (no API key configured and allow_mock set).
func (c *Client) MockEnabled() bool {
	return c.cfg.APIKey == "" && c.cfg.AllowMock
}

// Generate sends one chat-completion request and returns the trimmed
// message text of the first choice. There is no retry; any failure is
// returned as a *GenerationError.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	if c.MockEnabled() {
		// Explicit development fallback, never a silent mask of upstream
		// failures. See openrouter.allow_mock in config.yml.
		return "Mock AI response for prompt: " + user, nil
	}

	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:        c.cfg.MaxTokens,
		Temperature:      c.cfg.Temperature,
		TopP:             c.cfg.TopP,
		FrequencyPenalty: c.cfg.FrequencyPenalty,
		PresencePenalty:  c.cfg.PresencePenalty,
	}

	start := time.Now()
	resp, err := c.doRequest(ctx, "/chat/completions", reqBody)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &GenerationError{Detail: "no response choices from model"}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &GenerationError{Detail: "empty message content in first choice"}
	}

	c.logger.Debug("Chat completion succeeded",
		logger.String("model", resp.Model),
		logger.Int("completion_tokens", resp.Usage.CompletionTokens),
		logger.Duration("elapsed", time.Since(start)),
	)

	return text, nil
}

// doRequest makes an HTTP request to the OpenRouter API.
func (c *Client) doRequest(ctx context.Context, path string, body any) (*chatResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, &GenerationError{Detail: "marshal request: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, &GenerationError{Detail: "create request: " + err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &GenerationError{Detail: "request failed: " + err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Status: resp.StatusCode, Detail: "read response: " + err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			return nil, &GenerationError{Status: resp.StatusCode, Detail: errResp.Error.Message}
		}
		return nil, &GenerationError{Status: resp.StatusCode, Detail: string(respBody)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, &GenerationError{Status: resp.StatusCode, Detail: "unmarshal response: " + err.Error()}
	}

	return &chatResp, nil
}

// OpenRouter API types (OpenAI-compatible)

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens,omitempty"`
	Temperature      float64       `json:"temperature,omitempty"`
	TopP             float64       `json:"top_p,omitempty"`
	FrequencyPenalty float64       `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64       `json:"presence_penalty,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Code    any    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
