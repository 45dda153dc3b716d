// Package ai is a minimal client for an OpenAI-compatible chat completions
// endpoint. The platform treats the model as an untrusted advisory service:
// replies are passed through to the caller and never drive state changes.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"medseal.backend/internal/domain/entities"
	domainerrors "medseal.backend/internal/domain/errors"
)

// Client calls a chat completions endpoint
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new assistant client
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the system prompt and conversation to the model and returns
// the assistant's reply.
func (c *Client) Complete(ctx context.Context, systemPrompt string, messages []entities.ChatMessage) (string, error) {
	payload := chatRequest{
		Model:    c.model,
		Messages: make([]chatMessage, 0, len(messages)+1),
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, m := range messages {
		payload.Messages = append(payload.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.InternalError(fmt.Errorf("assistant endpoint unreachable: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", domainerrors.InternalError(fmt.Errorf("assistant endpoint returned %d: %s", resp.StatusCode, raw))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domainerrors.InternalError(fmt.Errorf("decoding assistant response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return "", domainerrors.InternalError(errors.New("assistant returned no choices"))
	}
	return parsed.Choices[0].Message.Content, nil
}
