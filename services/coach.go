package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"main/config"
)

// CoachClient calls an OpenAI-compatible chat-completions endpoint to
// generate short coaching messages for top-priority tasks. Every failure
// mode (no key, network error, provider error) is an error the caller
// degrades on; this client never panics the request path.
type CoachClient struct {
	cfg        config.CoachConfig
	httpClient *http.Client
}

func NewCoachClient(cfg config.CoachConfig) *CoachClient {
	return &CoachClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether credentials are configured. A disabled coach is a
// valid state, not an error.
func (c *CoachClient) Enabled() bool {
	return c.cfg.APIKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *CoachClient) CoachingMessage(ctx context.Context, taskName, projectName string, reasons []string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("coaching is not configured")
	}

	prompt := buildPrompt(taskName, projectName, reasons)
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are an encouraging productivity coach. Reply with one or two short sentences, no preamble."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   80,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("coach provider returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("coach provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("coach provider returned no choices")
	}

	message := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if message == "" {
		return "", fmt.Errorf("coach provider returned an empty message")
	}
	return message, nil
}

func buildPrompt(taskName, projectName string, reasons []string) string {
	var b strings.Builder
	b.WriteString("The user's top task right now is \"")
	b.WriteString(taskName)
	b.WriteString("\"")
	if projectName != "" {
		b.WriteString(" in the project \"")
		b.WriteString(projectName)
		b.WriteString("\"")
	}
	b.WriteString(".")
	if len(reasons) > 0 {
		b.WriteString(" It was prioritized because: ")
		b.WriteString(strings.Join(reasons, "; "))
		b.WriteString(".")
	}
	b.WriteString(" Give a short motivating nudge to start it.")
	return b.String()
}
