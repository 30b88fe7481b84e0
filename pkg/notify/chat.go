package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrChatSendFailed is returned when a chat webhook rejects the message.
var ErrChatSendFailed = errors.New("failed to send chat notification")

// ChatClient posts a rendered notification to one chat service.
type ChatClient interface {
	SendMessage(ctx context.Context, text string) error
	Name() string
}

// SlackClient sends messages to a Slack incoming webhook.
type SlackClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewSlackClient creates a Slack webhook client.
func NewSlackClient(webhookURL string) *SlackClient {
	return &SlackClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name implements ChatClient.
func (c *SlackClient) Name() string { return "slack" }

// SendMessage posts the text to the Slack webhook.
func (c *SlackClient) SendMessage(ctx context.Context, text string) error {
	body := struct {
		Text string `json:"text"`
	}{Text: text}

	return postJSON(ctx, c.httpClient, c.webhookURL, body)
}

// DiscordClient sends messages to a Discord webhook.
type DiscordClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewDiscordClient creates a Discord webhook client.
func NewDiscordClient(webhookURL string) *DiscordClient {
	return &DiscordClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name implements ChatClient.
func (c *DiscordClient) Name() string { return "discord" }

// SendMessage posts the text to the Discord webhook. Discord uses "content"
// where Slack uses "text"; the body is otherwise the same shape.
func (c *DiscordClient) SendMessage(ctx context.Context, text string) error {
	body := struct {
		Content string `json:"content"`
	}{Content: text}

	return postJSON(ctx, c.httpClient, c.webhookURL, body)
}

func postJSON(ctx context.Context, client *http.Client, url string, body interface{}) error {
	if url == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return ErrChatSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrChatSendFailed
	}

	return nil
}
