// Package telegram is a minimal Bot API client covering the single call this
// service makes: sendMessage to a fixed chat.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Client posts messages to one destination chat through the Bot API.
type Client struct {
	APIBase string // e.g., https://api.telegram.org
	Token   string
	ChatID  string
	Log     *zap.Logger

	httpClient *http.Client
}

// New constructs a Client. apiBase is overridable so tests can point at a
// local httptest server.
func New(apiBase, token, chatID string, logger *zap.Logger) *Client {
	return &Client{
		APIBase:    apiBase,
		Token:      token,
		ChatID:     chatID,
		Log:        logger,
		httpClient: &http.Client{},
	}
}

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage delivers text to the configured chat. Exactly one attempt is
// made; the response body is read only for diagnostics. Cancellation and
// deadline come from ctx.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID: c.ChatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("encode sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.APIBase, c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendMessage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Best-effort diagnostic read; the caller only logs this.
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.Log.Warn("Bot API sendMessage returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", diag))
		return fmt.Errorf("sendMessage: unexpected status code %d", resp.StatusCode)
	}

	return nil
}
