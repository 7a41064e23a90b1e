// Package webhook delivers leads to an HTTP endpoint as JSON.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

// SecretHeader carries the shared secret the receiver checks.
const SecretHeader = "X-Webhook-Secret"

// maxErrorBody bounds how much of a failed response ends up in the error.
const maxErrorBody = 2048

// Channel posts the full lead record to a configured URL.
type Channel struct {
	url        string
	secret     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Channel.
type Option func(*Channel)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Channel) { ch.httpClient = c }
}

// New creates a webhook channel. An empty url leaves it unconfigured.
func New(url, secret string, logger *slog.Logger, opts ...Option) *Channel {
	ch := &Channel{
		url:        url,
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "webhook"),
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Name identifies the channel in logs and metrics.
func (c *Channel) Name() domain.ChannelKind { return domain.ChannelWebhook }

// Configured reports whether a target URL is set.
func (c *Channel) Configured() bool { return c.url != "" }

// Format renders the request body.
func (c *Channel) Format(lead domain.Lead) ([]byte, error) {
	body, err := json.Marshal(lead)
	if err != nil {
		return nil, fmt.Errorf("webhook: encode lead: %w", err)
	}
	return body, nil
}

// Send posts lead and treats any 2xx response as delivered.
func (c *Channel) Send(ctx context.Context, lead domain.Lead) error {
	body, err := c.Format(lead)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set(SecretHeader, c.secret)
	}

	c.log.DebugContext(ctx, "webhook request", slog.String("external_id", lead.ExternalID.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("webhook: unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
	return nil
}
