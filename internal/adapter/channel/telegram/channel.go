// Package telegram delivers leads as Bot API chat messages.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/lead-intake/internal/config"
	"github.com/heartmarshall/lead-intake/internal/domain"
)

// Channel sends a lead to every configured recipient. Delivery succeeds only
// when all recipients accept the message.
type Channel struct {
	token      string
	endpoint   string
	recipients []int64
	markup     Markup
	maxRunes   int
	limiter    *rate.Limiter
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Channel.
type Option func(*Channel)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Channel) { ch.httpClient = c }
}

// New creates a chat-bot channel from cfg. cfg must be validated.
func New(cfg config.TelegramConfig, logger *slog.Logger, opts ...Option) (*Channel, error) {
	markup, err := NewMarkup(cfg.MarkupMode())
	if err != nil {
		return nil, err
	}

	ch := &Channel{
		token:      cfg.BotToken,
		endpoint:   cfg.APIEndpoint,
		recipients: cfg.Recipients(),
		markup:     markup,
		maxRunes:   cfg.MaxLength,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "telegram"),
	}
	if ch.endpoint == "" {
		ch.endpoint = tgbotapi.APIEndpoint
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch, nil
}

// Name identifies the channel in logs and metrics.
func (c *Channel) Name() domain.ChannelKind { return domain.ChannelTelegram }

// Configured reports whether there is a token and someone to notify.
func (c *Channel) Configured() bool {
	return c.token != "" && len(c.recipients) > 0
}

// Format renders the message text.
func (c *Channel) Format(lead domain.Lead) string {
	return FormatMessage(c.markup, lead, c.maxRunes)
}

// Send delivers lead to all recipients concurrently under ctx's deadline and
// joins the per-recipient failures.
func (c *Channel) Send(ctx context.Context, lead domain.Lead) error {
	if !c.Configured() {
		return errors.New("telegram: not configured")
	}

	text := c.Format(lead)
	bot := c.bot(ctx)

	errs := make([]error, len(c.recipients))
	var g errgroup.Group
	for i, chatID := range c.recipients {
		g.Go(func() error {
			errs[i] = c.sendOne(ctx, bot, chatID, text)
			return errs[i]
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		c.log.WarnContext(ctx, "telegram fan-out incomplete",
			slog.String("external_id", lead.ExternalID.String()),
			slog.String("phone", domain.MaskPhone(lead.Phone)),
			slog.Int("recipients", len(c.recipients)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

func (c *Channel) sendOne(ctx context.Context, bot *tgbotapi.BotAPI, chatID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram: chat %d: wait: %w", chatID, err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = c.markup.ParseMode()
	msg.DisableWebPagePreview = true

	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: chat %d: %w", chatID, err)
	}
	return nil
}

// bot builds a client whose requests are bound to ctx. The library API has no
// context parameters, so cancellation is carried by the HTTP client.
func (c *Channel) bot(ctx context.Context) *tgbotapi.BotAPI {
	bot := &tgbotapi.BotAPI{
		Token:  c.token,
		Client: ctxClient{ctx: ctx, base: c.httpClient},
	}
	bot.SetAPIEndpoint(c.endpoint)
	return bot
}

type ctxClient struct {
	ctx  context.Context
	base *http.Client
}

func (c ctxClient) Do(req *http.Request) (*http.Response, error) {
	return c.base.Do(req.WithContext(c.ctx))
}
