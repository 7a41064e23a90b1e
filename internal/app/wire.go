package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/lead-intake/internal/adapter/channel/telegram"
	"github.com/heartmarshall/lead-intake/internal/adapter/channel/webhook"
	"github.com/heartmarshall/lead-intake/internal/adapter/leadlog"
	"github.com/heartmarshall/lead-intake/internal/adapter/postgres"
	"github.com/heartmarshall/lead-intake/internal/adapter/postgres/lead"
	"github.com/heartmarshall/lead-intake/internal/adapter/ratelimit"
	"github.com/heartmarshall/lead-intake/internal/config"
	"github.com/heartmarshall/lead-intake/internal/metrics"
	"github.com/heartmarshall/lead-intake/internal/service/delivery"
	"github.com/heartmarshall/lead-intake/internal/service/inbox"
	"github.com/heartmarshall/lead-intake/internal/service/intake"
	"github.com/heartmarshall/lead-intake/internal/transport/rest"
)

type limiter interface {
	Allow(ctx context.Context, clientID string) bool
}

// components is the wired application: the root handler plus everything
// that must be released on shutdown, in reverse order of creation.
type components struct {
	handler http.Handler
	closers []func()
}

func (c *components) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *components, err error) {
	c := &components{}
	defer func() {
		if err != nil {
			c.close()
		}
	}()

	m := metrics.New()
	checks := map[string]rest.Pinger{}

	lim, err := newLimiter(cfg, logger, c, checks)
	if err != nil {
		return nil, err
	}

	store := leadlog.New(cfg.LeadLog.Dir, cfg.LeadLog.Fsync)
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("lead log: %w", err)
	}
	checks["leadlog"] = store

	wh := webhook.New(cfg.Webhook.URL, cfg.Webhook.Secret, logger)
	tg, err := telegram.New(cfg.Telegram, logger)
	if err != nil {
		return nil, fmt.Errorf("telegram channel: %w", err)
	}
	if !wh.Configured() && !tg.Configured() {
		logger.Warn("no notification channel configured; leads will only be logged to disk")
	}

	orch := delivery.NewOrchestrator(logger, delivery.Policy{
		Primary:         cfg.Delivery.PrimaryChannel(),
		FallbackEnabled: cfg.Delivery.FallbackEnabled,
		Timeout:         cfg.Delivery.Timeout,
	}, m, wh, tg)

	intakeSvc := intake.NewService(logger, lim, store, orch, intake.Options{
		RequireDelivery: cfg.Intake.RequireDelivery,
	})

	r := routes{
		lead:    rest.NewLeadHandler(intakeSvc, m, cfg.Intake.MaxBodyBytes, logger),
		metrics: m.Handler(),
	}

	if cfg.Database.Enabled() {
		inboxH, err := newInbox(ctx, cfg, logger, m, tg, c, checks)
		if err != nil {
			return nil, err
		}
		r.inbox = inboxH
	}

	r.health = rest.NewHealthHandler(BuildVersion(), checks)
	c.handler = r.handler(cfg, logger)

	return c, nil
}

func newLimiter(cfg *config.Config, logger *slog.Logger, c *components, checks map[string]rest.Pinger) (limiter, error) {
	rl := cfg.RateLimit

	if rl.Backend != "redis" {
		w := ratelimit.NewWindow(rl.Max, rl.Window, rl.CleanupInterval)
		c.closers = append(c.closers, w.Stop)
		return w, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	checks["redis"] = rest.PingFunc(func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	return ratelimit.NewRedisWindow(rdb, cfg.Redis.Prefix, rl.Max, rl.Window, logger), nil
}

func newInbox(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	tg *telegram.Channel,
	c *components,
	checks map[string]rest.Pinger,
) (*rest.InboxHandler, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, pool.Close)
	checks["database"] = pool

	if cfg.Database.AutoMigrate {
		migrator, err := postgres.NewMigrator(pool)
		if err != nil {
			return nil, err
		}
		err = migrator.Up(ctx, logger)
		_ = migrator.Close()
		if err != nil {
			return nil, err
		}
	}

	if cfg.Inbox.WebhookSecret == "" {
		logger.Warn("inbox enabled without INBOX_WEBHOOK_SECRET; /webhook/lead will answer 503")
	}

	svc := inbox.NewService(logger, lead.New(pool), tg, inbox.Options{
		NotifyTimeout: cfg.Delivery.Timeout,
	})
	return rest.NewInboxHandler(svc, m, cfg.Inbox.WebhookSecret, cfg.Intake.MaxBodyBytes, logger), nil
}
