package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Telegram rejects messages longer than 4096 characters; the bounds leave
// room for markup added after truncation.
const (
	minTelegramLength = 800
	maxTelegramLength = 3700
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.LeadLog.Dir == "" {
		return fmt.Errorf("leadlog.dir must not be empty")
	}

	if err := c.Telegram.validate(); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}

	if err := c.Delivery.validate(); err != nil {
		return fmt.Errorf("delivery: %w", err)
	}

	if c.Intake.MaxBodyBytes <= 0 {
		return fmt.Errorf("intake.max_body_bytes must be > 0 (got %d)", c.Intake.MaxBodyBytes)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	switch r.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("backend must be memory or redis (got %q)", r.Backend)
	}
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %v)", r.Window)
	}
	if r.Max <= 0 {
		return fmt.Errorf("max must be > 0 (got %d)", r.Max)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}

func (t *TelegramConfig) validate() error {
	if !t.MarkupMode().IsValid() {
		return fmt.Errorf("markup must be markdownv2 or html (got %q)", t.Markup)
	}
	if t.MaxLength < minTelegramLength || t.MaxLength > maxTelegramLength {
		return fmt.Errorf("max_length must be in %d..%d (got %d)", minTelegramLength, maxTelegramLength, t.MaxLength)
	}
	if t.RatePerSec <= 0 {
		return fmt.Errorf("rate_per_sec must be > 0 (got %v)", t.RatePerSec)
	}

	ids, err := ParseChatIDs(t.AdminIDsRaw)
	if err != nil {
		return fmt.Errorf("admin_ids: %w", err)
	}
	t.AdminIDs = ids

	return nil
}

func (d *DeliveryConfig) validate() error {
	if !d.PrimaryChannel().IsValid() {
		return fmt.Errorf("primary must be webhook or telegram (got %q)", d.Primary)
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	return nil
}

// ParseChatIDs parses a comma-separated list of chat ids (e.g. "123,-100456").
// Blank items are skipped; an empty string returns a nil slice.
func ParseChatIDs(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid chat id %q: %w", p, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
