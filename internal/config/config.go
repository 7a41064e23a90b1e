package config

import (
	"time"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Intake    IntakeConfig    `yaml:"intake"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	LeadLog   LeadLogConfig   `yaml:"leadlog"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Delivery  DeliveryConfig  `yaml:"delivery"`
	Database  DatabaseConfig  `yaml:"database"`
	Inbox     InboxConfig     `yaml:"inbox"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// IntakeConfig holds lead submission settings.
type IntakeConfig struct {
	// RequireDelivery turns an undelivered lead into a 500 telegram_failed
	// response. The lead is persisted either way.
	RequireDelivery bool  `yaml:"require_delivery" env:"INTAKE_REQUIRE_DELIVERY" env-default:"false"`
	MaxBodyBytes    int64 `yaml:"max_body_bytes"   env:"INTAKE_MAX_BODY_BYTES"   env-default:"65536"`
}

// RateLimitConfig holds per-client throttling settings.
type RateLimitConfig struct {
	Backend         string        `yaml:"backend"          env:"RATE_LIMIT_BACKEND"          env-default:"memory"`
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"10m"`
	Max             int           `yaml:"max"              env:"RATE_LIMIT_MAX"              env-default:"5"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// RedisConfig holds the connection used by the shared rate limiter.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Prefix   string `yaml:"prefix"   env:"REDIS_PREFIX"   env-default:"leadrl"`
}

// LeadLogConfig holds the append-only lead log settings.
type LeadLogConfig struct {
	Dir   string `yaml:"dir"   env:"LEADLOG_DIR"   env-default:"data"`
	Fsync bool   `yaml:"fsync" env:"LEADLOG_FSYNC" env-default:"false"`
}

// WebhookConfig holds the outbound webhook channel settings.
// An empty URL disables the channel.
type WebhookConfig struct {
	URL    string `yaml:"url"    env:"WEBHOOK_URL"`
	Secret string `yaml:"secret" env:"WEBHOOK_SECRET"`
}

// TelegramConfig holds the chat-bot channel settings.
// The channel is enabled when a token and at least one recipient are set.
type TelegramConfig struct {
	BotToken    string  `yaml:"bot_token"    env:"TELEGRAM_BOT_TOKEN"`
	ChatID      int64   `yaml:"chat_id"      env:"TELEGRAM_CHAT_ID"`
	AdminIDsRaw string  `yaml:"admin_ids"    env:"TELEGRAM_ADMIN_IDS"`
	Markup      string  `yaml:"markup"       env:"TELEGRAM_MARKUP"       env-default:"markdownv2"`
	MaxLength   int     `yaml:"max_length"   env:"TELEGRAM_MAX_LEN"      env-default:"3500"`
	RatePerSec  float64 `yaml:"rate_per_sec" env:"TELEGRAM_RPS"          env-default:"25"`
	APIEndpoint string  `yaml:"api_endpoint" env:"TELEGRAM_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`

	// AdminIDs is parsed from AdminIDsRaw during validation.
	AdminIDs []int64 `yaml:"-" env:"-"`
}

// DeliveryConfig holds the orchestrator policy.
// FallbackEnabled defaults to true in LoadFrom.
type DeliveryConfig struct {
	Primary         string        `yaml:"primary"          env:"DELIVERY_PRIMARY"          env-default:"webhook"`
	FallbackEnabled bool          `yaml:"fallback_enabled" env:"DELIVERY_FALLBACK_ENABLED"`
	Timeout         time.Duration `yaml:"timeout"          env:"DELIVERY_TIMEOUT"          env-default:"4s"`
}

// DatabaseConfig holds PostgreSQL connection settings for the lead inbox.
// An empty DSN disables the inbox. AutoMigrate defaults to true in LoadFrom.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// InboxConfig holds the lead inbox receiver settings.
type InboxConfig struct {
	WebhookSecret string `yaml:"webhook_secret" env:"INBOX_WEBHOOK_SECRET"`
}

// Configured reports whether the webhook channel has a target.
func (c WebhookConfig) Configured() bool { return c.URL != "" }

// Recipients returns the chat ids to notify: the admin list when present,
// otherwise the single chat id.
func (c TelegramConfig) Recipients() []int64 {
	if len(c.AdminIDs) > 0 {
		return c.AdminIDs
	}
	if c.ChatID != 0 {
		return []int64{c.ChatID}
	}
	return nil
}

// Configured reports whether the chat-bot channel can send anything.
func (c TelegramConfig) Configured() bool {
	return c.BotToken != "" && len(c.Recipients()) > 0
}

// MarkupMode returns the parsed markup mode.
func (c TelegramConfig) MarkupMode() domain.MarkupMode { return domain.MarkupMode(c.Markup) }

// PrimaryChannel returns the parsed primary channel.
func (c DeliveryConfig) PrimaryChannel() domain.ChannelKind { return domain.ChannelKind(c.Primary) }

// Enabled reports whether the lead inbox should be mounted.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }
