package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript keeps one sorted set per client, scored by attempt time
// in milliseconds. Prune, count and record run atomically.
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= limit then
	return 0
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return 1
`)

// RedisWindow is a sliding-window limiter shared by every instance that
// points at the same Redis. Redis errors fail open.
type RedisWindow struct {
	rdb    redis.Scripter
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
	log    *slog.Logger
}

// NewRedisWindow creates a shared limiter storing keys under prefix.
func NewRedisWindow(rdb redis.Scripter, prefix string, limit int, window time.Duration, logger *slog.Logger, opts ...RedisOption) *RedisWindow {
	w := &RedisWindow{
		rdb:    rdb,
		prefix: strings.Trim(prefix, ":"),
		limit:  limit,
		window: window,
		now:    time.Now,
		log:    logger.With("adapter", "ratelimit_redis"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RedisOption configures a RedisWindow.
type RedisOption func(*RedisWindow)

// WithRedisClock replaces time.Now, for tests.
func WithRedisClock(now func() time.Time) RedisOption {
	return func(w *RedisWindow) { w.now = now }
}

// Allow records an attempt for clientID and reports whether it fits the window.
func (w *RedisWindow) Allow(ctx context.Context, clientID string) bool {
	args := []any{
		strconv.FormatInt(w.now().UnixMilli(), 10),
		strconv.FormatInt(w.window.Milliseconds(), 10),
		strconv.Itoa(w.limit),
		uuid.NewString(),
	}

	allowed, err := slidingWindowScript.Run(ctx, w.rdb, []string{w.key(clientID)}, args...).Int()
	if err != nil {
		w.log.WarnContext(ctx, "rate limit check failed, allowing",
			slog.String("client", clientID),
			slog.String("error", err.Error()),
		)
		return true
	}
	return allowed == 1
}

func (w *RedisWindow) key(clientID string) string {
	return w.prefix + ":" + clientID
}
