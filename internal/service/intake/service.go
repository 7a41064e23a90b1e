package intake

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

type rateLimiter interface {
	Allow(ctx context.Context, clientID string) bool
}

type leadStore interface {
	Append(ctx context.Context, lead domain.Lead) error
}

type deliverer interface {
	Deliver(ctx context.Context, lead domain.Lead) bool
}

// Options tunes the pipeline.
type Options struct {
	// RequireDelivery makes Submit fail with ErrNotDelivered when no channel
	// accepted the lead. The lead stays persisted.
	RequireDelivery bool
}

// Service accepts lead submissions: throttle, validate, persist, notify.
type Service struct {
	limiter   rateLimiter
	store     leadStore
	deliverer deliverer
	opts      Options
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new intake Service.
func NewService(
	log *slog.Logger,
	limiter rateLimiter,
	store leadStore,
	deliverer deliverer,
	opts Options,
) *Service {
	return &Service{
		limiter:   limiter,
		store:     store,
		deliverer: deliverer,
		opts:      opts,
		now:       time.Now,
		log:       log.With("service", "intake"),
	}
}
