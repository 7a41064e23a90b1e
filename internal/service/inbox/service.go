package inbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type leadRepo interface {
	Insert(ctx context.Context, lead domain.Lead) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.InboxLead, int, error)
}

type notifier interface {
	Configured() bool
	Send(ctx context.Context, lead domain.Lead) error
}

// Options tunes the receiver.
type Options struct {
	// NotifyTimeout bounds the operator notification of a new lead.
	NotifyTimeout time.Duration
}

// Service is the operator-side receiver of webhook deliveries: it stores
// leads once per external id and notifies the operator chat about new ones.
type Service struct {
	repo     leadRepo
	notifier notifier
	opts     Options
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new inbox Service. notifier may be nil.
func NewService(
	log *slog.Logger,
	repo leadRepo,
	notifier notifier,
	opts Options,
) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
		log:      log.With("service", "inbox"),
	}
}
