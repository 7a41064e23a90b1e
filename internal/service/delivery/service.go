package delivery

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

// channel is one outbound notification path.
type channel interface {
	Name() domain.ChannelKind
	Configured() bool
	Send(ctx context.Context, lead domain.Lead) error
}

type recorder interface {
	DeliveryAttempt(channel domain.ChannelKind, outcome domain.DeliveryOutcome, took time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) DeliveryAttempt(domain.ChannelKind, domain.DeliveryOutcome, time.Duration) {}

// Policy decides which channels are tried and for how long.
type Policy struct {
	Primary         domain.ChannelKind
	FallbackEnabled bool
	Timeout         time.Duration
}

// Orchestrator delivers a lead through the primary channel and, when that
// fails or is not configured, through the fallback channel.
type Orchestrator struct {
	channels map[domain.ChannelKind]channel
	policy   Policy
	metrics  recorder
	log      *slog.Logger
}

// NewOrchestrator creates an Orchestrator. Channels are looked up by Name.
func NewOrchestrator(
	log *slog.Logger,
	policy Policy,
	metrics recorder,
	channels ...channel,
) *Orchestrator {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	byKind := make(map[domain.ChannelKind]channel, len(channels))
	for _, ch := range channels {
		byKind[ch.Name()] = ch
	}
	return &Orchestrator{
		channels: byKind,
		policy:   policy,
		metrics:  metrics,
		log:      log.With("service", "delivery"),
	}
}

// Order returns the channels in the order they are attempted.
func (o *Orchestrator) Order() []domain.ChannelKind {
	order := []domain.ChannelKind{o.policy.Primary}
	if o.policy.FallbackEnabled {
		order = append(order, o.policy.Primary.Other())
	}
	return order
}

// Deliver reports whether any channel accepted the lead. It never fails:
// every attempt outcome is logged. Each attempt gets its own timeout and
// ignores cancellation of ctx, so a client hang-up does not abort delivery.
func (o *Orchestrator) Deliver(ctx context.Context, lead domain.Lead) bool {
	ctx = context.WithoutCancel(ctx)

	for _, kind := range o.Order() {
		ch, ok := o.channels[kind]
		if !ok || !ch.Configured() {
			o.log.DebugContext(ctx, "channel not configured, skipping",
				slog.String("channel", kind.String()),
				slog.String("external_id", lead.ExternalID.String()),
			)
			o.metrics.DeliveryAttempt(kind, domain.OutcomeNotConfigured, 0)
			continue
		}
		if o.attempt(ctx, ch, lead) {
			return true
		}
	}

	o.log.WarnContext(ctx, "lead not delivered",
		slog.String("external_id", lead.ExternalID.String()),
		slog.String("phone", domain.MaskPhone(lead.Phone)),
	)
	return false
}

func (o *Orchestrator) attempt(ctx context.Context, ch channel, lead domain.Lead) bool {
	ctx, cancel := context.WithTimeout(ctx, o.policy.Timeout)
	defer cancel()

	start := time.Now()
	err := ch.Send(ctx, lead)
	took := time.Since(start)

	if err != nil {
		o.log.WarnContext(ctx, "delivery attempt failed",
			slog.String("channel", ch.Name().String()),
			slog.String("external_id", lead.ExternalID.String()),
			slog.Duration("duration", took),
			slog.String("error", err.Error()),
		)
		o.metrics.DeliveryAttempt(ch.Name(), domain.OutcomeFailed, took)
		return false
	}

	o.log.InfoContext(ctx, "lead delivered",
		slog.String("channel", ch.Name().String()),
		slog.String("external_id", lead.ExternalID.String()),
		slog.Duration("duration", took),
	)
	o.metrics.DeliveryAttempt(ch.Name(), domain.OutcomeDelivered, took)
	return true
}
