package intake

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

// Admit records an attempt for clientID and fails with ErrRateLimited when
// the client is over its window. It runs before the body is read.
func (s *Service) Admit(ctx context.Context, clientID string) error {
	if !s.limiter.Allow(ctx, clientID) {
		s.log.InfoContext(ctx, "submission rate limited", slog.String("client", clientID))
		return domain.ErrRateLimited
	}
	return nil
}

// Submit validates, persists and delivers an admitted submission.
// Nothing is persisted or delivered unless validation passes, and delivery
// is not attempted unless the lead was persisted.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Result, error) {
	if in.Honeypot != "" {
		s.log.InfoContext(ctx, "honeypot triggered", slog.String("client", in.ClientID))
		return nil, domain.ErrHoneypot
	}

	phone := domain.NormalizePhone(in.Phone)
	if !domain.IsValidPhone(phone) {
		return nil, domain.NewPhoneError(phone)
	}

	lead := s.buildLead(in, phone)

	if err := s.store.Append(ctx, lead); err != nil {
		return nil, fmt.Errorf("persist lead: %w", err)
	}

	s.log.InfoContext(ctx, "lead accepted",
		slog.String("external_id", lead.ExternalID.String()),
		slog.String("phone", domain.MaskPhone(lead.Phone)),
		slog.String("source", lead.Source),
	)

	delivered := s.deliverer.Deliver(ctx, lead)

	res := &Result{
		ExternalID: lead.ExternalID.String(),
		Phone:      lead.Phone,
		Delivered:  delivered,
	}
	if !delivered && s.opts.RequireDelivery {
		return res, fmt.Errorf("deliver lead %s: %w", res.ExternalID, domain.ErrNotDelivered)
	}
	return res, nil
}

func (s *Service) buildLead(in SubmitInput, phone string) domain.Lead {
	source := domain.DefaultSource
	if src := domain.TrimOrNil(in.Source); src != nil {
		source = *src
	}
	ip := strings.TrimSpace(in.ClientIP)
	if ip == "" {
		ip = in.ClientID
	}
	ua := strings.TrimSpace(in.UserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return domain.Lead{
		ExternalID:    uuid.New(),
		ReceivedAt:    s.now().UTC(),
		ClientIP:      ip,
		UserAgent:     ua,
		Name:          domain.TrimOrNil(in.Name),
		Phone:         phone,
		Message:       domain.TrimOrNil(in.Message),
		Source:        source,
		CategoryID:    domain.TrimOrNil(in.CategoryID),
		CategoryTitle: domain.TrimOrNil(in.CategoryTitle),
		IssueTitle:    domain.TrimOrNil(in.IssueTitle),
	}
}
