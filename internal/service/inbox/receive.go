package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

// Receive stores a delivered lead. It reports duplicate=true when a lead
// with the same external id was already stored; duplicates are not
// re-notified. Notification failures are logged and never fail Receive.
func (s *Service) Receive(ctx context.Context, lead domain.Lead) (duplicate bool, err error) {
	lead, err = s.sanitize(lead)
	if err != nil {
		return false, err
	}

	inserted, err := s.repo.Insert(ctx, lead)
	if err != nil {
		return false, fmt.Errorf("store lead: %w", err)
	}

	if !inserted {
		s.log.InfoContext(ctx, "duplicate lead ignored",
			slog.String("external_id", lead.ExternalID.String()),
		)
		return true, nil
	}

	s.log.InfoContext(ctx, "lead stored",
		slog.String("external_id", lead.ExternalID.String()),
		slog.String("phone", domain.MaskPhone(lead.Phone)),
		slog.String("source", lead.Source),
	)

	s.notify(ctx, lead)

	return false, nil
}

func (s *Service) sanitize(lead domain.Lead) (domain.Lead, error) {
	if lead.ExternalID == uuid.Nil {
		return lead, domain.NewValidationError("external_id", "required")
	}

	phone := domain.NormalizePhone(lead.Phone)
	if !domain.IsValidPhone(phone) {
		return lead, domain.NewPhoneError(phone)
	}
	lead.Phone = phone

	lead.Name = domain.TrimOrNil(lead.Name)
	lead.Message = domain.TrimOrNil(lead.Message)
	lead.CategoryID = domain.TrimOrNil(lead.CategoryID)
	lead.CategoryTitle = domain.TrimOrNil(lead.CategoryTitle)
	lead.IssueTitle = domain.TrimOrNil(lead.IssueTitle)

	if lead.Source == "" {
		lead.Source = domain.DefaultSource
	}
	if lead.ReceivedAt.IsZero() {
		lead.ReceivedAt = s.now()
	}
	lead.ReceivedAt = lead.ReceivedAt.UTC()

	return lead, nil
}

func (s *Service) notify(ctx context.Context, lead domain.Lead) {
	if s.notifier == nil || !s.notifier.Configured() {
		return
	}

	ctx = context.WithoutCancel(ctx)
	if s.opts.NotifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.NotifyTimeout)
		defer cancel()
	}

	if err := s.notifier.Send(ctx, lead); err != nil {
		s.log.WarnContext(ctx, "operator notification failed",
			slog.String("external_id", lead.ExternalID.String()),
			slog.String("error", err.Error()),
		)
	}
}
