package inbox

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lead-intake/internal/domain"
)

// ListInput holds pagination parameters. Zero Limit means DefaultLimit.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be in 0..%d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns stored leads, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.InboxLead, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	leads, total, err := s.repo.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}

	return leads, total, nil
}
