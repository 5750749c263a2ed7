package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Counter is notified of every accepted lead.
type Counter interface {
	LeadSubmitted(discipline string)
}

// Service validates and stores leads.
type Service struct {
	store   Store
	counter Counter
	now     func() time.Time
	newID   func() uuid.UUID
}

// NewService creates a lead service. counter may be nil.
func NewService(store Store, counter Counter) (*Service, error) {
	if store == nil {
		return nil, errors.New("lead store is required")
	}
	return &Service{
		store:   store,
		counter: counter,
		now:     time.Now,
		newID:   uuid.New,
	}, nil
}

// Submit validates form and saves it. Invalid input yields ValidationErrors.
func (s *Service) Submit(ctx context.Context, form Form) (*Lead, error) {
	lead, errs := form.Parse()
	if len(errs) > 0 {
		return nil, errs
	}

	lead.ID = s.newID()
	lead.CreatedAt = s.now().UTC()

	if err := s.store.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("save lead: %w", err)
	}

	if s.counter != nil {
		s.counter.LeadSubmitted(string(lead.Discipline))
	}
	return &lead, nil
}

// IsValidationError reports whether err carries field errors, and returns them.
func IsValidationError(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
