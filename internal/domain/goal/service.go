package goal

import (
	"context"
	"time"

	appErrors "Spendly/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

func (s *Service) Create(ctx context.Context, userID ulid.ULID, name string, targetAmount decimal.Decimal, deadline *time.Time, icon string) (*Goal, error) {
	goal, err := New(userID, name, targetAmount, deadline, icon)
	if err != nil {
		return nil, err
	}
	if err := s.repository.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *Service) List(ctx context.Context, userID ulid.ULID) ([]*Goal, error) {
	return s.repository.GetByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*Goal, error) {
	return s.repository.GetByID(ctx, id, userID)
}

// Contribute adds to a goal's saved amount. Negative contributions are
// allowed to correct mistakes but the total never goes below zero.
func (s *Service) Contribute(ctx context.Context, id ulid.ULID, userID ulid.ULID, amount decimal.Decimal) (*Goal, error) {
	existing, err := s.repository.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if existing.CurrentAmount.Add(amount).IsNegative() {
		return nil, appErrors.NewValidationError("amount", "contribution would make the saved amount negative")
	}

	updated := existing.WithContribution(amount)
	if err := s.repository.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID, userID ulid.ULID) error {
	if _, err := s.repository.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id, userID)
}
