package budget

import (
	"context"
	"errors"

	appErrors "Spendly/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// CategoryChecker answers whether a category id refers to a real category.
type CategoryChecker interface {
	Exists(ctx context.Context, id ulid.ULID) (bool, error)
}

type Service struct {
	repository Repository
	categories CategoryChecker
}

func NewService(repository Repository, categories CategoryChecker) *Service {
	return &Service{
		repository: repository,
		categories: categories,
	}
}

// Set creates the budget for a category, or replaces its amount when one
// already exists. Budgets are keyed by category, not by id, from the
// client's point of view.
func (s *Service) Set(ctx context.Context, userID, categoryID ulid.ULID, amount decimal.Decimal, period Period) (*Budget, error) {
	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, appErrors.ErrCategoryNotFound
	}

	existing, err := s.repository.GetByCategory(ctx, userID, categoryID)
	if err != nil && !errors.Is(err, appErrors.ErrBudgetNotFound) {
		return nil, err
	}

	var budget *Budget
	if existing != nil {
		if !amount.IsPositive() {
			return nil, appErrors.NewValidationError("amount", "amount must be greater than zero")
		}
		budget = existing.WithAmount(amount)
	} else {
		budget, err = New(userID, categoryID, amount, period)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repository.Save(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *Service) List(ctx context.Context, userID ulid.ULID) ([]*Budget, error) {
	return s.repository.GetByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*Budget, error) {
	return s.repository.GetByID(ctx, id, userID)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID, userID ulid.ULID) error {
	if _, err := s.repository.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id, userID)
}
