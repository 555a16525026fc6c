package budget_test

import (
	"context"
	"errors"
	"testing"

	"Spendly/internal/domain/budget"
	appErrors "Spendly/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeBudgetRepository struct {
	saveFn          func(ctx context.Context, b *budget.Budget) error
	getByIDFn       func(ctx context.Context, id, userID ulid.ULID) (*budget.Budget, error)
	getByCategoryFn func(ctx context.Context, userID, categoryID ulid.ULID) (*budget.Budget, error)
	getByUserFn     func(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error)
	deleteFn        func(ctx context.Context, id, userID ulid.ULID) error
}

func (f *fakeBudgetRepository) Save(ctx context.Context, b *budget.Budget) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, b)
	}
	return nil
}

func (f *fakeBudgetRepository) GetByID(ctx context.Context, id, userID ulid.ULID) (*budget.Budget, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id, userID)
	}
	return nil, appErrors.ErrBudgetNotFound
}

func (f *fakeBudgetRepository) GetByCategory(ctx context.Context, userID, categoryID ulid.ULID) (*budget.Budget, error) {
	if f.getByCategoryFn != nil {
		return f.getByCategoryFn(ctx, userID, categoryID)
	}
	return nil, appErrors.ErrBudgetNotFound
}

func (f *fakeBudgetRepository) GetByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	if f.getByUserFn != nil {
		return f.getByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeBudgetRepository) Delete(ctx context.Context, id, userID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, userID)
	}
	return nil
}

type stubCategoryChecker struct {
	exists bool
}

func (s *stubCategoryChecker) Exists(ctx context.Context, id ulid.ULID) (bool, error) {
	return s.exists, nil
}

func TestSetCreatesNewBudget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()
	categoryID := ulid.Make()

	var saved *budget.Budget
	svc := budget.NewService(
		&fakeBudgetRepository{saveFn: func(ctx context.Context, b *budget.Budget) error {
			saved = b
			return nil
		}},
		&stubCategoryChecker{exists: true},
	)

	got, err := svc.Set(ctx, userID, categoryID, decimal.NewFromInt(5000), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.CategoryId != categoryID {
		t.Fatalf("budget was not persisted: %+v", saved)
	}
	if got.Period != budget.PeriodMonthly {
		t.Fatalf("expected default monthly period, got %s", got.Period)
	}
}

func TestSetReplacesExistingAmount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()
	categoryID := ulid.Make()

	existing, err := budget.New(userID, categoryID, decimal.NewFromInt(3000), budget.PeriodMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var saved *budget.Budget
	svc := budget.NewService(
		&fakeBudgetRepository{
			getByCategoryFn: func(ctx context.Context, uid, cid ulid.ULID) (*budget.Budget, error) {
				return existing, nil
			},
			saveFn: func(ctx context.Context, b *budget.Budget) error {
				saved = b
				return nil
			},
		},
		&stubCategoryChecker{exists: true},
	)

	got, err := svc.Set(ctx, userID, categoryID, decimal.NewFromInt(4500), budget.PeriodMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Id != existing.Id {
		t.Fatalf("upsert must keep the existing row's id")
	}
	if !saved.Amount.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("amount was not replaced: %s", saved.Amount)
	}
	if !existing.Amount.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("existing value was mutated: %s", existing.Amount)
	}
}

func TestSetRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	svc := budget.NewService(&fakeBudgetRepository{}, &stubCategoryChecker{exists: false})
	_, err := svc.Set(context.Background(), ulid.Make(), ulid.Make(), decimal.NewFromInt(100), budget.PeriodMonthly)
	if !errors.Is(err, appErrors.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestSetRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	svc := budget.NewService(&fakeBudgetRepository{}, &stubCategoryChecker{exists: true})
	_, err := svc.Set(context.Background(), ulid.Make(), ulid.Make(), decimal.Zero, budget.PeriodMonthly)
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestRemainingFloorsAtZero(t *testing.T) {
	t.Parallel()

	b, err := budget.New(ulid.Make(), ulid.Make(), decimal.NewFromInt(1000), budget.PeriodMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Spent = decimal.NewFromInt(400)
	if !b.Remaining().Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected 600 remaining, got %s", b.Remaining())
	}

	b.Spent = decimal.NewFromInt(1400)
	if !b.Remaining().IsZero() {
		t.Fatalf("overspent budget must report zero remaining, got %s", b.Remaining())
	}
}
