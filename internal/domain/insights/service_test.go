package insights

import (
	"context"
	"testing"
	"time"

	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/goal"
	"Spendly/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeTransactionRepository struct {
	spendingByCategoryFn func(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]transaction.CategorySpending, error)
	totalByTypeFn        func(ctx context.Context, userID ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error)
}

func (f *fakeTransactionRepository) SaveBatch(ctx context.Context, userID ulid.ULID, txs []*transaction.Transaction) (*transaction.BatchResult, error) {
	return &transaction.BatchResult{}, nil
}

func (f *fakeTransactionRepository) GetByIDAndUser(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters transaction.Filters) ([]*transaction.Transaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) SpendingByCategory(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]transaction.CategorySpending, error) {
	if f.spendingByCategoryFn != nil {
		return f.spendingByCategoryFn(ctx, userID, from, to)
	}
	return nil, nil
}

func (f *fakeTransactionRepository) TotalByType(ctx context.Context, userID ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error) {
	if f.totalByTypeFn != nil {
		return f.totalByTypeFn(ctx, userID, typ, from, to)
	}
	return decimal.Zero, nil
}

type fakeBudgetRepository struct {
	budgets []*budget.Budget
}

func (f *fakeBudgetRepository) Save(ctx context.Context, b *budget.Budget) error { return nil }
func (f *fakeBudgetRepository) GetByID(ctx context.Context, id, userID ulid.ULID) (*budget.Budget, error) {
	return nil, nil
}
func (f *fakeBudgetRepository) GetByCategory(ctx context.Context, userID, categoryID ulid.ULID) (*budget.Budget, error) {
	return nil, nil
}
func (f *fakeBudgetRepository) GetByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	return f.budgets, nil
}
func (f *fakeBudgetRepository) Delete(ctx context.Context, id, userID ulid.ULID) error { return nil }

type fakeGoalRepository struct {
	goals []*goal.Goal
}

func (f *fakeGoalRepository) Save(ctx context.Context, g *goal.Goal) error { return nil }
func (f *fakeGoalRepository) GetByID(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	return nil, nil
}
func (f *fakeGoalRepository) GetByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	return f.goals, nil
}
func (f *fakeGoalRepository) Delete(ctx context.Context, id, userID ulid.ULID) error { return nil }

func TestGetSpendingSummary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	foodID := ulid.Make()
	shoppingID := ulid.Make()

	transactions := &fakeTransactionRepository{
		spendingByCategoryFn: func(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]transaction.CategorySpending, error) {
			return []transaction.CategorySpending{
				{CategoryId: &foodID, CategoryName: "Food Delivery", Total: decimal.NewFromInt(4500), Count: 18},
				{CategoryId: &shoppingID, CategoryName: "Online Shopping", Total: decimal.NewFromInt(2300), Count: 4},
			}, nil
		},
	}
	svc := NewService(transactions, &fakeBudgetRepository{}, &fakeGoalRepository{})

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	summary, err := svc.GetSpendingSummary(ctx, ulid.Make(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.Total.Equal(decimal.NewFromInt(6800)) {
		t.Fatalf("expected total 6800, got %s", summary.Total)
	}
	if len(summary.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(summary.Data))
	}
	if !summary.Period.Start.Equal(from) || !summary.Period.End.Equal(to) {
		t.Fatalf("period was not echoed back: %+v", summary.Period)
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetDailySummary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()

	// June 10th: 30-day month, 21 days remaining including today.
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	startOfToday := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	transactions := &fakeTransactionRepository{
		totalByTypeFn: func(ctx context.Context, uid ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error) {
			switch {
			case typ == transaction.TypeCredit:
				return decimal.NewFromInt(90000), nil // 3 months of income
			case from.Equal(startOfToday):
				return decimal.NewFromInt(500), nil
			case from.Equal(startOfMonth):
				return decimal.NewFromInt(8000), nil
			}
			return decimal.Zero, nil
		},
	}

	activeGoal, err := goal.New(userID, "Emergency Fund", decimal.NewFromInt(50000), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doneGoal, err := goal.New(userID, "Done", decimal.NewFromInt(10000), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doneGoal.IsCompleted = true

	monthlyBudget, err := budget.New(userID, ulid.Make(), decimal.NewFromInt(20000), budget.PeriodMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc := NewService(transactions, &fakeBudgetRepository{budgets: []*budget.Budget{monthlyBudget}}, &fakeGoalRepository{goals: []*goal.Goal{activeGoal, doneGoal}})
	svc.now = fixedClock(now)

	summary, err := svc.GetDailySummary(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.DaysRemaining != 21 {
		t.Fatalf("expected 21 days remaining, got %d", summary.DaysRemaining)
	}
	if !summary.MonthlyIncome.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected monthly income 30000, got %s", summary.MonthlyIncome)
	}
	if !summary.TotalBudgeted.Equal(decimal.NewFromInt(20000)) {
		t.Fatalf("expected total budgeted 20000, got %s", summary.TotalBudgeted)
	}
	// Only the active goal reserves savings: 10% of 50000.
	if !summary.TotalGoalSavings.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("expected goal savings 5000, got %s", summary.TotalGoalSavings)
	}
	if !summary.TotalSpentToday.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected 500 spent today, got %s", summary.TotalSpentToday)
	}
	// (20000 - 8000 - 5000) / 21 days.
	want := decimal.NewFromInt(7000).Div(decimal.NewFromInt(21))
	if !summary.SafeToSpend.Equal(want) {
		t.Fatalf("expected safe-to-spend %s, got %s", want, summary.SafeToSpend)
	}
	if summary.Message != "You are on track!" {
		t.Fatalf("unexpected message %q", summary.Message)
	}
}

func TestGetDailySummaryWithoutBudgetsUsesIncome(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	transactions := &fakeTransactionRepository{
		totalByTypeFn: func(ctx context.Context, uid ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error) {
			if typ == transaction.TypeCredit {
				return decimal.NewFromInt(90000), nil
			}
			return decimal.Zero, nil
		},
	}
	svc := NewService(transactions, &fakeBudgetRepository{}, &fakeGoalRepository{})
	svc.now = fixedClock(now)

	summary, err := svc.GetDailySummary(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No budgets: the limit is the estimated monthly income.
	want := decimal.NewFromInt(30000).Div(decimal.NewFromInt(21))
	if !summary.SafeToSpend.Equal(want) {
		t.Fatalf("expected safe-to-spend %s, got %s", want, summary.SafeToSpend)
	}
}

func TestGetDailySummaryOverspent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	transactions := &fakeTransactionRepository{
		totalByTypeFn: func(ctx context.Context, uid ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error) {
			if typ == transaction.TypeCredit {
				return decimal.NewFromInt(30000), nil
			}
			return decimal.NewFromInt(15000), nil
		},
	}
	svc := NewService(transactions, &fakeBudgetRepository{}, &fakeGoalRepository{})
	svc.now = fixedClock(now)

	summary, err := svc.GetDailySummary(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.SafeToSpend.IsZero() {
		t.Fatalf("overspent month must clamp safe-to-spend at zero, got %s", summary.SafeToSpend)
	}
	if summary.Message != "You've exceeded your daily limit." {
		t.Fatalf("unexpected message %q", summary.Message)
	}
}
