package suggestions

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
	income   decimal.Decimal
	expense  decimal.Decimal
	spending []transaction.CategorySpending
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
	return f.spending, nil
}

func (f *fakeTransactionRepository) TotalByType(ctx context.Context, userID ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error) {
	if typ == transaction.TypeCredit {
		return f.income, nil
	}
	return f.expense, nil
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

type fakeGoalRepository struct{}

func (f *fakeGoalRepository) Save(ctx context.Context, g *goal.Goal) error { return nil }
func (f *fakeGoalRepository) GetByID(ctx context.Context, id, userID ulid.ULID) (*goal.Goal, error) {
	return nil, nil
}
func (f *fakeGoalRepository) GetByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	return nil, nil
}
func (f *fakeGoalRepository) Delete(ctx context.Context, id, userID ulid.ULID) error { return nil }

func TestGetSuggestions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := ulid.Make()
	foodID := ulid.Make()
	budgetedID := ulid.Make()

	existingBudget, err := budget.New(userID, budgetedID, decimal.NewFromInt(3000), budget.PeriodMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transactions := &fakeTransactionRepository{
		income:  decimal.NewFromInt(90000), // 30000/mo
		expense: decimal.NewFromInt(60000), // 20000/mo
		spending: []transaction.CategorySpending{
			// 5000/mo average, above 10% of income: HIGH priority.
			{CategoryId: &foodID, CategoryName: "Food Delivery", Total: decimal.NewFromInt(15000), Count: 42},
			// Already budgeted: skipped.
			{CategoryId: &budgetedID, CategoryName: "Transport", Total: decimal.NewFromInt(6000), Count: 10},
			// No category: skipped.
			{CategoryId: nil, CategoryName: "", Total: decimal.NewFromInt(900), Count: 3},
		},
	}

	svc := NewService(transactions, &fakeBudgetRepository{budgets: []*budget.Budget{existingBudget}}, &fakeGoalRepository{})
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }

	suggestions, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected a budget and a goal suggestion, got %d: %+v", len(suggestions), suggestions)
	}

	budgetSuggestion := suggestions[0]
	if budgetSuggestion.Type != TypeBudget {
		t.Fatalf("expected budget suggestion first, got %s", budgetSuggestion.Type)
	}
	if budgetSuggestion.Priority != PriorityHigh {
		t.Fatalf("spend above 10%% of income must be high priority, got %s", budgetSuggestion.Priority)
	}
	// 5000 * 1.1, rounded up.
	wantAmount := decimal.NewFromInt(5500)
	if got := budgetSuggestion.Data["suggestedAmount"].(decimal.Decimal); !got.Equal(wantAmount) {
		t.Fatalf("expected suggested amount %s, got %s", wantAmount, got)
	}

	goalSuggestion := suggestions[1]
	if goalSuggestion.Type != TypeGoal {
		t.Fatalf("expected goal suggestion, got %s", goalSuggestion.Type)
	}
	// Surplus 10000, 80% of it floored.
	wantSave := decimal.NewFromInt(8000)
	if got := goalSuggestion.Data["suggestedAmount"].(decimal.Decimal); !got.Equal(wantSave) {
		t.Fatalf("expected suggested savings %s, got %s", wantSave, got)
	}
	if goalSuggestion.Data["suggestedName"] != "Rainy Day Fund" {
		t.Fatalf("unexpected goal name %v", goalSuggestion.Data["suggestedName"])
	}
}

func TestGetSuggestionsNoSurplusNoGoal(t *testing.T) {
	t.Parallel()

	transactions := &fakeTransactionRepository{
		income:  decimal.NewFromInt(60000),
		expense: decimal.NewFromInt(59000), // surplus ~333/mo, under the bar
	}
	svc := NewService(transactions, &fakeBudgetRepository{}, &fakeGoalRepository{})
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }

	suggestions, err := svc.Get(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %+v", suggestions)
	}
}

func TestGetSuggestionsMediumPriority(t *testing.T) {
	t.Parallel()

	catID := ulid.Make()
	transactions := &fakeTransactionRepository{
		income:  decimal.NewFromInt(90000),
		expense: decimal.NewFromInt(89000),
		spending: []transaction.CategorySpending{
			// 1000/mo average, well under 10% of a 30000 income.
			{CategoryId: &catID, CategoryName: "Subscriptions", Total: decimal.NewFromInt(3000), Count: 9},
		},
	}
	svc := NewService(transactions, &fakeBudgetRepository{}, &fakeGoalRepository{})
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) }

	suggestions, err := svc.Get(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %+v", suggestions)
	}
	if suggestions[0].Priority != PriorityMedium {
		t.Fatalf("expected medium priority, got %s", suggestions[0].Priority)
	}
}
