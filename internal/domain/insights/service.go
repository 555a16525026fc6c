package insights

import (
	"context"
	"time"

	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/goal"
	"Spendly/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// incomeWindowMonths is the lookback used to estimate monthly income.
const incomeWindowMonths = 3

// goalMonthlyShare is the fraction of each active goal's target assumed to
// be set aside per month.
var goalMonthlyShare = decimal.NewFromFloat(0.1)

// SpendingSummary is per-category spending over a period.
type SpendingSummary struct {
	Data   []transaction.CategorySpending `json:"data"`
	Total  decimal.Decimal                `json:"total"`
	Period Period                         `json:"period"`
}

type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DailySummary is the safe-to-spend snapshot for today.
type DailySummary struct {
	SafeToSpend      decimal.Decimal `json:"safeToSpend"`
	TotalSpentToday  decimal.Decimal `json:"totalSpentToday"`
	DaysRemaining    int             `json:"daysRemaining"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	TotalBudgeted    decimal.Decimal `json:"totalBudgeted"`
	TotalGoalSavings decimal.Decimal `json:"totalGoalSavings"`
	Message          string          `json:"message"`
}

type Service struct {
	transactions transaction.Repository
	budgets      budget.Repository
	goals        goal.Repository
	now          func() time.Time
}

func NewService(transactions transaction.Repository, budgets budget.Repository, goals goal.Repository) *Service {
	return &Service{
		transactions: transactions,
		budgets:      budgets,
		goals:        goals,
		now:          time.Now,
	}
}

func (s *Service) GetSpendingSummary(ctx context.Context, userID ulid.ULID, from, to time.Time) (*SpendingSummary, error) {
	rows, err := s.transactions.SpendingByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Total)
	}

	return &SpendingSummary{
		Data:   rows,
		Total:  total,
		Period: Period{Start: from, End: to},
	}, nil
}

// GetDailySummary computes how much the user can spend today without
// blowing the month: remaining budget (or income when no budgets are set)
// minus goal savings, spread over the days left in the month.
func (s *Service) GetDailySummary(ctx context.Context, userID ulid.ULID) (*DailySummary, error) {
	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daysInMonth := startOfMonth.AddDate(0, 1, -1).Day()
	daysRemaining := daysInMonth - now.Day() + 1

	incomeWindow := now.AddDate(0, -incomeWindowMonths, 0)
	totalIncome, err := s.transactions.TotalByType(ctx, userID, transaction.TypeCredit, incomeWindow, now)
	if err != nil {
		return nil, err
	}
	monthlyIncome := totalIncome.Div(decimal.NewFromInt(incomeWindowMonths))

	spentToday, err := s.transactions.TotalByType(ctx, userID, transaction.TypeDebit, startOfToday, now)
	if err != nil {
		return nil, err
	}
	spentMonth, err := s.transactions.TotalByType(ctx, userID, transaction.TypeDebit, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgets.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalBudgeted := decimal.Zero
	for _, b := range budgets {
		totalBudgeted = totalBudgeted.Add(b.Amount)
	}

	goals, err := s.goals.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalGoalSavings := decimal.Zero
	for _, g := range goals {
		if !g.IsCompleted {
			totalGoalSavings = totalGoalSavings.Add(g.TargetAmount.Mul(goalMonthlyShare))
		}
	}

	limit := totalBudgeted
	if !limit.IsPositive() {
		limit = monthlyIncome
	}
	remaining := limit.Sub(spentMonth).Sub(totalGoalSavings)
	safeToSpend := remaining.Div(decimal.NewFromInt(int64(daysRemaining)))
	if safeToSpend.IsNegative() {
		safeToSpend = decimal.Zero
	}

	message := "You are on track!"
	if !safeToSpend.IsPositive() {
		message = "You've exceeded your daily limit."
	}

	return &DailySummary{
		SafeToSpend:      safeToSpend,
		TotalSpentToday:  spentToday,
		DaysRemaining:    daysRemaining,
		MonthlyIncome:    monthlyIncome,
		TotalBudgeted:    totalBudgeted,
		TotalGoalSavings: totalGoalSavings,
		Message:          message,
	}, nil
}
