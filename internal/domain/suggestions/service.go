package suggestions

import (
	"context"
	"fmt"
	"time"

	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/goal"
	"Spendly/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type SuggestionType string

const (
	TypeBudget SuggestionType = "BUDGET"
	TypeGoal   SuggestionType = "GOAL"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// lookbackMonths is the analysis window for spending habits.
const lookbackMonths = 3

var (
	budgetBuffer    = decimal.NewFromFloat(1.1)
	savingsShare    = decimal.NewFromFloat(0.8)
	highPriorityCut = decimal.NewFromFloat(0.1)
	minSurplus      = decimal.NewFromInt(500)
)

type Suggestion struct {
	Type        SuggestionType         `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data"`
	Priority    Priority               `json:"priority"`
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

// Get proposes budgets for categories with recurring spend and no budget
// yet, plus a savings goal when income comfortably exceeds spending. All
// figures come from the last three months of transactions.
func (s *Service) Get(ctx context.Context, userID ulid.ULID) ([]Suggestion, error) {
	now := s.now()
	since := now.AddDate(0, -lookbackMonths, 0)

	totalIncome, err := s.transactions.TotalByType(ctx, userID, transaction.TypeCredit, since, now)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.transactions.TotalByType(ctx, userID, transaction.TypeDebit, since, now)
	if err != nil {
		return nil, err
	}
	spending, err := s.transactions.SpendingByCategory(ctx, userID, since, now)
	if err != nil {
		return nil, err
	}

	existing, err := s.budgets.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	budgeted := make(map[ulid.ULID]bool, len(existing))
	for _, b := range existing {
		budgeted[b.CategoryId] = true
	}

	months := decimal.NewFromInt(lookbackMonths)
	avgMonthlyIncome := totalIncome.Div(months)
	avgMonthlyExpense := totalExpense.Div(months)

	suggestions := []Suggestion{}
	for _, row := range spending {
		if row.CategoryId == nil || budgeted[*row.CategoryId] {
			continue
		}

		avgSpend := row.Total.Div(months)
		if !avgSpend.IsPositive() {
			continue
		}
		suggestedAmount := avgSpend.Mul(budgetBuffer).Ceil()

		priority := PriorityMedium
		if avgSpend.GreaterThan(avgMonthlyIncome.Mul(highPriorityCut)) {
			priority = PriorityHigh
		}

		suggestions = append(suggestions, Suggestion{
			Type:  TypeBudget,
			Title: fmt.Sprintf("Set a budget for %s", row.CategoryName),
			Description: fmt.Sprintf("You usually spend ₹%s/mo. We recommend a limit of ₹%s.",
				avgSpend.Round(0), suggestedAmount),
			Data: map[string]interface{}{
				"categoryId":      row.CategoryId,
				"categoryName":    row.CategoryName,
				"suggestedAmount": suggestedAmount,
				"averageSpend":    avgSpend,
			},
			Priority: priority,
		})
	}

	surplus := avgMonthlyIncome.Sub(avgMonthlyExpense)
	if surplus.GreaterThan(minSurplus) {
		suggestedSave := surplus.Mul(savingsShare).Floor()
		suggestions = append(suggestions, Suggestion{
			Type:  TypeGoal,
			Title: "Start a Savings Goal",
			Description: fmt.Sprintf("You have a surplus of ₹%s/mo. You could safely save ₹%s.",
				surplus.Round(0), suggestedSave),
			Data: map[string]interface{}{
				"suggestedAmount": suggestedSave,
				"suggestedName":   "Rainy Day Fund",
			},
			Priority: PriorityHigh,
		})
	}

	return suggestions, nil
}
