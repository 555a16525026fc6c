package contracts

import (
	"Spendly/internal/domain/budget"

	"github.com/shopspring/decimal"
)

type BudgetSetRequest struct {
	CategoryId string          `json:"categoryId" binding:"required,len=26"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Period     string          `json:"period" binding:"omitempty,oneof=MONTHLY WEEKLY YEARLY"`
}

type BudgetSingleResponse struct {
	Budget *budget.Budget `json:"budget"`
}

type BudgetListResponse struct {
	Budgets []*budget.Budget `json:"budgets"`
	Total   int              `json:"total"`
}
