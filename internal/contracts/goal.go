package contracts

import (
	"time"

	"Spendly/internal/domain/goal"

	"github.com/shopspring/decimal"
)

type GoalCreateRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	Deadline     *time.Time      `json:"deadline"`
	Icon         string          `json:"icon" binding:"omitempty,max=50"`
}

type GoalContributeRequest struct {
	AmountToAdd decimal.Decimal `json:"amountToAdd" binding:"required"`
}

type GoalSingleResponse struct {
	Goal *goal.Goal `json:"goal"`
}

type GoalListResponse struct {
	Goals []*goal.Goal `json:"goals"`
	Total int          `json:"total"`
}
