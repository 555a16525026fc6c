package contracts

import (
	"Spendly/internal/domain/insights"
	"Spendly/internal/domain/suggestions"
)

type DateRangeQuery struct {
	StartDate string `form:"startDate" binding:"omitempty"`
	EndDate   string `form:"endDate" binding:"omitempty"`
}

type SpendingSummaryResponse struct {
	*insights.SpendingSummary
}

type DailySummaryResponse struct {
	*insights.DailySummary
}

type SuggestionsResponse struct {
	Suggestions []suggestions.Suggestion `json:"suggestions"`
}
