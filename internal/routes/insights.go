package routes

import (
	"net/http"
	"time"

	"Spendly/internal/contracts"
	appErrors "Spendly/internal/errors"

	"github.com/gin-gonic/gin"
)

// defaultSpendingWindowDays is used when the client gives no date range.
const defaultSpendingWindowDays = 30

func (h *Handler) GetSpendingSummary(c *gin.Context) {
	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -defaultSpendingWindowDays)
	to := now

	if v := c.Query("startDate"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("startDate", "must be an RFC 3339 timestamp"))
			return
		}
		from = parsed
	}
	if v := c.Query("endDate"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("endDate", "must be an RFC 3339 timestamp"))
			return
		}
		to = parsed
	}
	if to.Before(from) {
		h.respondError(c, appErrors.NewValidationError("endDate", "must not be before startDate"))
		return
	}

	summary, err := h.InsightsService.GetSpendingSummary(c.Request.Context(), account.Id, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SpendingSummaryResponse{SpendingSummary: summary})
}

func (h *Handler) GetDailySummary(c *gin.Context) {
	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	summary, err := h.InsightsService.GetDailySummary(c.Request.Context(), account.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DailySummaryResponse{DailySummary: summary})
}

func (h *Handler) GetSuggestions(c *gin.Context) {
	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.SuggestionsService.Get(c.Request.Context(), account.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SuggestionsResponse{Suggestions: result})
}
