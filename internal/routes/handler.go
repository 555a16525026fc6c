package routes

import (
	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/category"
	"Spendly/internal/domain/goal"
	"Spendly/internal/domain/insights"
	"Spendly/internal/domain/suggestions"
	"Spendly/internal/domain/sync"
	"Spendly/internal/domain/transaction"
	"Spendly/internal/domain/user"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/logger"
	"Spendly/internal/middleware"
	"Spendly/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	UserService        *user.Service
	SyncService        *sync.Service
	TransactionService *transaction.Service
	CategoryService    *category.Service
	BudgetService      *budget.Service
	GoalService        *goal.Service
	InsightsService    *insights.Service
	SuggestionsService *suggestions.Service
}

// resolveUser maps the request's device id to a user, creating the account
// on first contact. Every authenticated endpoint goes through here.
func (h *Handler) resolveUser(c *gin.Context) (*user.User, error) {
	deviceID := middleware.DeviceID(c)
	if deviceID == "" {
		return nil, appErrors.ErrMissingDeviceID
	}
	return h.UserService.GetOrCreateByDevice(c.Request.Context(), deviceID, "")
}

func (h *Handler) parsePagination(c *gin.Context) pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "50")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 50
	}

	return pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
