package routes

import (
	"net/http"

	"Spendly/internal/contracts"
	"Spendly/internal/domain/budget"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetBudget(c *gin.Context) {
	var body contracts.BudgetSetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("categoryId", "invalid format"))
		return
	}

	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	saved, err := h.BudgetService.Set(
		c.Request.Context(), account.Id, categoryID, body.Amount, budget.Period(body.Period))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BudgetSingleResponse{Budget: saved})
}

func (h *Handler) ListBudgets(c *gin.Context) {
	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	budgets, err := h.BudgetService.List(c.Request.Context(), account.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.BudgetService.Delete(c.Request.Context(), budgetID, account.Id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
