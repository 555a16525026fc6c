package routes

import (
	"net/http"

	"Spendly/internal/contracts"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	created, err := h.GoalService.Create(
		c.Request.Context(), account.Id, body.Name, body.TargetAmount, body.Deadline, body.Icon)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalSingleResponse{Goal: created})
}

func (h *Handler) ListGoals(c *gin.Context) {
	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	goals, err := h.GoalService.List(c.Request.Context(), account.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalListResponse{
		Goals: goals,
		Total: len(goals),
	})
}

func (h *Handler) ContributeToGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	var body contracts.GoalContributeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.GoalService.Contribute(c.Request.Context(), goalID, account.Id, body.AmountToAdd)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalSingleResponse{Goal: updated})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.GoalService.Delete(c.Request.Context(), goalID, account.Id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
