package routes

import (
	"net/http"

	"Spendly/internal/contracts"
	appErrors "Spendly/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UpdateUserSettings(c *gin.Context) {
	var body contracts.UserSettingsUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.UserService.UpdateSettings(c.Request.Context(), account.Id, body.Settings)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserResponse{User: updated})
}
