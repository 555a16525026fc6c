package routes

import (
	"net/http"

	"Spendly/internal/contracts"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	var parentID *ulid.ULID
	if body.ParentId != nil {
		id, err := pkg.ParseULID(*body.ParentId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("parentId", "invalid format"))
			return
		}
		parentID = &id
	}

	created, err := h.CategoryService.Create(
		c.Request.Context(), body.Name, body.Slug, parentID, body.Icon, body.Color)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategorySingleResponse{Category: created})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

func (h *Handler) GetCategoryTree(c *gin.Context) {
	tree, err := h.CategoryService.GetTree(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryTreeResponse{Categories: tree})
}
