package contracts

import "Spendly/internal/domain/category"

type CategoryCreateRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Slug     string  `json:"slug" binding:"required,max=100"`
	ParentId *string `json:"parentId" binding:"omitempty,len=26"`
	Icon     string  `json:"icon" binding:"max=50"`
	Color    string  `json:"color" binding:"max=7"`
}

type CategorySingleResponse struct {
	Category *category.Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []*category.Category `json:"categories"`
	Total      int                  `json:"total"`
}

type CategoryTreeResponse struct {
	Categories []*category.Category `json:"categories"`
}
