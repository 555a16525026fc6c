package contracts

import (
	"Spendly/internal/domain/transaction"
)

type UpdateCategoryRequest struct {
	CategoryId string `json:"categoryId" binding:"required,len=26"`
	Learn      *bool  `json:"learn"`
}

// LearnOrDefault applies the default: corrections teach the engine unless
// the client opts out.
func (r *UpdateCategoryRequest) LearnOrDefault() bool {
	if r.Learn == nil {
		return true
	}
	return *r.Learn
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}
