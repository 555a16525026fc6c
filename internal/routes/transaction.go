package routes

import (
	"net/http"
	"time"

	"Spendly/internal/contracts"
	"Spendly/internal/domain/shared"
	syncdomain "Spendly/internal/domain/sync"
	"Spendly/internal/domain/transaction"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SyncTransactions(c *gin.Context) {
	var body contracts.SyncRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	items := make([]syncdomain.Item, 0, len(body.Transactions))
	for _, input := range body.Transactions {
		items = append(items, syncdomain.Item{
			Amount:      input.Amount,
			Type:        transaction.Types(input.Type),
			Merchant:    input.Merchant,
			Source:      transaction.Sources(input.Source),
			Timestamp:   input.Timestamp,
			Fingerprint: input.Fingerprint,
			Balance:     input.Balance,
			Metadata:    shared.JSONMap(input.Metadata),
		})
	}

	result, err := h.SyncService.Sync(c.Request.Context(), body.DeviceId, body.DeviceFingerprint, items)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SyncResponse{
		Created:      result.Created,
		Skipped:      result.Skipped,
		Errors:       result.Errors,
		Transactions: result.Transactions,
		LastSyncAt:   result.LastSyncAt,
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters := transaction.Filters{Pagination: h.parsePagination(c)}

	if v := c.Query("type"); v != "" {
		typ := transaction.Types(v)
		if !typ.IsValid() {
			h.respondError(c, appErrors.NewValidationError("type", "must be DEBIT or CREDIT"))
			return
		}
		filters.Type = typ
	}
	if v := c.Query("source"); v != "" {
		source := transaction.Sources(v)
		if !source.IsValid() {
			h.respondError(c, appErrors.NewValidationError("source", "must be one of UPI, CARD, BANK, CASH, OTHER"))
			return
		}
		filters.Source = source
	}
	if v := c.Query("categoryId"); v != "" {
		categoryID, err := pkg.ParseULID(v)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("categoryId", "invalid format"))
			return
		}
		filters.CategoryId = &categoryID
	}
	if v := c.Query("startDate"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("startDate", "must be an RFC 3339 timestamp"))
			return
		}
		filters.From = &from
	}
	if v := c.Query("endDate"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("endDate", "must be an RFC 3339 timestamp"))
			return
		}
		filters.To = &to
	}
	filters.Merchant = c.Query("merchant")

	transactions, total, err := h.TransactionService.List(c.Request.Context(), account.Id, filters)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(transactions, filters.Pagination.Page, filters.Pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	account, err := h.resolveUser(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity, err := h.TransactionService.Get(c.Request.Context(), account.Id, transactionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: entity})
}

func (h *Handler) UpdateTransactionCategory(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid format"))
		return
	}

	var body contracts.UpdateCategoryRequest
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

	updated, err := h.TransactionService.UpdateCategory(
		c.Request.Context(), account.Id, transactionID, categoryID, body.LearnOrDefault())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: updated})
}
