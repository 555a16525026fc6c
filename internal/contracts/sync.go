package contracts

import (
	"time"

	"Spendly/internal/domain/sync"
	"Spendly/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type SyncTransactionInput struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        string                 `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Merchant    string                 `json:"merchant" binding:"required,max=255"`
	Source      string                 `json:"source" binding:"required,oneof=UPI CARD BANK CASH OTHER"`
	Timestamp   time.Time              `json:"timestamp" binding:"required"`
	Fingerprint string                 `json:"fingerprint" binding:"omitempty,len=32"`
	Balance     *decimal.Decimal       `json:"balance"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type SyncRequest struct {
	DeviceId          string                 `json:"deviceId" binding:"required"`
	DeviceFingerprint string                 `json:"deviceFingerprint"`
	Transactions      []SyncTransactionInput `json:"transactions" binding:"required,min=1,max=500,dive"`
}

type SyncResponse struct {
	Created      int                        `json:"created"`
	Skipped      int                        `json:"skipped"`
	Errors       []sync.ItemError           `json:"errors"`
	Transactions []*transaction.Transaction `json:"transactions"`
	LastSyncAt   time.Time                  `json:"lastSyncAt"`
}
