package transaction

import (
	"strings"
	"time"

	"Spendly/internal/domain/shared"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Transaction is immutable once created: updates go through WithCategory,
// which returns a new value. Rows loaded from storage are trusted as already
// validated at write time and do not pass through New again.
type Transaction struct {
	Id                 ulid.ULID        `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId             ulid.ULID        `gorm:"type:varchar(26);not null;index:idx_transactions_user_id;uniqueIndex:idx_transactions_fingerprint,priority:1" json:"userId"`
	Amount             decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type               Types            `gorm:"type:varchar(10);not null;index:idx_transactions_type" json:"type"`
	Merchant           string           `gorm:"type:varchar(255);not null" json:"merchant"`
	MerchantNormalized string           `gorm:"type:varchar(255);not null;index:idx_transactions_merchant_normalized" json:"merchantNormalized"`
	Source             Sources          `gorm:"type:varchar(10);not null" json:"source"`
	CategoryId         *ulid.ULID       `gorm:"type:varchar(26);index:idx_transactions_category_id" json:"categoryId"`
	CategoryConfidence *float64         `gorm:"type:decimal(3,2)" json:"categoryConfidence"`
	Timestamp          time.Time        `gorm:"not null;index:idx_transactions_timestamp" json:"timestamp"`
	Fingerprint        string           `gorm:"type:varchar(32);not null;uniqueIndex:idx_transactions_fingerprint,priority:2" json:"fingerprint"`
	Balance            *decimal.Decimal `gorm:"type:decimal(15,2)" json:"balance"`
	Metadata           shared.JSONMap   `gorm:"type:jsonb" json:"metadata"`
	IsManuallyEdited   bool             `gorm:"not null;default:false" json:"isManuallyEdited"`
	CreatedAt          time.Time        `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Populated by read queries joining categories; never written.
	CategoryName string `gorm:"-" json:"categoryName,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// CreateParams carries the fields a caller controls when building a new
// transaction. Fingerprint is optional: when empty it is derived from the
// defining fields.
type CreateParams struct {
	UserId             ulid.ULID
	Amount             decimal.Decimal
	Type               Types
	Merchant           string
	Source             Sources
	Timestamp          time.Time
	Fingerprint        string
	Balance            *decimal.Decimal
	Metadata           shared.JSONMap
	CategoryId         *ulid.ULID
	CategoryConfidence *float64
}

// New validates invariants and builds a transaction. Violations come back as
// validation AppErrors so the sync pipeline can report them per item.
func New(p CreateParams) (*Transaction, error) {
	if !p.Amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "amount must be greater than zero")
	}
	if !p.Type.IsValid() {
		return nil, appErrors.NewValidationError("type", "type must be DEBIT or CREDIT")
	}
	if strings.TrimSpace(p.Merchant) == "" {
		return nil, appErrors.NewValidationError("merchant", "merchant cannot be empty")
	}
	if !p.Source.IsValid() {
		return nil, appErrors.NewValidationError("source", "source must be one of UPI, CARD, BANK, CASH, OTHER")
	}
	if pkg.IsEmptyULID(p.UserId) {
		return nil, appErrors.NewValidationError("userId", "userId cannot be empty")
	}

	merchant := strings.TrimSpace(p.Merchant)

	fingerprint := p.Fingerprint
	if fingerprint == "" {
		fingerprint = Fingerprint(p.Amount, p.Type, merchant, p.Timestamp)
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = shared.JSONMap{}
	}

	now := pkg.SetTimestamps()
	return &Transaction{
		Id:                 pkg.GenerateULIDObject(),
		UserId:             p.UserId,
		Amount:             p.Amount,
		Type:               p.Type,
		Merchant:           merchant,
		MerchantNormalized: NormalizeMerchant(merchant),
		Source:             p.Source,
		CategoryId:         p.CategoryId,
		CategoryConfidence: p.CategoryConfidence,
		Timestamp:          p.Timestamp,
		Fingerprint:        fingerprint,
		Balance:            p.Balance,
		Metadata:           metadata,
		IsManuallyEdited:   false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// WithCategory returns a copy carrying the corrected category, flagged as
// manually edited. The receiver is left untouched.
func (t Transaction) WithCategory(categoryID ulid.ULID, confidence float64) *Transaction {
	t.CategoryId = &categoryID
	t.CategoryConfidence = &confidence
	t.IsManuallyEdited = true
	t.UpdatedAt = pkg.SetTimestamps()
	t.CategoryName = ""
	return &t
}

func (t *Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}
