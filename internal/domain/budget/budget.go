package budget

import (
	"time"

	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodMonthly Period = "MONTHLY"
	PeriodWeekly  Period = "WEEKLY"
	PeriodYearly  Period = "YEARLY"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodMonthly, PeriodWeekly, PeriodYearly:
		return true
	}
	return false
}

// Budget is a spending limit for one category. One budget per user and
// category: setting it again replaces the amount.
type Budget struct {
	Id         ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId     ulid.ULID       `gorm:"type:varchar(26);not null;uniqueIndex:idx_budgets_user_category,priority:1" json:"userId"`
	CategoryId ulid.ULID       `gorm:"type:varchar(26);not null;uniqueIndex:idx_budgets_user_category,priority:2" json:"categoryId"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period     Period          `gorm:"type:varchar(10);not null;default:'MONTHLY'" json:"period"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`

	// Populated by read queries joining categories; never written.
	CategoryName string `gorm:"-" json:"categoryName,omitempty"`

	// Populated by listing queries summing the current period's debits.
	Spent decimal.Decimal `gorm:"-" json:"spent"`
}

func (Budget) TableName() string {
	return "budgets"
}

func New(userID, categoryID ulid.ULID, amount decimal.Decimal, period Period) (*Budget, error) {
	if !amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "amount must be greater than zero")
	}
	if period == "" {
		period = PeriodMonthly
	}
	if !period.IsValid() {
		return nil, appErrors.NewValidationError("period", "period must be MONTHLY, WEEKLY or YEARLY")
	}

	now := pkg.SetTimestamps()
	return &Budget{
		Id:         pkg.GenerateULIDObject(),
		UserId:     userID,
		CategoryId: categoryID,
		Amount:     amount,
		Period:     period,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// WithAmount returns a copy carrying a new limit.
func (b Budget) WithAmount(amount decimal.Decimal) *Budget {
	b.Amount = amount
	b.UpdatedAt = pkg.SetTimestamps()
	return &b
}

// Remaining is the unspent part of the limit, floored at zero.
func (b *Budget) Remaining() decimal.Decimal {
	remaining := b.Amount.Sub(b.Spent)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
