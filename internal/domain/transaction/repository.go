package transaction

import (
	"context"
	"time"

	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Filters narrows listing queries. Zero values mean "no constraint".
type Filters struct {
	Type       Types
	Source     Sources
	CategoryId *ulid.ULID
	From       *time.Time
	To         *time.Time
	Merchant   string
	Pagination pkg.PaginationParams
}

// BatchResult reports the outcome of an idempotent batch save. Saved holds
// the rows actually inserted; Matched holds the stored rows duplicates
// resolved to, so callers can render a replayed batch without a follow-up
// read. Skipped counts fingerprint duplicates.
type BatchResult struct {
	Saved   []*Transaction
	Matched []*Transaction
	Skipped int
}

// CategorySpending is one row of a spending summary grouped by category.
type CategorySpending struct {
	CategoryId   *ulid.ULID      `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
	Count        int64           `json:"count"`
}

type Repository interface {
	SaveBatch(ctx context.Context, userID ulid.ULID, transactions []*Transaction) (*BatchResult, error)
	GetByIDAndUser(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*Transaction, error)
	GetAll(ctx context.Context, userID ulid.ULID, filters Filters) ([]*Transaction, int64, error)
	Update(ctx context.Context, transaction *Transaction) error
	SpendingByCategory(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]CategorySpending, error)
	TotalByType(ctx context.Context, userID ulid.ULID, typ Types, from, to time.Time) (decimal.Decimal, error)
}
