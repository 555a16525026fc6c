package infrastructure

import (
	"context"
	"errors"
	"time"

	"Spendly/internal/domain/shared"
	"Spendly/internal/domain/transaction"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

type transactionDB struct {
	Id                 string           `gorm:"type:varchar(26);primaryKey"`
	UserId             string           `gorm:"type:varchar(26);not null;index:idx_transactions_user_id;uniqueIndex:idx_transactions_fingerprint,priority:1"`
	Amount             decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Type               string           `gorm:"type:varchar(10);not null;index:idx_transactions_type"`
	Merchant           string           `gorm:"type:varchar(255);not null"`
	MerchantNormalized string           `gorm:"type:varchar(255);not null;index:idx_transactions_merchant_normalized"`
	Source             string           `gorm:"type:varchar(10);not null"`
	CategoryId         *string          `gorm:"type:varchar(26);index:idx_transactions_category_id"`
	CategoryConfidence *float64         `gorm:"type:decimal(3,2)"`
	Timestamp          time.Time        `gorm:"not null;index:idx_transactions_timestamp"`
	Fingerprint        string           `gorm:"type:varchar(32);not null;uniqueIndex:idx_transactions_fingerprint,priority:2"`
	Balance            *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Metadata           shared.JSONMap   `gorm:"type:jsonb"`
	IsManuallyEdited   bool             `gorm:"not null;default:false"`
	CreatedAt          time.Time        `gorm:"autoCreateTime;not null"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime;not null"`

	CategoryName string `gorm:"->"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	categoryID, err := pkg.ParseULIDPtr(tdb.CategoryId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &transaction.Transaction{
		Id:                 id,
		UserId:             userID,
		Amount:             tdb.Amount,
		Type:               transaction.Types(tdb.Type),
		Merchant:           tdb.Merchant,
		MerchantNormalized: tdb.MerchantNormalized,
		Source:             transaction.Sources(tdb.Source),
		CategoryId:         categoryID,
		CategoryConfidence: tdb.CategoryConfidence,
		Timestamp:          tdb.Timestamp,
		Fingerprint:        tdb.Fingerprint,
		Balance:            tdb.Balance,
		Metadata:           tdb.Metadata,
		IsManuallyEdited:   tdb.IsManuallyEdited,
		CreatedAt:          tdb.CreatedAt,
		UpdatedAt:          tdb.UpdatedAt,
		CategoryName:       tdb.CategoryName,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var categoryID *string
	if t.CategoryId != nil {
		s := t.CategoryId.String()
		categoryID = &s
	}
	return &transactionDB{
		Id:                 t.Id.String(),
		UserId:             t.UserId.String(),
		Amount:             t.Amount,
		Type:               string(t.Type),
		Merchant:           t.Merchant,
		MerchantNormalized: t.MerchantNormalized,
		Source:             string(t.Source),
		CategoryId:         categoryID,
		CategoryConfidence: t.CategoryConfidence,
		Timestamp:          t.Timestamp,
		Fingerprint:        t.Fingerprint,
		Balance:            t.Balance,
		Metadata:           t.Metadata,
		IsManuallyEdited:   t.IsManuallyEdited,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// SaveBatch inserts transactions idempotently. Duplicates are detected three
// ways: against rows already stored, against earlier items of the same
// batch, and as a last resort by the unique index when two batches race.
// Matched carries the stored row each duplicate resolved to, category name
// included, so the caller never needs a follow-up read.
func (r *TransactionRepository) SaveBatch(ctx context.Context, userID ulid.ULID, transactions []*transaction.Transaction) (*transaction.BatchResult, error) {
	result := &transaction.BatchResult{Saved: []*transaction.Transaction{}}
	if len(transactions) == 0 {
		return result, nil
	}

	fingerprints := make([]string, 0, len(transactions))
	for _, t := range transactions {
		fingerprints = append(fingerprints, t.Fingerprint)
	}
	existing, err := r.getByFingerprints(ctx, userID, fingerprints)
	if err != nil {
		return nil, err
	}

	inserted := make(map[string]*transaction.Transaction, len(transactions))
	for _, t := range transactions {
		if row, ok := existing[t.Fingerprint]; ok {
			result.Skipped++
			result.Matched = append(result.Matched, row)
			continue
		}
		if row, ok := inserted[t.Fingerprint]; ok {
			result.Skipped++
			result.Matched = append(result.Matched, row)
			continue
		}

		if err := r.DB.WithContext(ctx).Table("transactions").Create(toDBTransaction(t)).Error; err != nil {
			if shared.IsUniqueConstraintError(err) {
				// Another sync inserted the row between our lookup and now.
				result.Skipped++
				if row, err := r.getByFingerprint(ctx, userID, t.Fingerprint); err == nil && row != nil {
					result.Matched = append(result.Matched, row)
				}
				continue
			}
			return nil, appErrors.NewDatabaseError(err)
		}
		inserted[t.Fingerprint] = t
		result.Saved = append(result.Saved, t)
	}

	// Freshly inserted rows only carry the category id; resolve names in one
	// joined read so the whole result is render-ready.
	if len(result.Saved) > 0 {
		if err := r.hydrateCategoryNames(ctx, result.Saved); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// getByFingerprints loads stored rows for the given fingerprints, category
// name joined, keyed by fingerprint.
func (r *TransactionRepository) getByFingerprints(ctx context.Context, userID ulid.ULID, fingerprints []string) (map[string]*transaction.Transaction, error) {
	if len(fingerprints) == 0 {
		return map[string]*transaction.Transaction{}, nil
	}

	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.fingerprint IN ?", userID.String(), fingerprints).
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	byFingerprint := make(map[string]*transaction.Transaction, len(rows))
	for i := range rows {
		t, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		byFingerprint[t.Fingerprint] = t
	}
	return byFingerprint, nil
}

func (r *TransactionRepository) getByFingerprint(ctx context.Context, userID ulid.ULID, fingerprint string) (*transaction.Transaction, error) {
	rows, err := r.getByFingerprints(ctx, userID, []string{fingerprint})
	if err != nil {
		return nil, err
	}
	return rows[fingerprint], nil
}

func (r *TransactionRepository) hydrateCategoryNames(ctx context.Context, transactions []*transaction.Transaction) error {
	ids := make([]string, 0, len(transactions))
	for _, t := range transactions {
		if t.CategoryId != nil {
			ids = append(ids, t.CategoryId.String())
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var rows []categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	names := make(map[string]string, len(rows))
	for i := range rows {
		names[rows[i].Id] = rows[i].Name
	}

	for _, t := range transactions {
		if t.CategoryId != nil {
			t.CategoryName = names[t.CategoryId.String()]
		}
	}
	return nil
}

func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.id = ? AND transactions.user_id = ?", id.String(), userID.String()).
		First(&tdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters transaction.Filters) ([]*transaction.Transaction, int64, error) {
	query := r.DB.WithContext(ctx).Table("transactions").
		Where("transactions.user_id = ?", userID.String())

	if filters.Type != "" {
		query = query.Where("transactions.type = ?", string(filters.Type))
	}
	if filters.Source != "" {
		query = query.Where("transactions.source = ?", string(filters.Source))
	}
	if filters.CategoryId != nil {
		query = query.Where("transactions.category_id = ?", filters.CategoryId.String())
	}
	if filters.From != nil {
		query = query.Where("transactions.timestamp >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("transactions.timestamp <= ?", *filters.To)
	}
	if filters.Merchant != "" {
		pattern := "%" + transaction.NormalizeMerchant(filters.Merchant) + "%"
		query = query.Where("transactions.merchant_normalized LIKE ?", pattern)
	}

	query = query.
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id")

	transactions, total, err := pkg.Paginate(query, filters.Pagination, "transactions.timestamp DESC", toDomainTransaction)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND user_id = ?", t.Id.String(), t.UserId.String()).
		Updates(map[string]interface{}{
			"category_id":         valueOrNil(t.CategoryId),
			"category_confidence": t.CategoryConfidence,
			"is_manually_edited":  t.IsManuallyEdited,
			"updated_at":          t.UpdatedAt,
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTransactionNotFound
	}
	return nil
}

func valueOrNil(id *ulid.ULID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

type categorySpendingDB struct {
	CategoryId   *string
	CategoryName string
	Total        decimal.Decimal
	Count        int64
}

func (r *TransactionRepository) SpendingByCategory(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]transaction.CategorySpending, error) {
	var rows []categorySpendingDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Select("transactions.category_id, categories.name AS category_name, SUM(transactions.amount) AS total, COUNT(*) AS count").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ? AND transactions.timestamp >= ? AND transactions.timestamp <= ?",
			userID.String(), string(transaction.TypeDebit), from, to).
		Group("transactions.category_id, categories.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	summary := make([]transaction.CategorySpending, 0, len(rows))
	for _, row := range rows {
		categoryID, err := pkg.ParseULIDPtr(row.CategoryId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		summary = append(summary, transaction.CategorySpending{
			CategoryId:   categoryID,
			CategoryName: row.CategoryName,
			Total:        row.Total,
			Count:        row.Count,
		})
	}
	return summary, nil
}

func (r *TransactionRepository) TotalByType(ctx context.Context, userID ulid.ULID, typ transaction.Types, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.WithContext(ctx).Table("transactions").
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND timestamp >= ? AND timestamp <= ?",
			userID.String(), string(typ), from, to).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, appErrors.NewDatabaseError(err)
	}
	return total, nil
}
