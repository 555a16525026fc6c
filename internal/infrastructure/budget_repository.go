package infrastructure

import (
	"context"
	"errors"
	"time"

	"Spendly/internal/domain/budget"
	"Spendly/internal/domain/transaction"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

type budgetDB struct {
	Id         string          `gorm:"type:varchar(26);primaryKey"`
	UserId     string          `gorm:"type:varchar(26);not null;uniqueIndex:idx_budgets_user_category,priority:1"`
	CategoryId string          `gorm:"type:varchar(26);not null;uniqueIndex:idx_budgets_user_category,priority:2"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period     string          `gorm:"type:varchar(10);not null;default:'MONTHLY'"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;not null"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime;not null"`

	CategoryName string `gorm:"->"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(bdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	categoryID, err := pkg.ParseULID(bdb.CategoryId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &budget.Budget{
		Id:           id,
		UserId:       userID,
		CategoryId:   categoryID,
		Amount:       bdb.Amount,
		Period:       budget.Period(bdb.Period),
		CreatedAt:    bdb.CreatedAt,
		UpdatedAt:    bdb.UpdatedAt,
		CategoryName: bdb.CategoryName,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:         b.Id.String(),
		UserId:     b.UserId.String(),
		CategoryId: b.CategoryId.String(),
		Amount:     b.Amount,
		Period:     string(b.Period),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *BudgetRepository) Save(ctx context.Context, b *budget.Budget) error {
	if err := r.DB.WithContext(ctx).Table("budgets").Save(toDBBudget(b)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id ulid.ULID, userID ulid.ULID) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).Table("budgets").
		Select("budgets.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.id = ? AND budgets.user_id = ?", id.String(), userID.String()).
		First(&bdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) GetByCategory(ctx context.Context, userID, categoryID ulid.ULID) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).Table("budgets").
		Where("user_id = ? AND category_id = ?", userID.String(), categoryID.String()).
		First(&bdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBudget(&bdb)
}

// GetByUser lists budgets with the current month's spend attached.
func (r *BudgetRepository) GetByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	var rows []budgetDB
	err := r.DB.WithContext(ctx).Table("budgets").
		Select("budgets.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.user_id = ?", userID.String()).
		Order("budgets.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	budgets := make([]*budget.Budget, 0, len(rows))
	for i := range rows {
		b, err := toDomainBudget(&rows[i])
		if err != nil {
			return nil, err
		}

		var spent decimal.Decimal
		err = r.DB.WithContext(ctx).Table("transactions").
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND category_id = ? AND type = ? AND timestamp >= ?",
				userID.String(), rows[i].CategoryId, string(transaction.TypeDebit), startOfMonth).
			Scan(&spent).Error
		if err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		b.Spent = spent

		budgets = append(budgets, b)
	}
	return budgets, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id ulid.ULID, userID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("budgets").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Delete(&budgetDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBudgetNotFound
	}
	return nil
}
