package infrastructure

import (
	"context"
	"errors"
	"time"

	"Spendly/internal/domain/categorization"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"gorm.io/gorm"
)

type MerchantMappingRepository struct {
	DB *gorm.DB
}

type merchantMappingDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	Pattern    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_merchant_mappings_pattern"`
	CategoryId string    `gorm:"type:varchar(26);not null"`
	Confidence float64   `gorm:"type:decimal(3,2);not null"`
	Source     string    `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null"`
}

func (merchantMappingDB) TableName() string {
	return "merchant_mappings"
}

func toDomainMapping(mdb *merchantMappingDB) (*categorization.MerchantMapping, error) {
	id, err := pkg.ParseULID(mdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	categoryID, err := pkg.ParseULID(mdb.CategoryId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &categorization.MerchantMapping{
		Id:         id,
		Pattern:    mdb.Pattern,
		CategoryId: categoryID,
		Confidence: mdb.Confidence,
		Source:     categorization.MappingSource(mdb.Source),
		CreatedAt:  mdb.CreatedAt,
		UpdatedAt:  mdb.UpdatedAt,
	}, nil
}

func toDBMapping(m *categorization.MerchantMapping) *merchantMappingDB {
	return &merchantMappingDB{
		Id:         m.Id.String(),
		Pattern:    m.Pattern,
		CategoryId: m.CategoryId.String(),
		Confidence: m.Confidence,
		Source:     string(m.Source),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// LoadAll returns mappings oldest first. Rule precedence depends on this
// order.
func (r *MerchantMappingRepository) LoadAll(ctx context.Context) ([]*categorization.MerchantMapping, error) {
	var rows []merchantMappingDB
	if err := r.DB.WithContext(ctx).Table("merchant_mappings").Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	mappings := make([]*categorization.MerchantMapping, 0, len(rows))
	for i := range rows {
		m, err := toDomainMapping(&rows[i])
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

func (r *MerchantMappingRepository) FindByPattern(ctx context.Context, pattern string) (*categorization.MerchantMapping, error) {
	var mdb merchantMappingDB
	if err := r.DB.WithContext(ctx).Table("merchant_mappings").Where("pattern = ?", pattern).First(&mdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMapping(&mdb)
}

func (r *MerchantMappingRepository) Append(ctx context.Context, m *categorization.MerchantMapping) error {
	if err := r.DB.WithContext(ctx).Table("merchant_mappings").Create(toDBMapping(m)).Error; err != nil {
		return err
	}
	return nil
}
