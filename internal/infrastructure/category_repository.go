package infrastructure

import (
	"context"
	"errors"
	"time"

	"Spendly/internal/domain/categorization"
	"Spendly/internal/domain/category"
	appErrors "Spendly/internal/errors"
	"Spendly/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_slug"`
	ParentId  *string   `gorm:"type:varchar(26);index:idx_categories_parent"`
	Icon      string    `gorm:"type:varchar(50)"`
	Color     string    `gorm:"type:varchar(7)"`
	IsSystem  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	parentID, err := pkg.ParseULIDPtr(cdb.ParentId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &category.Category{
		Id:        id,
		Name:      cdb.Name,
		Slug:      cdb.Slug,
		ParentId:  parentID,
		Icon:      cdb.Icon,
		Color:     cdb.Color,
		IsSystem:  cdb.IsSystem,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	var parentID *string
	if c.ParentId != nil {
		s := c.ParentId.String()
		parentID = &s
	}
	return &categoryDB{
		Id:        c.Id.String(),
		Name:      c.Name,
		Slug:      c.Slug,
		ParentId:  parentID,
		Icon:      c.Icon,
		Color:     c.Color,
		IsSystem:  c.IsSystem,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if err := r.DB.WithContext(ctx).Table("categories").Create(toDBCategory(c)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Where("id = ?", id.String()).First(&cdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	var cdb categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Where("slug = ?", slug).First(&cdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*category.Category, error) {
	var rows []categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Order("name ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	categories := make([]*category.Category, 0, len(rows))
	for i := range rows {
		c, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// ListRefs feeds the categorization engine without dragging the full
// entity along.
func (r *CategoryRepository) ListRefs(ctx context.Context) ([]categorization.CategoryRef, error) {
	var rows []categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Select("id", "name", "slug").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	refs := make([]categorization.CategoryRef, 0, len(rows))
	for i := range rows {
		id, err := pkg.ParseULID(rows[i].Id)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		refs = append(refs, categorization.CategoryRef{Id: id, Name: rows[i].Name, Slug: rows[i].Slug})
	}
	return refs, nil
}
