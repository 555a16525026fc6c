package infrastructure

import (
	"context"

	"Spendly/internal/domain/categorization"
	"Spendly/internal/domain/category"
	"Spendly/internal/domain/shared"
	"Spendly/internal/logger"
	"Spendly/internal/pkg"

	"gorm.io/gorm"
)

// SeedDatabase plants the system category forest and the merchant mappings
// that ship with the product. Safe to run on every startup: categories carry
// deterministic ids keyed by slug and existing rows are left alone.
func SeedDatabase(ctx context.Context, db *gorm.DB) error {
	categoriesCreated := 0
	for _, root := range category.SystemCategories {
		rootID, created, err := seedCategory(ctx, db, root, nil)
		if err != nil {
			return err
		}
		if created {
			categoriesCreated++
		}

		for _, child := range root.Children {
			childDef := child
			_, created, err := seedCategory(ctx, db, childDef, &rootID)
			if err != nil {
				return err
			}
			if created {
				categoriesCreated++
			}
		}
	}

	mappingsCreated, err := seedMerchantMappings(ctx, db)
	if err != nil {
		return err
	}

	logger.Info().
		Int("categories", categoriesCreated).
		Int("mappings", mappingsCreated).
		Msg("seed completed")
	return nil
}

func seedCategory(ctx context.Context, db *gorm.DB, def category.SeedDefinition, parentID *string) (string, bool, error) {
	id := category.DeterministicID(def.Slug).String()

	var count int64
	if err := db.WithContext(ctx).Table("categories").Where("slug = ?", def.Slug).Count(&count).Error; err != nil {
		return "", false, err
	}
	if count > 0 {
		return id, false, nil
	}

	now := pkg.SetTimestamps()
	row := &categoryDB{
		Id:        id,
		Name:      def.Name,
		Slug:      def.Slug,
		ParentId:  parentID,
		Icon:      def.Icon,
		Color:     def.Color,
		IsSystem:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Table("categories").Create(row).Error; err != nil {
		if shared.IsUniqueConstraintError(err) {
			return id, false, nil
		}
		return "", false, err
	}
	return id, true, nil
}

func seedMerchantMappings(ctx context.Context, db *gorm.DB) (int, error) {
	created := 0
	for _, seed := range category.SeedMerchantMappings {
		var count int64
		if err := db.WithContext(ctx).Table("merchant_mappings").Where("pattern = ?", seed.Pattern).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		categoryID := category.DeterministicID(seed.CategorySlug)
		mapping, err := categorization.NewMapping(seed.Pattern, categoryID, seed.Confidence, categorization.SourceSeed)
		if err != nil {
			logger.Warn().Err(err).Str("pattern", seed.Pattern).Msg("skipping invalid seed mapping")
			continue
		}

		if err := db.WithContext(ctx).Table("merchant_mappings").Create(toDBMapping(mapping)).Error; err != nil {
			if shared.IsUniqueConstraintError(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}
